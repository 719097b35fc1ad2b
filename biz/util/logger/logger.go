package logger

import (
	"context"
	"io"

	"project_management/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init installs the logrus backed logger as hlog's default.
func Init() {
	hlog.SetLogger(New(newOutput(), newLevel()))
}

// Logger adapts logrus to hlog.FullLogger and tags ctx logs with log_id.
type Logger struct {
	l *logrus.Logger
}

var _ hlog.FullLogger = (*Logger)(nil)

func New(out io.Writer, level hlog.Level) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	l.SetOutput(out)
	l.SetLevel(toLogrusLevel(level))
	return &Logger{l: l}
}

func (l *Logger) SetLevel(level hlog.Level) {
	l.l.SetLevel(toLogrusLevel(level))
}

func (l *Logger) SetOutput(w io.Writer) {
	l.l.SetOutput(w)
}

func (l *Logger) withCtx(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(l.l).WithContext(ctx)
	info := trace_info.GetInfo(ctx)
	if info.LogID != "" {
		entry = entry.WithField("log_id", info.LogID)
	}
	if info.ClientIP != "" {
		entry = entry.WithField("client_ip", info.ClientIP)
	}
	return entry
}

func (l *Logger) Trace(v ...interface{})  { l.l.Trace(v...) }
func (l *Logger) Debug(v ...interface{})  { l.l.Debug(v...) }
func (l *Logger) Info(v ...interface{})   { l.l.Info(v...) }
func (l *Logger) Notice(v ...interface{}) { l.l.Info(v...) }
func (l *Logger) Warn(v ...interface{})   { l.l.Warn(v...) }
func (l *Logger) Error(v ...interface{})  { l.l.Error(v...) }
func (l *Logger) Fatal(v ...interface{})  { l.l.Fatal(v...) }

func (l *Logger) Tracef(format string, v ...interface{})  { l.l.Tracef(format, v...) }
func (l *Logger) Debugf(format string, v ...interface{})  { l.l.Debugf(format, v...) }
func (l *Logger) Infof(format string, v ...interface{})   { l.l.Infof(format, v...) }
func (l *Logger) Noticef(format string, v ...interface{}) { l.l.Infof(format, v...) }
func (l *Logger) Warnf(format string, v ...interface{})   { l.l.Warnf(format, v...) }
func (l *Logger) Errorf(format string, v ...interface{})  { l.l.Errorf(format, v...) }
func (l *Logger) Fatalf(format string, v ...interface{})  { l.l.Fatalf(format, v...) }

func (l *Logger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Tracef(format, v...)
}

func (l *Logger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Debugf(format, v...)
}

func (l *Logger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Infof(format, v...)
}

func (l *Logger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Infof(format, v...)
}

func (l *Logger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Warnf(format, v...)
}

func (l *Logger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Errorf(format, v...)
}

func (l *Logger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	l.withCtx(ctx).Fatalf(format, v...)
}

func toLogrusLevel(level hlog.Level) logrus.Level {
	switch level {
	case hlog.LevelTrace:
		return logrus.TraceLevel
	case hlog.LevelDebug:
		return logrus.DebugLevel
	case hlog.LevelInfo, hlog.LevelNotice:
		return logrus.InfoLevel
	case hlog.LevelWarn:
		return logrus.WarnLevel
	case hlog.LevelError:
		return logrus.ErrorLevel
	case hlog.LevelFatal:
		return logrus.FatalLevel
	}
	return logrus.TraceLevel
}
