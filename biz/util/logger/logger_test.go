package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"project_management/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_CtxLogId(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, hlog.LevelInfo)

	ctx := trace_info.WithInfo(context.Background(), trace_info.Info{LogID: "log-123", ClientIP: "10.0.0.1"})
	l.CtxInfof(ctx, "test info data: %d, %s", 123, "ttt")

	var line map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "log-123", line["log_id"])
	assert.Equal(t, "10.0.0.1", line["client_ip"])
	assert.Equal(t, "test info data: 123, ttt", line["msg"])
	assert.Equal(t, "info", line["level"])
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, hlog.LevelWarn)

	l.Infof("hidden")
	l.CtxDebugf(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	l.Errorf("shown %s", "error")
	assert.True(t, strings.Contains(buf.String(), "shown error"))

	buf.Reset()
	l.SetLevel(hlog.LevelDebug)
	l.CtxDebugf(context.Background(), "now shown")
	assert.True(t, strings.Contains(buf.String(), "now shown"))
	assert.False(t, strings.Contains(buf.String(), "log_id"))
}

func TestNewLevel(t *testing.T) {
	assert.Equal(t, hlog.LevelInfo, newLevel())
}
