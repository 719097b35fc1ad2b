package trace

import (
	"context"

	"project_management/be/biz/util/id_gen"
	"project_management/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	headerKeyLogId = "X-Log-ID"
)

// New propagates X-Log-ID, generating one when the caller sent none.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := string(c.Request.Header.Peek(headerKeyLogId))
		if logID == "" {
			logID = id_gen.NewID()
		}
		c.Header(headerKeyLogId, logID)
		c.Next(trace_info.WithInfo(ctx, trace_info.Info{
			LogID:    logID,
			ClientIP: c.ClientIP(),
		}))
	}
}
