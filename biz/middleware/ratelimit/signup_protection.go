package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"project_management/be/biz/config"
	rediscli "project_management/be/biz/db/redis"
	"project_management/be/biz/model/errs"
	"project_management/be/biz/util/interceptor"
	"project_management/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const keySignupBlock = "signup_block:"

// NewSignupProtection blocks further signups from an ip for a while after a
// successful one. It is a no-op when block_minutes is not positive.
func NewSignupProtection() app.HandlerFunc {
	blockMinutes := config.GetSignupProtectionConf().BlockMinutes
	if blockMinutes <= 0 {
		return func(ctx context.Context, c *app.RequestContext) {
			c.Next(ctx)
		}
	}
	blockDuration := time.Duration(blockMinutes) * time.Minute
	rdb := rediscli.GetRedisClient()

	return func(ctx context.Context, c *app.RequestContext) {
		ip := clientIP(c)
		blockKey := interceptor.Key(keySignupBlock + ip)

		if n, _ := rdb.Exists(ctx, blockKey).Result(); n > 0 {
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("Signup is temporarily blocked. Please try again after %v minutes", blockMinutes)))
			return
		}

		c.Next(ctx)

		if c.Response.StatusCode() != http.StatusCreated {
			return
		}

		if err := rdb.Set(ctx, blockKey, "1", blockDuration).Err(); err != nil {
			hlog.CtxErrorf(ctx, "Failed to set signup block key: %v", err)
			return
		}
		hlog.CtxInfof(ctx, "Signup protection: IP %s blocked for %v after successful signup", ip, blockDuration)
	}
}
