package ratelimit

import (
	"context"

	"project_management/be/biz/config"
	rediscli "project_management/be/biz/db/redis"
	"project_management/be/biz/model/errs"
	"project_management/be/biz/util/interceptor"
	"project_management/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	defaultWindowSeconds = 1
	defaultLimit         = 10
)

// New limits requests per path and client ip using the rate_limit rules.
// Paths without a rule share the default window.
func New() app.HandlerFunc {
	rdb := rediscli.GetRedisClient()
	rules := make(map[string]*interceptor.Interceptor)

	for _, conf := range config.GetRateLimitConf() {
		if conf.Path != "" && conf.WindowSeconds > 0 && conf.Limit > 0 {
			rules[conf.Path] = interceptor.NewInterceptor(rdb, conf.WindowSeconds, conf.Limit)
		}
	}

	defaultRule := interceptor.NewInterceptor(rdb, defaultWindowSeconds, defaultLimit)

	return func(ctx context.Context, c *app.RequestContext) {
		path := string(c.Request.URI().Path())

		rule, ok := rules[path]
		if !ok {
			rule = defaultRule
		}

		key := path + ":" + clientIP(c)
		allowed, err := rule.Allow(ctx, key)
		if err != nil {
			// fail open
			hlog.CtxErrorf(ctx, "Rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			resp.AbortWithErr(c, errs.TooManyRequest)
			return
		}

		c.Next(ctx)
	}
}

func clientIP(c *app.RequestContext) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
