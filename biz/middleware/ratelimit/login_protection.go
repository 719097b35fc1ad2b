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

const (
	keyLoginBlockHour   = "login_block_h:"
	keyLoginBlockMinute = "login_block_m:"
	keyLoginFailLvl     = "login_fail_level:"
	keyLoginFail        = "login_fail:"
)

// NewLoginProtection counts 401 login responses per ip. Reaching the limit
// blocks the ip for minutes; failing again while the level key lives blocks it
// for hours.
func NewLoginProtection() app.HandlerFunc {
	conf := config.GetLoginProtectionConf()

	window := conf.WindowSeconds
	if window <= 0 {
		window = 300
	}

	limit := conf.Limit
	if limit <= 0 {
		limit = 5
	}

	durationBlockMin := time.Duration(conf.BlockMinDuration) * time.Minute
	if durationBlockMin <= 0 {
		durationBlockMin = 5 * time.Minute
	}

	durationBlockHour := time.Duration(conf.BlockHourDuration) * time.Hour
	if durationBlockHour <= 0 {
		durationBlockHour = 24 * time.Hour
	}

	durationFailLvl := time.Duration(conf.LevelDuration) * time.Second
	if durationFailLvl <= 0 {
		durationFailLvl = 30 * time.Minute
	}

	rdb := rediscli.GetRedisClient()

	// the interceptor denies once current > limit, so the limit-th failure trips it
	failInterceptor := interceptor.NewInterceptor(rdb, window, int64(limit-1))

	return func(ctx context.Context, c *app.RequestContext) {
		ip := clientIP(c)

		// 先校验小时拦截策略
		if n, _ := rdb.Exists(ctx, interceptor.Key(keyLoginBlockHour+ip)).Result(); n > 0 {
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("Too many login failures, please try again after %v hours", durationBlockHour.Hours())))
			return
		}

		// 再校验分钟拦截策略
		if n, _ := rdb.Exists(ctx, interceptor.Key(keyLoginBlockMinute+ip)).Result(); n > 0 {
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("Too many login failures, please try again after %v minutes", durationBlockMin.Minutes())))
			return
		}

		c.Next(ctx)

		if c.Response.StatusCode() != http.StatusUnauthorized {
			return
		}

		allowed, err := failInterceptor.Allow(ctx, keyLoginFail+ip)
		if err != nil {
			hlog.CtxErrorf(ctx, "FailInterceptor error: %v", err)
			return
		}
		if allowed {
			return
		}

		lvlExists, _ := rdb.Exists(ctx, keyLoginFailLvl+ip).Result()
		if lvlExists > 0 {
			if err := rdb.Set(ctx, interceptor.Key(keyLoginBlockHour+ip), "1", durationBlockHour).Err(); err != nil {
				hlog.CtxErrorf(ctx, "Failed to set login block key: %v", err)
				return
			}
			hlog.CtxInfof(ctx, "Login protection: IP %s blocked for %v (Level 2)", ip, durationBlockHour)
			return
		}

		pipe := rdb.Pipeline()
		pipe.Set(ctx, interceptor.Key(keyLoginBlockMinute+ip), "1", durationBlockMin)
		pipe.Set(ctx, keyLoginFailLvl+ip, "1", durationFailLvl)
		if _, err := pipe.Exec(ctx); err != nil {
			hlog.CtxErrorf(ctx, "Failed to set login block keys: %v", err)
			return
		}
		hlog.CtxInfof(ctx, "Login protection: IP %s blocked for %v (Level 1)", ip, durationBlockMin)
	}
}
