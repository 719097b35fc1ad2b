package middleware

import (
	"project_management/be/biz/middleware/accesslog"
	"project_management/be/biz/middleware/cors"
	"project_management/be/biz/middleware/ratelimit"
	"project_management/be/biz/middleware/recovery"
	"project_management/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.New(),  // panic handler
		trace.New(),     // 链路ID
		accesslog.New(), // 接口日志
		cors.New(),      // 跨域请求
		ratelimit.New(), // 限流
	}
}
