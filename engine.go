// Package be wires the hertz engine of the project management auth server.
package be

import (
	"project_management/be/biz/config"
	"project_management/be/biz/handler"
	"project_management/be/biz/middleware"
	"project_management/be/biz/middleware/jwt"
	"project_management/be/biz/middleware/ratelimit"
	_ "project_management/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

const defaultAddr = "0.0.0.0:5005"

// NewEngine expects config, logger, mysql and redis to be initialised.
func NewEngine() *server.Hertz {
	addr := config.GetServerConf().Addr
	if addr == "" {
		addr = defaultAddr
	}

	h := server.New(server.WithHostPorts(addr))
	h.Use(middleware.Suite()...)
	register(h)
	return h
}

func register(h *server.Hertz) {
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	auth := h.Group("/auth")
	auth.POST("/signup", ratelimit.NewSignupProtection(), handler.Signup)
	auth.POST("/login", ratelimit.NewLoginProtection(), handler.Login)
	auth.GET("/verify", jwt.ValidateMW(), handler.Verify)
}
