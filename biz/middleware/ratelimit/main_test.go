package ratelimit

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"project_management/be/biz/config"
	rediscli "project_management/be/biz/db/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/hertz/pkg/app"
)

var mr *miniredis.Miniredis

func TestMain(m *testing.M) {
	var err error
	mr, err = miniredis.Run()
	if err != nil {
		panic(err)
	}

	dir, err := os.MkdirTemp("", "ratelimit_test_conf_*")
	if err != nil {
		panic(err)
	}

	confPath := filepath.Join(dir, "deploy.yml")
	conf := fmt.Sprintf(`redis:
  ip: "%s"
  port: %s

rate_limit:
  - path: "/limited"
    window_seconds: 1
    limit: 2
  - path: "/unlimited"
    window_seconds: 1
    limit: 100

login_protection:
  window_seconds: 60
  limit: 3
  block_min_duration: 5
  block_hour_duration: 24
  level_duration: 1800

signup_protection:
  block_minutes: 10
`, mr.Host(), mr.Port())
	if err := os.WriteFile(confPath, []byte(conf), 0600); err != nil {
		panic(err)
	}

	config.Init(confPath)
	rediscli.Init()

	code := m.Run()
	mr.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newRequest(path, ip string, status int) *app.RequestContext {
	c := app.NewContext(0)
	c.Request.SetRequestURI(path)
	c.Request.Header.Set("X-Forwarded-For", ip)
	if status != 0 {
		c.Response.SetStatusCode(status)
	}
	return c
}
