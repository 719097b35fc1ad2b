package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConf = `server:
  addr: "127.0.0.1:8080"

mysql:
  db_name: "project_management"
  ip: "127.0.0.1"
  port: 3306
  username: "root"
  password: ""

redis:
  ip: "127.0.0.1"
  port: 6379
  password: ""
  db: 0

jwt:
  issuer: "test_issuer"
  token_secret: "yaml_secret"
  expiration: 21600

rate_limit:
  - path: "/auth/login"
    window_seconds: 1
    limit: 5

signup_protection:
  block_minutes: 10
`

func writeConf(t *testing.T) string {
	dir := t.TempDir()
	p := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(p, []byte(testConf), 0600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return p
}

func TestInit(t *testing.T) {
	Init(writeConf(t))

	assert.Equal(t, "test_issuer", GetJWTConfig().Issuer)
	assert.Equal(t, "yaml_secret", GetJWTConfig().TokenSecret)
	assert.Equal(t, 21600, GetJWTConfig().Expiration)
	assert.Equal(t, "127.0.0.1:8080", GetServerConf().Addr)
	assert.Equal(t, 3306, GetMySQLConf().Port)
	assert.Equal(t, 10, GetSignupProtectionConf().BlockMinutes)
	if assert.Len(t, GetRateLimitConf(), 1) {
		assert.Equal(t, "/auth/login", GetRateLimitConf()[0].Path)
		assert.Equal(t, int64(5), GetRateLimitConf()[0].Limit)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "env_secret")
	t.Setenv("MYSQL_PORT", "3307")

	err := Load(writeConf(t))
	assert.NoError(t, err)
	assert.Equal(t, "env_secret", GetJWTConfig().TokenSecret)
	assert.Equal(t, 3307, GetMySQLConf().Port)
	// untouched values keep the yaml content
	assert.Equal(t, "test_issuer", GetJWTConfig().Issuer)
}

func TestLoad_Error(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	p := filepath.Join(t.TempDir(), "broken.yml")
	assert.NoError(t, os.WriteFile(p, []byte("jwt: [unterminated"), 0600))
	assert.Error(t, Load(p))

	assert.Panics(t, func() { Init(p) })
}
