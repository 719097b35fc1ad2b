package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func Init(filepath string) {
	if err := Load(filepath); err != nil {
		panic(err)
	}

	hlog.Debugf("config debug: %+v", globalConfig)
}

// Load reads the yaml file, then applies .env and environment overrides.
func Load(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
	}

	// unset variables keep the yaml value
	if err := env.Parse(&conf); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	globalConfig = conf
	return nil
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetJWTConfig() JWTConf {
	return globalConfig.JWT
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetRateLimitConf() []RateLimitConf {
	return globalConfig.RateLimit
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

func GetLoginProtectionConf() LoginProtectionConf {
	return globalConfig.LoginProtection
}

func GetSignupProtectionConf() SignupProtectionConf {
	return globalConfig.SignupProtection
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server           ServerConf           `yaml:"server"`
	MySQL            MySQLConf            `yaml:"mysql"`
	Redis            RedisConf            `yaml:"redis"`
	JWT              JWTConf              `yaml:"jwt"`
	CORS             CORSConf             `yaml:"cors"`
	RateLimit        []RateLimitConf      `yaml:"rate_limit"`
	Logger           LoggerConf           `yaml:"logger"`
	LoginProtection  LoginProtectionConf  `yaml:"login_protection"`
	SignupProtection SignupProtectionConf `yaml:"signup_protection"`
}

type ServerConf struct {
	Addr string `yaml:"addr" env:"SERVER_ADDR"`
}

type LoginProtectionConf struct {
	WindowSeconds     int `yaml:"window_seconds"`
	Limit             int `yaml:"limit"`
	BlockMinDuration  int `yaml:"block_min_duration"`
	BlockHourDuration int `yaml:"block_hour_duration"`
	LevelDuration     int `yaml:"level_duration"`
}

// SignupProtectionConf is disabled when BlockMinutes <= 0.
type SignupProtectionConf struct {
	BlockMinutes int `yaml:"block_minutes"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name" env:"MYSQL_DB_NAME"`
	IP       string `yaml:"ip" env:"MYSQL_IP"`
	Port     int    `yaml:"port" env:"MYSQL_PORT"`
	Username string `yaml:"username" env:"MYSQL_USERNAME"`
	Password string `yaml:"password" env:"MYSQL_PASSWORD"`
}

type RedisConf struct {
	IP       string `yaml:"ip" env:"REDIS_IP"`
	Port     int    `yaml:"port" env:"REDIS_PORT"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

type JWTConf struct {
	Issuer string `yaml:"issuer"`

	TokenSecret string `yaml:"token_secret" env:"TOKEN_SECRET"`

	// seconds
	Expiration int `yaml:"expiration" env:"TOKEN_EXPIRATION"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type RateLimitConf struct {
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
}

type LoggerConf struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}
