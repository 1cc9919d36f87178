package app

import (
	"github.com/okaycreative/studioops/internal/platform/envutil"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type Config struct {
	JWTSecretKey string
	Port         string
	Environment  string
	Version      string
	RedisEnabled bool
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		JWTSecretKey: envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		Port:         envutil.GetEnv("PORT", "8080", log),
		Environment:  envutil.GetEnv("APP_ENV", "development", log),
		Version:      envutil.GetEnv("APP_VERSION", "dev", log),
		RedisEnabled: envutil.GetEnv("REDIS_ADDR", "", log) != "",
	}
}
