package app

import (
	"os"

	"eleave/internal/shared/connection"
	"eleave/internal/shared/siteconfig"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	cfgPath := os.Getenv("SITE_CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "site_config.json"
	}
	cfgStore := siteconfig.Load(cfgPath)

	return registerModules(router, sqlDB, gormDB, rdb, cfgStore)
}
