package app

import (
	"slices"

	"go-timesheet/internal/config"
	"go-timesheet/internal/employee"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/shared/connection"
	"go-timesheet/internal/timesheet"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DBRetries)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	router.Use(
		cors.New(corsConfig(cfg)),
		middleware.RequestID(),
	)

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, logger)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employee.Employee{},
		&timesheet.WeeklyTimesheet{},
		&timesheet.DailyEntry{},
		&kafka.OutboxRecord{},
	)
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 0 || slices.Contains(cfg.CORSAllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
	}
	c.AllowHeaders = append(c.AllowHeaders,
		middleware.RequestIDHeader,
		middleware.ActorIDHeader,
		middleware.IdempotencyHeader,
	)
	c.ExposeHeaders = []string{middleware.RequestIDHeader, middleware.IdempotentReplayedHeader}
	return c
}
