package app

import (
	"database/sql"

	"go-timesheet/internal/config"
	"go-timesheet/internal/employee"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/payroll"
	"go-timesheet/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, rdb, logger)
	timesheetService := timesheet.NewService(db, timesheetRepo, outboxRepo, cfg.Workdays, logger)
	payrollService := payroll.NewService(db, payrollRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	timesheetHandler := timesheet.NewHandler(timesheetService, rdb, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		timesheet.RegisterRoutes(api, timesheetHandler, rdb, logger)
		payroll.RegisterRoutes(api, payrollHandler, logger)
	}

	return nil
}
