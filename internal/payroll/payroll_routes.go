package payroll

import (
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.GET("/summary",
			middleware.RateLimitByActor(2, 5),
			handler.Summary,
		)
	}
}
