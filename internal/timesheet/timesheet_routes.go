package timesheet

import (
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	redisClient *redis.Client,
	logger *zap.Logger,
) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.ContextLogger(logger))
	{
		timesheets.GET("",
			middleware.RateLimitByActor(3, 10),
			handler.GetAll,
		)

		timesheets.GET("/:id",
			middleware.RateLimitByActor(3, 10),
			handler.GetByID,
		)

		timesheets.POST("",
			middleware.RateLimitByActor(1, 5),
			middleware.Idempotency(redisClient),
			handler.Create,
		)

		timesheets.PUT("/:id/entries/:day",
			middleware.RateLimitByActor(5, 20),
			handler.UpdateEntry,
		)

		timesheets.POST("/:id/lock",
			middleware.RateLimitByActor(1, 5),
			handler.Lock,
		)

		timesheets.DELETE("/:id",
			middleware.RateLimitByActor(0.5, 2),
			handler.Delete,
		)
	}
}
