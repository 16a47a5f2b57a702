package employee

import (
	"go-timesheet/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByActor(3, 10),
			handler.GetAll,
		)

		// lighter query, cached
		employees.GET("/options",
			middleware.RateLimitByActor(5, 20),
			handler.GetOptions,
		)

		employees.GET("/:id",
			middleware.RateLimitByActor(3, 10),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByActor(1, 5),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByActor(1, 5),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByActor(0.5, 2),
			handler.Delete,
		)
	}
}
