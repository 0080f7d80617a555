package position

import (
	"eleave/internal/middleware"
	"eleave/internal/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	positions := r.Group("/positions")
	positions.Use(middleware.AuthMiddleware())
	{
		positions.GET("", handler.GetAll)
		positions.GET("/:id", handler.GetById)
		positions.POST("", middleware.RequireRole(role.KindHR, role.KindAdmin), handler.Create)
		positions.PUT("/:id", middleware.RequireRole(role.KindHR, role.KindAdmin), handler.Update)
		positions.DELETE("/:id", middleware.RequireRole(role.KindAdmin), handler.Delete)
	}
}
