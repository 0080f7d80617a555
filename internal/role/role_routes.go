package role

import (
	"eleave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("", handler.GetAll)
		roles.GET("/:id", handler.GetById)
		roles.POST("", middleware.RequireRole(KindHR, KindAdmin), handler.Create)
		roles.PUT("/:id", middleware.RequireRole(KindHR, KindAdmin), handler.Update)
		roles.DELETE("/:id", middleware.RequireRole(KindAdmin), handler.Delete)
	}
}
