package department

import (
	"eleave/internal/middleware"
	"eleave/internal/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetById)
		departments.POST("", middleware.RequireRole(role.KindHR, role.KindAdmin), handler.Create)
		departments.PUT("/:id", middleware.RequireRole(role.KindHR, role.KindAdmin), handler.Update)
		departments.DELETE("/:id", middleware.RequireRole(role.KindAdmin), handler.Delete)
	}
}
