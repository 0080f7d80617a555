package employee

import (
	"eleave/internal/middleware"
	"eleave/internal/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", handler.GetAll)
		employees.GET("/options", handler.GetOptions)
		employees.GET("/:id", handler.GetById)
		employees.PUT("/:id/contact", handler.UpdateContact)
		employees.POST("", middleware.RequireRole(role.KindHR, role.KindAdmin), handler.Create)
		employees.PUT("/:id", middleware.RequireRole(role.KindHR, role.KindAdmin), handler.Update)
		employees.DELETE("/:id", middleware.RequireRole(role.KindAdmin), handler.Delete)
	}
}
