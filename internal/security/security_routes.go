package security

import (
	"eleave/internal/middleware"
	"eleave/internal/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	sec := r.Group("/security")
	sec.Use(middleware.AuthMiddleware())
	sec.Use(middleware.RequireRole(role.KindSecurity, role.KindAdmin))
	{
		sec.GET("/ready-to-leave", handler.ReadyToLeave)
		sec.GET("/out", handler.CurrentlyOut)
		sec.POST("/out/:requestId", handler.RecordOut)
		sec.POST("/in/:id", handler.RecordIn)

		sec.GET("/visitors", handler.VisitorsInside)
		sec.POST("/visitors", handler.VisitorIn)
		sec.POST("/visitors/:id/out", handler.VisitorOut)
	}
}
