package report

import (
	"eleave/internal/middleware"
	"eleave/internal/role"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	reports.Use(middleware.RequireRole(role.KindHR, role.KindAdmin))
	{
		reports.GET("/in-out", handler.InOutHistory)
		reports.GET("/in-out/export", handler.ExportInOutHistory)
		reports.GET("/requests/summary", handler.RequestSummary)
	}
}
