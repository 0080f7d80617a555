package request

import (
	"eleave/internal/middleware"
	"eleave/internal/role"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("",
			middleware.RateLimitByEmployee(rate.Limit(1), 5),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		requests.GET("/mine", handler.Mine)
		requests.GET("/inbox", middleware.RequireRole(role.ApproverKinds()...), handler.Inbox)
		requests.GET("/:id", handler.GetById)
		requests.GET("/:id/history", handler.History)
		requests.POST("/:id/provide-info", handler.ProvideInfo)
		requests.POST("/:id/cancel", handler.Cancel)
		requests.POST("/decisions/:historyId", middleware.RequireRole(role.ApproverKinds()...), handler.Decide)
	}
}
