package app

import (
	"database/sql"

	"eleave/internal/department"
	"eleave/internal/employee"
	"eleave/internal/messaging/kafka"
	"eleave/internal/middleware"
	"eleave/internal/position"
	"eleave/internal/report"
	"eleave/internal/request"
	"eleave/internal/role"
	"eleave/internal/security"
	"eleave/internal/shared/counter"
	"eleave/internal/shared/siteconfig"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfgStore *siteconfig.Store,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	securityRepo := security.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb)
	positionService := position.NewService(db, positionRepo)
	reportService := report.NewService(reportRepo)
	requestService := request.NewServiceWithOutbox(db, requestRepo, outboxRepo)
	roleService := role.NewService(db, roleRepo)
	securityService := security.NewService(db, securityRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	positionHandler := position.NewHandler(positionService)
	reportHandler := report.NewHandler(reportService)
	requestHandler := request.NewHandler(requestService)
	roleHandler := role.NewHandler(roleService)
	securityHandler := security.NewHandler(securityService)
	siteHandler := siteconfig.NewHandler(cfgStore)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		position.RegisterRoutes(api, positionHandler)
		report.RegisterRoutes(api, reportHandler)
		request.RegisterRoutes(api, requestHandler, rdb)
		role.RegisterRoutes(api, roleHandler)
		security.RegisterRoutes(api, securityHandler)

		api.GET("/site-config", siteHandler.Get)
		api.PUT("/site-config",
			middleware.AuthMiddleware(),
			middleware.RequireRole(role.KindAdmin),
			siteHandler.Update,
		)
		api.POST("/site-config/reload",
			middleware.AuthMiddleware(),
			middleware.RequireRole(role.KindAdmin),
			siteHandler.Reload,
		)
	}

	return nil
}
