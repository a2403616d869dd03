package app

import (
	"database/sql"
	"net/http"

	"go-leave-admin/internal/application"
	"go-leave-admin/internal/department"
	"go-leave-admin/internal/employee"
	"go-leave-admin/internal/middleware"
	"go-leave-admin/internal/shared/apperror"
	"go-leave-admin/internal/shared/response"

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
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo)
	applicationService := application.NewService(db, applicationRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	applicationHandler := application.NewHandler(applicationService)

	router.GET("/health", healthHandler(db))
	router.NoRoute(notFoundHandler())

	// --- Routes Registration ---
	api := router.Group("")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(rate.Limit(50), 100))
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	{
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		application.RegisterRoutes(api, applicationHandler)
	}

	return nil
}

// healthHandler reports liveness; the database ping surfaces as a 503 so load
// balancers stop routing to an instance whose pool has gone away.
func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			httpErr := apperror.ToHTTP(apperror.Wrap(
				err,
				apperror.CodeServiceUnavailable,
				"Database unavailable",
				http.StatusServiceUnavailable,
			))
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func notFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
	}
}
