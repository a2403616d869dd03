package app

import (
	"os"

	"go-leave-admin/internal/application"
	"go-leave-admin/internal/department"
	"go-leave-admin/internal/employee"
	"go-leave-admin/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and mounts every
// module on the router.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	// The unique indexes created here back up the duplicate pre-checks.
	if err := gormDB.AutoMigrate(
		&department.Department{},
		&employee.Employee{},
		&application.Application{},
	); err != nil {
		return err
	}
	zap.L().Info("database schema migrated")

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// Redis only backs the idempotency middleware; the service runs without it.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	} else {
		zap.L().Warn("REDIS_ADDR not set, idempotency middleware disabled")
	}

	return registerModules(router, db, gormDB, rdb)
}
