package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"trade-admin.backend/internal/config"
	"trade-admin.backend/internal/infrastructure/repositories"
	"trade-admin.backend/internal/interfaces/http/handlers"
	"trade-admin.backend/internal/interfaces/http/middleware"
	"trade-admin.backend/internal/usecases"
	"trade-admin.backend/pkg/jwt"
	"trade-admin.backend/pkg/logger"
	"trade-admin.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional: the stats cache and idempotency guard degrade to
	// pass-through when it is absent.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, caching disabled", zap.Error(err))
		redis.SetClient(nil)
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not reachable: %v (endpoints will return errors)", err)
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	userRepo := repositories.NewUserRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	uow := repositories.NewUnitOfWork(db)

	userUsecase := usecases.NewUserUsecase(userRepo, txRepo, uow)
	txUsecase := usecases.NewTransactionUsecase(txRepo)
	analyticsUsecase := usecases.NewAnalyticsUsecase(userRepo, cfg.Cache.StatsTTL)
	chatUsecase := usecases.NewChatUsecase(chatRepo, userRepo)
	authUsecase := usecases.NewAuthUsecase(adminRepo, jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	applyCORSMiddleware(r)
	registerHealthRoute(r, sqlDB)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        handlers.NewAuthHandler(authUsecase),
		userHandler:        handlers.NewUserHandler(userUsecase),
		transactionHandler: handlers.NewTransactionHandler(txUsecase),
		analyticsHandler:   handlers.NewAnalyticsHandler(analyticsUsecase),
		chatHandler:        handlers.NewChatHandler(chatUsecase),
		authMiddleware:     middleware.Auth(jwtService),
		idempotency:        middleware.Idempotency(cfg.Cache.IdempotencyTTL),
	})

	log.Printf("starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
