package main

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"trade-admin.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	userHandler        *handlers.UserHandler
	transactionHandler *handlers.TransactionHandler
	analyticsHandler   *handlers.AnalyticsHandler
	chatHandler        *handlers.ChatHandler
	authMiddleware     gin.HandlerFunc
	idempotency        gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, sqlDB *sql.DB) {
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			dbStatus = "unreachable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": dbStatus,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (login is public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// User management routes (protected)
		users := v1.Group("/users")
		users.Use(d.authMiddleware)
		{
			users.GET("", d.userHandler.List)
			users.POST("", d.userHandler.Create)
			users.POST("/bulk/status", d.userHandler.BulkStatus)
			users.POST("/bulk/verify", d.userHandler.BulkVerify)
			users.GET("/:id", d.userHandler.Get)
			users.PATCH("/:id", d.userHandler.Update)
			users.DELETE("/:id", d.userHandler.Delete)
			users.POST("/:id/suspend", d.userHandler.Suspend)
			users.POST("/:id/activate", d.userHandler.Activate)
			users.POST("/:id/balance", d.idempotency, d.userHandler.AdjustBalance)
		}

		// Transaction review routes (protected)
		transactions := v1.Group("/transactions")
		transactions.Use(d.authMiddleware)
		{
			transactions.GET("", d.transactionHandler.List)
			transactions.GET("/:id", d.transactionHandler.Get)
			transactions.PATCH("/:id", d.transactionHandler.Update)
			transactions.POST("/:id/approve", d.transactionHandler.Approve)
			transactions.POST("/:id/reject", d.transactionHandler.Reject)
		}

		// Analytics routes (protected)
		analytics := v1.Group("/analytics")
		analytics.Use(d.authMiddleware)
		{
			analytics.GET("/stats", d.analyticsHandler.Stats)
			analytics.GET("/countries", d.analyticsHandler.Countries)
			analytics.GET("/registrations", d.analyticsHandler.Registrations)
		}

		// Support chat routes (protected)
		chat := v1.Group("/chat")
		chat.Use(d.authMiddleware)
		{
			chat.GET("/conversations", d.chatHandler.Conversations)
			chat.GET("/conversations/:id", d.chatHandler.Messages)
			chat.POST("/messages", d.chatHandler.Send)
		}
	}
}
