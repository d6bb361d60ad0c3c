package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fundingtrail/internal/handler"
	"fundingtrail/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ProgramHandler  *handler.ProgramHandler
	UserHandler     *handler.UserHandler
	CheckoutHandler *handler.CheckoutHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
	AllowedOrigins  []string
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Funding program catalog.
	programs := router.Group("/programs")
	{
		programs.GET("", deps.ProgramHandler.List)
		programs.GET("/:id", deps.ProgramHandler.Get)
		programs.POST("", deps.ProgramHandler.Create)
		programs.PUT("/:id", deps.ProgramHandler.Update)
		programs.DELETE("/:id", deps.ProgramHandler.Delete)
	}

	// Users.
	users := router.Group("/users")
	{
		users.POST("", deps.UserHandler.Register)
		users.GET("", deps.UserHandler.GetAll)
		users.GET("/:email", deps.UserHandler.GetByEmail)
	}

	// Payment checkout.
	router.POST("/payment", deps.CheckoutHandler.ProcessCheckout)
	router.GET("/payments/:id", deps.CheckoutHandler.GetCheckout)

	return router
}
