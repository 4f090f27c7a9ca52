package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mealweek/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.POST("", handler.CreateRecipe)
			recipes.GET("", handler.ListRecipes)
			recipes.GET("/:id", handler.GetRecipe)
			recipes.DELETE("/:id", handler.DeleteRecipe)
		}

		plan := v1.Group("/plan")
		{
			plan.POST("/:week/entries", handler.AssignRecipe)
			plan.GET("/:week", handler.GetWeekPlan)
			plan.DELETE("/entries/:id", handler.RemovePlanEntry)
		}

		list := v1.Group("/shopping-list")
		{
			list.POST("/:week/generate", handler.GenerateShoppingList)
			list.GET("/:week", handler.GetShoppingList)
			list.POST("/:week/items", handler.AddManualItem)
			list.PATCH("/items/:id", handler.UpdateItem)
			list.DELETE("/items/:id", handler.RemoveItem)
		}
	}

	return router
}
