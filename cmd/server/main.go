package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mealweek/backend/config"
	httpDelivery "github.com/mealweek/backend/internal/delivery/http"
	"github.com/mealweek/backend/internal/infrastructure/cache"
	"github.com/mealweek/backend/internal/infrastructure/sqlite"
	"github.com/mealweek/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting MealWeek Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Database: %s", cfg.Database.Path)

	// Initialize infrastructure dependencies
	store, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	listCache := cache.NewMemoryCache()
	log.Printf("List cache TTL: %s", cfg.Cache.TTL)

	// Initialize usecase layer
	planService := usecase.NewMealPlanService(store.Recipes(), store.Plans())
	listService := usecase.NewShoppingListService(
		store.Recipes(),
		store.Plans(),
		store.Lists(),
		listCache,
		usecase.ShoppingListServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: cfg.Engine.DebugLogging,
		},
	)

	if cfg.Engine.DebugLogging {
		log.Printf("Engine debug logging enabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(planService, listService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
