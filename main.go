package main

import (
	"log"

	"phrasebingo/config"
	"phrasebingo/handlers"
	"phrasebingo/middleware"
	"phrasebingo/models"
	"phrasebingo/routes"
	"phrasebingo/services"
	"phrasebingo/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Phrase{},
		&models.LeaderboardEntry{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis and the shared session store
	redisClient := config.InitRedis(cfg)
	sessionStore := store.NewRedisStore(redisClient)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	phraseService := services.NewPhraseService(db)
	sessionService := services.NewSessionService(sessionStore)
	leaderboardService := services.NewLeaderboardService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(phraseService)
	roomHandler := handlers.NewRoomHandler(sessionService, phraseService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, categoryHandler, roomHandler, leaderboardHandler, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
