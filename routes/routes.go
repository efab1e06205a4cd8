package routes

import (
	"net/http"

	"phrasebingo/handlers"
	"phrasebingo/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	categoryHandler *handlers.CategoryHandler,
	roomHandler *handlers.RoomHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			// User profile
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Phrase category routes
			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetUserCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.GET("/:id", categoryHandler.GetCategoryByID)
				categories.POST("/:id/phrases", categoryHandler.AddPhrases)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
				categories.DELETE("/:id/phrases/:phraseId", categoryHandler.DeletePhrase)
			}

			// Room creation needs a signed-in host
			protected.POST("/rooms", roomHandler.CreateRoom)
		}

		// Public room routes; clients poll GET for state changes
		rooms := api.Group("/rooms")
		{
			rooms.GET("/:code", roomHandler.GetRoom)
			rooms.POST("/:code/join", roomHandler.JoinRoom)
			rooms.POST("/:code/mark", roomHandler.MarkCell)
			rooms.POST("/:code/stop", roomHandler.StopRoom)
		}

		// Leaderboard
		leaderboard := api.Group("/leaderboard")
		{
			leaderboard.GET("", leaderboardHandler.Top)
			leaderboard.POST("", leaderboardHandler.Submit)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
