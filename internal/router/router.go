// Package router wires middleware and handlers into the gin engine.
package router

import (
	"time"

	"gametracker/backend/internal/config"
	"gametracker/backend/internal/handler"
	"gametracker/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the engine serving the API, the docs and the metrics.
func New(cfg *config.Config, h *handler.Handler) *gin.Engine {
	router := gin.New()
	// Unmatched methods fall through to NotFound like any other unknown route.
	router.HandleMethodNotAllowed = false

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.IsDevelopment()),
		middleware.RequestLogger(),
		middleware.Metrics(),
	)
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = origins
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
		corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
		corsConfig.AllowCredentials = true
		corsConfig.MaxAge = 12 * time.Hour
		router.Use(cors.New(corsConfig))
	}
	router.Use(middleware.BodyLimit(config.MaxBodyBytes))

	router.GET("/", handler.Banner)
	router.GET("/ping", handler.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("", handler.Discovery)

		games := api.Group("/juegos")
		{
			games.GET("", h.ListGames)
			games.GET("/stats", h.GetLibraryStats) // Must be before /:id
			games.GET("/:id", h.GetGame)
			games.POST("", h.CreateGame)
			games.PUT("/:id", h.UpdateGame)
			games.PATCH("/:id/completado", h.ToggleGameCompleted)
			games.DELETE("/:id", h.DeleteGame)
		}

		reviews := api.Group("/resenas")
		{
			reviews.GET("", h.ListReviews)
			reviews.GET("/stats", h.GetReviewStats)
			reviews.GET("/juego/:juegoId", h.ListGameReviews)
			reviews.GET("/:id", h.GetReview)
			reviews.POST("", h.CreateReview)
			reviews.PUT("/:id", h.UpdateReview)
			reviews.DELETE("/:id", h.DeleteReview)
		}
	}

	router.NoRoute(handler.NotFound)
	return router
}
