package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrlokans/lexicard/internal/entities"
)

// NewRouter creates the word service router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	mountStatus(router, cfg.Version, cfg.HealthChecks)

	authController := NewAuthController(cfg.Users, cfg.Authenticator)
	wordsController := NewWordsController(cfg.Words)
	aiController := NewAIController(cfg.Words, cfg.Generator)
	lecturesController := NewLecturesController(cfg.Lectures)

	api := router.Group("/api")
	api.POST("/auth/login", authController.Login)
	api.GET("/lectures", lecturesController.ListLectures)

	guarded := api.Group("")
	if cfg.AuthMiddleware != nil {
		guarded.Use(cfg.AuthMiddleware)
	}

	words := guarded.Group("/words")
	{
		words.GET("", wordsController.ListWords)
		words.GET("/word/:key", wordsController.GetWordByKey)
		words.GET("/get-cards-anki", wordsController.Deck)
		words.PUT("/:id/level", wordsController.UpdateLevel)
		words.PUT("/:id/increment-seen", wordsController.IncrementSeen)
	}

	ai := guarded.Group("/ai")
	{
		ai.POST("/generate-wordJson", aiController.GenerateWord)
		ai.PUT("/generate-word-examples/:id", aiController.Regenerate(entities.FieldExamples))
		ai.PUT("/generate-code-switching/:id", aiController.Regenerate(entities.FieldCodeSwitching))
		ai.PUT("/generate-code-synonyms/:id", aiController.Regenerate(entities.FieldSynonyms))
		ai.PUT("/generate-word-wordtypes/:id", aiController.Regenerate(entities.FieldWordTypes))
		ai.POST("/generate-image/:id", aiController.RegenerateImage)
	}

	return router
}

// NewStatusRouter serves only /health and /metrics.
func NewStatusRouter(version string, checks map[string]HealthCheck) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	mountStatus(router, version, checks)
	return router
}

func mountStatus(router *gin.Engine, version string, checks map[string]HealthCheck) {
	health := NewHealthController(version, checks)
	router.GET("/health", health.Status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
