package http

import "github.com/gin-gonic/gin"

// RouterConfig contains all dependencies and configuration needed
// to create the word service router.
type RouterConfig struct {
	// Storage
	Words    WordStore
	Lectures LectureStore
	Users    UserStore

	// AI content
	Generator Generator

	// Authentication. AuthMiddleware guards /api/words and /api/ai when set.
	Authenticator  Authenticator
	AuthMiddleware gin.HandlerFunc

	// Health checks reported by /health
	HealthChecks map[string]HealthCheck

	// Application info
	Version string
}
