package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLoggerMiddleware())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(SecurityHeadersMiddleware())

	health := NewHealthController(cfg.Words, cfg.Database, cfg.DictionaryDir, cfg.Version)
	words := NewWordsController(cfg.Words)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Dictionary endpoints
	router.GET("/word", words.RandomWord)
	router.GET("/meanings", words.Meanings)
	router.GET("/languages", words.Languages)

	return router
}
