package handlers

import (
	"phrase-svc/app/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes configures HTTP routes
func RegisterRoutes(router *gin.Engine, phraseHandler *PhraseHandler, healthHandler *HealthHandler, jwtService *services.JWTService) {
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.GET("/frase", phraseHandler.Today)
	router.GET("/frases", phraseHandler.List)

	admin := router.Group("/", RequireAdmin(jwtService))
	{
		admin.POST("/frases", phraseHandler.Add)
		admin.DELETE("/frases/:day/:idx", phraseHandler.Delete)
	}
}
