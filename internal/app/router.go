// internal/app/router.go
package app

import (
	clientHandler "retailcrm-proxy/internal/handlers/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceVersion = "1.0.0"

type Handlers struct {
	ClientHandler *clientHandler.ClientHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	// ==================== Service Banner ====================
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "RetailCRM Integration API",
			"version": serviceVersion,
		})
	})

	// ==================== Health Check ====================
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "pong"})
	})

	api := r.Group("/api/v1")

	// ==================== Clients ====================
	clients := api.Group("/clients")
	{
		clients.GET("/", h.ClientHandler.ListClients)
		clients.POST("/", h.ClientHandler.CreateClient)
	}
}
