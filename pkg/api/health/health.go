package health

import (
	"context"
	"net/http"

	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/gin-gonic/gin"
)

// Handler for health API
func Handler(signalCtx context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		select {
		// once shutdown starts the readiness probe fails so the instance is removed from traffic
		case <-signalCtx.Done():
			c.JSON(http.StatusInternalServerError, gin.H{"status": "shutting down", "version": constants.BinaryVersion})
		default:
			c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.BinaryVersion})
		}
	}
}
