package core

import "github.com/gin-gonic/gin"

// Session verifies the callers of the HTTP surface.
type Session interface {
	// Authorize parses and validates the bearer JWT of the request.
	Authorize(c *gin.Context) (*CallerData, error)
}

// CallerData represents the claims carried by the caller token.
type CallerData struct {
	Expiry  int64  `json:"exp"`
	JwtID   string `json:"jti"`
	Subject string `json:"sub"`
}
