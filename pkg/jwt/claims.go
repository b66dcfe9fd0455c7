package jwt

import (
	"time"

	"github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/golang-jwt/jwt/v4"
	jsoniter "github.com/json-iterator/go"
)

// JwtClaims - represents the jwt claims
type JwtClaims struct {
	jwt.MapClaims
}

// NewJWTClaims - Initializes a new jwt claims
func NewJWTClaims() *JwtClaims {
	return &JwtClaims{MapClaims: jwt.MapClaims{}}
}

// Valid Checks if the JWT Token is valid
func (c *JwtClaims) Valid() error {
	now := time.Now().Unix()

	if !c.MapClaims.VerifyExpiresAt(now, true) {
		return errors.ErrExpiredToken
	}
	// iat is optional for pipeline issued tokens
	if !c.MapClaims.VerifyIssuedAt(now, false) {
		return errors.ErrExpiredToken
	}

	if _, ok := c.MapClaims["jti"].(string); !ok {
		return errors.ErrMissingJTI
	}

	return nil
}

// MarshalJSON marshals the MapClaims struct
func (c *JwtClaims) MarshalJSON() ([]byte, error) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	return json.Marshal(c.MapClaims)
}
