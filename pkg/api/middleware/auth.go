package middleware

import (
	"fmt"
	"net/http"

	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// CallerDataKey is the gin context key holding the verified *core.CallerData.
const CallerDataKey = "callerData"

// HandleJWTVerification returns a middleware that checks
// if the JWT in the request is valid. The revocation lookup is skipped when redisDB is nil.
func HandleJWTVerification(
	session core.Session,
	redisDB core.RedisDB,
	logger lumber.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerData, err := session.Authorize(c)
		if err != nil {
			logger.Errorf("failed to verify caller token %v", err)
			return
		}
		if redisDB != nil {
			key := fmt.Sprintf("%s%s", core.JwtIDPrefix, callerData.JwtID)

			// if jwtID exists in redis then it is blocklisted
			n, err := redisDB.Client().Exists(c, key).Result()
			if err != nil {
				logger.Errorf("error while finding JWT ID in redis %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errs.GenericErrorMessage)
				return
			}

			// JWT token is blocklisted
			if n == 1 {
				logger.Debugf("Token with ID %s is invalidated", callerData.JwtID)
				c.AbortWithStatusJSON(http.StatusForbidden, errs.ErrInvalidJWTToken)
				return
			}
		}
		c.Set(CallerDataKey, callerData)
		c.Next()
	}
}
