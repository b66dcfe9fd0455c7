package descriptor

import (
	"net/http"

	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-gonic/gin"
)

const (
	credentialsIDKey = "credentialsId"
	repoKey          = "repo"
	shaKey           = "sha"
	gitAPIURLKey     = "gitApiUrl"
	scopeKey         = "scope"
)

// HandleTestConnection validates the credentials against the API.
func HandleTestConnection(notifier core.StatusNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notifier.TestConnection(c.Request.Context(),
			c.Query(credentialsIDKey), c.Query(gitAPIURLKey), c.Query(scopeKey)))
	}
}

// HandleCheckRepo validates that the repository is reachable.
func HandleCheckRepo(notifier core.StatusNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notifier.CheckRepo(c.Request.Context(),
			c.Query(credentialsIDKey), c.Query(repoKey), c.Query(gitAPIURLKey), c.Query(scopeKey)))
	}
}

// HandleCheckSHA validates that the commit exists.
func HandleCheckSHA(notifier core.StatusNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notifier.CheckSHA(c.Request.Context(),
			c.Query(credentialsIDKey), c.Query(repoKey), c.Query(shaKey), c.Query(gitAPIURLKey), c.Query(scopeKey)))
	}
}

// HandleStatusItems lists the commit states.
func HandleStatusItems(notifier core.StatusNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, notifier.StatusItems())
	}
}

// HandleCredentialsItems lists the credentials usable in the requested scope.
func HandleCredentialsItems(notifier core.StatusNotifier, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := notifier.CredentialsItems(c.Request.Context(), c.Query(scopeKey))
		if err != nil {
			logger.Errorf("failed to list credentials, error: %v", err)
			c.JSON(http.StatusInternalServerError, errs.GenericErrorMessage)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
