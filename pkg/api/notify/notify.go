package notify

import (
	"net/http"

	"github.com/LambdaTest/ghnotify/pkg/buildcontext"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// Handle publishes the commit status described by the request body.
func Handle(notifier core.StatusNotifier, logger lumber.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg := new(core.NotifyMessage)
		if err := c.ShouldBindJSON(msg); err != nil {
			c.JSON(http.StatusBadRequest, errs.ValidationErr(err))
			return
		}
		req, err := msg.Request()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		var bc core.BuildContext
		if len(msg.BuildContext) > 0 {
			if bc, err = buildcontext.Parse(msg.BuildContext); err != nil {
				logger.Errorf("failed to parse build context, error: %v", err)
				c.JSON(http.StatusBadRequest, errs.InvalidInReqErr("buildContext"))
				return
			}
		}

		result, err := notifier.Notify(c.Request.Context(), req, bc)
		if err != nil {
			logger.Errorf("failed to notify commit status for repo %s, error: %v", req.Repo, err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
