package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"go.uber.org/zap"
)

// respondError answers with the error's HTTP status and its user-facing message.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := errs.From(err)
	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("kind", string(appErr.Kind)),
			zap.Error(appErr.Cause))
	}
	c.JSON(status, gin.H{"error": appErr.Message})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}

// HealthCheck is the unauthenticated liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
