package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type HRResponseHandler struct {
	Responses services.HRResponseService
	Logger    *zap.Logger
}

func NewHRResponseHandler(responses services.HRResponseService, logger *zap.Logger) *HRResponseHandler {
	return &HRResponseHandler{Responses: responses, Logger: logger}
}

// List is GET /hr-responses?limit=20.
func (h *HRResponseHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = n
	}
	rows, err := h.Responses.List(c.Request.Context(), auth.UserID(c), limit)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *HRResponseHandler) Sync(c *gin.Context) {
	n, err := h.Responses.Sync(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": n})
}
