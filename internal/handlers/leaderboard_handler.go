package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type LeaderboardHandler struct {
	Leaderboard services.LeaderboardService
	Logger      *zap.Logger
}

func NewLeaderboardHandler(leaderboard services.LeaderboardService, logger *zap.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{Leaderboard: leaderboard, Logger: logger}
}

func (h *LeaderboardHandler) Top(c *gin.Context) {
	entries, err := h.Leaderboard.Top(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *LeaderboardHandler) Mine(c *gin.Context) {
	pts, err := h.Leaderboard.Mine(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_points": pts})
}
