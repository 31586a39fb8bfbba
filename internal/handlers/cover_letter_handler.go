package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type CoverLetterHandler struct {
	CoverLetters services.CoverLetterService
	Logger       *zap.Logger
}

func NewCoverLetterHandler(letters services.CoverLetterService, logger *zap.Logger) *CoverLetterHandler {
	return &CoverLetterHandler{CoverLetters: letters, Logger: logger}
}

func (h *CoverLetterHandler) Generate(c *gin.Context) {
	var req dtos.GenerateCoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.CoverLetters.Generate(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	status := http.StatusOK
	if res.Generated {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"text":         res.Text,
		"generated":    res.Generated,
		"cover_letter": res.Letter,
	})
}

func (h *CoverLetterHandler) List(c *gin.Context) {
	letters, err := h.CoverLetters.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, letters)
}

func (h *CoverLetterHandler) Get(c *gin.Context) {
	letter, err := h.CoverLetters.Get(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, letter)
}
