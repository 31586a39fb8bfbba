package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type ReminderHandler struct {
	Reminders services.ReminderService
	Logger    *zap.Logger
}

func NewReminderHandler(reminders services.ReminderService, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{Reminders: reminders, Logger: logger}
}

func (h *ReminderHandler) Create(c *gin.Context) {
	var req dtos.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.Reminders.Create(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ReminderHandler) List(c *gin.Context) {
	reminders, err := h.Reminders.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (h *ReminderHandler) Update(c *gin.Context) {
	var req dtos.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	r, err := h.Reminders.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReminderHandler) Delete(c *gin.Context) {
	if err := h.Reminders.Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete is POST /reminders/:id/complete. Completing twice is fine.
func (h *ReminderHandler) Complete(c *gin.Context) {
	r, err := h.Reminders.MarkCompleted(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
