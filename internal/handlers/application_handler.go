package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	Applications services.ApplicationService
	Logger       *zap.Logger
}

func NewApplicationHandler(apps services.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps, Logger: logger}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	app, err := h.Applications.Create(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.Applications.Get(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	var req dtos.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	app, err := h.Applications.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// List is GET /applications?status=Interview.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.Applications.List(c.Request.Context(), auth.UserID(c), c.Query("status"))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
