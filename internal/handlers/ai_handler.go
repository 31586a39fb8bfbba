package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/ai"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type AIHandler struct {
	Improvements services.ImprovementService
	Logger       *zap.Logger
}

func NewAIHandler(improvements services.ImprovementService, logger *zap.Logger) *AIHandler {
	return &AIHandler{Improvements: improvements, Logger: logger}
}

func (h *AIHandler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": ai.JobRoles, "default": ai.DefaultRole})
}

// ImproveForRole answers 200 even when generation failed; "generated" tells
// the client whether text is model output.
func (h *AIHandler) ImproveForRole(c *gin.Context) {
	var req dtos.ImproveForRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.Improvements.ImproveForRole(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toImprovementResponse(res))
}

func (h *AIHandler) ImproveForJob(c *gin.Context) {
	var req dtos.ImproveForJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.Improvements.ImproveForJob(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, toImprovementResponse(res))
}

// Export returns the improved text as a downloadable file.
func (h *AIHandler) Export(c *gin.Context) {
	var req dtos.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename(req.Filename)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(req.Content))
}

func toImprovementResponse(res services.Improvement) dtos.ImprovementResponse {
	resp := dtos.ImprovementResponse{Text: res.Text, Generated: res.Generated}
	if res.Version != nil {
		resp.VersionID = res.Version.ID
	}
	return resp
}
