package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

type ResumeHandler struct {
	Resumes  services.ResumeService
	Versions services.VersionService
	Logger   *zap.Logger
}

func NewResumeHandler(resumes services.ResumeService, versions services.VersionService, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{Resumes: resumes, Versions: versions, Logger: logger}
}

// Upload is POST /resumes (multipart field "file").
func (h *ResumeHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a resume file is required in field \"file\""})
		return
	}
	// Checked here too so oversized bodies are never opened.
	if fh.Size > services.MaxResumeSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file size must be less than 5MB"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()

	file, err := h.Resumes.Upload(c.Request.Context(), auth.UserID(c), fh.Filename, fh.Size, f)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

func (h *ResumeHandler) List(c *gin.Context) {
	files, err := h.Resumes.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, files)
}

func (h *ResumeHandler) Current(c *gin.Context) {
	file, err := h.Resumes.Current(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, file)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.Resumes.Delete(c.Request.Context(), auth.UserID(c), c.Param("name")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) CreateVersion(c *gin.Context) {
	var req dtos.CreateResumeVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	v, err := h.Versions.Create(c.Request.Context(), auth.UserID(c), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *ResumeHandler) ListVersions(c *gin.Context) {
	versions, err := h.Versions.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// SetDefaultVersion is PUT /resume-versions/:id/default.
func (h *ResumeHandler) SetDefaultVersion(c *gin.Context) {
	if err := h.Versions.SetDefault(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_default": true})
}

func (h *ResumeHandler) DeleteVersion(c *gin.Context) {
	if err := h.Versions.Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
