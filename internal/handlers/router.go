package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"go.uber.org/zap"
)

// Handlers groups every route handler so they can be injected together.
type Handlers struct {
	Resume      *ResumeHandler
	Application *ApplicationHandler
	Reminder    *ReminderHandler
	AI          *AIHandler
	CoverLetter *CoverLetterHandler
	Leaderboard *LeaderboardHandler
	HRResponse  *HRResponseHandler
}

func NewRouter(cfg config.ServerConfig, h *Handlers, verifier auth.Verifier, collector *metrics.Collector, logger *zap.Logger) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dtos.RegisterValidations(v); err != nil {
			logger.Fatal("failed to register binding validations", zap.Error(err))
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger), collector.Middleware())
	r.MaxMultipartMemory = 8 << 20

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.ExposeHeaders = []string{"Content-Disposition"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	{
		api.GET("/health", HealthCheck)
		api.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	authed := api.Group("")
	authed.Use(auth.Middleware(verifier, logger))
	{
		// Resume Routes
		authed.POST("/resumes", h.Resume.Upload)
		authed.GET("/resumes", h.Resume.List)
		authed.GET("/resumes/current", h.Resume.Current)
		authed.DELETE("/resumes/:name", h.Resume.Delete)

		authed.POST("/resume-versions", h.Resume.CreateVersion)
		authed.GET("/resume-versions", h.Resume.ListVersions)
		authed.PUT("/resume-versions/:id/default", h.Resume.SetDefaultVersion)
		authed.DELETE("/resume-versions/:id", h.Resume.DeleteVersion)

		// Application Routes
		authed.POST("/applications", h.Application.Create)
		authed.GET("/applications", h.Application.List)
		authed.GET("/applications/:id", h.Application.Get)
		authed.PATCH("/applications/:id", h.Application.Update)

		// Reminder Routes
		authed.POST("/reminders", h.Reminder.Create)
		authed.GET("/reminders", h.Reminder.List)
		authed.PATCH("/reminders/:id", h.Reminder.Update)
		authed.DELETE("/reminders/:id", h.Reminder.Delete)
		authed.POST("/reminders/:id/complete", h.Reminder.Complete)

		// AI Routes
		authed.GET("/ai/roles", h.AI.Roles)
		authed.POST("/ai/improve/role", h.AI.ImproveForRole)
		authed.POST("/ai/improve/job", h.AI.ImproveForJob)
		authed.POST("/ai/export", h.AI.Export)

		authed.POST("/cover-letters", h.CoverLetter.Generate)
		authed.GET("/cover-letters", h.CoverLetter.List)
		authed.GET("/cover-letters/:id", h.CoverLetter.Get)

		// Leaderboard Routes
		authed.GET("/leaderboard", h.Leaderboard.Top)
		authed.GET("/legend-points/me", h.Leaderboard.Mine)

		// HR Response Routes
		authed.GET("/hr-responses", h.HRResponse.List)
		authed.POST("/hr-responses/sync", h.HRResponse.Sync)
	}

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("user_id", auth.UserID(c)),
		)
	}
}
