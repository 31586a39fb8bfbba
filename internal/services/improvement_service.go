package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/resume-legend/internal/ai"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// NoCandidateText is returned when the model answers without any text.
	NoCandidateText = "Could not generate improved resume. Please try again."
	// GenerationErrorText replaces any failure of the request or its follow-up writes.
	GenerationErrorText = "An error occurred while improving your resume. Please try again later."
)

// Improvement is the text shown to the user. Generated tells model output
// apart from the fallback messages; Version is set when the text was saved.
type Improvement struct {
	Text      string
	Generated bool
	Version   *models.ResumeVersion
}

//go:generate mockgen -source=./improvement_service.go -package=svcmocks -destination=mocks/improvement_service.mock.go ImprovementService

type ImprovementService interface {
	ImproveForRole(ctx context.Context, req *dtos.ImproveForRoleRequest) (Improvement, error)
	// ImproveForJob tailors the resume to a job description and records the
	// result as a new resume version.
	ImproveForJob(ctx context.Context, userID string, req *dtos.ImproveForJobRequest) (Improvement, error)
}

type improvementService struct {
	textGenerator
	versions repository.ResumeVersionRepository
	now      func() time.Time
}

func NewImprovementService(gen ai.Generator, versions repository.ResumeVersionRepository, collector *metrics.Collector, logger *zap.Logger) ImprovementService {
	return &improvementService{
		textGenerator: textGenerator{gen: gen, metrics: collector, logger: logger},
		versions:      versions,
		now:           time.Now,
	}
}

func (s *improvementService) ImproveForRole(ctx context.Context, req *dtos.ImproveForRoleRequest) (Improvement, error) {
	if err := validateResumeText(req.ResumeText); err != nil {
		return Improvement{}, err
	}
	return s.generate(ctx, "role", ai.RolePrompt(req.ResumeText, req.Role)), nil
}

func (s *improvementService) ImproveForJob(ctx context.Context, userID string, req *dtos.ImproveForJobRequest) (Improvement, error) {
	if err := validateResumeText(req.ResumeText); err != nil {
		return Improvement{}, err
	}
	if err := validateStruct(req); err != nil {
		return Improvement{}, err
	}

	res := s.generate(ctx, "job", ai.JobPrompt(req.ResumeText, req.JobDescription))
	if !res.Generated {
		return res, nil
	}

	resumeID := req.Filename
	if req.ResumeID != nil && *req.ResumeID != "" {
		resumeID = *req.ResumeID
	}
	jd := req.JobDescription
	version := models.ResumeVersion{
		ID:               uuid.NewString(),
		UserID:           userID,
		ResumeID:         resumeID,
		OriginalFilename: req.Filename,
		JobDescription:   &jd,
		TweakedText:      res.Text,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.versions.Create(ctx, &version); err != nil {
		s.logger.Error("save tailored resume failed", zap.String("user_id", userID), zap.Error(err))
		return Improvement{Text: GenerationErrorText}, nil
	}
	res.Version = &version
	return res, nil
}

type textGenerator struct {
	gen     ai.Generator
	metrics *metrics.Collector
	logger  *zap.Logger
}

// generate never fails: errors collapse into the fixed user-facing texts.
func (s textGenerator) generate(ctx context.Context, kind, prompt string) Improvement {
	text, err := s.gen.Generate(ctx, prompt)
	switch {
	case err == nil:
		s.metrics.RecordGeneration(kind, metrics.OutcomeGenerated)
		return Improvement{Text: text, Generated: true}
	case errors.Is(err, ai.ErrNoCandidates):
		s.metrics.RecordGeneration(kind, metrics.OutcomeEmpty)
		return Improvement{Text: NoCandidateText}
	default:
		s.metrics.RecordGeneration(kind, metrics.OutcomeError)
		s.logger.Error("error improving resume", zap.String("kind", kind), zap.Error(err))
		return Improvement{Text: GenerationErrorText}
	}
}

func validateResumeText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.Validation("resume_text is required")
	}
	return nil
}
