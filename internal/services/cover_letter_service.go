package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/resume-legend/internal/ai"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"go.uber.org/zap"
)

type CoverLetterResult struct {
	Text      string
	Generated bool
	Letter    *models.CoverLetter
}

//go:generate mockgen -source=./cover_letter_service.go -package=svcmocks -destination=mocks/cover_letter_service.mock.go CoverLetterService

type CoverLetterService interface {
	// Generate writes a cover letter and stores it. A failed generation stores
	// nothing and returns the fallback text.
	Generate(ctx context.Context, userID string, req *dtos.GenerateCoverLetterRequest) (CoverLetterResult, error)
	List(ctx context.Context, userID string) ([]models.CoverLetter, error)
	Get(ctx context.Context, userID, id string) (models.CoverLetter, error)
}

type coverLetterService struct {
	textGenerator
	repo repository.CoverLetterRepository
	now  func() time.Time
}

func NewCoverLetterService(gen ai.Generator, repo repository.CoverLetterRepository, collector *metrics.Collector, logger *zap.Logger) CoverLetterService {
	return &coverLetterService{
		textGenerator: textGenerator{gen: gen, metrics: collector, logger: logger},
		repo:          repo,
		now:           time.Now,
	}
}

func (s *coverLetterService) Generate(ctx context.Context, userID string, req *dtos.GenerateCoverLetterRequest) (CoverLetterResult, error) {
	if err := validateStruct(req); err != nil {
		return CoverLetterResult{}, err
	}

	prompt := ai.CoverLetterPrompt(req.ResumeText, req.JobTitle, req.CompanyName, req.JobDescription)
	gen := s.generate(ctx, "cover_letter", prompt)
	if !gen.Generated {
		return CoverLetterResult{Text: gen.Text}, nil
	}

	letter := models.CoverLetter{
		ID:             uuid.NewString(),
		CreatedAt:      s.now().UTC(),
		UserID:         userID,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		ResumeID:       req.ResumeName,
		Content:        gen.Text,
	}
	if err := s.repo.Create(ctx, &letter); err != nil {
		return CoverLetterResult{}, backendErr(s.logger, "failed to save cover letter", err, zap.String("user_id", userID))
	}
	s.logger.Info("cover letter generated", zap.String("user_id", userID), zap.String("company", req.CompanyName))
	return CoverLetterResult{Text: gen.Text, Generated: true, Letter: &letter}, nil
}

func (s *coverLetterService) List(ctx context.Context, userID string) ([]models.CoverLetter, error) {
	letters, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, backendErr(s.logger, "failed to fetch cover letters", err, zap.String("user_id", userID))
	}
	return letters, nil
}

func (s *coverLetterService) Get(ctx context.Context, userID, id string) (models.CoverLetter, error) {
	letter, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return models.CoverLetter{}, backendErr(s.logger, "failed to fetch cover letter", err, zap.String("id", id))
	}
	return letter, nil
}
