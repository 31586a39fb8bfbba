package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"go.uber.org/zap"
)

//go:generate mockgen -source=./version_service.go -package=svcmocks -destination=mocks/version_service.mock.go VersionService

type VersionService interface {
	Create(ctx context.Context, userID string, req *dtos.CreateResumeVersionRequest) (models.ResumeVersion, error)
	// SetDefault makes versionID the user's only default version.
	SetDefault(ctx context.Context, userID, versionID string) error
	List(ctx context.Context, userID string) ([]models.ResumeVersion, error)
	Delete(ctx context.Context, userID, versionID string) error
}

type versionService struct {
	repo   repository.ResumeVersionRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewVersionService(repo repository.ResumeVersionRepository, logger *zap.Logger) VersionService {
	return &versionService{repo: repo, logger: logger, now: time.Now}
}

func (s *versionService) Create(ctx context.Context, userID string, req *dtos.CreateResumeVersionRequest) (models.ResumeVersion, error) {
	if err := validateStruct(req); err != nil {
		return models.ResumeVersion{}, err
	}
	version := models.ResumeVersion{
		ID:               uuid.NewString(),
		UserID:           userID,
		ResumeID:         req.ResumeID,
		OriginalFilename: req.OriginalFilename,
		JobDescription:   nonEmpty(req.JobDescription),
		TweakedText:      req.TweakedText,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &version); err != nil {
		return models.ResumeVersion{}, backendErr(s.logger, "failed to save resume version", err, zap.String("user_id", userID))
	}
	return version, nil
}

func (s *versionService) SetDefault(ctx context.Context, userID, versionID string) error {
	if err := s.repo.SetDefault(ctx, userID, versionID); err != nil {
		return backendErr(s.logger, "failed to set default resume version", err, zap.String("user_id", userID))
	}
	return nil
}

func (s *versionService) List(ctx context.Context, userID string) ([]models.ResumeVersion, error) {
	versions, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, backendErr(s.logger, "failed to fetch resume versions", err, zap.String("user_id", userID))
	}
	return versions, nil
}

func (s *versionService) Delete(ctx context.Context, userID, versionID string) error {
	if err := s.repo.Delete(ctx, userID, versionID); err != nil {
		return backendErr(s.logger, "failed to delete resume version", err, zap.String("user_id", userID))
	}
	return nil
}

// nonEmpty maps a blank optional string to NULL.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
