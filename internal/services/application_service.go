package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"go.uber.org/zap"
)

//go:generate mockgen -source=./application_service.go -package=svcmocks -destination=mocks/application_service.mock.go ApplicationService

type ApplicationService interface {
	Create(ctx context.Context, userID string, req *dtos.CreateApplicationRequest) (models.Application, error)
	Get(ctx context.Context, userID, id string) (models.Application, error)
	// Update overwrites the fields present in req. Any status may follow any other.
	Update(ctx context.Context, userID, id string, req *dtos.UpdateApplicationRequest) (models.Application, error)
	// List returns the user's applications, newest applied_date first. An empty
	// status means all of them.
	List(ctx context.Context, userID, status string) ([]models.Application, error)
}

type applicationService struct {
	repo   repository.ApplicationRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewApplicationService(repo repository.ApplicationRepository, logger *zap.Logger) ApplicationService {
	return &applicationService{repo: repo, logger: logger, now: time.Now}
}

func (s *applicationService) Create(ctx context.Context, userID string, req *dtos.CreateApplicationRequest) (models.Application, error) {
	if err := validateStruct(req); err != nil {
		return models.Application{}, err
	}

	now := s.now().UTC()
	applied := truncateDay(now)
	if req.AppliedDate != "" {
		applied, _ = time.Parse(dtos.DateLayout, req.AppliedDate)
	}
	status := models.StatusApplied
	if req.Status != "" {
		status = models.ApplicationStatus(req.Status)
	}

	app := models.Application{
		ID:            uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
		UserID:        userID,
		JobTitle:      req.JobTitle,
		Company:       req.Company,
		AppliedDate:   applied,
		Status:        status,
		Notes:         nonEmpty(req.Notes),
		ResumeID:      nonEmpty(req.ResumeID),
		CoverLetterID: nonEmpty(req.CoverLetterID),
		FollowUpDate:  parseDate(req.FollowUpDate),
	}
	if err := s.repo.Create(ctx, &app); err != nil {
		return models.Application{}, backendErr(s.logger, "failed to create application", err, zap.String("user_id", userID))
	}
	s.logger.Info("application created", zap.String("user_id", userID), zap.String("id", app.ID), zap.String("company", app.Company))
	return app, nil
}

func (s *applicationService) Get(ctx context.Context, userID, id string) (models.Application, error) {
	app, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return models.Application{}, backendErr(s.logger, "failed to fetch application", err, zap.String("id", id))
	}
	return app, nil
}

func (s *applicationService) Update(ctx context.Context, userID, id string, req *dtos.UpdateApplicationRequest) (models.Application, error) {
	if err := validateStruct(req); err != nil {
		return models.Application{}, err
	}
	fields, err := applicationFields(req)
	if err != nil {
		return models.Application{}, err
	}
	if len(fields) == 0 {
		return models.Application{}, errs.Validation("no fields to update")
	}
	fields["updated_at"] = s.now().UTC()

	if err := s.repo.Update(ctx, userID, id, fields); err != nil {
		return models.Application{}, backendErr(s.logger, "failed to update application", err, zap.String("id", id))
	}
	return s.Get(ctx, userID, id)
}

func (s *applicationService) List(ctx context.Context, userID, status string) ([]models.Application, error) {
	q := dtos.ListApplicationsQuery{Status: status}
	if err := validateStruct(&q); err != nil {
		return nil, err
	}
	var filter *models.ApplicationStatus
	if status != "" {
		st := models.ApplicationStatus(status)
		filter = &st
	}
	apps, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, backendErr(s.logger, "failed to fetch applications", err, zap.String("user_id", userID))
	}
	return apps, nil
}

// applicationFields maps the present fields of req to column updates. Blank
// optional strings clear the column.
func applicationFields(req *dtos.UpdateApplicationRequest) (map[string]any, error) {
	fields := map[string]any{}
	if req.JobTitle != nil {
		fields["job_title"] = *req.JobTitle
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.AppliedDate != nil {
		applied := parseDate(req.AppliedDate)
		if applied == nil {
			return nil, errs.Validation("applied_date cannot be cleared")
		}
		fields["applied_date"] = *applied
	}
	if req.Status != nil {
		fields["status"] = models.ApplicationStatus(*req.Status)
	}
	if req.Notes != nil {
		fields["notes"] = nonEmpty(req.Notes)
	}
	if req.ResumeID != nil {
		fields["resume_id"] = nonEmpty(req.ResumeID)
	}
	if req.CoverLetterID != nil {
		fields["cover_letter_id"] = nonEmpty(req.CoverLetterID)
	}
	if req.FollowUpDate != nil {
		fields["follow_up_date"] = parseDate(req.FollowUpDate)
	}
	return fields, nil
}

// parseDate expects a value already checked by the datetime or date_or_empty tag.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dtos.DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
