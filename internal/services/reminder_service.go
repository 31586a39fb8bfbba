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

//go:generate mockgen -source=./reminder_service.go -package=svcmocks -destination=mocks/reminder_service.mock.go ReminderService

type ReminderService interface {
	Create(ctx context.Context, userID string, req *dtos.CreateReminderRequest) (models.Reminder, error)
	Update(ctx context.Context, userID, id string, req *dtos.UpdateReminderRequest) (models.Reminder, error)
	Delete(ctx context.Context, userID, id string) error
	// MarkCompleted is idempotent. A completed reminder is never reopened.
	MarkCompleted(ctx context.Context, userID, id string) (models.Reminder, error)
	// List returns the user's reminders soonest first.
	List(ctx context.Context, userID string) ([]models.Reminder, error)
}

type reminderService struct {
	repo   repository.ReminderRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewReminderService(repo repository.ReminderRepository, logger *zap.Logger) ReminderService {
	return &reminderService{repo: repo, logger: logger, now: time.Now}
}

func (s *reminderService) Create(ctx context.Context, userID string, req *dtos.CreateReminderRequest) (models.Reminder, error) {
	if err := validateStruct(req); err != nil {
		return models.Reminder{}, err
	}
	if req.ReminderTime.IsZero() {
		return models.Reminder{}, errs.Validation("reminder_time is required")
	}

	reminder := models.Reminder{
		ID:            uuid.NewString(),
		CreatedAt:     s.now().UTC(),
		UserID:        userID,
		Title:         req.Title,
		ReminderTime:  req.ReminderTime.UTC(),
		Status:        models.ReminderPending,
		Note:          nonEmpty(req.Note),
		ApplicationID: nonEmpty(req.ApplicationID),
	}
	if err := s.repo.Create(ctx, &reminder); err != nil {
		return models.Reminder{}, backendErr(s.logger, "failed to create reminder", err, zap.String("user_id", userID))
	}
	return reminder, nil
}

func (s *reminderService) Update(ctx context.Context, userID, id string, req *dtos.UpdateReminderRequest) (models.Reminder, error) {
	if err := validateStruct(req); err != nil {
		return models.Reminder{}, err
	}
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.ReminderTime != nil {
		if req.ReminderTime.IsZero() {
			return models.Reminder{}, errs.Validation("reminder_time cannot be cleared")
		}
		fields["reminder_time"] = req.ReminderTime.UTC()
	}
	if req.Note != nil {
		fields["note"] = nonEmpty(req.Note)
	}
	if len(fields) == 0 {
		return models.Reminder{}, errs.Validation("no fields to update")
	}

	if err := s.repo.Update(ctx, userID, id, fields); err != nil {
		return models.Reminder{}, backendErr(s.logger, "failed to update reminder", err, zap.String("id", id))
	}
	return s.find(ctx, userID, id)
}

func (s *reminderService) Delete(ctx context.Context, userID, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return backendErr(s.logger, "failed to delete reminder", err, zap.String("id", id))
	}
	return nil
}

func (s *reminderService) MarkCompleted(ctx context.Context, userID, id string) (models.Reminder, error) {
	err := s.repo.Update(ctx, userID, id, map[string]any{"status": models.ReminderCompleted})
	if err != nil {
		return models.Reminder{}, backendErr(s.logger, "failed to complete reminder", err, zap.String("id", id))
	}
	return s.find(ctx, userID, id)
}

func (s *reminderService) List(ctx context.Context, userID string) ([]models.Reminder, error) {
	reminders, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, backendErr(s.logger, "failed to fetch reminders", err, zap.String("user_id", userID))
	}
	return reminders, nil
}

func (s *reminderService) find(ctx context.Context, userID, id string) (models.Reminder, error) {
	reminder, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return models.Reminder{}, backendErr(s.logger, "failed to fetch reminder", err, zap.String("id", id))
	}
	return reminder, nil
}
