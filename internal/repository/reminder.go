package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(reminder).Error, "create reminder")
}

func (r *reminderRepository) FindByID(ctx context.Context, userID, id string) (models.Reminder, error) {
	var reminder models.Reminder
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reminder{}, errs.NotFound("reminder")
	}
	return reminder, errors.Wrap(err, "find reminder")
}

func (r *reminderRepository) Update(ctx context.Context, userID, id string, fields map[string]any) error {
	// Postgres reports matched rows, so re-writing the same value still counts.
	res := r.db.WithContext(ctx).Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update reminder")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("reminder")
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, userID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Reminder{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete reminder")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("reminder")
	}
	return nil
}

func (r *reminderRepository) List(ctx context.Context, userID string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("reminder_time asc").
		Find(&reminders).Error
	return reminders, errors.Wrap(err, "list reminders")
}
