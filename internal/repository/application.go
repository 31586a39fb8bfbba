package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(app).Error, "create application")
}

func (r *applicationRepository) FindByID(ctx context.Context, userID, id string) (models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Application{}, errs.NotFound("application")
	}
	return app, errors.Wrap(err, "find application")
}

func (r *applicationRepository) Update(ctx context.Context, userID, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update application")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("application")
	}
	return nil
}

func (r *applicationRepository) List(ctx context.Context, userID string, status *models.ApplicationStatus) ([]models.Application, error) {
	var apps []models.Application
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Order("applied_date desc").Find(&apps).Error
	return apps, errors.Wrap(err, "list applications")
}
