package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type resumeVersionRepository struct {
	db *gorm.DB
}

func NewResumeVersionRepository(db *gorm.DB) ResumeVersionRepository {
	return &resumeVersionRepository{db: db}
}

func (r *resumeVersionRepository) Create(ctx context.Context, version *models.ResumeVersion) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(version).Error, "create resume version")
}

func (r *resumeVersionRepository) SetDefault(ctx context.Context, userID, versionID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.ResumeVersion{}).
			Where("id = ? AND user_id = ?", versionID, userID).
			Count(&count).Error
		if err != nil {
			return errors.Wrap(err, "check resume version")
		}
		if count == 0 {
			return errs.NotFound("resume version")
		}
		err = tx.Model(&models.ResumeVersion{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error
		if err != nil {
			return errors.Wrap(err, "clear default resume version")
		}
		err = tx.Model(&models.ResumeVersion{}).
			Where("id = ? AND user_id = ?", versionID, userID).
			Update("is_default", true).Error
		return errors.Wrap(err, "set default resume version")
	})
}

func (r *resumeVersionRepository) List(ctx context.Context, userID string) ([]models.ResumeVersion, error) {
	var versions []models.ResumeVersion
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&versions).Error
	return versions, errors.Wrap(err, "list resume versions")
}

func (r *resumeVersionRepository) Delete(ctx context.Context, userID, versionID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", versionID, userID).
		Delete(&models.ResumeVersion{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete resume version")
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("resume version")
	}
	return nil
}
