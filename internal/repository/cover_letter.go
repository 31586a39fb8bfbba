package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type coverLetterRepository struct {
	db *gorm.DB
}

func NewCoverLetterRepository(db *gorm.DB) CoverLetterRepository {
	return &coverLetterRepository{db: db}
}

func (r *coverLetterRepository) Create(ctx context.Context, letter *models.CoverLetter) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(letter).Error, "create cover letter")
}

func (r *coverLetterRepository) FindByID(ctx context.Context, userID, id string) (models.CoverLetter, error) {
	var letter models.CoverLetter
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&letter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CoverLetter{}, errs.NotFound("cover letter")
	}
	return letter, errors.Wrap(err, "find cover letter")
}

func (r *coverLetterRepository) List(ctx context.Context, userID string) ([]models.CoverLetter, error) {
	var letters []models.CoverLetter
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&letters).Error
	return letters, errors.Wrap(err, "list cover letters")
}
