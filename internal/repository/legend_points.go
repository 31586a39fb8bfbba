package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type legendPointsRepository struct {
	db *gorm.DB
}

func NewLegendPointsRepository(db *gorm.DB) LegendPointsRepository {
	return &legendPointsRepository{db: db}
}

func (r *legendPointsRepository) Top(ctx context.Context, limit int) ([]models.LegendPoints, error) {
	var rows []models.LegendPoints
	err := r.db.WithContext(ctx).
		Order("total_points desc").
		Limit(limit).
		Find(&rows).Error
	return rows, errors.Wrap(err, "query leaderboard")
}

func (r *legendPointsRepository) FindByUser(ctx context.Context, userID string) (models.LegendPoints, error) {
	var row models.LegendPoints
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.LegendPoints{}, errs.NotFound("legend points")
	}
	return row, errors.Wrap(err, "find legend points")
}
