package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type mailboxRepository struct {
	db *gorm.DB
}

func NewMailboxRepository(db *gorm.DB) MailboxRepository {
	return &mailboxRepository{db: db}
}

func (r *mailboxRepository) HistoryID(ctx context.Context, userID string) (uint64, error) {
	var state models.MailboxState
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	return state.LastHistoryID, errors.Wrap(err, "load mailbox state")
}

func (r *mailboxRepository) SaveHistoryID(ctx context.Context, userID string, historyID uint64) error {
	state := models.MailboxState{UserID: userID, LastHistoryID: historyID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_history_id", "updated_at"}),
	}).Create(&state).Error
	return errors.Wrap(err, "save mailbox state")
}

func (r *mailboxRepository) IsProcessed(ctx context.Context, messageID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ProcessedEmail{}).
		Where("id = ?", messageID).
		Count(&count).Error
	return count > 0, errors.Wrap(err, "check processed email")
}

func (r *mailboxRepository) SaveResponse(ctx context.Context, resp *models.EmailResponse) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resp).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.ProcessedEmail{ID: resp.MessageID}).Error
	})
	return errors.Wrap(err, "save email response")
}

func (r *mailboxRepository) ListResponses(ctx context.Context, userID string, limit int) ([]models.EmailResponse, error) {
	var rows []models.EmailResponse
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("received_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, errors.Wrap(err, "list email responses")
}
