// Package repository persists the service's rows in Postgres.
package repository

import (
	"context"

	"github.com/justsurfingit/resume-legend/internal/models"
)

//go:generate mockgen -source=./types.go -package=mocks -destination=mocks/repository.mock.go

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, userID, id string) (models.Application, error)
	// Update overwrites the given columns. It returns a NotFound error when no
	// row of the user has that id.
	Update(ctx context.Context, userID, id string, fields map[string]any) error
	// List returns the user's applications newest applied_date first, optionally
	// restricted to one status.
	List(ctx context.Context, userID string, status *models.ApplicationStatus) ([]models.Application, error)
}

type ResumeVersionRepository interface {
	Create(ctx context.Context, version *models.ResumeVersion) error
	// SetDefault clears is_default for all of the user's versions and sets it on
	// versionID inside one transaction.
	SetDefault(ctx context.Context, userID, versionID string) error
	List(ctx context.Context, userID string) ([]models.ResumeVersion, error)
	Delete(ctx context.Context, userID, versionID string) error
}

type CoverLetterRepository interface {
	Create(ctx context.Context, letter *models.CoverLetter) error
	FindByID(ctx context.Context, userID, id string) (models.CoverLetter, error)
	List(ctx context.Context, userID string) ([]models.CoverLetter, error)
}

type ReminderRepository interface {
	Create(ctx context.Context, reminder *models.Reminder) error
	FindByID(ctx context.Context, userID, id string) (models.Reminder, error)
	Update(ctx context.Context, userID, id string, fields map[string]any) error
	Delete(ctx context.Context, userID, id string) error
	// List returns the user's reminders soonest first.
	List(ctx context.Context, userID string) ([]models.Reminder, error)
}

type LegendPointsRepository interface {
	Top(ctx context.Context, limit int) ([]models.LegendPoints, error)
	FindByUser(ctx context.Context, userID string) (models.LegendPoints, error)
}

type MailboxRepository interface {
	HistoryID(ctx context.Context, userID string) (uint64, error)
	SaveHistoryID(ctx context.Context, userID string, historyID uint64) error
	IsProcessed(ctx context.Context, messageID string) (bool, error)
	// SaveResponse stores the response and marks its message as processed.
	SaveResponse(ctx context.Context, resp *models.EmailResponse) error
	ListResponses(ctx context.Context, userID string, limit int) ([]models.EmailResponse, error)
}
