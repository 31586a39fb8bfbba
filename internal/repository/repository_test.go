package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/justsurfingit/resume-legend/internal/database"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RepositorySuite runs against a real Postgres database. Set DB_DSN_TEST=1 and
// point DATABASE_URL at a disposable database to enable it.
type RepositorySuite struct {
	suite.Suite
	db      *gorm.DB
	cleanup func()
	userID  string
}

func TestRepositorySuite(t *testing.T) {
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	dsn := os.Getenv("DATABASE_URL")
	require.NotEmpty(t, dsn, "DATABASE_URL is required for integration tests")
	db, cleanup, err := database.Connect(config.DatabaseConfig{DSN: dsn, AutoMigrate: true, MaxConns: 4}, zap.NewNop())
	require.NoError(t, err)
	suite.Run(t, &RepositorySuite{db: db, cleanup: cleanup})
}

func (s *RepositorySuite) TearDownSuite() {
	s.cleanup()
}

func (s *RepositorySuite) SetupTest() {
	s.userID = uuid.NewString()
}

func (s *RepositorySuite) TearDownTest() {
	for _, m := range []any{&models.ResumeVersion{}, &models.Application{}, &models.Reminder{}, &models.EmailResponse{}, &models.MailboxState{}} {
		s.db.Where("user_id = ?", s.userID).Delete(m)
	}
}

func (s *RepositorySuite) TestSetDefaultKeepsOneDefault() {
	ctx := context.Background()
	repo := NewResumeVersionRepository(s.db)

	var ids []string
	for i := 0; i < 3; i++ {
		v := &models.ResumeVersion{
			ID:               uuid.NewString(),
			UserID:           s.userID,
			ResumeID:         "cv.pdf",
			OriginalFilename: "cv.pdf",
			TweakedText:      "text",
			CreatedAt:        time.Now().Add(time.Duration(i) * time.Minute),
		}
		s.Require().NoError(repo.Create(ctx, v))
		ids = append(ids, v.ID)
	}

	s.Require().NoError(repo.SetDefault(ctx, s.userID, ids[0]))
	s.Require().NoError(repo.SetDefault(ctx, s.userID, ids[2]))

	versions, err := repo.List(ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(versions, 3)
	s.Equal(ids[2], versions[0].ID)
	defaults := 0
	for _, v := range versions {
		if v.IsDefault {
			defaults++
			s.Equal(ids[2], v.ID)
		}
	}
	s.Equal(1, defaults)

	err = repo.SetDefault(ctx, uuid.NewString(), ids[1])
	s.True(errs.Is(err, errs.KindNotFound))

	// the failed call must not have touched the owner's default
	versions, err = repo.List(ctx, s.userID)
	s.Require().NoError(err)
	s.True(versions[0].IsDefault)
}

func (s *RepositorySuite) TestReminderCompleteTwice() {
	ctx := context.Background()
	repo := NewReminderRepository(s.db)
	r := &models.Reminder{
		ID:           uuid.NewString(),
		UserID:       s.userID,
		Title:        "follow up",
		ReminderTime: time.Now().UTC(),
		Status:       models.ReminderPending,
	}
	s.Require().NoError(repo.Create(ctx, r))

	fields := map[string]any{"status": models.ReminderCompleted}
	s.Require().NoError(repo.Update(ctx, s.userID, r.ID, fields))
	s.Require().NoError(repo.Update(ctx, s.userID, r.ID, fields))

	got, err := repo.FindByID(ctx, s.userID, r.ID)
	s.Require().NoError(err)
	s.Equal(models.ReminderCompleted, got.Status)

	err = repo.Update(ctx, uuid.NewString(), r.ID, fields)
	s.True(errs.Is(err, errs.KindNotFound))
}

func (s *RepositorySuite) TestApplicationFilterAndOwnership() {
	ctx := context.Background()
	repo := NewApplicationRepository(s.db)
	for _, st := range []models.ApplicationStatus{models.StatusApplied, models.StatusInterview, models.StatusApplied} {
		s.Require().NoError(repo.Create(ctx, &models.Application{
			ID:          uuid.NewString(),
			UserID:      s.userID,
			JobTitle:    "Engineer",
			Company:     "Acme",
			AppliedDate: time.Now().UTC().Truncate(24 * time.Hour),
			Status:      st,
		}))
	}

	all, err := repo.List(ctx, s.userID, nil)
	s.Require().NoError(err)
	s.Len(all, 3)

	interview := models.StatusInterview
	filtered, err := repo.List(ctx, s.userID, &interview)
	s.Require().NoError(err)
	s.Len(filtered, 1)

	_, err = repo.FindByID(ctx, uuid.NewString(), all[0].ID)
	s.True(errs.Is(err, errs.KindNotFound))
}

func (s *RepositorySuite) TestMailboxBookmarkAndDedup() {
	ctx := context.Background()
	repo := NewMailboxRepository(s.db)

	id, err := repo.HistoryID(ctx, s.userID)
	s.Require().NoError(err)
	s.Zero(id)

	s.Require().NoError(repo.SaveHistoryID(ctx, s.userID, 10))
	s.Require().NoError(repo.SaveHistoryID(ctx, s.userID, 42))
	id, err = repo.HistoryID(ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(uint64(42), id)

	msgID := "msg-" + uuid.NewString()
	s.Require().NoError(repo.SaveResponse(ctx, &models.EmailResponse{
		ID:          uuid.NewString(),
		UserID:      s.userID,
		MessageID:   msgID,
		Sender:      "hr@acme.com",
		Subject:     "Interview",
		BodyPreview: "hello",
		ReceivedAt:  time.Now().UTC(),
	}))
	done, err := repo.IsProcessed(ctx, msgID)
	s.Require().NoError(err)
	s.True(done)

	rows, err := repo.ListResponses(ctx, s.userID, 10)
	s.Require().NoError(err)
	s.Len(rows, 1)
	s.db.Where("id = ?", msgID).Delete(&models.ProcessedEmail{})
}
