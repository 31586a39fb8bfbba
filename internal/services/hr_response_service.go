package services

import (
	"context"
	"encoding/base64"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
)

const (
	bodyPreviewRunes     = 200
	defaultResponseLimit = 50
	syncTimeout          = 2 * time.Minute
)

//go:generate mockgen -source=./hr_response_service.go -package=svcmocks -destination=mocks/hr_response_service.mock.go HRResponseService

type HRResponseService interface {
	// Sync pulls new recruiting emails into email_responses and returns how
	// many were stored.
	Sync(ctx context.Context, userID string) (int, error)
	List(ctx context.Context, userID string, limit int) ([]models.EmailResponse, error)
	// StartWatcher syncs once now and then every interval until ctx is done.
	StartWatcher(ctx context.Context, userID string, interval time.Duration)
}

type hrResponseService struct {
	mailbox Mailbox
	repo    repository.MailboxRepository
	apps    repository.ApplicationRepository
	metrics *metrics.Collector
	logger  *zap.Logger
	now     func() time.Time
}

// NewHRResponseService accepts a nil mailbox when Gmail is not configured;
// listing still works and syncing is refused.
func NewHRResponseService(mailbox Mailbox, repo repository.MailboxRepository, apps repository.ApplicationRepository,
	collector *metrics.Collector, logger *zap.Logger) HRResponseService {
	return &hrResponseService{
		mailbox: mailbox,
		repo:    repo,
		apps:    apps,
		metrics: collector,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *hrResponseService) StartWatcher(ctx context.Context, userID string, interval time.Duration) {
	if s.mailbox == nil {
		s.logger.Warn("gmail watcher disabled, no mailbox configured")
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			s.syncCycle(ctx, userID)
			select {
			case <-ctx.Done():
				s.logger.Info("gmail watcher stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *hrResponseService) syncCycle(ctx context.Context, userID string) {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	n, err := s.Sync(ctx, userID)
	if err != nil {
		s.logger.Error("gmail sync failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	s.logger.Info("gmail sync finished", zap.String("user_id", userID), zap.Int("stored", n))
}

func (s *hrResponseService) Sync(ctx context.Context, userID string) (int, error) {
	if s.mailbox == nil {
		return 0, errs.Validation("gmail integration is not enabled")
	}

	lastID, err := s.repo.HistoryID(ctx, userID)
	if err != nil {
		return 0, backendErr(s.logger, "failed to load mailbox state", err, zap.String("user_id", userID))
	}

	var batch models.MailBatch
	if lastID == 0 {
		s.logger.Info("no history id, running full sync", zap.String("user_id", userID))
		batch, err = s.mailbox.FullSync(ctx)
	} else {
		batch, err = s.mailbox.IncrementalSync(ctx, lastID)
		if err != nil && isNotFoundError(err) {
			s.logger.Warn("history id expired, falling back to full sync", zap.Uint64("history_id", lastID))
			batch, err = s.mailbox.FullSync(ctx)
		}
	}
	if err != nil {
		return 0, backendErr(s.logger, "failed to sync mailbox", err, zap.String("user_id", userID))
	}
	messages := batch.Messages

	var apps []models.Application
	if len(messages) > 0 {
		apps, err = s.apps.List(ctx, userID, nil)
		if err != nil {
			return 0, backendErr(s.logger, "failed to fetch applications", err, zap.String("user_id", userID))
		}
	}

	stored := 0
	for _, msg := range messages {
		done, err := s.repo.IsProcessed(ctx, msg.Id)
		if err != nil {
			return stored, backendErr(s.logger, "failed to check processed email", err, zap.String("message_id", msg.Id))
		}
		if done {
			continue
		}

		resp := s.toResponse(userID, msg, apps)
		// Keep the old bookmark so the next cycle sees this message again.
		if err := s.repo.SaveResponse(ctx, &resp); err != nil {
			return stored, backendErr(s.logger, "failed to save email response", err, zap.String("message_id", msg.Id))
		}
		stored++
		s.metrics.RecordEmailSynced()
		if resp.ApplicationID != nil {
			s.logger.Info("hr response linked", zap.String("message_id", msg.Id), zap.String("application_id", *resp.ApplicationID))
		}
	}

	if batch.Skipped > 0 {
		s.logger.Warn("keeping mailbox bookmark, some messages could not be fetched",
			zap.String("user_id", userID), zap.Int("skipped", batch.Skipped))
		return stored, nil
	}
	if batch.HistoryID > lastID {
		if err := s.repo.SaveHistoryID(ctx, userID, batch.HistoryID); err != nil {
			return stored, backendErr(s.logger, "failed to save mailbox state", err, zap.String("user_id", userID))
		}
	}
	return stored, nil
}

func (s *hrResponseService) List(ctx context.Context, userID string, limit int) ([]models.EmailResponse, error) {
	if limit <= 0 || limit > defaultResponseLimit {
		limit = defaultResponseLimit
	}
	rows, err := s.repo.ListResponses(ctx, userID, limit)
	if err != nil {
		return nil, backendErr(s.logger, "failed to fetch hr responses", err, zap.String("user_id", userID))
	}
	return rows, nil
}

func (s *hrResponseService) toResponse(userID string, msg *gmail.Message, apps []models.Application) models.EmailResponse {
	headers := parseHeaders(msg)
	received := s.now().UTC()
	if msg.InternalDate > 0 {
		received = time.UnixMilli(msg.InternalDate).UTC()
	}

	resp := models.EmailResponse{
		ID:          uuid.NewString(),
		CreatedAt:   s.now().UTC(),
		UserID:      userID,
		MessageID:   msg.Id,
		Sender:      headers["From"],
		Subject:     headers["Subject"],
		BodyPreview: preview(getEmailBody(msg), bodyPreviewRunes),
		ReceivedAt:  received,
	}
	if app := MatchApplication(resp.Subject, resp.Sender, apps); app != nil {
		id := app.ID
		resp.ApplicationID = &id
	}
	return resp
}

func parseHeaders(msg *gmail.Message) map[string]string {
	res := make(map[string]string)
	if msg.Payload == nil {
		return res
	}
	for _, h := range msg.Payload.Headers {
		res[h.Name] = h.Value
	}
	return res
}

// getEmailBody prefers the plain-text part and falls back to HTML.
func getEmailBody(msg *gmail.Message) string {
	if msg.Payload == nil {
		return ""
	}
	if msg.Payload.Body != nil && msg.Payload.Body.Data != "" {
		return decodeBody(msg.Payload.Body.Data)
	}
	for _, mime := range []string{"text/plain", "text/html"} {
		for _, part := range msg.Payload.Parts {
			if part.MimeType == mime && part.Body != nil && part.Body.Data != "" {
				return decodeBody(part.Body.Data)
			}
		}
	}
	return ""
}

// Gmail sends base64url, with or without padding.
func decodeBody(data string) string {
	d, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		d, _ = base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	}
	return string(d)
}

// preview collapses whitespace and keeps the first n runes.
func preview(body string, n int) string {
	body = strings.Join(strings.Fields(body), " ")
	if utf8.RuneCountInString(body) <= n {
		return body
	}
	return string([]rune(body)[:n])
}
