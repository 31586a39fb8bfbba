package services

import (
	"context"
	"time"

	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

//go:generate mockgen -source=./mailbox.go -package=mailboxmocks -destination=mailboxmocks/mailbox.mock.go Mailbox

// Mailbox finds recruiting emails. Both syncs return full messages and the
// history id to resume from.
type Mailbox interface {
	FullSync(ctx context.Context) (models.MailBatch, error)
	IncrementalSync(ctx context.Context, startID uint64) (models.MailBatch, error)
}

const fullSyncQuery = "subject:(application OR interview OR update OR offer OR rejected OR status) newer_than:7d"

type gmailMailbox struct {
	svc    *gmail.Service
	logger *zap.Logger
	// sleep is the first retry delay; it doubles after every attempt.
	sleep time.Duration
}

func NewGmailMailbox(svc *gmail.Service, logger *zap.Logger) Mailbox {
	return &gmailMailbox{svc: svc, logger: logger, sleep: time.Second}
}

// FullSync scans the last 7 days and anchors on the mailbox's current history id.
func (m *gmailMailbox) FullSync(ctx context.Context) (models.MailBatch, error) {
	var resp *gmail.ListMessagesResponse
	err := retry(ctx, m.logger, 3, m.sleep, func() error {
		var e error
		resp, e = m.svc.Users.Messages.List("me").Q(fullSyncQuery).MaxResults(50).Context(ctx).Do()
		return e
	})
	if err != nil {
		return models.MailBatch{}, errors.Wrap(err, "list messages")
	}

	profile, err := m.svc.Users.GetProfile("me").Context(ctx).Do()
	if err != nil {
		return models.MailBatch{}, errors.Wrap(err, "get profile")
	}
	full, skipped := m.expandMessages(ctx, resp.Messages)
	return models.MailBatch{Messages: full, HistoryID: profile.HistoryId, Skipped: skipped}, nil
}

// IncrementalSync pages through every history record added since startID.
func (m *gmailMailbox) IncrementalSync(ctx context.Context, startID uint64) (models.MailBatch, error) {
	var headers []*gmail.Message
	var historyID uint64
	pageToken := ""
	for {
		var resp *gmail.ListHistoryResponse
		err := retry(ctx, m.logger, 3, m.sleep, func() error {
			call := m.svc.Users.History.List("me").
				StartHistoryId(startID).
				HistoryTypes("messageAdded").
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var e error
			resp, e = call.Do()
			return e
		})
		if err != nil {
			return models.MailBatch{}, err
		}

		for _, h := range resp.History {
			for _, added := range h.MessagesAdded {
				if added.Message != nil {
					headers = append(headers, added.Message)
				}
			}
		}
		historyID = resp.HistoryId
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	full, skipped := m.expandMessages(ctx, headers)
	return models.MailBatch{Messages: full, HistoryID: historyID, Skipped: skipped}, nil
}

// expandMessages fetches the full payload of each listed message. Messages
// deleted since they were listed are dropped; other failures are counted.
func (m *gmailMailbox) expandMessages(ctx context.Context, headers []*gmail.Message) ([]*gmail.Message, int) {
	var full []*gmail.Message
	skipped := 0
	for _, h := range headers {
		err := retry(ctx, m.logger, 2, m.sleep/2, func() error {
			msg, err := m.svc.Users.Messages.Get("me", h.Id).Format("full").Context(ctx).Do()
			if err == nil {
				full = append(full, msg)
			}
			return err
		})
		switch {
		case err == nil:
		case isNotFoundError(err):
			m.logger.Info("message gone, skipping", zap.String("message_id", h.Id))
		default:
			skipped++
			m.logger.Warn("skipping message", zap.String("message_id", h.Id), zap.Error(err))
		}
	}
	return full, skipped
}

// retry runs f with exponential backoff. A 404 fails fast: for history it
// means the start id expired, for a message that it was deleted.
func retry(ctx context.Context, logger *zap.Logger, attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		if isNotFoundError(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		logger.Warn("gmail API error, retrying", zap.Error(err), zap.Duration("sleep", sleep))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		sleep *= 2
	}
	return errors.Wrapf(err, "failed after %d attempts", attempts)
}

func isNotFoundError(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code == 404
	}
	return false
}
