package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"github.com/justsurfingit/resume-legend/internal/services"
	"github.com/justsurfingit/resume-legend/internal/storage"
	"github.com/pkg/errors"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// App is everything main needs after wiring.
type App struct {
	Router      *gin.Engine
	HRResponses services.HRResponseService
}

func newSupabaseClient(cfg config.SupabaseConfig) (*supabase.Client, error) {
	client, err := supabase.NewClient(cfg.URL, cfg.ServiceKey, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create supabase client")
	}
	return client, nil
}

func newObjectStore(client *supabase.Client, cfg config.SupabaseConfig) storage.ObjectStore {
	return storage.NewSupabaseStore(client, cfg.ResumeBucket)
}

// newVerifier checks tokens locally when the JWT secret is known and asks
// Supabase otherwise.
func newVerifier(cfg config.SupabaseConfig, client *supabase.Client) auth.Verifier {
	if cfg.JWTSecret != "" {
		return auth.NewJWTVerifier(cfg.JWTSecret)
	}
	return auth.NewSupabaseVerifier(client)
}

func newCollector() *metrics.Collector {
	return metrics.NewCollector("resume_legend")
}

// newMailbox returns nil when the Gmail watcher is disabled or cannot start;
// the rest of the API keeps working.
func newMailbox(ctx context.Context, cfg config.GmailConfig, logger *zap.Logger) services.Mailbox {
	if !cfg.Enabled {
		return nil
	}
	httpClient, err := auth.GmailHTTPClient(ctx, cfg.CredentialsFile, cfg.TokenFile)
	if err != nil {
		logger.Warn("gmail disabled, run cmd/gmail-auth first", zap.Error(err))
		return nil
	}
	svc, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		logger.Warn("failed to create gmail service", zap.Error(err))
		return nil
	}
	logger.Info("gmail service connected")
	return services.NewGmailMailbox(svc, logger)
}
