//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/justsurfingit/resume-legend/internal/ai"
	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/justsurfingit/resume-legend/internal/database"
	"github.com/justsurfingit/resume-legend/internal/handlers"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"github.com/justsurfingit/resume-legend/internal/services"
	"go.uber.org/zap"
)

var repositorySet = wire.NewSet(
	repository.NewApplicationRepository,
	repository.NewResumeVersionRepository,
	repository.NewCoverLetterRepository,
	repository.NewReminderRepository,
	repository.NewLegendPointsRepository,
	repository.NewMailboxRepository,
)

var serviceSet = wire.NewSet(
	services.NewResumeService,
	services.NewVersionService,
	services.NewApplicationService,
	services.NewReminderService,
	services.NewImprovementService,
	services.NewCoverLetterService,
	services.NewLeaderboardService,
	services.NewHRResponseService,
)

var handlerSet = wire.NewSet(
	handlers.NewResumeHandler,
	handlers.NewApplicationHandler,
	handlers.NewReminderHandler,
	handlers.NewAIHandler,
	handlers.NewCoverLetterHandler,
	handlers.NewLeaderboardHandler,
	handlers.NewHRResponseHandler,
	wire.Struct(new(handlers.Handlers), "*"),
	handlers.NewRouter,
)

func InitApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		wire.FieldsOf(new(*config.Config), "Server", "Database", "Supabase", "AI", "Gmail"),
		database.Connect,
		newSupabaseClient,
		newObjectStore,
		newVerifier,
		newCollector,
		newMailbox,
		ai.New,
		repositorySet,
		serviceSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
