package services

import (
	"context"
	"sort"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	"go.uber.org/zap"
)

const LeaderboardSize = 10

type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserID      string    `json:"user_id"`
	TotalPoints int       `json:"total_points"`
	LastUpdated time.Time `json:"last_updated"`
}

//go:generate mockgen -source=./leaderboard_service.go -package=svcmocks -destination=mocks/leaderboard_service.mock.go LeaderboardService

type LeaderboardService interface {
	// Top returns at most LeaderboardSize entries, highest points first.
	Top(ctx context.Context) ([]LeaderboardEntry, error)
	// Mine returns the user's points, 0 when none were ever awarded.
	Mine(ctx context.Context, userID string) (int, error)
}

type leaderboardService struct {
	repo   repository.LegendPointsRepository
	logger *zap.Logger
}

func NewLeaderboardService(repo repository.LegendPointsRepository, logger *zap.Logger) LeaderboardService {
	return &leaderboardService{repo: repo, logger: logger}
}

func (s *leaderboardService) Top(ctx context.Context) ([]LeaderboardEntry, error) {
	rows, err := s.repo.Top(ctx, LeaderboardSize)
	if err != nil {
		return nil, backendErr(s.logger, "failed to fetch leaderboard", err)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	if len(rows) > LeaderboardSize {
		rows = rows[:LeaderboardSize]
	}
	return slice.Map(rows, func(idx int, src models.LegendPoints) LeaderboardEntry {
		return LeaderboardEntry{
			Rank:        idx + 1,
			UserID:      src.UserID,
			TotalPoints: src.TotalPoints,
			LastUpdated: src.LastUpdated,
		}
	}), nil
}

func (s *leaderboardService) Mine(ctx context.Context, userID string) (int, error) {
	row, err := s.repo.FindByUser(ctx, userID)
	if errs.Is(err, errs.KindNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, backendErr(s.logger, "failed to fetch legend points", err, zap.String("user_id", userID))
	}
	return row.TotalPoints, nil
}
