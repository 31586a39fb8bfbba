package services

import (
	"context"
	"testing"

	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	repomocks "github.com/justsurfingit/resume-legend/internal/repository/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestLeaderboardService_Top(t *testing.T) {
	rows := make([]models.LegendPoints, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, models.LegendPoints{UserID: string(rune('a' + i)), TotalPoints: (i % 4) * 10})
	}

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLegendPointsRepository(ctrl)
	repo.EXPECT().Top(gomock.Any(), LeaderboardSize).Return(rows, nil)
	svc := NewLeaderboardService(repo, zap.NewNop())

	entries, err := svc.Top(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, LeaderboardSize)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
		assert.Equal(t, i+1, entries[i].Rank)
	}
	// Ties keep the order the backend returned them in.
	assert.Equal(t, "d", entries[0].UserID)
	assert.Equal(t, "h", entries[1].UserID)
}

func TestLeaderboardService_TopFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLegendPointsRepository(ctrl)
	repo.EXPECT().Top(gomock.Any(), LeaderboardSize).Return(nil, errors.New("down"))

	_, err := NewLeaderboardService(repo, zap.NewNop()).Top(context.Background())
	assert.True(t, errs.Is(err, errs.KindBackend))
}

func TestLeaderboardService_Mine(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockLegendPointsRepository(ctrl)
	repo.EXPECT().FindByUser(gomock.Any(), "u1").Return(models.LegendPoints{UserID: "u1", TotalPoints: 120}, nil)
	repo.EXPECT().FindByUser(gomock.Any(), "u2").Return(models.LegendPoints{}, errs.NotFound("legend points"))
	svc := NewLeaderboardService(repo, zap.NewNop())

	pts, err := svc.Mine(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 120, pts)

	pts, err = svc.Mine(context.Background(), "u2")
	require.NoError(t, err)
	assert.Zero(t, pts)
}
