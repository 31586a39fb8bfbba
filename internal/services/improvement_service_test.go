package services

import (
	"context"
	"testing"
	"time"

	"github.com/justsurfingit/resume-legend/internal/ai"
	aimocks "github.com/justsurfingit/resume-legend/internal/ai/mocks"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"github.com/justsurfingit/resume-legend/internal/models"
	repomocks "github.com/justsurfingit/resume-legend/internal/repository/mocks"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestImprovementService_ImproveForRole(t *testing.T) {
	testCases := []struct {
		name          string
		genText       string
		genErr        error
		wantText      string
		wantGenerated bool
		wantOutcome   string
	}{
		{
			name:          "first candidate",
			genText:       "Senior React engineer with 5 years...",
			wantText:      "Senior React engineer with 5 years...",
			wantGenerated: true,
			wantOutcome:   metrics.OutcomeGenerated,
		},
		{
			name:        "no candidates",
			genErr:      ai.ErrNoCandidates,
			wantText:    NoCandidateText,
			wantOutcome: metrics.OutcomeEmpty,
		},
		{
			name:        "transport failure",
			genErr:      errors.New("dial tcp: timeout"),
			wantText:    GenerationErrorText,
			wantOutcome: metrics.OutcomeError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := aimocks.NewMockGenerator(ctrl)
			gen.EXPECT().Generate(gomock.Any(),
				"You are an expert resume builder. Rewrite and improve this resume for a job role: [Frontend Developer]. Resume: [5 years React experience]").
				Return(tc.genText, tc.genErr)
			collector := metrics.NewCollector("test")
			svc := NewImprovementService(gen, repomocks.NewMockResumeVersionRepository(ctrl), collector, zap.NewNop())

			res, err := svc.ImproveForRole(context.Background(), &dtos.ImproveForRoleRequest{
				ResumeText: "5 years React experience",
				Role:       "Frontend Developer",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantText, res.Text)
			assert.Equal(t, tc.wantGenerated, res.Generated)
			assert.Nil(t, res.Version)
			assert.Equal(t, float64(1), testutil.ToFloat64(collector.Generations.WithLabelValues("role", tc.wantOutcome)))
		})
	}
}

func TestImprovementService_ImproveForRoleEmptyText(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewImprovementService(aimocks.NewMockGenerator(ctrl), repomocks.NewMockResumeVersionRepository(ctrl), nil, zap.NewNop())

	_, err := svc.ImproveForRole(context.Background(), &dtos.ImproveForRoleRequest{ResumeText: "  "})
	assert.True(t, errs.Is(err, errs.KindValidation))
}

func TestImprovementService_ImproveForJob(t *testing.T) {
	req := dtos.ImproveForJobRequest{ResumeText: "cv", JobDescription: "Go backend role", Filename: "cv.pdf"}

	t.Run("generated and saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), ai.JobPrompt("cv", "Go backend role")).Return("tailored", nil)
		repo := repomocks.NewMockResumeVersionRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *models.ResumeVersion) error {
			assert.Equal(t, "cv.pdf", v.ResumeID)
			assert.Equal(t, "cv.pdf", v.OriginalFilename)
			assert.Equal(t, "tailored", v.TweakedText)
			assert.Equal(t, "Go backend role", *v.JobDescription)
			assert.False(t, v.IsDefault)
			return nil
		})
		svc := &improvementService{
			textGenerator: textGenerator{gen: gen, logger: zap.NewNop()},
			versions:      repo,
			now:           func() time.Time { return fixedNow },
		}

		res, err := svc.ImproveForJob(context.Background(), "u1", &req)
		require.NoError(t, err)
		assert.True(t, res.Generated)
		assert.Equal(t, "tailored", res.Text)
		require.NotNil(t, res.Version)
		assert.Equal(t, "u1", res.Version.UserID)
	})

	t.Run("explicit resume id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tailored", nil)
		repo := repomocks.NewMockResumeVersionRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *models.ResumeVersion) error {
			assert.Equal(t, "r-42", v.ResumeID)
			return nil
		})
		svc := NewImprovementService(gen, repo, nil, zap.NewNop())

		withID := req
		withID.ResumeID = strPtr("r-42")
		_, err := svc.ImproveForJob(context.Background(), "u1", &withID)
		require.NoError(t, err)
	})

	t.Run("failed generation is not saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", ai.ErrNoCandidates)
		svc := NewImprovementService(gen, repomocks.NewMockResumeVersionRepository(ctrl), nil, zap.NewNop())

		res, err := svc.ImproveForJob(context.Background(), "u1", &req)
		require.NoError(t, err)
		assert.False(t, res.Generated)
		assert.Equal(t, NoCandidateText, res.Text)
	})

	t.Run("save failure collapses to error text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := aimocks.NewMockGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("tailored", nil)
		repo := repomocks.NewMockResumeVersionRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		svc := NewImprovementService(gen, repo, nil, zap.NewNop())

		res, err := svc.ImproveForJob(context.Background(), "u1", &req)
		require.NoError(t, err)
		assert.False(t, res.Generated)
		assert.Equal(t, GenerationErrorText, res.Text)
		assert.Nil(t, res.Version)
	})

	t.Run("missing job description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewImprovementService(aimocks.NewMockGenerator(ctrl), repomocks.NewMockResumeVersionRepository(ctrl), nil, zap.NewNop())

		_, err := svc.ImproveForJob(context.Background(), "u1", &dtos.ImproveForJobRequest{ResumeText: "cv", Filename: "cv.pdf"})
		assert.True(t, errs.Is(err, errs.KindValidation))
	})
}
