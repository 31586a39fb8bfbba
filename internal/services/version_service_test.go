package services

import (
	"context"
	"testing"
	"time"

	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/repository"
	repomocks "github.com/justsurfingit/resume-legend/internal/repository/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestVersionService_Create(t *testing.T) {
	empty := ""
	jd := "Go developer"
	testCases := []struct {
		name     string
		req      dtos.CreateResumeVersionRequest
		mock     func(ctrl *gomock.Controller) repository.ResumeVersionRepository
		wantKind errs.Kind
		wantJD   *string
	}{
		{
			name: "created",
			req:  dtos.CreateResumeVersionRequest{ResumeID: "r1", OriginalFilename: "cv.pdf", TweakedText: "text", JobDescription: &jd},
			mock: func(ctrl *gomock.Controller) repository.ResumeVersionRepository {
				repo := repomocks.NewMockResumeVersionRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
			wantJD: &jd,
		},
		{
			name: "blank job description stored as null",
			req:  dtos.CreateResumeVersionRequest{ResumeID: "r1", OriginalFilename: "cv.pdf", TweakedText: "text", JobDescription: &empty},
			mock: func(ctrl *gomock.Controller) repository.ResumeVersionRepository {
				repo := repomocks.NewMockResumeVersionRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				return repo
			},
		},
		{
			name: "missing tweaked text",
			req:  dtos.CreateResumeVersionRequest{ResumeID: "r1", OriginalFilename: "cv.pdf"},
			mock: func(ctrl *gomock.Controller) repository.ResumeVersionRepository {
				return repomocks.NewMockResumeVersionRepository(ctrl)
			},
			wantKind: errs.KindValidation,
		},
		{
			name: "insert fails",
			req:  dtos.CreateResumeVersionRequest{ResumeID: "r1", OriginalFilename: "cv.pdf", TweakedText: "text"},
			mock: func(ctrl *gomock.Controller) repository.ResumeVersionRepository {
				repo := repomocks.NewMockResumeVersionRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conn reset"))
				return repo
			},
			wantKind: errs.KindBackend,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := &versionService{repo: tc.mock(ctrl), logger: zap.NewNop(), now: func() time.Time { return fixedNow }}

			v, err := svc.Create(context.Background(), "u1", &tc.req)
			if tc.wantKind != "" {
				assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, v.ID)
			assert.Equal(t, "u1", v.UserID)
			assert.False(t, v.IsDefault)
			assert.Equal(t, fixedNow, v.CreatedAt)
			assert.Equal(t, tc.wantJD, v.JobDescription)
		})
	}
}

func TestVersionService_SetDefault(t *testing.T) {
	testCases := []struct {
		name     string
		repoErr  error
		wantKind errs.Kind
	}{
		{name: "ok"},
		{name: "foreign version", repoErr: errs.NotFound("resume version"), wantKind: errs.KindNotFound},
		{name: "rolled back", repoErr: errors.New("deadlock"), wantKind: errs.KindBackend},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockResumeVersionRepository(ctrl)
			repo.EXPECT().SetDefault(gomock.Any(), "u1", "v1").Return(tc.repoErr)
			svc := NewVersionService(repo, zap.NewNop())

			err := svc.SetDefault(context.Background(), "u1", "v1")
			if tc.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tc.wantKind), "got %v", err)
		})
	}
}

func TestVersionService_ListAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockResumeVersionRepository(ctrl)
	repo.EXPECT().List(gomock.Any(), "u1").Return([]models.ResumeVersion{{ID: "v2", IsDefault: true}, {ID: "v1"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), "u1", "missing").Return(errs.NotFound("resume version"))
	svc := NewVersionService(repo, zap.NewNop())

	versions, err := svc.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, versions, 2)
	assert.True(t, versions[0].IsDefault)

	err = svc.Delete(context.Background(), "u1", "missing")
	assert.True(t, errs.Is(err, errs.KindNotFound))
}
