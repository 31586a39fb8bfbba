package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/justsurfingit/resume-legend/internal/auth"
	"github.com/justsurfingit/resume-legend/internal/config"
	"github.com/justsurfingit/resume-legend/internal/dtos"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/metrics"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/services"
	svcmocks "github.com/justsurfingit/resume-legend/internal/services/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	testSecret = "router-test-secret-router-test-secret"
	testUser   = "6f1c2a9e-0000-4000-8000-000000000001"
)

type RouterSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	router *gin.Engine
	token  string

	resumes      *svcmocks.MockResumeService
	versions     *svcmocks.MockVersionService
	applications *svcmocks.MockApplicationService
	reminders    *svcmocks.MockReminderService
	improvements *svcmocks.MockImprovementService
	letters      *svcmocks.MockCoverLetterService
	leaderboard  *svcmocks.MockLeaderboardService
	responses    *svcmocks.MockHRResponseService
}

func strPtr(v string) *string { return &v }

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testUser,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	s.Require().NoError(err)
	s.token = tok
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.resumes = svcmocks.NewMockResumeService(s.ctrl)
	s.versions = svcmocks.NewMockVersionService(s.ctrl)
	s.applications = svcmocks.NewMockApplicationService(s.ctrl)
	s.reminders = svcmocks.NewMockReminderService(s.ctrl)
	s.improvements = svcmocks.NewMockImprovementService(s.ctrl)
	s.letters = svcmocks.NewMockCoverLetterService(s.ctrl)
	s.leaderboard = svcmocks.NewMockLeaderboardService(s.ctrl)
	s.responses = svcmocks.NewMockHRResponseService(s.ctrl)

	logger := zap.NewNop()
	h := &Handlers{
		Resume:      NewResumeHandler(s.resumes, s.versions, logger),
		Application: NewApplicationHandler(s.applications, logger),
		Reminder:    NewReminderHandler(s.reminders, logger),
		AI:          NewAIHandler(s.improvements, logger),
		CoverLetter: NewCoverLetterHandler(s.letters, logger),
		Leaderboard: NewLeaderboardHandler(s.leaderboard, logger),
		HRResponse:  NewHRResponseHandler(s.responses, logger),
	}
	s.router = NewRouter(config.ServerConfig{}, h, auth.NewJWTVerifier(testSecret), metrics.NewCollector("test"), logger)
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) TestHealthNeedsNoToken() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterSuite) TestRejectsMissingToken() {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil))
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestCreateApplication() {
	testCases := []struct {
		name     string
		body     any
		before   func()
		wantCode int
	}{
		{
			name: "created",
			body: dtos.CreateApplicationRequest{JobTitle: "Engineer", Company: "Acme"},
			before: func() {
				s.applications.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).
					Return(models.Application{ID: "a1", Status: models.StatusApplied}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "missing company",
			body:     map[string]string{"job_title": "Engineer"},
			before:   func() {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "backend failure",
			body: dtos.CreateApplicationRequest{JobTitle: "Engineer", Company: "Acme"},
			before: func() {
				s.applications.EXPECT().Create(gomock.Any(), testUser, gomock.Any()).
					Return(models.Application{}, errs.Backend("failed to create application", errors.New("down")))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.before()
			w := s.do(http.MethodPost, "/api/v1/applications", tc.body)
			s.Equal(tc.wantCode, w.Code)
		})
	}
}

func (s *RouterSuite) TestUpdateUnknownApplication() {
	s.applications.EXPECT().Update(gomock.Any(), testUser, "nope", gomock.Any()).
		Return(models.Application{}, errs.NotFound("application"))

	w := s.do(http.MethodPatch, "/api/v1/applications/nope", map[string]string{"status": "Offer"})
	s.Equal(http.StatusNotFound, w.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("application not found", body["error"])
}

func (s *RouterSuite) TestClearFollowUpDate() {
	s.applications.EXPECT().Update(gomock.Any(), testUser, "a1", &dtos.UpdateApplicationRequest{FollowUpDate: strPtr("")}).
		Return(models.Application{ID: "a1", Status: models.StatusApplied}, nil)

	w := s.do(http.MethodPatch, "/api/v1/applications/a1", map[string]any{"follow_up_date": ""})
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodPatch, "/api/v1/applications/a1", map[string]any{"follow_up_date": "next week"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestCompleteReminder() {
	s.reminders.EXPECT().MarkCompleted(gomock.Any(), testUser, "r1").
		Return(models.Reminder{ID: "r1", Status: models.ReminderCompleted}, nil)

	w := s.do(http.MethodPost, "/api/v1/reminders/r1/complete", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"Completed"`)
}

func (s *RouterSuite) TestImproveForRole() {
	s.improvements.EXPECT().ImproveForRole(gomock.Any(), &dtos.ImproveForRoleRequest{ResumeText: "cv", Role: "Data Analyst"}).
		Return(services.Improvement{Text: services.NoCandidateText}, nil)

	w := s.do(http.MethodPost, "/api/v1/ai/improve/role", dtos.ImproveForRoleRequest{ResumeText: "cv", Role: "Data Analyst"})
	s.Equal(http.StatusOK, w.Code)

	var resp dtos.ImprovementResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.False(resp.Generated)
	s.Equal(services.NoCandidateText, resp.Text)
}

func (s *RouterSuite) TestExport() {
	w := s.do(http.MethodPost, "/api/v1/ai/export", dtos.ExportRequest{Filename: "jane.cv.pdf", Content: "improved"})
	s.Equal(http.StatusOK, w.Code)
	s.Equal(`attachment; filename="jane-improved.txt"`, w.Header().Get("Content-Disposition"))
	s.Equal("improved", w.Body.String())
}

func (s *RouterSuite) TestUploadResume() {
	s.resumes.EXPECT().Upload(gomock.Any(), testUser, "cv.pdf", int64(7), gomock.Any()).
		Return(models.ResumeFile{Name: "cv.pdf", Size: 7}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "cv.pdf")
	s.Require().NoError(err)
	_, _ = fw.Write([]byte("%PDF-1."))
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusCreated, w.Code)
}

func (s *RouterSuite) TestCurrentResumeMissing() {
	s.resumes.EXPECT().Current(gomock.Any(), testUser).Return(models.ResumeFile{}, errs.NotFound("resume"))
	w := s.do(http.MethodGet, "/api/v1/resumes/current", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestLeaderboard() {
	s.leaderboard.EXPECT().Top(gomock.Any()).Return([]services.LeaderboardEntry{{Rank: 1, UserID: "u", TotalPoints: 50}}, nil)
	s.leaderboard.EXPECT().Mine(gomock.Any(), testUser).Return(0, nil)

	w := s.do(http.MethodGet, "/api/v1/leaderboard", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"total_points":50`)

	w = s.do(http.MethodGet, "/api/v1/legend-points/me", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"total_points":0}`, w.Body.String())
}

func (s *RouterSuite) TestHRResponsesBadLimit() {
	w := s.do(http.MethodGet, "/api/v1/hr-responses?limit=abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}
