package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuongbtq/jobboard/internal/api/domain"
	"github.com/cuongbtq/jobboard/internal/api/handler"
	"github.com/cuongbtq/jobboard/internal/api/service"
	"github.com/cuongbtq/jobboard/internal/config"
	"github.com/cuongbtq/jobboard/shared/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	seeker   = &domain.Account{ID: "seeker", Role: domain.RoleJobSeeker}
	employer = &domain.Account{ID: "employer", Role: domain.RoleEmployer}
	admin    = &domain.Account{ID: "admin", Role: domain.RoleAdmin}
)

// tokenAuth treats the bearer token as a key into a fixed account table
type tokenAuth struct {
	accounts map[string]*domain.Account
}

func (a tokenAuth) Register(context.Context, service.RegisterInput) (*service.Session, error) {
	return &service.Session{Token: "t", Account: seeker}, nil
}

func (a tokenAuth) Login(context.Context, service.LoginInput) (*service.Session, error) {
	return nil, domain.ErrInvalidCredentials
}

func (a tokenAuth) Authenticate(_ context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	account, ok := a.accounts[token]
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return account, nil
}

func (a tokenAuth) Me(_ context.Context, caller *domain.Account) (*domain.Account, error) {
	return caller, nil
}

type stubJobs struct{ created int }

func (s *stubJobs) List(context.Context, domain.JobFilter) ([]domain.Job, error) { return nil, nil }

func (s *stubJobs) Create(_ context.Context, caller *domain.Account, _ service.CreateJobInput) (*domain.Job, error) {
	s.created++
	return &domain.Job{ID: "j1", EmployerID: caller.ID}, nil
}

func (s *stubJobs) Get(context.Context, string) (*domain.Job, error) {
	return nil, domain.ErrJobNotFound
}

type stubApplications struct{ applied int }

func (s *stubApplications) Apply(context.Context, *domain.Account, service.ApplyInput) (*domain.Application, error) {
	s.applied++
	return &domain.Application{ID: "a1", Status: domain.ApplicationPending}, nil
}

func (s *stubApplications) List(context.Context, *domain.Account) ([]domain.Application, error) {
	return nil, nil
}

func (s *stubApplications) Get(context.Context, *domain.Account, string) (*domain.Application, error) {
	return nil, domain.NotFound("Application not found")
}

type stubAdmin struct{}

func (stubAdmin) Stats(context.Context, *domain.Account) (*domain.Stats, error) {
	return &domain.Stats{}, nil
}

func (stubAdmin) Activity(context.Context, *domain.Account, int) ([]domain.ActivityEvent, error) {
	return nil, nil
}

type testRouter struct {
	engine       *gin.Engine
	jobs         *stubJobs
	applications *stubApplications
}

func newTestRouter(cfg *config.Config) *testRouter {
	jobs := &stubJobs{}
	applications := &stubApplications{}
	deps := &handler.Dependencies{
		Logger: logger.NewNop().Logger,
		Config: cfg,
		Auth: tokenAuth{accounts: map[string]*domain.Account{
			"seeker-token":   seeker,
			"employer-token": employer,
			"admin-token":    admin,
		}},
		Jobs:         jobs,
		Applications: applications,
		Admin:        stubAdmin{},
	}
	return &testRouter{engine: SetupRouter(deps), jobs: jobs, applications: applications}
}

func (tr *testRouter) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestRouter_Authentication(t *testing.T) {
	tr := newTestRouter(nil)

	w := tr.do(http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", message(t, w))

	w = tr.do(http.MethodGet, "/auth/me", "forged", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", message(t, w))

	w = tr.do(http.MethodGet, "/auth/me", "seeker-token", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = tr.do(http.MethodGet, "/applications", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RoleGates(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "public job list", method: http.MethodGet, path: "/jobs", wantStatus: http.StatusOK},
		{name: "public job detail", method: http.MethodGet, path: "/jobs/x", wantStatus: http.StatusNotFound},
		{name: "seeker creates job", method: http.MethodPost, path: "/jobs", token: "seeker-token", body: `{}`, wantStatus: http.StatusForbidden, wantMsg: "Only employers can create jobs"},
		{name: "seeker creates job with bad body", method: http.MethodPost, path: "/jobs", token: "seeker-token", body: `{`, wantStatus: http.StatusForbidden},
		{name: "employer creates job", method: http.MethodPost, path: "/jobs", token: "employer-token", body: `{}`, wantStatus: http.StatusCreated},
		{name: "employer applies", method: http.MethodPost, path: "/applications", token: "employer-token", body: `{}`, wantStatus: http.StatusForbidden, wantMsg: "Only job seekers can apply"},
		{name: "seeker applies", method: http.MethodPost, path: "/applications", token: "seeker-token", body: `{}`, wantStatus: http.StatusCreated},
		{name: "seeker lists applications", method: http.MethodGet, path: "/applications", token: "seeker-token", wantStatus: http.StatusOK},
		{name: "seeker reads admin stats", method: http.MethodGet, path: "/admin/stats", token: "seeker-token", wantStatus: http.StatusForbidden, wantMsg: "Admin access required"},
		{name: "employer reads admin activity", method: http.MethodGet, path: "/admin/activity", token: "employer-token", wantStatus: http.StatusForbidden},
		{name: "admin reads admin stats", method: http.MethodGet, path: "/admin/stats", token: "admin-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestRouter(nil)

			w := tr.do(tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, message(t, w))
			}
			if tt.wantStatus == http.StatusForbidden {
				assert.Zero(t, tr.jobs.created)
				assert.Zero(t, tr.applications.applied)
			}
		})
	}
}

func TestRouter_LoginRateLimit(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{LoginRatePerMinute: 1, LoginBurst: 2}}
	tr := newTestRouter(cfg)

	body := `{"email":"a@test.com","password":"wrong-password"}`
	for range 2 {
		w := tr.do(http.MethodPost, "/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := tr.do(http.MethodPost, "/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// registration is not throttled
	w = tr.do(http.MethodPost, "/auth/register", "", `{}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIPLimiter(t *testing.T) {
	l := newIPLimiter(60, 1)

	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))

	unlimited := newIPLimiter(0, 0)
	for range 100 {
		require.True(t, unlimited.allow("10.0.0.1"))
	}
}

func TestRouter_Metrics(t *testing.T) {
	tr := newTestRouter(nil)
	tr.do(http.MethodGet, "/jobs", "", "")

	w := tr.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `jobboard_http_requests_total{method="GET",route="/jobs",status="200"}`)
}

func TestRouter_CORS(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}}
	tr := newTestRouter(cfg)

	req := httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/jobs", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
