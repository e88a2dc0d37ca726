package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/internal/service"
	"github.com/clawdock/clawdock/models"
)

// fakeActivityService is a canned service.ActivityService capturing the
// arguments of the last call.
type fakeActivityService struct {
	entries []models.Activity
	stats   models.ActivityStats
	err     error

	lastFilter models.ActivityFilter
	lastDays   int
}

func (f *fakeActivityService) RecordActivity(_ context.Context, user, activityType, source string, details map[string]string) (models.Activity, error) {
	if f.err != nil {
		return models.Activity{}, f.err
	}
	return models.Activity{ID: "id-1", User: user, Activity: activityType, Source: source, Details: details}, nil
}

func (f *fakeActivityService) ListActivities(_ context.Context, filter models.ActivityFilter) ([]models.Activity, error) {
	f.lastFilter = filter
	return f.entries, f.err
}

func (f *fakeActivityService) GetActivityStats(_ context.Context, days int) (models.ActivityStats, error) {
	f.lastDays = days
	return f.stats, f.err
}

type fakeAppInfoService struct{ version string }

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func newTestRouter(activity *fakeActivityService) http.Handler {
	services := &service.Services{
		ActivityService: activity,
		AppInfoService:  &fakeAppInfoService{version: "1.2.3"},
	}
	return NewHandler(services, logger.Nop()).Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── plumbing endpoints ────────────────────────────────────────────────────────

// TestHealth verifies the liveness endpoint.
func TestHealth(t *testing.T) {
	rec := doRequest(t, newTestRouter(&fakeActivityService{}), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

// TestGetAppVersion verifies the version endpoint returns plain text.
func TestGetAppVersion(t *testing.T) {
	rec := doRequest(t, newTestRouter(&fakeActivityService{}), http.MethodGet, "/api/version/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

// TestTraceIDHeader verifies every response carries a trace identifier.
func TestTraceIDHeader(t *testing.T) {
	rec := doRequest(t, newTestRouter(&fakeActivityService{}), http.MethodGet, "/healthz", "")

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

// TestTraceIDHeader_HonorsInbound verifies an inbound trace id is echoed
// back instead of being replaced.
func TestTraceIDHeader_HonorsInbound(t *testing.T) {
	router := newTestRouter(&fakeActivityService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", strings.NewReader(""))
	req.Header.Set("X-Trace-ID", "trace-from-caller")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-caller", rec.Header().Get("X-Trace-ID"))
}

// TestCORSHeaders verifies cross-origin requests are allowed, including the
// preflight for recording activities.
func TestCORSHeaders(t *testing.T) {
	router := newTestRouter(&fakeActivityService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", strings.NewReader(""))
	req.Header.Set("Origin", "http://dashboard.local")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/admin/activities", strings.NewReader(""))
	preflight.Header.Set("Origin", "http://dashboard.local")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, preflight)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

// ── GET /api/admin/activities ─────────────────────────────────────────────────

// TestListActivities verifies query parameters map onto the filter and the
// entries come back as JSON.
func TestListActivities(t *testing.T) {
	fake := &fakeActivityService{entries: []models.Activity{
		{ID: "1", User: "alice", Activity: "login"},
	}}
	router := newTestRouter(fake)

	rec := doRequest(t, router, http.MethodGet,
		"/api/admin/activities?user=alice&type=login&limit=5&offset=2&start=2026-08-01T00:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", fake.lastFilter.User)
	assert.Equal(t, "login", fake.lastFilter.Type)
	assert.Equal(t, 5, fake.lastFilter.Limit)
	assert.Equal(t, 2, fake.lastFilter.Offset)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), fake.lastFilter.Start)

	var entries []models.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "alice", entries[0].User)
}

// TestListActivities_BadQuery verifies malformed time and numeric
// parameters yield 400.
func TestListActivities_BadQuery(t *testing.T) {
	router := newTestRouter(&fakeActivityService{})

	for _, target := range []string{
		"/api/admin/activities?start=yesterday",
		"/api/admin/activities?end=not-a-time",
		"/api/admin/activities?limit=abc",
		"/api/admin/activities?offset=abc",
	} {
		rec := doRequest(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

// TestListActivities_ServiceError verifies service failures map to 500.
func TestListActivities_ServiceError(t *testing.T) {
	router := newTestRouter(&fakeActivityService{err: errors.New("boom")})

	rec := doRequest(t, router, http.MethodGet, "/api/admin/activities", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── POST /api/admin/activities ────────────────────────────────────────────────

// TestRecordActivity verifies a valid body yields 201 with the stored
// entry.
func TestRecordActivity(t *testing.T) {
	router := newTestRouter(&fakeActivityService{})

	rec := doRequest(t, router, http.MethodPost, "/api/admin/activities",
		`{"user": "alice", "activity": "login", "source": "web", "details": {"ip": "10.0.0.1"}}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var entry models.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "alice", entry.User)
	assert.Equal(t, "login", entry.Activity)
	assert.Equal(t, map[string]string{"ip": "10.0.0.1"}, entry.Details)
}

// TestRecordActivity_InvalidJSON verifies a malformed body yields 400.
func TestRecordActivity_InvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeActivityService{})

	rec := doRequest(t, router, http.MethodPost, "/api/admin/activities", `{"user": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestRecordActivity_ValidationErrors verifies service validation errors
// map to 400 with a descriptive envelope.
func TestRecordActivity_ValidationErrors(t *testing.T) {
	router := newTestRouter(&fakeActivityService{err: service.ErrEmptyUser})

	rec := doRequest(t, router, http.MethodPost, "/api/admin/activities",
		`{"activity": "login"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "user is required"}`, rec.Body.String())
}

// ── GET /api/admin/stats ──────────────────────────────────────────────────────

// TestGetStats verifies the default and explicit day windows.
func TestGetStats(t *testing.T) {
	fake := &fakeActivityService{stats: models.ActivityStats{TotalActivities: 5, PeriodDays: 7}}
	router := newTestRouter(fake)

	rec := doRequest(t, router, http.MethodGet, "/api/admin/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, fake.lastDays)

	rec = doRequest(t, router, http.MethodGet, "/api/admin/stats?days=30", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, fake.lastDays)

	var stats models.ActivityStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.TotalActivities)
}

// TestGetStats_BadDays verifies non-numeric and non-positive windows yield
// 400.
func TestGetStats_BadDays(t *testing.T) {
	router := newTestRouter(&fakeActivityService{})

	for _, target := range []string{
		"/api/admin/stats?days=abc",
		"/api/admin/stats?days=0",
		"/api/admin/stats?days=-1",
	} {
		rec := doRequest(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}
