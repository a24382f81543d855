package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-server/api/matrimony"
	"mm-server/config"
	"mm-server/dao/redis"
	"mm-server/db"
	"mm-server/models"
	services "mm-server/service"
)

type handlerFixture struct {
	auth      *AuthHandler
	search    *SearchHandler
	profile   *ProfileHandler
	dashboard *DashboardHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	t.Setenv("PROJECT_ROOT", "../..")

	mockAPI := matrimony.NewMatrimonyApiClientMock()
	sessionDao := redis.NewRedisSessionDao(db.NewMockRedisClient(context.Background()))

	authService := services.NewAuthService(mockAPI, sessionDao)
	searchService := services.NewSearchService(mockAPI, sessionDao)
	profileService := services.NewProfileService(mockAPI, sessionDao)

	return &handlerFixture{
		auth:      NewAuthHandler(authService),
		search:    NewSearchHandler(searchService, authService),
		profile:   NewProfileHandler(profileService),
		dashboard: NewDashboardHandler(profileService),
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (bool, json.RawMessage, string) {
	t.Helper()
	var envelope struct {
		Status  bool            `json:"status"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Status, envelope.Data, envelope.Message
}

func (f *handlerFixture) login(t *testing.T) string {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/auth/login",
		strings.NewReader(`{"email":"s@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	f.auth.Login(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	_, data, _ := decodeEnvelope(t, rec)
	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLoginHandler(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.login(t)
	assert.NotEmpty(t, token)
}

func TestLoginHandlerRejectsMissingFields(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"email":"x"}`))
	rec := httptest.NewRecorder()
	f.auth.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	status, _, _ := decodeEnvelope(t, rec)
	assert.False(t, status)
}

func TestRegisterHandlerRequiredFields(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/auth/register",
		strings.NewReader(`{"name":"Saravanan K","gender":"Male"}`))
	rec := httptest.NewRecorder()
	f.auth.Register(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(
		`{"name":"Saravanan K","gender":"Male","phone1":"9876543210","district":"26"}`))
	rec = httptest.NewRecorder()
	f.auth.Register(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	status, _, _ := decodeEnvelope(t, rec)
	assert.True(t, status)
}

func TestQuickSearchHandlerOpenToAnonymous(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/search/quick",
		strings.NewReader(`{"lookingFor":"BRIDE","age":"25"}`))
	rec := httptest.NewRecorder()
	f.search.QuickSearch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	status, data, _ := decodeEnvelope(t, rec)
	assert.True(t, status)

	var profiles []models.Profile
	require.NoError(t, json.Unmarshal(data, &profiles))
	assert.Len(t, profiles, 4)
}

func TestAdvancedSearchHandlerRequiresSession(t *testing.T) {
	f := newHandlerFixture(t)

	body := `{"seeking":"WOMAN","ageFrom":"20","ageTo":"30"}`

	req := httptest.NewRequest("POST", "/v1/search/advanced", strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.search.AdvancedSearch(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := f.login(t)
	req = httptest.NewRequest("POST", "/v1/search/advanced", strings.NewReader(body))
	req.Header.Set(config.SESSION_TOKEN_HEADER, token)
	rec = httptest.NewRecorder()
	f.search.AdvancedSearch(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetProfileHandlerFallsBackToOwnProfile(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.login(t)

	req := httptest.NewRequest("GET", "/v1/profile", nil)
	req.Header.Set(config.SESSION_TOKEN_HEADER, token)
	rec := httptest.NewRecorder()
	f.profile.GetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	_, data, _ := decodeEnvelope(t, rec)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(data, &profile))
	assert.Equal(t, "NM2001", profile.ID)
}

func TestGetProfileHandlerWithoutSession(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("GET", "/v1/profile", nil)
	rec := httptest.NewRecorder()
	f.profile.GetProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecordViewedProfileHandler(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.login(t)

	req := httptest.NewRequest("POST", "/v1/profiles/viewed",
		strings.NewReader(`{"profileId":"NM2001"}`))
	req.Header.Set(config.SESSION_TOKEN_HEADER, token)
	rec := httptest.NewRecorder()
	f.profile.RecordViewedProfile(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Missing body field is a 400.
	req = httptest.NewRequest("POST", "/v1/profiles/viewed", strings.NewReader(`{}`))
	req.Header.Set(config.SESSION_TOKEN_HEADER, token)
	rec = httptest.NewRecorder()
	f.profile.RecordViewedProfile(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardStatsHandler(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.login(t)

	req := httptest.NewRequest("GET", "/v1/dashboard", nil)
	req.Header.Set(config.SESSION_TOKEN_HEADER, token)
	rec := httptest.NewRecorder()
	f.dashboard.GetDashboardStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	_, data, _ := decodeEnvelope(t, rec)
	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(data, &stats))
	assert.Equal(t, 120, stats.UserPoints)
}

func TestDashboardChartHandlerRendersHTML(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.login(t)

	req := httptest.NewRequest("GET", "/v1/dashboard/chart", nil)
	req.Header.Set(config.SESSION_TOKEN_HEADER, token)
	rec := httptest.NewRecorder()
	f.dashboard.GetDashboardChart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestPingHandler(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("GET", "/ping", nil)
	rec := httptest.NewRecorder()
	f.dashboard.Ping(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}
