package services

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mm-server/dao/redis"
	"mm-server/db"
	"mm-server/models"
)

// stubMatrimonyAPI answers from canned envelopes and records what it was
// asked, so tests can assert on outbound payloads and call counts.
type stubMatrimonyAPI struct {
	searchResponse *models.APIResponse
	searchErr      error
	searchCalls    int
	lastPayload    url.Values

	loginResponse    *models.APIResponse
	profileResponse  *models.APIResponse
	selectedResponse *models.APIResponse
	statsResponse    *models.APIResponse
	statsCalls       int
	lastClientID     string
}

func (s *stubMatrimonyAPI) Login(email, password string) (*models.APIResponse, error) {
	return s.loginResponse, nil
}

func (s *stubMatrimonyAPI) Register(form url.Values) (*models.APIResponse, error) {
	return &models.APIResponse{Status: true}, nil
}

func (s *stubMatrimonyAPI) SearchProfiles(payload url.Values) (*models.APIResponse, error) {
	s.searchCalls++
	s.lastPayload = payload
	return s.searchResponse, s.searchErr
}

func (s *stubMatrimonyAPI) GetProfile(tamilClientID string) (*models.APIResponse, error) {
	s.lastClientID = tamilClientID
	if s.profileResponse == nil {
		return &models.APIResponse{Status: false, Message: "not found"}, nil
	}
	return s.profileResponse, nil
}

func (s *stubMatrimonyAPI) GetSelectedProfiles(tamilClientID string) (*models.APIResponse, error) {
	s.lastClientID = tamilClientID
	if s.selectedResponse == nil {
		return &models.APIResponse{Status: true, Data: json.RawMessage(`[]`)}, nil
	}
	return s.selectedResponse, nil
}

func (s *stubMatrimonyAPI) GetDashboardStats(tamilClientID string) (*models.APIResponse, error) {
	s.statsCalls++
	s.lastClientID = tamilClientID
	return s.statsResponse, nil
}

func envelope(t *testing.T, status bool, data any) *models.APIResponse {
	t.Helper()
	blob, err := json.Marshal(data)
	require.NoError(t, err)
	return &models.APIResponse{Status: status, Data: blob}
}

func newSearchFixture(t *testing.T, response *models.APIResponse) (*SearchService, *stubMatrimonyAPI) {
	api := &stubMatrimonyAPI{searchResponse: response}
	dao := redis.NewRedisSessionDao(db.NewMockRedisClient(context.Background()))
	return NewSearchService(api, dao), api
}

func TestQuickSearchNormalizesAndSortsByAge(t *testing.T) {
	response := envelope(t, true, []map[string]any{
		{"profile_id": "P2", "name": "Lakshmi", "age": "31"},
		{"profile_id": "P1", "name": "Kavitha", "age": "24"},
		{"profile_id": "P3", "name": "Meena"},
	})
	service, api := newSearchFixture(t, response)

	profiles, err := service.QuickSearch(models.QuickSearchFilters{
		LookingFor: "BRIDE",
		Age:        "25",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	// Youngest first; the ageless record sinks to the end.
	assert.Equal(t, "P1", profiles[0].ID)
	assert.Equal(t, "P2", profiles[1].ID)
	assert.Equal(t, "P3", profiles[2].ID)
	assert.Equal(t, "-", profiles[2].Age)

	assert.Equal(t, "Female", api.lastPayload.Get("gender"))
	assert.Equal(t, "25", api.lastPayload.Get("age_from"))
	assert.Equal(t, "60", api.lastPayload.Get("age_to"))
	assert.Equal(t, "50", api.lastPayload.Get("limit"))
}

func TestSearchServesSecondIdenticalQueryFromCache(t *testing.T) {
	response := envelope(t, true, []map[string]any{
		{"profile_id": "P1", "name": "Kavitha", "age": "24"},
	})
	service, api := newSearchFixture(t, response)

	filters := models.AdvancedSearchFilters{Seeking: "WOMAN", AgeFrom: "20", AgeTo: "30"}

	first, err := service.AdvancedSearch(filters)
	require.NoError(t, err)
	second, err := service.AdvancedSearch(filters)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.searchCalls)
}

func TestSearchDeclinedStatusYieldsEmptyList(t *testing.T) {
	service, _ := newSearchFixture(t, &models.APIResponse{
		Status:  false,
		Message: "No profiles found",
	})

	profiles, err := service.QuickSearch(models.QuickSearchFilters{LookingFor: "GROOM", Age: "30"})
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestSearchMalformedDataYieldsEmptyList(t *testing.T) {
	service, _ := newSearchFixture(t, &models.APIResponse{
		Status: true,
		Data:   json.RawMessage(`{"error":"unexpected shape"}`),
	})

	profiles, err := service.QuickSearch(models.QuickSearchFilters{LookingFor: "BRIDE", Age: "22"})
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestPayloadCacheKeyStableAcrossConstructionOrder(t *testing.T) {
	a := url.Values{}
	a.Set("gender", "Female")
	a.Set("age_from", "20")

	b := url.Values{}
	b.Set("age_from", "20")
	b.Set("gender", "Female")

	assert.Equal(t, payloadCacheKey(a), payloadCacheKey(b))

	b.Set("age_from", "21")
	assert.NotEqual(t, payloadCacheKey(a), payloadCacheKey(b))
}
