package matrimony

import (
	"fmt"
	"net/url"

	"mm-server/config"
	"mm-server/models"
	"mm-server/util"
)

// MatrimonyApiClientMock embeds mocked logic for the matrimony api client.
// Every call answers with a canned envelope from the resources directory, so
// the full stack runs without the production backend.
type MatrimonyApiClientMock struct {
}

// NewMatrimonyApiClientMock creates a new instance of MatrimonyApiClientMock
func NewMatrimonyApiClientMock() *MatrimonyApiClientMock {
	return &MatrimonyApiClientMock{}
}

func (c *MatrimonyApiClientMock) readFixture(resource string) (*models.APIResponse, error) {
	response, err := util.ReadAPIResponseFromJSON(config.GetResourcePath(resource))
	if err != nil {
		fmt.Println("Could not read mock response from json: " + resource)
		return nil, err
	}
	return response, nil
}

// Login answers with the canned login envelope regardless of credentials
func (c *MatrimonyApiClientMock) Login(email, password string) (*models.APIResponse, error) {
	return c.readFixture(config.LOGIN_RESPONSE_RESOURCE)
}

// Register answers with the canned login envelope (registration mirrors it)
func (c *MatrimonyApiClientMock) Register(form url.Values) (*models.APIResponse, error) {
	return c.readFixture(config.LOGIN_RESPONSE_RESOURCE)
}

// SearchProfiles answers with the canned search results
func (c *MatrimonyApiClientMock) SearchProfiles(payload url.Values) (*models.APIResponse, error) {
	return c.readFixture(config.SEARCH_PROFILES_RESPONSE_RESOURCE)
}

// GetProfile answers with the canned single-profile envelope
func (c *MatrimonyApiClientMock) GetProfile(tamilClientID string) (*models.APIResponse, error) {
	return c.readFixture(config.PROFILE_RESPONSE_RESOURCE)
}

// GetSelectedProfiles answers with the canned shortlist
func (c *MatrimonyApiClientMock) GetSelectedProfiles(tamilClientID string) (*models.APIResponse, error) {
	return c.readFixture(config.SELECTED_PROFILES_RESPONSE_RESOURCE)
}

// GetDashboardStats answers with the canned dashboard counters
func (c *MatrimonyApiClientMock) GetDashboardStats(tamilClientID string) (*models.APIResponse, error) {
	return c.readFixture(config.DASHBOARD_STATS_RESPONSE_RESOURCE)
}
