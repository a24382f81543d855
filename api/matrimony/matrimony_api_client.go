package matrimony

import (
	"net/url"

	"mm-server/api"
	"mm-server/config"
	"mm-server/models"
)

// MatrimonyApiClient embeds the common HTTPClient
type MatrimonyApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewMatrimonyApiClient creates a new instance of MatrimonyApiClient
func NewMatrimonyApiClient(httpClient *api.HTTPClient) *MatrimonyApiClient {
	return &MatrimonyApiClient{
		HTTPClient: httpClient,
	}
}

// Login authenticates a user against the backend
func (c *MatrimonyApiClient) Login(email, password string) (*models.APIResponse, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var response models.APIResponse
	if err := c.PostForm(config.LOGIN_ENDPOINT, form, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Register forwards a registration form to the backend as-is
func (c *MatrimonyApiClient) Register(form url.Values) (*models.APIResponse, error) {
	var response models.APIResponse
	if err := c.PostForm(config.REGISTER_ENDPOINT, form, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SearchProfiles submits a built search payload and returns the raw results
func (c *MatrimonyApiClient) SearchProfiles(payload url.Values) (*models.APIResponse, error) {
	var response models.APIResponse
	if err := c.PostForm(config.SEARCH_PROFILES_ENDPOINT, payload, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetProfile retrieves a single profile given a tamil client id
func (c *MatrimonyApiClient) GetProfile(tamilClientID string) (*models.APIResponse, error) {
	form := url.Values{}
	form.Set("tamil_client_id", tamilClientID)

	var response models.APIResponse
	if err := c.PostForm(config.GET_PROFILE_ENDPOINT, form, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetSelectedProfiles retrieves the shortlisted profiles for a client
func (c *MatrimonyApiClient) GetSelectedProfiles(tamilClientID string) (*models.APIResponse, error) {
	form := url.Values{}
	form.Set("tamil_client_id", tamilClientID)

	var response models.APIResponse
	if err := c.PostForm(config.SELECTED_PROFILES_ENDPOINT, form, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetDashboardStats retrieves the dashboard quick-info counters for a client
func (c *MatrimonyApiClient) GetDashboardStats(tamilClientID string) (*models.APIResponse, error) {
	form := url.Values{}
	form.Set("tamil_client_id", tamilClientID)

	var response models.APIResponse
	if err := c.PostForm(config.DASHBOARD_STATS_ENDPOINT, form, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
