package matrimony

import (
	"net/url"

	"mm-server/models"
)

// MatrimonyAPI defines the interface for interacting with the matrimony backend
type MatrimonyAPI interface {
	Login(email, password string) (*models.APIResponse, error)
	Register(form url.Values) (*models.APIResponse, error)
	SearchProfiles(payload url.Values) (*models.APIResponse, error)
	GetProfile(tamilClientID string) (*models.APIResponse, error)
	GetSelectedProfiles(tamilClientID string) (*models.APIResponse, error)
	GetDashboardStats(tamilClientID string) (*models.APIResponse, error)
}
