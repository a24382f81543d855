package models

// DashboardStats is the quick-info block shown on the app dashboard.
type DashboardStats struct {
	UserPoints      int `json:"user_points"`
	ViewedProfiles  int `json:"viewed_profiles"`
	ViewsLimit      int `json:"views_limit"`
	SelectedCount   int `json:"no_sel_profiles"`
	ConnectRequests int `json:"connect_requests"`
}
