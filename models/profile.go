package models

// Profile is the canonical, UI-ready record produced by the normalizer. Every
// field carries a deterministic fallback so the app never renders a missing
// value.
type Profile struct {
	ID           string `json:"id"`
	ProfileID    string `json:"profile_id"`
	Name         string `json:"name"`
	Age          string `json:"age"`
	Height       string `json:"height"`
	Religion     string `json:"religion"`
	Caste        string `json:"caste"`
	Education    string `json:"education"`
	Occupation   string `json:"occupation"`
	Location     string `json:"location"`
	ProfileImage string `json:"profile_image,omitempty"`
	Verified     bool   `json:"verified"`
	LastActive   string `json:"last_active"`
}
