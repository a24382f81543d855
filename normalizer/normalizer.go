package normalizer

import (
	"encoding/json"
	"strconv"
	"strings"

	"mm-server/config"
	"mm-server/mappings"
	"mm-server/models"
)

// Fallbacks handed to the app when a record carries no usable value. The
// caste default is the documented intent of the current backend, not a guess.
const NAME_FALLBACK = "Unknown"
const OCCUPATION_FALLBACK = "Not Specified"
const LOCATION_FALLBACK = "Unknown"
const CASTE_FALLBACK = "Nadar"
const LAST_ACTIVE_FALLBACK = "Recent"
const FIELD_FALLBACK = "-"

// ResolveID picks the profile identifier. A record with none of these fields
// still normalizes; it just carries an empty identifier.
func ResolveID(r RawProfile) string {
	return r.FirstNonEmpty("profile_id", "id", "tamil_profile_id")
}

// ResolveName picks the display name across the three namings the backend
// uses, falling back to "Unknown".
func ResolveName(r RawProfile) string {
	if name := r.FirstNonEmpty("name", "user_name", "profile_name"); name != "" {
		return name
	}
	return NAME_FALLBACK
}

// ResolveOccupation resolves the occupation label from either naming,
// translating codes through the occupation table.
func ResolveOccupation(r RawProfile) string {
	raw := r.FirstNonEmpty("occupation", "profession")
	return mappings.GetLabel(mappings.OCCUPATION_MAP, raw, OCCUPATION_FALLBACK)
}

// ResolveEducation handles the three shapes the backend sends: an array of
// qualifications (first one wins), a scalar, or the legacy padippu alias.
// The returned value is still raw; NormalizeRecord applies the label table.
func ResolveEducation(r RawProfile) string {
	if arr, ok := r["education"].([]any); ok {
		if len(arr) == 0 {
			return ""
		}
		if s, ok := arr[0].(string); ok {
			return strings.TrimSpace(s)
		}
		return ""
	}
	if edu := r.Field("education"); edu != "" {
		return edu
	}
	return r.Field("padippu")
}

// ResolveLocation prefers the backend's own location string, then rebuilds
// one from the city and district codes, then gives up with "Unknown".
func ResolveLocation(r RawProfile) string {
	if loc := r.Field("location"); loc != "" && loc != LOCATION_FALLBACK {
		return loc
	}

	city := mappings.GetLabel(mappings.LOCATION_MAP, r.Field("city"), "")
	district := mappings.GetLabel(mappings.LOCATION_MAP, r.Field("district"), "")

	parts := make([]string, 0, 2)
	for _, p := range []string{city, district} {
		if p != "" && p != "0" && p != LOCATION_FALLBACK {
			parts = append(parts, p)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return LOCATION_FALLBACK
}

// BuildImageURL returns an absolute image URL, or "" when the record has
// none (the app substitutes its local placeholder). profile_image is already
// absolute; the photo fields only name a file under the uploads host.
func BuildImageURL(r RawProfile) string {
	if img := r.Field("profile_image"); img != "" {
		return img
	}
	if photo := r.Field("user_photo"); photo != "" {
		return config.MATRIMONY_UPLOADS_BASE + "/" + photo
	}
	if photo := r.Field("photo_data1"); photo != "" {
		return config.MATRIMONY_UPLOADS_BASE + "/" + photo
	}
	return ""
}

// NormalizeHeight renders height for display. Plain numbers above 100 are
// centimeters; any other present value already carries its own unit text.
func NormalizeHeight(r RawProfile) string {
	if h := r.Field("height"); h != "" {
		if cm, err := strconv.ParseFloat(h, 64); err == nil && cm > 100 {
			return h + " cm"
		}
		return h
	}
	feet, inches := r.Field("height_feet"), r.Field("height_inches")
	if feet != "" && inches != "" {
		return feet + "ft " + inches + "in"
	}
	return FIELD_FALLBACK
}

// ResolveVerified checks the three conventions the backend uses for a
// verified profile; any one of them suffices.
func ResolveVerified(r RawProfile) bool {
	if r.Field("ver_flag") == "1" {
		return true
	}
	if r.Field("profile_status") == "1" {
		return true
	}
	if viewed, ok := r["viewed"].(bool); ok && viewed {
		return true
	}
	return false
}

// NormalizeRecord converts one upstream record into its canonical shape. The
// input is never mutated and every field lands on a defined fallback, so a
// malformed record renders with placeholders instead of failing the list.
func NormalizeRecord(r RawProfile) models.Profile {
	id := ResolveID(r)

	age := r.Field("age")
	if age == "" {
		age = FIELD_FALLBACK
	}

	lastActive := r.Field("lastActive")
	if lastActive == "" {
		lastActive = LAST_ACTIVE_FALLBACK
	}

	return models.Profile{
		ID:           id,
		ProfileID:    id,
		Name:         ResolveName(r),
		Age:          age,
		Height:       NormalizeHeight(r),
		Religion:     mappings.GetLabel(mappings.RELIGION_MAP, r.Field("religion"), FIELD_FALLBACK),
		Caste:        mappings.GetLabel(mappings.CASTE_MAP, r.Field("caste"), CASTE_FALLBACK),
		Education:    mappings.GetLabel(mappings.EDUCATION_MAP, ResolveEducation(r), FIELD_FALLBACK),
		Occupation:   ResolveOccupation(r),
		Location:     ResolveLocation(r),
		ProfileImage: BuildImageURL(r),
		Verified:     ResolveVerified(r),
		LastActive:   lastActive,
	}
}

// NormalizeList normalizes at most max records, preserving upstream order.
// max <= 0 falls back to the standard result cap. Truncation happens before
// normalization; the kept set is the same either way.
func NormalizeList(raw []RawProfile, max int) []models.Profile {
	if max <= 0 {
		max = models.RESULT_LIMIT
	}
	if len(raw) > max {
		raw = raw[:max]
	}

	profiles := make([]models.Profile, 0, len(raw))
	for _, r := range raw {
		profiles = append(profiles, NormalizeRecord(r))
	}
	return profiles
}

// DecodeList decodes an envelope's data payload into raw records. Anything
// that is not a JSON array (error envelopes, single objects, absent data)
// yields an empty list rather than an error; the caller surfaces the
// envelope's own status flag.
func DecodeList(data []byte) []RawProfile {
	if len(data) == 0 {
		return nil
	}
	var raw []RawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

// DecodeRecord decodes an envelope's data payload into one raw record. The
// backend answers single-profile endpoints with either a bare object or a
// one-element array; both shapes land here. Anything else yields nil.
func DecodeRecord(data []byte) RawProfile {
	if len(data) == 0 {
		return nil
	}
	var raw RawProfile
	if err := json.Unmarshal(data, &raw); err == nil {
		return raw
	}
	if list := DecodeList(data); len(list) > 0 {
		return list[0]
	}
	return nil
}

// NormalizeStats maps the dashboard-stats payload onto the quick-info block.
// Counters default to zero; the views limit defaults to the standard 50.
func NormalizeStats(r RawProfile) models.DashboardStats {
	return models.DashboardStats{
		UserPoints:      r.intField("user_points", 0),
		ViewedProfiles:  r.intField("viewed_profiles", 0),
		ViewsLimit:      r.intField("views_limit", models.RESULT_LIMIT),
		SelectedCount:   r.intField("no_sel_profiles", 0),
		ConnectRequests: r.intField("connect_requests", 0),
	}
}
