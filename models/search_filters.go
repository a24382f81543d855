package models

import (
	"net/url"
	"strconv"
	"strings"
)

// Placeholder sentinel prefix used by the app's pickers for "no selection made".
const SELECT_PLACEHOLDER_PREFIX = "SELECT_"

// Search bounds enforced on every outbound payload.
const AGE_MIN = 18
const AGE_MAX = 90
const RESULT_LIMIT = 50

// Quick search has always capped the upper age bound at 60 regardless of the
// chosen floor. Kept as-is; every revision of the app behaves this way.
const QUICK_SEARCH_AGE_TO = "60"

// QuickSearchFilters mirrors the quick (normal) search form shown to
// anonymous users: four fields only.
type QuickSearchFilters struct {
	LookingFor string `json:"lookingFor"` // BRIDE | GROOM
	Age        string `json:"age"`        // numeric string, 18..90
	Religion   string `json:"religion"`   // code or SELECT_ placeholder
	Caste      string `json:"caste"`
}

// AdvancedSearchFilters mirrors the advanced search form. Optional fields hold
// a SELECT_ placeholder or an empty string when the user made no selection.
type AdvancedSearchFilters struct {
	SearchID        string `json:"searchId"`
	Seeking         string `json:"seeking"` // WOMAN | MAN
	AgeFrom         string `json:"ageFrom"`
	AgeTo           string `json:"ageTo"`
	District        string `json:"district"`
	City            string `json:"city"`
	Religion        string `json:"religion"`
	Caste           string `json:"caste"`
	NativeDirection string `json:"nativeDirection"`
	Qualification   string `json:"qualification"`
	Work            string `json:"work"`
	Raasi           string `json:"raasi"`
	Star            string `json:"star"`
	Color           string `json:"color"`
	Jewel           string `json:"jewel"`
}

// IsRealSelection reports whether a filter value is an actual user selection,
// as opposed to an empty value or a SELECT_ placeholder sentinel. It is the
// single gate applied to every optional payload field.
func IsRealSelection(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	return !strings.HasPrefix(v, SELECT_PLACEHOLDER_PREFIX)
}

// NormalizeAgeRange clamps both bounds to [18, 90] (malformed values default
// to the bounds) and swaps them silently when inverted. Silent correction is
// the contract here, not validation. Idempotent.
func NormalizeAgeRange(from, to string) (string, string) {
	f := clampAge(parseAgeOr(from, AGE_MIN))
	t := clampAge(parseAgeOr(to, AGE_MAX))
	if f > t {
		f, t = t, f
	}
	return strconv.Itoa(f), strconv.Itoa(t)
}

func parseAgeOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func clampAge(v int) int {
	if v < AGE_MIN {
		return AGE_MIN
	}
	if v > AGE_MAX {
		return AGE_MAX
	}
	return v
}

// ToValues flattens the quick form into the backend's query payload.
func (f QuickSearchFilters) ToValues() url.Values {
	q := url.Values{}

	if f.LookingFor == "BRIDE" {
		q.Set("gender", "Female")
	} else {
		q.Set("gender", "Male")
	}

	// Quick search only asks for "at least this age".
	ageFrom, _ := NormalizeAgeRange(f.Age, f.Age)
	q.Set("age_from", ageFrom)
	q.Set("age_to", QUICK_SEARCH_AGE_TO)

	if IsRealSelection(f.Religion) {
		q.Set("religion", f.Religion)
	}
	if IsRealSelection(f.Caste) {
		q.Set("caste", f.Caste)
	}

	q.Set("limit", strconv.Itoa(RESULT_LIMIT))
	return q
}

// ToValues flattens the advanced form into the backend's query payload,
// renaming form fields to their backend keys. A key is present only when the
// value is a real selection.
func (f AdvancedSearchFilters) ToValues() url.Values {
	q := url.Values{}

	if f.Seeking == "WOMAN" {
		q.Set("gender", "Female")
	} else {
		q.Set("gender", "Male")
	}

	ageFrom, ageTo := NormalizeAgeRange(f.AgeFrom, f.AgeTo)
	q.Set("age_from", ageFrom)
	q.Set("age_to", ageTo)

	if id := strings.TrimSpace(f.SearchID); IsRealSelection(id) {
		q.Set("profile_id", id)
	}
	if IsRealSelection(f.District) {
		q.Set("district", f.District)
	}
	if IsRealSelection(f.City) {
		q.Set("city", f.City)
	}
	if IsRealSelection(f.Religion) {
		q.Set("religion", f.Religion)
	}
	if IsRealSelection(f.Caste) {
		q.Set("caste", f.Caste)
	}
	if IsRealSelection(f.NativeDirection) {
		q.Set("native_direction", f.NativeDirection)
	}
	if IsRealSelection(f.Qualification) {
		q.Set("education", f.Qualification)
	}
	if IsRealSelection(f.Work) {
		q.Set("occupation", f.Work)
	}
	if IsRealSelection(f.Raasi) {
		q.Set("raasi", f.Raasi)
	}
	if IsRealSelection(f.Star) {
		q.Set("star", f.Star)
	}
	if IsRealSelection(f.Color) {
		q.Set("complexion", f.Color)
	}
	if IsRealSelection(f.Jewel) {
		q.Set("jewel", f.Jewel)
	}

	q.Set("limit", strconv.Itoa(RESULT_LIMIT))
	return q
}
