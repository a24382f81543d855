package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRealSelection(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"SELECT_RELIGION", false},
		{"SELECT_", false},
		{"1", true},
		{" 1 ", true},
		{"Nadar", true},
		{"select_religion", true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRealSelection(tc.value), "value=%q", tc.value)
	}
}

func TestNormalizeAgeRange(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		wantFrom string
		wantTo   string
	}{
		{"in range", "25", "35", "25", "35"},
		{"inverted swaps silently", "40", "25", "25", "40"},
		{"below floor clamps", "12", "30", "18", "30"},
		{"above ceiling clamps", "25", "120", "25", "90"},
		{"malformed from defaults to floor", "abc", "30", "18", "30"},
		{"malformed to defaults to ceiling", "25", "", "25", "90"},
		{"both malformed", "", "x", "18", "90"},
		{"clamp then swap", "95", "10", "18", "90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from, to := NormalizeAgeRange(tc.from, tc.to)
			assert.Equal(t, tc.wantFrom, from)
			assert.Equal(t, tc.wantTo, to)
		})
	}
}

func TestNormalizeAgeRangeIdempotent(t *testing.T) {
	from, to := NormalizeAgeRange("40", "25")
	again1, again2 := NormalizeAgeRange(from, to)
	assert.Equal(t, from, again1)
	assert.Equal(t, to, again2)
}

func TestQuickSearchToValues(t *testing.T) {
	q := QuickSearchFilters{
		LookingFor: "BRIDE",
		Age:        "25",
		Religion:   "SELECT_RELIGION",
		Caste:      "SELECT_CASTE",
	}.ToValues()

	// Placeholders are dropped, leaving exactly the four mandatory keys.
	assert.Len(t, q, 4)
	assert.Equal(t, "Female", q.Get("gender"))
	assert.Equal(t, "25", q.Get("age_from"))
	assert.Equal(t, "60", q.Get("age_to"))
	assert.Equal(t, "50", q.Get("limit"))
}

func TestQuickSearchToValuesWithSelections(t *testing.T) {
	q := QuickSearchFilters{
		LookingFor: "GROOM",
		Age:        "abc",
		Religion:   "1",
		Caste:      "2",
	}.ToValues()

	assert.Equal(t, "Male", q.Get("gender"))
	assert.Equal(t, "18", q.Get("age_from"))
	assert.Equal(t, "60", q.Get("age_to"))
	assert.Equal(t, "1", q.Get("religion"))
	assert.Equal(t, "2", q.Get("caste"))
}

func TestAdvancedSearchToValuesFieldRenames(t *testing.T) {
	q := AdvancedSearchFilters{
		SearchID:      " NM123 ",
		Seeking:       "WOMAN",
		AgeFrom:       "40",
		AgeTo:         "25",
		Qualification: "5",
		Work:          "3",
		Color:         "Fair",
	}.ToValues()

	assert.Equal(t, "Female", q.Get("gender"))
	// Inverted bounds arrive swapped, never rejected.
	assert.Equal(t, "25", q.Get("age_from"))
	assert.Equal(t, "40", q.Get("age_to"))
	assert.Equal(t, "NM123", q.Get("profile_id"))
	assert.Equal(t, "5", q.Get("education"))
	assert.Equal(t, "3", q.Get("occupation"))
	assert.Equal(t, "Fair", q.Get("complexion"))
	assert.Equal(t, "50", q.Get("limit"))
}

func TestAdvancedSearchToValuesOmitsPlaceholders(t *testing.T) {
	q := AdvancedSearchFilters{
		Seeking:         "MAN",
		District:        "SELECT_DISTRICT",
		City:            "",
		Religion:        "SELECT_RELIGION",
		NativeDirection: "  ",
	}.ToValues()

	assert.Equal(t, "Male", q.Get("gender"))
	assert.Len(t, q, 4)
	for _, key := range []string{"district", "city", "religion", "native_direction", "profile_id"} {
		_, present := q[key]
		assert.False(t, present, "key %q should be absent", key)
	}
}

func TestGenderMappingDeterministic(t *testing.T) {
	// Anything that is not the bride/woman sentinel maps to Male.
	assert.Equal(t, "Male", QuickSearchFilters{LookingFor: "bride"}.ToValues().Get("gender"))
	assert.Equal(t, "Male", QuickSearchFilters{LookingFor: ""}.ToValues().Get("gender"))
	assert.Equal(t, "Male", AdvancedSearchFilters{Seeking: "woman"}.ToValues().Get("gender"))
}
