package normalizer

import (
	"math"
	"strconv"
	"strings"
)

// RawProfile is a single upstream record. The backend names fields
// inconsistently across endpoints (user_name vs name vs profile_name, coded
// vs literal religion values, numbers vs numeric strings), so records stay
// duck-typed until normalization.
type RawProfile map[string]any

// Field renders the named field as a trimmed string. JSON numbers are
// formatted without a trailing decimal point when integral; missing and
// non-scalar values come back empty.
func (r RawProfile) Field(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// FirstNonEmpty walks keys in order and returns the first usable value. This
// is the precedence-chain primitive; each logical field defines its order
// exactly once in normalizer.go.
func (r RawProfile) FirstNonEmpty(keys ...string) string {
	for _, key := range keys {
		if v := r.Field(key); v != "" {
			return v
		}
	}
	return ""
}

func (r RawProfile) intField(key string, fallback int) int {
	s := r.Field(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
