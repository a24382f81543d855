package services

import (
	"crypto/sha1"
	"encoding/hex"
	"log/slog"
	"math"
	"net/url"
	"sort"
	"strconv"

	"mm-server/api/matrimony"
	"mm-server/dao/redis"
	"mm-server/models"
	"mm-server/normalizer"
)

// SearchService translates search forms into backend payloads and normalizes
// whatever comes back. Identical payloads within the cache window are served
// from Redis without touching the backend.
type SearchService struct {
	matrimonyAPI matrimony.MatrimonyAPI
	sessionDao   *redis.RedisSessionDao
}

// NewSearchService constructs a SearchService with its dependencies.
func NewSearchService(matrimonyAPI matrimony.MatrimonyAPI, sessionDao *redis.RedisSessionDao) *SearchService {
	return &SearchService{
		matrimonyAPI: matrimonyAPI,
		sessionDao:   sessionDao,
	}
}

// QuickSearch runs the four-field anonymous search.
func (s *SearchService) QuickSearch(filters models.QuickSearchFilters) ([]models.Profile, error) {
	return s.search(filters.ToValues())
}

// AdvancedSearch runs the full criteria search.
func (s *SearchService) AdvancedSearch(filters models.AdvancedSearchFilters) ([]models.Profile, error) {
	return s.search(filters.ToValues())
}

func (s *SearchService) search(payload url.Values) ([]models.Profile, error) {
	key := payloadCacheKey(payload)

	cached, err := s.sessionDao.GetCachedSearchResults(key)
	if err != nil {
		slog.Warn("[SearchService] search cache lookup failed", "err", err)
	}
	if cached != nil {
		slog.Info("[SearchService] serving cached results", "key", key, "count", len(cached))
		return cached, nil
	}

	response, err := s.matrimonyAPI.SearchProfiles(payload)
	if err != nil {
		return nil, err
	}

	// A false status is "no matches" or a backend-side validation complaint.
	// Either way the app gets an empty list, not an error.
	if !response.Status {
		slog.Warn("[SearchService] backend declined search", "message", response.Message)
		return []models.Profile{}, nil
	}

	raw := normalizer.DecodeList(response.Data)
	profiles := normalizer.NormalizeList(raw, models.RESULT_LIMIT)
	sortProfilesByAge(profiles)

	if err := s.sessionDao.CacheSearchResults(key, profiles); err != nil {
		slog.Warn("[SearchService] failed to cache results", "key", key, "err", err)
	}

	return profiles, nil
}

// payloadCacheKey hashes the encoded payload. url.Values.Encode sorts keys, so
// equal filter sets hash equally regardless of construction order.
func payloadCacheKey(payload url.Values) string {
	sum := sha1.Sum([]byte(payload.Encode()))
	return hex.EncodeToString(sum[:])
}

// sortProfilesByAge orders results youngest first. Profiles whose age did not
// parse sink to the end while keeping their upstream relative order.
func sortProfilesByAge(profiles []models.Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return ageSortKey(profiles[i].Age) < ageSortKey(profiles[j].Age)
	})
}

func ageSortKey(age string) int {
	v, err := strconv.Atoi(age)
	if err != nil {
		return math.MaxInt
	}
	return v
}
