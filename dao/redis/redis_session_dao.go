package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"mm-server/config"
	"mm-server/db"
	"mm-server/models"
	"mm-server/normalizer"
)

// Versioned key formats; bump the suffix when the stored shape changes.
const SESSION_KEY_FORMAT_V1 = "session_v1:%s"
const VIEWED_PROFILES_KEY_FORMAT_V1 = "viewed_profiles_v1:%s"
const SEARCH_CACHE_KEY_FORMAT_V1 = "search_cache_v1:%s"
const DASHBOARD_STATS_KEY_FORMAT_V1 = "dashboard_stats_v1:%s"

// SessionData is the per-token record stored in Redis. UserData keeps the
// upstream login blob verbatim so later lookups can read fields we did not
// anticipate at login time.
type SessionData struct {
	Token         string          `json:"token"`
	UserSession   bool            `json:"userSession"`
	ClientID      string          `json:"clientId"`
	TamilClientID string          `json:"tamilClientId"`
	Username      string          `json:"username"`
	UserData      json.RawMessage `json:"userData"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RedisSessionDao persists sessions, viewed-profile sets and short-lived
// caches on top of the RedisClient interface.
type RedisSessionDao struct {
	redisClient db.RedisClient
}

// NewRedisSessionDao creates a DAO backed by the given Redis client.
func NewRedisSessionDao(redisClient db.RedisClient) *RedisSessionDao {
	return &RedisSessionDao{
		redisClient: redisClient,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf(SESSION_KEY_FORMAT_V1, token)
}

func viewedProfilesKey(token string) string {
	return fmt.Sprintf(VIEWED_PROFILES_KEY_FORMAT_V1, token)
}

func searchCacheKey(payloadHash string) string {
	return fmt.Sprintf(SEARCH_CACHE_KEY_FORMAT_V1, payloadHash)
}

func dashboardStatsKey(token string) string {
	return fmt.Sprintf(DASHBOARD_STATS_KEY_FORMAT_V1, token)
}

// SetSession stores the login result under the token. The upstream user blob
// carries the client id under different keys depending on the record's era, so
// the id chain is resolved once here and cached in the session record.
func (dao *RedisSessionDao) SetSession(token string, user normalizer.RawProfile) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user data: %w", err)
	}

	session := SessionData{
		Token:         token,
		UserSession:   true,
		ClientID:      user.Field("client_id"),
		TamilClientID: user.FirstNonEmpty("tamil_client_id", "client_id", "profileid"),
		Username:      user.FirstNonEmpty("user_name", "name"),
		UserData:      userData,
		CreatedAt:     time.Now().UTC(),
	}

	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Duration(config.SESSION_TTL_HOURS) * time.Hour
	return dao.redisClient.SetWithTTL(sessionKey(token), string(blob), ttl)
}

// GetSession fetches the session record for a token. A missing or expired
// token answers (nil, nil).
func (dao *RedisSessionDao) GetSession(token string) (*SessionData, error) {
	blob, err := dao.redisClient.Get(sessionKey(token))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session SessionData
	if err := json.Unmarshal([]byte(blob), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// IsLoggedIn reports whether a live session exists for the token.
func (dao *RedisSessionDao) IsLoggedIn(token string) bool {
	if token == "" {
		return false
	}
	session, err := dao.GetSession(token)
	return err == nil && session != nil
}

// TamilClientID resolves the backend client id for a token, or "" when the
// session is missing.
func (dao *RedisSessionDao) TamilClientID(token string) (string, error) {
	session, err := dao.GetSession(token)
	if err != nil || session == nil {
		return "", err
	}
	return session.TamilClientID, nil
}

// ClearSession drops the session and its viewed-profiles set.
func (dao *RedisSessionDao) ClearSession(token string) error {
	if err := dao.redisClient.Del(sessionKey(token)); err != nil {
		return err
	}
	return dao.redisClient.Del(viewedProfilesKey(token))
}

// AddViewedProfile appends a profile id to the token's viewed set, ignoring
// duplicates.
func (dao *RedisSessionDao) AddViewedProfile(token, profileID string) error {
	viewed, err := dao.GetViewedProfiles(token)
	if err != nil {
		return err
	}
	for _, id := range viewed {
		if id == profileID {
			return nil
		}
	}
	viewed = append(viewed, profileID)

	blob, err := json.Marshal(viewed)
	if err != nil {
		return fmt.Errorf("failed to marshal viewed profiles: %w", err)
	}

	ttl := time.Duration(config.SESSION_TTL_HOURS) * time.Hour
	return dao.redisClient.SetWithTTL(viewedProfilesKey(token), string(blob), ttl)
}

// GetViewedProfiles lists the profile ids the token has viewed, oldest first.
func (dao *RedisSessionDao) GetViewedProfiles(token string) ([]string, error) {
	blob, err := dao.redisClient.Get(viewedProfilesKey(token))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var viewed []string
	if err := json.Unmarshal([]byte(blob), &viewed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal viewed profiles: %w", err)
	}
	return viewed, nil
}

// CacheSearchResults stores normalized search results under the payload hash
// for a couple of minutes, so repeated identical searches skip the backend.
func (dao *RedisSessionDao) CacheSearchResults(payloadHash string, profiles []models.Profile) error {
	blob, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}
	ttl := time.Duration(config.SEARCH_CACHE_TTL_SECONDS) * time.Second
	return dao.redisClient.SetWithTTL(searchCacheKey(payloadHash), string(blob), ttl)
}

// GetCachedSearchResults fetches cached results for a payload hash. A miss
// answers (nil, nil).
func (dao *RedisSessionDao) GetCachedSearchResults(payloadHash string) ([]models.Profile, error) {
	blob, err := dao.redisClient.Get(searchCacheKey(payloadHash))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var profiles []models.Profile
	if err := json.Unmarshal([]byte(blob), &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached search results: %w", err)
	}
	return profiles, nil
}

// CacheDashboardStats stores the latest dashboard counters for a token.
func (dao *RedisSessionDao) CacheDashboardStats(token string, stats models.DashboardStats) error {
	blob, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}
	ttl := time.Duration(config.DASHBOARD_STATS_CACHE_TTL_MINUTES) * time.Minute
	return dao.redisClient.SetWithTTL(dashboardStatsKey(token), string(blob), ttl)
}

// GetCachedDashboardStats fetches cached counters for a token. A miss answers
// (nil, nil).
func (dao *RedisSessionDao) GetCachedDashboardStats(token string) (*models.DashboardStats, error) {
	blob, err := dao.redisClient.Get(dashboardStatsKey(token))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(blob), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard stats: %w", err)
	}
	return &stats, nil
}

// ListActiveSessionTokens lists the tokens with a live session, for the
// periodic stats refresher.
func (dao *RedisSessionDao) ListActiveSessionTokens() ([]string, error) {
	keys, err := dao.redisClient.Keys(fmt.Sprintf(SESSION_KEY_FORMAT_V1, "*"))
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf(SESSION_KEY_FORMAT_V1, "")
	tokens := make([]string, 0, len(keys))
	for _, key := range keys {
		tokens = append(tokens, strings.TrimPrefix(key, prefix))
	}
	return tokens, nil
}
