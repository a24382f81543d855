package services

import (
	"errors"
	"log/slog"

	"mm-server/api/matrimony"
	"mm-server/dao/redis"
	"mm-server/models"
	"mm-server/normalizer"
)

// ErrProfileNotFound signals that the backend has no profile for the id.
var ErrProfileNotFound = errors.New("profile not found")

// ErrNoClientID signals a request that needs a client id with a session that
// does not carry one.
var ErrNoClientID = errors.New("no client id available for session")

// ProfileService serves single profiles, the member's shortlist and the
// dashboard counters, all keyed off the caller's session.
type ProfileService struct {
	matrimonyAPI matrimony.MatrimonyAPI
	sessionDao   *redis.RedisSessionDao
}

// NewProfileService constructs a ProfileService with its dependencies.
func NewProfileService(matrimonyAPI matrimony.MatrimonyAPI, sessionDao *redis.RedisSessionDao) *ProfileService {
	return &ProfileService{
		matrimonyAPI: matrimonyAPI,
		sessionDao:   sessionDao,
	}
}

// GetProfile fetches one profile. An empty profileID means "my own profile"
// and resolves through the session's client id.
func (s *ProfileService) GetProfile(token, profileID string) (*models.Profile, error) {
	id := profileID
	if id == "" {
		sessionID, err := s.sessionDao.TamilClientID(token)
		if err != nil {
			return nil, err
		}
		id = sessionID
	}
	if id == "" {
		return nil, ErrNoClientID
	}

	response, err := s.matrimonyAPI.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if !response.Status {
		slog.Warn("[ProfileService] backend has no profile", "id", id, "message", response.Message)
		return nil, ErrProfileNotFound
	}

	raw := normalizer.DecodeRecord(response.Data)
	if raw == nil {
		return nil, ErrProfileNotFound
	}

	profile := normalizer.NormalizeRecord(raw)
	return &profile, nil
}

// GetSelectedProfiles fetches the member's shortlist, normalized. A declined
// or empty answer is an empty list.
func (s *ProfileService) GetSelectedProfiles(token string) ([]models.Profile, error) {
	id, err := s.sessionDao.TamilClientID(token)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNoClientID
	}

	response, err := s.matrimonyAPI.GetSelectedProfiles(id)
	if err != nil {
		return nil, err
	}
	if !response.Status {
		slog.Warn("[ProfileService] backend declined shortlist", "id", id, "message", response.Message)
		return []models.Profile{}, nil
	}

	raw := normalizer.DecodeList(response.Data)
	return normalizer.NormalizeList(raw, models.RESULT_LIMIT), nil
}

// RecordViewedProfile marks a profile as viewed by this session.
func (s *ProfileService) RecordViewedProfile(token, profileID string) error {
	return s.sessionDao.AddViewedProfile(token, profileID)
}

// GetDashboardStats serves the dashboard counters, preferring the Redis copy
// the refresher maintains and falling through to the backend on a miss.
func (s *ProfileService) GetDashboardStats(token string) (*models.DashboardStats, error) {
	cached, err := s.sessionDao.GetCachedDashboardStats(token)
	if err != nil {
		slog.Warn("[ProfileService] stats cache lookup failed", "err", err)
	}
	if cached != nil {
		return cached, nil
	}
	return s.FetchDashboardStats(token)
}

// FetchDashboardStats pulls fresh counters from the backend and caches them.
func (s *ProfileService) FetchDashboardStats(token string) (*models.DashboardStats, error) {
	id, err := s.sessionDao.TamilClientID(token)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNoClientID
	}

	response, err := s.matrimonyAPI.GetDashboardStats(id)
	if err != nil {
		return nil, err
	}

	var stats models.DashboardStats
	if response.Status {
		stats = normalizer.NormalizeStats(normalizer.DecodeRecord(response.Data))
	} else {
		// Counters render as zeros rather than an error screen.
		slog.Warn("[ProfileService] backend declined stats", "id", id, "message", response.Message)
		stats = normalizer.NormalizeStats(normalizer.RawProfile{})
	}

	if err := s.sessionDao.CacheDashboardStats(token, stats); err != nil {
		slog.Warn("[ProfileService] failed to cache stats", "err", err)
	}
	return &stats, nil
}
