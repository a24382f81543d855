package services

import (
	"log/slog"
	"time"

	"mm-server/dao/redis"
)

// StatsRefresherService keeps the dashboard counters warm for every live
// session, so the dashboard renders from Redis instead of waiting on the
// backend.
type StatsRefresherService struct {
	profileService *ProfileService
	sessionDao     *redis.RedisSessionDao
}

// NewStatsRefresherService constructs a refresher with its dependencies.
func NewStatsRefresherService(
	profileService *ProfileService,
	sessionDao *redis.RedisSessionDao,
) *StatsRefresherService {
	return &StatsRefresherService{
		profileService: profileService,
		sessionDao:     sessionDao,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *StatsRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *StatsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		slog.Info("[StatsRefresherService] running periodic stats refresh")
		if err := sr.RefreshAll(); err != nil {
			slog.Error("[StatsRefresherService] refresh run failed", "err", err)
		} else {
			slog.Info("[StatsRefresherService] refresh run completed")
		}
	}
}

// RefreshAll re-fetches counters for every live session. Per-session failures
// are logged and skipped; one broken session must not starve the rest.
func (sr *StatsRefresherService) RefreshAll() error {
	tokens, err := sr.sessionDao.ListActiveSessionTokens()
	if err != nil {
		slog.Error("[StatsRefresherService] failed listing sessions", "err", err)
		return err
	}

	slog.Info("[StatsRefresherService] refreshing stats", "sessions", len(tokens))
	for _, token := range tokens {
		if _, err := sr.profileService.FetchDashboardStats(token); err != nil {
			slog.Warn("[StatsRefresherService] refresh failed for session", "err", err)
			continue
		}
	}
	return nil
}
