package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"

	"github.com/google/uuid"

	"mm-server/api/matrimony"
	"mm-server/dao/redis"
	"mm-server/models"
	"mm-server/normalizer"
)

// ErrInvalidCredentials signals a well-formed login that the backend rejected.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService exchanges backend logins for session tokens. The PHP backend is
// stateless, so the session itself lives entirely on our side in Redis.
type AuthService struct {
	matrimonyAPI matrimony.MatrimonyAPI
	sessionDao   *redis.RedisSessionDao
}

// NewAuthService constructs an AuthService with its dependencies.
func NewAuthService(matrimonyAPI matrimony.MatrimonyAPI, sessionDao *redis.RedisSessionDao) *AuthService {
	return &AuthService{
		matrimonyAPI: matrimonyAPI,
		sessionDao:   sessionDao,
	}
}

// Login authenticates against the backend and mints a session token. The
// returned user blob is what the backend sent, unnormalized, so the app keeps
// access to account fields the profile shape does not carry.
func (s *AuthService) Login(email, password string) (string, normalizer.RawProfile, error) {
	response, err := s.matrimonyAPI.Login(email, password)
	if err != nil {
		return "", nil, err
	}
	if !response.Status {
		slog.Warn("[AuthService] login rejected by backend", "message", response.Message)
		return "", nil, ErrInvalidCredentials
	}

	user := normalizer.DecodeRecord(response.Data)
	if user == nil {
		user = normalizer.RawProfile{}
	}

	token := uuid.NewString()
	if err := s.sessionDao.SetSession(token, user); err != nil {
		return "", nil, err
	}

	slog.Info("[AuthService] session created", "username", user.FirstNonEmpty("user_name", "name"))
	return token, user, nil
}

// SetManualSession seeds a session from a hand-built user blob without a
// backend login. Development helper for working against the mock backend.
func (s *AuthService) SetManualSession(user normalizer.RawProfile) (string, error) {
	token := uuid.NewString()
	if err := s.sessionDao.SetSession(token, user); err != nil {
		return "", err
	}
	return token, nil
}

// Logout drops the session and everything keyed off it.
func (s *AuthService) Logout(token string) error {
	return s.sessionDao.ClearSession(token)
}

// IsLoggedIn reports whether the token maps to a live session.
func (s *AuthService) IsLoggedIn(token string) bool {
	return s.sessionDao.IsLoggedIn(token)
}

// Register forwards a registration form to the backend verbatim. Successful
// registrations still require a login to get a session.
func (s *AuthService) Register(form url.Values) (*models.APIResponse, error) {
	return s.matrimonyAPI.Register(form)
}

// SessionUser returns the stored login blob for a token, or nil when the
// session is gone.
func (s *AuthService) SessionUser(token string) (normalizer.RawProfile, error) {
	session, err := s.sessionDao.GetSession(token)
	if err != nil || session == nil {
		return nil, err
	}

	var user normalizer.RawProfile
	if err := json.Unmarshal(session.UserData, &user); err != nil {
		return nil, err
	}
	return user, nil
}
