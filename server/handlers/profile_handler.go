package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	services "mm-server/service"
)

const PROFILE_ID_QUERY_ARG = "profile_id"

type viewedRequest struct {
	ProfileID string `json:"profileId"`
}

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /v1/profile. Without a profile_id query arg it
// serves the session owner's own profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get(PROFILE_ID_QUERY_ARG)

	profile, err := h.profileService.GetProfile(sessionToken(r), profileID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoClientID):
			writeError(w, http.StatusUnauthorized, "Login required")
		case errors.Is(err, services.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "Profile not found")
		default:
			slog.Error("[ProfileHandler] profile fetch failed", "err", err)
			writeError(w, http.StatusBadGateway, "Profile backend unavailable")
		}
		return
	}

	writeData(w, profile)
}

// GetSelectedProfiles handles GET /v1/profiles/selected
func (h *ProfileHandler) GetSelectedProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.GetSelectedProfiles(sessionToken(r))
	if err != nil {
		if errors.Is(err, services.ErrNoClientID) {
			writeError(w, http.StatusUnauthorized, "Login required")
			return
		}
		slog.Error("[ProfileHandler] shortlist fetch failed", "err", err)
		writeError(w, http.StatusBadGateway, "Profile backend unavailable")
		return
	}

	writeData(w, profiles)
}

// RecordViewedProfile handles POST /v1/profiles/viewed
func (h *ProfileHandler) RecordViewedProfile(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	var req viewedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProfileID == "" {
		writeError(w, http.StatusBadRequest, "profileId is required")
		return
	}

	if err := h.profileService.RecordViewedProfile(token, req.ProfileID); err != nil {
		slog.Error("[ProfileHandler] failed recording view", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, responseEnvelope{Status: true, Message: "Recorded"})
}
