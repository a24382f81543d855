package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	services "mm-server/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// 1) Decode credentials
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// 2) Authenticate and mint a session
	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("[AuthHandler] login failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// 3) Hand the token back alongside the account blob
	writeData(w, loginResponse{Token: token, User: user})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		writeError(w, http.StatusBadRequest, "Missing session token")
		return
	}

	if err := h.authService.Logout(token); err != nil {
		slog.Error("[AuthHandler] logout failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, responseEnvelope{Status: true, Message: "Logged out"})
}

// Register handles POST /v1/auth/register. The registration form is a flat
// JSON object forwarded field-for-field to the backend.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	// 1) Decode the flat form
	var fields map[string]string
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, "Empty registration form")
		return
	}
	for _, required := range []string{"name", "gender", "phone1", "district"} {
		if fields[required] == "" {
			writeError(w, http.StatusBadRequest, required+" is required")
			return
		}
	}

	form := url.Values{}
	for key, value := range fields {
		form.Set(key, value)
	}

	// 2) Forward and relay the backend's verdict
	response, err := h.authService.Register(form)
	if err != nil {
		slog.Error("[AuthHandler] register failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, responseEnvelope{
		Status:  response.Status,
		Data:    response.Data,
		Message: response.Message,
	})
}
