package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mm-server/config"
)

// responseEnvelope is the JSON shape every endpoint answers with, mirroring
// the upstream backend's own envelope so the app decodes both the same way.
type responseEnvelope struct {
	Status  bool        `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, envelope responseEnvelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		slog.Error("failed encoding response", "err", err)
	}
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, responseEnvelope{Status: true, Data: data})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, responseEnvelope{Status: false, Message: message})
}

func sessionToken(r *http.Request) string {
	return r.Header.Get(config.SESSION_TOKEN_HEADER)
}
