package models

import "encoding/json"

// APIResponse is the upstream backend's envelope: a status flag, a data
// payload whose shape depends on the endpoint (object or array), and an
// optional message on failure.
type APIResponse struct {
	Status  bool            `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
