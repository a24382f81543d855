package util

import (
	"encoding/json"
	"fmt"
	"os"

	"mm-server/models"
)

// ReadAPIResponseFromJSON loads an upstream response envelope from JSON on disk.
func ReadAPIResponseFromJSON(filePath string) (*models.APIResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.APIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal APIResponse: %w", err)
	}
	return &resp, nil
}
