package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mm-server/models"
	services "mm-server/service"
)

type SearchHandler struct {
	searchService *services.SearchService
	authService   *services.AuthService
}

func NewSearchHandler(searchService *services.SearchService, authService *services.AuthService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		authService:   authService,
	}
}

// QuickSearch handles POST /v1/search/quick. Open to anonymous callers.
func (h *SearchHandler) QuickSearch(w http.ResponseWriter, r *http.Request) {
	// 1) Decode the four-field form
	var filters models.QuickSearchFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2) Translate, search, normalize
	profiles, err := h.searchService.QuickSearch(filters)
	if err != nil {
		slog.Error("[SearchHandler] quick search failed", "err", err)
		writeError(w, http.StatusBadGateway, "Search backend unavailable")
		return
	}

	// 3) Write results
	writeData(w, profiles)
}

// AdvancedSearch handles POST /v1/search/advanced. Members only.
func (h *SearchHandler) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	// 1) Gate on a live session
	if !h.authService.IsLoggedIn(sessionToken(r)) {
		writeError(w, http.StatusUnauthorized, "Login required")
		return
	}

	// 2) Decode the full criteria form
	var filters models.AdvancedSearchFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 3) Translate, search, normalize
	profiles, err := h.searchService.AdvancedSearch(filters)
	if err != nil {
		slog.Error("[SearchHandler] advanced search failed", "err", err)
		writeError(w, http.StatusBadGateway, "Search backend unavailable")
		return
	}

	// 4) Write results
	writeData(w, profiles)
}
