package handlers

import (
	"encoding/json"
	"net/http"

	"archive-search/internal/archive"
	"archive-search/internal/contextutil"
	"archive-search/internal/filters"
	"archive-search/internal/storage"
)

// FilterHandler handles HTTP requests for filter-only archive browsing. It
// bypasses the retrieval pipeline entirely and queries the metadata store.
type FilterHandler struct {
	articles storage.ArticleStore
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(articles storage.ArticleStore) *FilterHandler {
	return &FilterHandler{articles: articles}
}

// FilterRequest represents the HTTP request payload for filter-only browsing.
type FilterRequest struct {
	Filters archive.SearchFilters `json:"filters"`
}

// FilterResponse represents the HTTP response payload for filter-only
// browsing.
type FilterResponse struct {
	Articles []archive.ArchiveEntry `json:"articles"`
}

// ServeHTTP handles HTTP requests for filter-only browsing. Store failures
// yield an empty listing with the cause logged; the client treats an empty
// list the same as zero matches.
func (h *FilterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	conds := filters.Compile(req.Filters)
	entries, err := h.articles.ListByConditions(ctx, conds)
	if err != nil {
		logger.ErrorContext(ctx, "filter query failed", "error", err)
		writeJSON(w, http.StatusOK, FilterResponse{Articles: []archive.ArchiveEntry{}})
		return
	}
	if entries == nil {
		entries = []archive.ArchiveEntry{}
	}

	logger.InfoContext(ctx, "filter query completed", "matches", len(entries))
	writeJSON(w, http.StatusOK, FilterResponse{Articles: entries})
}
