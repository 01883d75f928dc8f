package handlers

import (
	"net/http"

	"archive-search/internal/contextutil"
	"archive-search/internal/storage"
)

// AuthorsHandler serves the distinct author list used to drive filter UIs.
type AuthorsHandler struct {
	articles storage.ArticleStore
}

// NewAuthorsHandler creates a new AuthorsHandler.
func NewAuthorsHandler(articles storage.ArticleStore) *AuthorsHandler {
	return &AuthorsHandler{articles: articles}
}

// AuthorsResponse represents the author listing response.
type AuthorsResponse struct {
	Authors []string `json:"authors"`
}

func (h *AuthorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	authors, err := h.articles.ListAuthors(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list authors", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list authors")
		return
	}
	if authors == nil {
		authors = []string{}
	}

	writeJSON(w, http.StatusOK, AuthorsResponse{Authors: authors})
}

// DateRangeHandler serves the archive's earliest and latest publication
// dates.
type DateRangeHandler struct {
	articles storage.ArticleStore
}

// NewDateRangeHandler creates a new DateRangeHandler.
func NewDateRangeHandler(articles storage.ArticleStore) *DateRangeHandler {
	return &DateRangeHandler{articles: articles}
}

// DateRangeResponse represents the archive date bounds response. Both fields
// are empty for an empty archive.
type DateRangeResponse struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

func (h *DateRangeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	earliest, latest, err := h.articles.DateBounds(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to query date bounds", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to query date range")
		return
	}

	writeJSON(w, http.StatusOK, DateRangeResponse{Earliest: earliest, Latest: latest})
}
