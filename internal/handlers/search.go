package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"archive-search/internal/archive"
	"archive-search/internal/contextutil"
	"archive-search/internal/rag"
)

// degradedAnswer is returned with a 200 status when a pipeline stage fails.
// Clients render it as a normal answer rather than an error page.
const degradedAnswer = "Sorry, there was an error processing your request. Please try again."

// noResultsAnswer is returned when retrieval finds nothing relevant even at
// the relaxed score floor.
const noResultsAnswer = "No matching articles were found in the archive. Try rephrasing your question or broadening your filters."

// SearchHandler handles HTTP requests for grounded archive queries.
type SearchHandler struct {
	engine rag.Engine
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(engine rag.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

// SearchRequest represents the HTTP request payload for archive queries.
type SearchRequest struct {
	Query   string                 `json:"query"`
	Filters *archive.SearchFilters `json:"filters,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for archive queries.
//
// Pipeline-stage failures do not surface as HTTP errors: the response is a
// 200 with a degraded answer and no citations, so the client UI stays on the
// conversational path. Only malformed requests get a 4xx.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var f archive.SearchFilters
	if req.Filters != nil {
		f = *req.Filters
	}

	resp, err := h.engine.Answer(ctx, req.Query, f)
	if err != nil {
		switch {
		case errors.Is(err, rag.ErrInvalidInput):
			logger.WarnContext(ctx, "empty query in request")
			writeError(w, http.StatusBadRequest, "Query is required")
			return
		case errors.Is(err, rag.ErrNoResults):
			logger.InfoContext(ctx, "no relevant results for query")
			writeJSON(w, http.StatusOK, archive.RAGResponse{
				Answer:    noResultsAnswer,
				Citations: []archive.Citation{},
			})
			return
		default:
			logger.ErrorContext(ctx, "query pipeline failed", "error", err)
			writeJSON(w, http.StatusOK, archive.RAGResponse{
				Answer:    degradedAnswer,
				Citations: []archive.Citation{},
			})
			return
		}
	}

	if resp.Citations == nil {
		resp.Citations = []archive.Citation{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
