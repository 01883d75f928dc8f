package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"archive-search/internal/archive"
	"archive-search/internal/rag"
)

// fakeEngine backs the query pipeline with a canned function.
type fakeEngine struct {
	answer func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error)
	calls  int
}

func (e *fakeEngine) Answer(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
	e.calls++
	return e.answer(ctx, query, f)
}

func postSearch(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSearchHandlerSuccess(t *testing.T) {
	want := archive.RAGResponse{
		Answer: "The expedition reached the delta in March 1924 [1].",
		Citations: []archive.Citation{
			{Text: "reached the delta in March 1924", Source: archive.ArchiveEntry{ID: "a1", Title: "On Tides"}},
		},
	}
	engine := &fakeEngine{answer: func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
		if query != "When did the expedition reach the delta?" {
			t.Errorf("unexpected query %q", query)
		}
		if f.Empty() {
			t.Error("filters were not forwarded")
		}
		return want, nil
	}}
	handler := NewSearchHandler(engine)

	rec := postSearch(t, handler, SearchRequest{
		Query: "When did the expedition reach the delta?",
		Filters: &archive.SearchFilters{
			Authors: []string{"Jane Doe"},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got archive.RAGResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Answer != want.Answer {
		t.Errorf("answer = %q, want %q", got.Answer, want.Answer)
	}
	if len(got.Citations) != 1 || got.Citations[0].Source.ID != "a1" {
		t.Errorf("citations = %+v, want one citation sourced from a1", got.Citations)
	}
}

func TestSearchHandlerEmptyQuery(t *testing.T) {
	engine := &fakeEngine{answer: func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
		return archive.RAGResponse{}, rag.ErrInvalidInput
	}}
	handler := NewSearchHandler(engine)

	rec := postSearch(t, handler, SearchRequest{Query: "   "})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSearchHandlerNoResults(t *testing.T) {
	engine := &fakeEngine{answer: func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
		return archive.RAGResponse{}, rag.ErrNoResults
	}}
	handler := NewSearchHandler(engine)

	rec := postSearch(t, handler, SearchRequest{Query: "obscure topic"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var got archive.RAGResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.Answer != noResultsAnswer {
		t.Errorf("answer = %q, want the no-results message", got.Answer)
	}
	if len(got.Citations) != 0 {
		t.Errorf("citations = %+v, want empty", got.Citations)
	}
}

func TestSearchHandlerStageFailureDegrades(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"embedding failure", rag.ErrEmbeddingFailure},
		{"search connection failure", rag.ErrSearchConnection},
		{"generation failure", rag.ErrGenerationFailure},
		{"malformed model output", rag.ErrJSONParse},
		{"invalid response shape", rag.ErrResponseFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{answer: func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
				return archive.RAGResponse{}, tt.err
			}}
			handler := NewSearchHandler(engine)

			rec := postSearch(t, handler, SearchRequest{Query: "anything"})

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			var got archive.RAGResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if got.Answer != degradedAnswer {
				t.Errorf("answer = %q, want the degraded message", got.Answer)
			}
			if len(got.Citations) != 0 {
				t.Errorf("citations = %+v, want empty", got.Citations)
			}
		})
	}
}

func TestSearchHandlerInvalidBody(t *testing.T) {
	engine := &fakeEngine{answer: func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
		return archive.RAGResponse{}, nil
	}}
	handler := NewSearchHandler(engine)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if engine.calls != 0 {
		t.Errorf("engine called %d times for malformed body, want 0", engine.calls)
	}
}

func TestSearchHandlerMethodNotAllowed(t *testing.T) {
	engine := &fakeEngine{answer: func(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
		return archive.RAGResponse{}, nil
	}}
	handler := NewSearchHandler(engine)

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
