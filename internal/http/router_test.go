package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"archive-search/internal/archive"
	storage_mocks "archive-search/internal/storage/mocks"
	vectorstore_mocks "archive-search/internal/vectorstore/mocks"
)

type stubEngine struct{}

func (stubEngine) Answer(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
	return archive.RAGResponse{Answer: "stub"}, nil
}

type stubPinger struct{}

func (stubPinger) PingContext(ctx context.Context) error { return nil }

func TestRouterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storage_mocks.NewMockArticleStore(ctrl)
	store.EXPECT().ListByConditions(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().ListAuthors(gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().DateBounds(gomock.Any()).Return("", "", nil).AnyTimes()
	searcher := vectorstore_mocks.NewMockSearcher(ctrl)
	searcher.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	router := NewRouter(&Deps{
		Engine:   stubEngine{},
		Articles: store,
		Searcher: searcher,
		DB:       stubPinger{},
	})

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/search", `{"query":"q"}`, http.StatusOK},
		{http.MethodPost, "/api/filter", `{}`, http.StatusOK},
		{http.MethodGet, "/api/authors", "", http.StatusOK},
		{http.MethodGet, "/api/date-range", "", http.StatusOK},
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := newRequest(t, tt.method, tt.path, tt.body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func newRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
