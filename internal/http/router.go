package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"archive-search/internal/handlers"
	"archive-search/internal/rag"
	"archive-search/internal/storage"
	"archive-search/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine   rag.Engine
	Articles storage.ArticleStore
	Searcher vectorstore.Searcher
	DB       handlers.DBPinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	searchHandler := handlers.NewSearchHandler(deps.Engine)
	filterHandler := handlers.NewFilterHandler(deps.Articles)
	authorsHandler := handlers.NewAuthorsHandler(deps.Articles)
	dateRangeHandler := handlers.NewDateRangeHandler(deps.Articles)
	healthHandler := handlers.NewHealthHandler(deps.Searcher, deps.DB)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/search", searchHandler)
		r.Method(http.MethodPost, "/filter", filterHandler)
		r.Method(http.MethodGet, "/authors", authorsHandler)
		r.Method(http.MethodGet, "/date-range", dateRangeHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
