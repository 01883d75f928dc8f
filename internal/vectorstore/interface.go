// Package vectorstore provides similarity search against the archive's
// vector index.
package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_searcher.go -package=mocks archive-search/internal/vectorstore Searcher

import (
	"context"

	"archive-search/internal/filters"
)

// Candidate is one raw hit from the index: a similarity score plus the
// dynamic payload, not yet structurally validated.
type Candidate struct {
	Score   float32
	Payload map[string]any
}

// Searcher issues similarity queries against the vector index.
type Searcher interface {
	// Search returns up to limit candidates ordered by descending score,
	// optionally restricted by normalized predicate conditions.
	Search(ctx context.Context, vector []float32, limit int, conds []filters.Condition) ([]Candidate, error)

	// Ping verifies index connectivity without issuing a query, so callers
	// can tell "index unreachable" apart from "query malformed".
	Ping(ctx context.Context) error
}
