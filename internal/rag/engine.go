package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"archive-search/internal/archive"
	"archive-search/internal/contextutil"
	"archive-search/internal/filters"
	"archive-search/internal/vectorstore"
)

// Engine answers natural-language questions over the archive with grounded,
// cited answers.
type Engine interface {
	// Answer runs the full pipeline: embed, search with adaptive relevance
	// filtering, generate, validate, and map citations. Stage failures are
	// returned as their stage-specific error kind; ErrNoResults means the
	// archive holds nothing relevant and generation was never invoked.
	Answer(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error)
}

type ragEngine struct {
	embedder  Embedder
	searcher  vectorstore.Searcher
	generator Generator
	limit     int
	logger    *slog.Logger
}

// NewEngine creates a RAG engine. limit caps the number of candidates
// fetched per query.
func NewEngine(embedder Embedder, searcher vectorstore.Searcher, generator Generator, limit int) Engine {
	if limit <= 0 {
		limit = 10
	}
	return &ragEngine{
		embedder:  embedder,
		searcher:  searcher,
		generator: generator,
		limit:     limit,
		logger:    slog.Default(),
	}
}

func (e *ragEngine) Answer(ctx context.Context, query string, f archive.SearchFilters) (archive.RAGResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if query == "" {
		return archive.RAGResponse{}, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}

	logger.InfoContext(ctx, "query search started", "query", query, "authors", f.Authors)

	vector, err := e.embedder.Embed(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "failed to embed query", "error", err)
		return archive.RAGResponse{}, fmt.Errorf("%w: %w", ErrEmbeddingFailure, err)
	}

	conds := filters.Compile(f)

	candidates, err := e.searcher.Search(ctx, vector, e.limit, conds)
	if err != nil {
		logger.ErrorContext(ctx, "failed to search vector index", "error", err)
		return archive.RAGResponse{}, fmt.Errorf("%w: %w", ErrSearchConnection, err)
	}

	validated, dropped := resultsFromCandidates(candidates)
	if dropped > 0 {
		logger.WarnContext(ctx, "dropped candidates with invalid payloads", "dropped", dropped, "total", len(candidates))
	}

	// Results are captured once here and reused for both context assembly
	// and citation mapping; a second search mid-pipeline would invalidate
	// the source_index correspondence.
	results, minScore, err := relaxMinScore(validated)
	if err != nil {
		logger.InfoContext(ctx, "no results above score floor", "candidates", len(validated))
		return archive.RAGResponse{}, err
	}

	logger.InfoContext(ctx, "retrieval completed", "results", len(results), "min_score", minScore)

	prompt := buildPrompt(query, results)

	raw, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate answer", "error", err)
		return archive.RAGResponse{}, fmt.Errorf("%w: %w", ErrGenerationFailure, err)
	}

	output, err := ValidateResponse(raw)
	if err != nil {
		logger.ErrorContext(ctx, "model output failed validation", "error", err)
		return archive.RAGResponse{}, err
	}

	resp, err := mapCitations(output, results)
	if err != nil {
		logger.ErrorContext(ctx, "citation mapping failed", "error", err)
		return archive.RAGResponse{}, err
	}

	logger.InfoContext(ctx, "query search completed", "citations", len(resp.Citations), "answer_length", len(resp.Answer))
	return resp, nil
}
