// Package rag implements the retrieval-augmented generation pipeline: embed
// the query, search the vector index with adaptive relevance filtering,
// assemble retrieved passages into a grounding prompt, and validate and map
// the model's structured output back to source documents.
package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks archive-search/internal/rag Embedder,Generator

import "context"

// Embedder converts query text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Generator sends a grounding prompt to the generative model and returns its
// raw text output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratedCitation is one citation as emitted by the model.
type GeneratedCitation struct {
	// CitationNumber matches the 1-based [n] labels in the answer text.
	CitationNumber int `json:"citation_number"`
	Text           string `json:"text"`
	// SourceIndex is the zero-based index into the search results the
	// prompt was built from.
	SourceIndex int `json:"source_index"`
}

// GenerationOutput is the validated shape of the model's JSON output. It is
// transient: citation indices still need to be resolved against the actual
// result set before anything is returned to a caller.
type GenerationOutput struct {
	Answer    string              `json:"answer"`
	Citations []GeneratedCitation `json:"citations"`
}
