package rag

import "errors"

// Stage failure kinds. Each pipeline stage fails fast with its own kind; the
// caller discriminates with errors.Is.
var (
	// ErrInvalidInput is returned for empty or missing query text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmbeddingFailure is returned when the embedding delegate is
	// unreachable or returns malformed output.
	ErrEmbeddingFailure = errors.New("embedding failure")
	// ErrSearchConnection is returned when the vector index cannot be
	// queried.
	ErrSearchConnection = errors.New("search connection failure")
	// ErrNoResults marks the defined empty-result state after adaptive
	// relaxation. It is a terminal outcome, not a query error.
	ErrNoResults = errors.New("no results found")
	// ErrGenerationFailure is returned on generation transport or service
	// errors.
	ErrGenerationFailure = errors.New("generation failure")
	// ErrJSONParse is returned when the stripped model output is not valid
	// JSON.
	ErrJSONParse = errors.New("response is not valid JSON")
	// ErrResponseFormat is returned when parsed model output violates the
	// answer/citation schema or references a source outside the result set.
	ErrResponseFormat = errors.New("response format invalid")
)
