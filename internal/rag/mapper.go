package rag

import (
	"fmt"

	"archive-search/internal/archive"
)

// mapCitations resolves each citation's source_index against the search
// results the prompt was built from, producing the final answer with
// citations. Indices are 0-based; an out-of-range index fails the whole
// response rather than being dropped or clamped. Citation order is preserved
// exactly as the model emitted it.
func mapCitations(out GenerationOutput, results []archive.SearchResult) (archive.RAGResponse, error) {
	citations := make([]archive.Citation, 0, len(out.Citations))
	for _, c := range out.Citations {
		if c.SourceIndex < 0 || c.SourceIndex >= len(results) {
			return archive.RAGResponse{}, fmt.Errorf("%w: source_index %d out of range [0,%d)",
				ErrResponseFormat, c.SourceIndex, len(results))
		}
		source := results[c.SourceIndex].Payload
		// The passage text served its purpose during retrieval; citations
		// carry bibliographic metadata only.
		source.FullText = ""
		citations = append(citations, archive.Citation{
			Text:   c.Text,
			Source: source,
		})
	}

	return archive.RAGResponse{
		Answer:    out.Answer,
		Citations: citations,
	}, nil
}
