package rag

import (
	"fmt"
	"strings"

	"archive-search/internal/archive"
)

// assembleContext formats search results into the numbered context block of
// the grounding prompt. Labels are 1-based for the model's benefit; the
// authoritative mapping back to results is the 0-based positional order,
// which source_index in the model output refers to. The two numberings are
// offset by exactly one and citation mapping depends on that.
func assembleContext(results []archive.SearchResult) string {
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "[%d] %s (%s)\n%s\n\n", i+1, r.Payload.Title, r.Payload.PublicationDate, r.Payload.FullText)
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildPrompt constructs the grounding prompt. The JSON-only output contract
// is enforced through prompt content; the model's compliance is never
// assumed, so its output always goes through validation before use.
func buildPrompt(query string, results []archive.SearchResult) string {
	var b strings.Builder
	b.WriteString("You are answering a question about a magazine archive using only the numbered passages below.\n")
	b.WriteString("Cite passages in your answer with their [n] labels.\n\n")
	b.WriteString("Context passages:\n\n")
	b.WriteString(assembleContext(results))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(query)
	b.WriteString("\n\nRespond with ONLY a JSON object, no surrounding text, in exactly this shape:\n")
	b.WriteString(`{"answer": "your answer citing passages like [1]", "citations": [{"citation_number": 1, "text": "the passage text you relied on", "source_index": 0}]}`)
	b.WriteString("\n\ncitation_number matches the [n] label used in the answer; source_index is the zero-based position of the passage in the context above.")
	return b.String()
}
