package rag

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// ValidateResponse strips a Markdown code fence if present, parses the
// remaining text as JSON, and checks the answer/citation schema. Referential
// checks against the actual result count belong to the citation mapper, not
// here, so schema and referential violations stay distinguishable.
func ValidateResponse(raw string) (GenerationOutput, error) {
	cleaned := stripCodeFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return GenerationOutput{}, fmt.Errorf("%w: %v", ErrJSONParse, err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return GenerationOutput{}, fmt.Errorf("%w: top-level value is not an object", ErrResponseFormat)
	}

	answer, ok := obj["answer"].(string)
	if !ok {
		return GenerationOutput{}, fmt.Errorf("%w: answer is missing or not a string", ErrResponseFormat)
	}

	rawCitations, ok := obj["citations"].([]any)
	if !ok {
		return GenerationOutput{}, fmt.Errorf("%w: citations is missing or not an array", ErrResponseFormat)
	}

	citations := make([]GeneratedCitation, 0, len(rawCitations))
	for i, rawCitation := range rawCitations {
		c, ok := rawCitation.(map[string]any)
		if !ok {
			return GenerationOutput{}, fmt.Errorf("%w: citation %d is not an object", ErrResponseFormat, i)
		}
		number, ok := jsonInt(c["citation_number"])
		if !ok {
			return GenerationOutput{}, fmt.Errorf("%w: citation %d has no integer citation_number", ErrResponseFormat, i)
		}
		text, ok := c["text"].(string)
		if !ok {
			return GenerationOutput{}, fmt.Errorf("%w: citation %d has no text", ErrResponseFormat, i)
		}
		sourceIndex, ok := jsonInt(c["source_index"])
		if !ok {
			return GenerationOutput{}, fmt.Errorf("%w: citation %d has no integer source_index", ErrResponseFormat, i)
		}
		citations = append(citations, GeneratedCitation{
			CitationNumber: number,
			Text:           text,
			SourceIndex:    sourceIndex,
		})
	}

	return GenerationOutput{Answer: answer, Citations: citations}, nil
}

// stripCodeFence extracts the content of the first fenced code block
// (triple-backtick, optional language tag) from the model output. Models
// regularly wrap JSON in Markdown fences despite being told not to. When no
// fence is present, the trimmed text is returned unchanged.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	src := []byte(trimmed)

	doc := goldmark.DefaultParser().Parse(gmtext.NewReader(src))
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		fence, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			continue
		}
		var buf bytes.Buffer
		lines := fence.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	return trimmed
}

// jsonInt converts a decoded JSON number into an int, rejecting fractional
// values and non-numbers.
func jsonInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
