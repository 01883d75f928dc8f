// Package archive defines the core data model shared across the search
// pipeline: archive entries, user filters, and the cited answer returned
// to callers.
package archive

// ArchiveEntry is one indexed magazine article record. Field tags match the
// payload keys used by the vector index and the API responses consumed by
// the frontend.
type ArchiveEntry struct {
	ID              string `json:"id,omitempty"`
	Author          string `json:"author"`
	Title           string `json:"title"`
	PublicationDate string `json:"pub_date"`
	Volume          string `json:"volume"`
	Issue           string `json:"issue"`
	Page            string `json:"page"`
	DocumentLink    string `json:"link_to_pdf"`
	// FullText is the retrieval payload (the indexed passage). It is never
	// required by the UI and is omitted when empty.
	FullText string `json:"text,omitempty"`
}

// DateRange bounds a filter query. Empty strings mean "unbounded" on that
// side, never "empty range".
type DateRange struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// SearchFilters is the user-entered filter input. Absent fields mean
// "no constraint".
type SearchFilters struct {
	DateRange *DateRange `json:"dateRange,omitempty"`
	Authors   []string   `json:"authors,omitempty"`
}

// Empty reports whether no filter constraint is present at all.
func (f SearchFilters) Empty() bool {
	noDates := f.DateRange == nil || (f.DateRange.StartDate == "" && f.DateRange.EndDate == "")
	return noDates && len(f.Authors) == 0
}

// SearchResult is one validated vector-search hit.
type SearchResult struct {
	Score   float32      `json:"score"`
	Payload ArchiveEntry `json:"payload"`
}

// Citation is one grounded citation in a generated answer. Source is always
// a payload that was present in the search results used to build the prompt.
type Citation struct {
	Text   string       `json:"text"`
	Source ArchiveEntry `json:"source"`
}

// RAGResponse is the terminal artifact of a query search: the generated
// answer plus its citations, in the order the model emitted them.
type RAGResponse struct {
	Answer    string     `json:"answer"`
	Citations []Citation `json:"citations"`
}
