package rag

import (
	"errors"
	"testing"

	"archive-search/internal/archive"
	"archive-search/internal/vectorstore"
)

func resultsWithScores(scores ...float32) []archive.SearchResult {
	results := make([]archive.SearchResult, len(scores))
	for i, s := range scores {
		results[i] = archive.SearchResult{
			Score:   s,
			Payload: archive.ArchiveEntry{Title: "Article", PublicationDate: "1980-03-01"},
		}
	}
	return results
}

func TestRelaxMinScore(t *testing.T) {
	tests := []struct {
		name          string
		scores        []float32
		wantScores    []float32
		wantThreshold float32
		wantNoResults bool
	}{
		{
			name:          "strict threshold satisfied",
			scores:        []float32{0.9, 0.5, 0.2},
			wantScores:    []float32{0.9, 0.5},
			wantThreshold: 0.4,
		},
		{
			name:          "relaxed to floor",
			scores:        []float32{0.35, 0.31},
			wantScores:    []float32{0.35, 0.31},
			wantThreshold: 0.3,
		},
		{
			name:          "exactly at default threshold",
			scores:        []float32{0.4},
			wantScores:    []float32{0.4},
			wantThreshold: 0.4,
		},
		{
			name:          "exactly at floor after relaxation",
			scores:        []float32{0.3},
			wantScores:    []float32{0.3},
			wantThreshold: 0.3,
		},
		{
			name:          "all below floor",
			scores:        []float32{0.29, 0.1},
			wantNoResults: true,
		},
		{
			name:          "empty candidate set",
			scores:        nil,
			wantNoResults: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, threshold, err := relaxMinScore(resultsWithScores(tt.scores...))
			if tt.wantNoResults {
				if !errors.Is(err, ErrNoResults) {
					t.Fatalf("error = %v, want ErrNoResults", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("relaxMinScore() error = %v", err)
			}
			if threshold != tt.wantThreshold {
				t.Errorf("threshold = %v, want %v", threshold, tt.wantThreshold)
			}
			if len(got) != len(tt.wantScores) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.wantScores))
			}
			for i, r := range got {
				if r.Score != tt.wantScores[i] {
					t.Errorf("result %d score = %v, want %v", i, r.Score, tt.wantScores[i])
				}
				if r.Score < threshold {
					t.Errorf("result %d score %v below returned threshold %v", i, r.Score, threshold)
				}
			}
		})
	}
}

// The candidate set is fixed across relaxation steps, so every returned
// result set must be exactly the candidates at or above the returned
// threshold, in their original order.
func TestRelaxMinScore_PreservesOrder(t *testing.T) {
	candidates := resultsWithScores(0.33, 0.39, 0.36)
	got, threshold, err := relaxMinScore(candidates)
	if err != nil {
		t.Fatalf("relaxMinScore() error = %v", err)
	}
	if threshold != MinScoreFloor {
		t.Errorf("threshold = %v, want floor %v", threshold, MinScoreFloor)
	}
	wantOrder := []float32{0.33, 0.39, 0.36}
	for i, r := range got {
		if r.Score != wantOrder[i] {
			t.Errorf("result %d score = %v, want %v (original index order, no re-sort)", i, r.Score, wantOrder[i])
		}
	}
}

func TestResultsFromCandidates(t *testing.T) {
	valid := map[string]any{
		"pub_date":    "1980-03-01",
		"link_to_pdf": "https://example.org/a.pdf",
		"volume":      "1",
		"issue":       "2",
		"author":      "Jane Smith",
		"title":       "Debate Societies",
		"page":        "12",
		"text":        "On debate.",
	}
	invalid := map[string]any{"title": "broken"}

	candidates := []vectorstore.Candidate{
		{Score: 0.5, Payload: valid},
		{Score: 0.9, Payload: invalid},
		{Score: 0.2, Payload: valid},
	}

	results, dropped := resultsFromCandidates(candidates)
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Score != 0.5 || results[1].Score != 0.2 {
		t.Errorf("order not preserved: %v, %v", results[0].Score, results[1].Score)
	}
	if results[0].Payload.Author != "Jane Smith" {
		t.Errorf("payload not converted: %+v", results[0].Payload)
	}
}
