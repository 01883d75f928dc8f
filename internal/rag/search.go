package rag

import (
	"archive-search/internal/archive"
	"archive-search/internal/vectorstore"
)

// Adaptive minimum-score policy. A single fixed threshold either discards
// relevant low-score hits in sparse regions of the archive or admits noise
// in dense regions; the cutoff is relaxed stepwise only when the strict
// threshold yields nothing.
const (
	// DefaultMinScore is the strict starting threshold.
	DefaultMinScore float32 = 0.4
	// MinScoreFloor is the lowest threshold ever applied.
	MinScoreFloor float32 = 0.3
	// MinScoreStep is subtracted per relaxation step, clamped to the floor.
	MinScoreStep float32 = 0.2
)

// resultsFromCandidates structurally validates raw index candidates and
// converts the survivors. Order is preserved; invalid payloads are dropped,
// and the number dropped is returned for logging.
func resultsFromCandidates(candidates []vectorstore.Candidate) ([]archive.SearchResult, int) {
	results := make([]archive.SearchResult, 0, len(candidates))
	dropped := 0
	for _, c := range candidates {
		entry, ok := archive.EntryFromPayload(c.Payload)
		if !ok {
			dropped++
			continue
		}
		results = append(results, archive.SearchResult{Score: c.Score, Payload: entry})
	}
	return results, dropped
}

// relaxMinScore filters an already-fetched candidate set by the adaptive
// threshold sequence. The candidate set is fixed: relaxation only lowers the
// cutoff, it never re-queries the index. Returns the surviving results in
// their original order together with the threshold actually used, or
// ErrNoResults once nothing survives at the floor.
func relaxMinScore(candidates []archive.SearchResult) ([]archive.SearchResult, float32, error) {
	threshold := DefaultMinScore
	for {
		kept := filterByScore(candidates, threshold)
		if len(kept) > 0 {
			return kept, threshold, nil
		}
		if threshold <= MinScoreFloor {
			return nil, threshold, ErrNoResults
		}
		threshold -= MinScoreStep
		if threshold < MinScoreFloor {
			threshold = MinScoreFloor
		}
	}
}

func filterByScore(candidates []archive.SearchResult, minScore float32) []archive.SearchResult {
	kept := make([]archive.SearchResult, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= minScore {
			kept = append(kept, c)
		}
	}
	return kept
}
