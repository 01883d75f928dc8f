// Package filters compiles user-entered search filters into normalized
// predicate conditions understood by both the vector index and the
// metadata store.
package filters

import (
	"fmt"
	"regexp"
	"strconv"

	"archive-search/internal/archive"
)

// Predicate keys on the index/store side.
const (
	DateKey   = "pub_date"
	AuthorKey = "author"
)

// twoDigitYearCutoff splits two-digit years between the archive's historical
// decades and recent ones: YY > 25 reads as 19YY, otherwise 20YY. The
// boundary is deliberate and must not drift.
const twoDigitYearCutoff = 25

// Range holds canonical YYYY-MM-DD bounds. Either side may be empty for a
// one-sided range.
type Range struct {
	GTE string
	LTE string
}

// Condition is one normalized predicate: a date range or a match-any set.
// Exactly one of Range and MatchAny is set.
type Condition struct {
	Key      string
	Range    *Range
	MatchAny []string
}

var (
	monthSlashYear = regexp.MustCompile(`^(\d{1,2})/(\d{2}|\d{4})$`)
	yearDashMonth  = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	fullDate       = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// Compile normalizes the given filters into predicate conditions. It returns
// nil when no constraint is present, signaling an unfiltered query. Filters
// combine as a conjunction of at most two conditions: one date range and one
// author match-any.
func Compile(f archive.SearchFilters) []Condition {
	var conds []Condition

	if f.DateRange != nil {
		var r Range
		if d, ok := CanonicalDate(f.DateRange.StartDate); ok {
			r.GTE = d
		}
		if d, ok := CanonicalDate(f.DateRange.EndDate); ok {
			r.LTE = d
		}
		if r.GTE != "" || r.LTE != "" {
			conds = append(conds, Condition{Key: DateKey, Range: &r})
		}
	}

	if len(f.Authors) > 0 {
		authors := make([]string, 0, len(f.Authors))
		for _, a := range f.Authors {
			if a != "" {
				authors = append(authors, a)
			}
		}
		if len(authors) > 0 {
			conds = append(conds, Condition{Key: AuthorKey, MatchAny: authors})
		}
	}

	return conds
}

// CanonicalDate parses a human-entered date in any of MM/YYYY, MM/YY,
// YYYY-MM, or YYYY-MM-DD and returns the canonical YYYY-MM-DD form (first of
// the month when no day is given). Anything else is rejected and treated as
// an absent bound.
func CanonicalDate(input string) (string, bool) {
	if input == "" {
		return "", false
	}

	if m := fullDate.FindStringSubmatch(input); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if !validMonth(month) || day < 1 || day > 31 {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	if m := yearDashMonth.FindStringSubmatch(input); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if !validMonth(month) {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-01", year, month), true
	}

	if m := monthSlashYear.FindStringSubmatch(input); m != nil {
		month, _ := strconv.Atoi(m[1])
		if !validMonth(month) {
			return "", false
		}
		year, _ := strconv.Atoi(m[2])
		if len(m[2]) == 2 {
			year = expandTwoDigitYear(year)
		}
		return fmt.Sprintf("%04d-%02d-01", year, month), true
	}

	return "", false
}

func expandTwoDigitYear(yy int) int {
	if yy > twoDigitYearCutoff {
		return 1900 + yy
	}
	return 2000 + yy
}

func validMonth(m int) bool {
	return m >= 1 && m <= 12
}
