package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_article_store.go -package=mocks archive-search/internal/storage ArticleStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"archive-search/internal/archive"
	"archive-search/internal/filters"
)

// ArticleStore defines metadata-store operations over canonical article
// records.
type ArticleStore interface {
	// ListByConditions returns articles matching the given normalized
	// predicates, ordered by publication date. No conditions means the
	// full unfiltered listing.
	ListByConditions(ctx context.Context, conds []filters.Condition) ([]archive.ArchiveEntry, error)
	// ListAuthors returns the distinct author names in the archive, sorted.
	ListAuthors(ctx context.Context) ([]string, error)
	// DateBounds returns the earliest and latest publication dates, or
	// empty strings for an empty archive.
	DateBounds(ctx context.Context) (earliest, latest string, err error)
	// Insert stores one article record. A missing ID is defaulted to a
	// fresh UUID.
	Insert(ctx context.Context, entry *archive.ArchiveEntry) error
}

// ArticleRepo implements ArticleStore on SQLite.
type ArticleRepo struct {
	db *sql.DB
}

// NewArticleRepo creates a new ArticleRepo.
func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

// columnFor maps normalized predicate keys to table columns. Predicate keys
// follow the vector-index payload naming; the store resolves them locally.
func columnFor(key string) (string, error) {
	switch key {
	case filters.DateKey:
		return "publication_date", nil
	case filters.AuthorKey:
		return "author", nil
	default:
		return "", fmt.Errorf("no column for predicate key %q", key)
	}
}

func (r *ArticleRepo) ListByConditions(ctx context.Context, conds []filters.Condition) ([]archive.ArchiveEntry, error) {
	query := "SELECT id, author, title, publication_date, volume, issue, page, link_to_pdf FROM articles"

	var clauses []string
	var args []any
	for _, cond := range conds {
		column, err := columnFor(cond.Key)
		if err != nil {
			return nil, err
		}
		switch {
		case cond.Range != nil:
			if cond.Range.GTE != "" {
				clauses = append(clauses, column+" >= ?")
				args = append(args, cond.Range.GTE)
			}
			if cond.Range.LTE != "" {
				clauses = append(clauses, column+" <= ?")
				args = append(args, cond.Range.LTE)
			}
		case len(cond.MatchAny) > 0:
			placeholders := strings.Repeat("?,", len(cond.MatchAny))
			clauses = append(clauses, column+" IN ("+placeholders[:len(placeholders)-1]+")")
			for _, v := range cond.MatchAny {
				args = append(args, v)
			}
		default:
			return nil, fmt.Errorf("condition on %q has neither range nor match values", cond.Key)
		}
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY publication_date, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []archive.ArchiveEntry
	for rows.Next() {
		var e archive.ArchiveEntry
		if err := rows.Scan(&e.ID, &e.Author, &e.Title, &e.PublicationDate, &e.Volume, &e.Issue, &e.Page, &e.DocumentLink); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return entries, nil
}

func (r *ArticleRepo) ListAuthors(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT author FROM articles ORDER BY author")
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var authors []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return authors, nil
}

func (r *ArticleRepo) DateBounds(ctx context.Context) (string, string, error) {
	var earliest, latest sql.NullString
	err := r.db.QueryRowContext(ctx,
		"SELECT MIN(publication_date), MAX(publication_date) FROM articles",
	).Scan(&earliest, &latest)
	if err != nil {
		return "", "", fmt.Errorf("failed to query date bounds: %w", err)
	}
	return earliest.String, latest.String, nil
}

func (r *ArticleRepo) Insert(ctx context.Context, entry *archive.ArchiveEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO articles (id, author, title, publication_date, volume, issue, page, link_to_pdf) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		entry.ID, entry.Author, entry.Title, entry.PublicationDate, entry.Volume, entry.Issue, entry.Page, entry.DocumentLink,
	)
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}
	return nil
}
