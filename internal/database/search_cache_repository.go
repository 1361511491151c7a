package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bookscout/models"
)

// cacheTTL is how long a stored result set stays eligible for reuse. Stale
// rows are ignored by Lookup, not deleted.
const cacheTTL = time.Hour

// SearchCacheRepository persists grouped search results keyed by the literal
// query string. It satisfies search.QueryCache.
type SearchCacheRepository struct {
	db *sql.DB
}

func NewSearchCacheRepository(db *sql.DB) *SearchCacheRepository {
	return &SearchCacheRepository{db: db}
}

// Lookup returns the cached result set for query when a row newer than the
// freshness window exists. A miss is (nil, nil). The query string is matched
// verbatim: case and whitespace variants are distinct keys.
func (r *SearchCacheRepository) Lookup(ctx context.Context, query string) ([]models.Book, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT results FROM search_cache WHERE query = ? AND created_at > ?`,
		query, time.Now().UTC().Add(-cacheTTL),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query search cache: %w", err)
	}

	var books []models.Book
	if err := json.Unmarshal([]byte(raw), &books); err != nil {
		return nil, fmt.Errorf("decode cached results: %w", err)
	}
	return books, nil
}

// Store upserts the result set for query, resetting its freshness window.
func (r *SearchCacheRepository) Store(ctx context.Context, query string, results []models.Book) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO search_cache (query, results, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET
			results = excluded.results,
			created_at = excluded.created_at`,
		query, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("store search cache: %w", err)
	}
	return nil
}
