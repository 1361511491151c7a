package search

import (
	"context"
	"log"

	"bookscout/models"
)

// QueryCache is the time-windowed store consulted before fan-out. Lookup
// returns (nil, nil) when no fresh entry exists; the query string is the
// literal cache key. Implementations must treat their own unavailability as
// a miss, never as a request failure.
type QueryCache interface {
	Lookup(ctx context.Context, query string) ([]models.Book, error)
	Store(ctx context.Context, query string, results []models.Book) error
}

// NopCache satisfies QueryCache when no durable store is configured: every
// lookup misses and every store is discarded.
type NopCache struct{}

func (NopCache) Lookup(context.Context, string) ([]models.Book, error) { return nil, nil }

func (NopCache) Store(context.Context, string, []models.Book) error { return nil }

// Service answers free-text book queries by fanning out to every configured
// site extractor and merging the results.
type Service struct {
	extractors []Extractor
	cache      QueryCache
}

// NewService wires the six default site extractors in priority order.
func NewService(cache QueryCache) *Service {
	return NewServiceWith(cache,
		NewFlibustaExtractor("", nil),
		NewLitnetExtractor("", nil),
		NewKnigopoiskExtractor("", nil),
		NewRoyalLibExtractor("", nil),
		NewEReadingExtractor("", nil),
		NewLibRuExtractor("", nil),
	)
}

// NewServiceWith builds a service over an explicit extractor list. The list
// order is the source priority order of the merged output.
func NewServiceWith(cache QueryCache, extractors ...Extractor) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	return &Service{extractors: extractors, cache: cache}
}

// Search returns one grouped record per distinct (author, title) pair found
// across the sources. When every source comes back empty the fixed demo
// catalog is substituted for the response but never written to the cache, so
// a transient all-sources-down state cannot stick. Cache failures on either
// side degrade silently: a broken lookup is a miss, a broken store is
// ignored.
func (s *Service) Search(ctx context.Context, query string) ([]models.Book, error) {
	if cached, err := s.cache.Lookup(ctx, query); err != nil {
		log.Printf("[search] cache lookup for %q failed: %v", query, err)
	} else if cached != nil {
		log.Printf("[search] cache hit for %q (%d records)", query, len(cached))
		return cached, nil
	}

	records := fetchAll(ctx, s.extractors, query)
	if len(records) == 0 {
		log.Printf("[search] no records from any source for %q, serving demo catalog", query)
		return fallbackBooks(), nil
	}

	grouped := mergeBooks(records)
	log.Printf("[search] merged %d records into %d books for %q", len(records), len(grouped), query)

	if err := s.cache.Store(ctx, query, grouped); err != nil {
		log.Printf("[search] cache store for %q failed: %v", query, err)
	}
	return grouped, nil
}
