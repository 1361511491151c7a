package search

import (
	"context"
	"log"

	"github.com/sourcegraph/conc/pool"

	"bookscout/models"
)

// fetchAll runs every extractor concurrently and waits for all of them to
// reach a terminal state. A failed or panicking extractor contributes nothing
// and its siblings are never cancelled on its behalf; total wall clock is
// bounded by the slowest extractor's own timeout. The flattened output keeps
// the declared extractor order, so downstream merging is reproducible no
// matter which site answered first.
func fetchAll(ctx context.Context, extractors []Extractor, query string) []models.SourceBook {
	results := make([][]models.SourceBook, len(extractors))

	p := pool.New()
	for i, ex := range extractors {
		i, ex := i, ex // per-iteration copies: go.mod targets go < 1.22
		p.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[search] source %s panicked: %v", ex.Name(), r)
				}
			}()
			books, err := ex.Extract(ctx, query)
			if err != nil {
				log.Printf("[search] source %s failed: %v", ex.Name(), err)
				return
			}
			log.Printf("[search] source %s returned %d records", ex.Name(), len(books))
			results[i] = books
		})
	}
	p.Wait()

	var flat []models.SourceBook
	for _, books := range results {
		flat = append(flat, books...)
	}
	return flat
}
