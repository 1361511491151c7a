package search

import (
	"strings"

	"bookscout/models"
)

// genrePrefix marks genre-derived descriptions. They are short but
// structurally reliable, so a longer prose snippet from a noisier source
// never replaces one.
const genrePrefix = "Genre:"

// groupKey normalizes an (author, title) pair for grouping. Matching is
// lowercase exact after trimming: no transliteration, punctuation stripping
// or fuzzy matching, so "Tolstoy, Leo" and "Leo Tolstoy" stay distinct.
func groupKey(author, title string) string {
	return strings.ToLower(strings.TrimSpace(author)) + "|" + strings.ToLower(strings.TrimSpace(title))
}

// mergeBooks groups raw per-site records into one Book per distinct
// (author, title) key. Output order is the first-seen order of keys and
// every record's source is attributed to exactly one group, in arrival
// order. Deterministic for a fixed input order.
func mergeBooks(records []models.SourceBook) []models.Book {
	index := make(map[string]int, len(records))
	var grouped []models.Book

	for _, rec := range records {
		key := groupKey(rec.Author, rec.Title)
		idx, ok := index[key]
		if !ok {
			grouped = append(grouped, models.Book{
				Title:       rec.Title,
				Author:      rec.Author,
				Description: rec.Description,
			})
			idx = len(grouped) - 1
			index[key] = idx
		}
		book := &grouped[idx]
		book.Sources = append(book.Sources, models.BookSource{Name: rec.Source, Link: rec.DownloadLink})

		// A strictly longer description wins, unless the one already chosen
		// is genre-derived.
		if len(rec.Description) > len(book.Description) && !strings.HasPrefix(book.Description, genrePrefix) {
			book.Description = rec.Description
		}
	}
	return grouped
}
