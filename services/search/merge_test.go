package search

import (
	"testing"

	"bookscout/models"
)

func TestMergeBooks_GroupsSameWorkAcrossSources(t *testing.T) {
	records := []models.SourceBook{
		{Title: "War and Peace", Author: "Leo Tolstoy", Description: "An epic.", DownloadLink: "http://flibusta.is/b/1", Source: "flibusta.is"},
		{Title: "War and Peace", Author: "Leo Tolstoy", Description: "Longer epic description.", DownloadLink: "https://royallib.com/book/1", Source: "royallib.com"},
	}

	grouped := mergeBooks(records)

	if len(grouped) != 1 {
		t.Fatalf("expected 1 group, got %d", len(grouped))
	}
	book := grouped[0]
	if len(book.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d: %+v", len(book.Sources), book.Sources)
	}
	if book.Sources[0].Name != "flibusta.is" || book.Sources[1].Name != "royallib.com" {
		t.Errorf("sources out of arrival order: %+v", book.Sources)
	}
	if book.Sources[0].Link != "http://flibusta.is/b/1" {
		t.Errorf("unexpected first source link %q", book.Sources[0].Link)
	}
	if book.Description != "Longer epic description." {
		t.Errorf("expected upgraded description, got %q", book.Description)
	}
}

func TestMergeBooks_KeyIsCaseAndWhitespaceInsensitive(t *testing.T) {
	records := []models.SourceBook{
		{Title: "Anna Karenina", Author: "Leo Tolstoy", Source: "a"},
		{Title: "  anna karenina ", Author: "LEO TOLSTOY", Source: "b"},
	}

	grouped := mergeBooks(records)
	if len(grouped) != 1 {
		t.Fatalf("expected variants to group together, got %d groups", len(grouped))
	}
	// The first arrival's spelling wins.
	if grouped[0].Title != "Anna Karenina" {
		t.Errorf("expected first-seen title, got %q", grouped[0].Title)
	}
}

func TestMergeBooks_NoFuzzyAuthorMatching(t *testing.T) {
	records := []models.SourceBook{
		{Title: "War and Peace", Author: "Leo Tolstoy", Source: "a"},
		{Title: "War and Peace", Author: "Tolstoy, Leo", Source: "b"},
	}

	if grouped := mergeBooks(records); len(grouped) != 2 {
		t.Fatalf("expected reordered author names to stay distinct, got %d groups", len(grouped))
	}
}

func TestMergeBooks_DescriptionUpgradeRequiresStrictlyLonger(t *testing.T) {
	records := []models.SourceBook{
		{Title: "t", Author: "a", Description: "12345", Source: "one"},
		{Title: "t", Author: "a", Description: "abcde", Source: "two"},
		{Title: "t", Author: "a", Description: "abc", Source: "three"},
	}

	grouped := mergeBooks(records)
	if grouped[0].Description != "12345" {
		t.Errorf("equal or shorter candidates must not replace, got %q", grouped[0].Description)
	}
}

func TestMergeBooks_GenreDescriptionIsFrozen(t *testing.T) {
	records := []models.SourceBook{
		{Title: "t", Author: "a", Description: "Genre: Fantasy", Source: "royallib.com"},
		{Title: "t", Author: "a", Description: "A much longer plot summary that would normally win.", Source: "litnet.com"},
	}

	grouped := mergeBooks(records)
	if grouped[0].Description != "Genre: Fantasy" {
		t.Errorf("genre description must never be overwritten, got %q", grouped[0].Description)
	}
}

func TestMergeBooks_LongerGenreCandidateReplacesPlainDescription(t *testing.T) {
	records := []models.SourceBook{
		{Title: "t", Author: "a", Description: "short", Source: "one"},
		{Title: "t", Author: "a", Description: "Genre: Historical fiction", Source: "royallib.com"},
	}

	grouped := mergeBooks(records)
	if grouped[0].Description != "Genre: Historical fiction" {
		t.Errorf("genre candidate should win over shorter plain text, got %q", grouped[0].Description)
	}
}

func TestMergeBooks_OutputKeepsFirstSeenOrder(t *testing.T) {
	records := []models.SourceBook{
		{Title: "B", Author: "x", Source: "one"},
		{Title: "A", Author: "x", Source: "one"},
		{Title: "B", Author: "x", Source: "two"},
		{Title: "C", Author: "x", Source: "one"},
	}

	grouped := mergeBooks(records)
	want := []string{"B", "A", "C"}
	if len(grouped) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(grouped))
	}
	for i, title := range want {
		if grouped[i].Title != title {
			t.Errorf("group[%d]: expected %q, got %q", i, title, grouped[i].Title)
		}
	}
}

func TestMergeBooks_EveryRecordAttributedExactlyOnce(t *testing.T) {
	records := []models.SourceBook{
		{Title: "A", Author: "x", Source: "one"},
		{Title: "A", Author: "x", Source: "two"},
		{Title: "B", Author: "y", Source: "one"},
		{Title: "C", Author: "z", Source: "three"},
	}

	grouped := mergeBooks(records)
	total := 0
	for _, b := range grouped {
		total += len(b.Sources)
	}
	if total != len(records) {
		t.Errorf("expected %d source attributions, got %d", len(records), total)
	}
}

// expandGroups turns grouped books back into raw records, one per source
// attribution, so merging can be re-applied.
func expandGroups(books []models.Book) []models.SourceBook {
	var records []models.SourceBook
	for _, b := range books {
		for _, src := range b.Sources {
			records = append(records, models.SourceBook{
				Title:        b.Title,
				Author:       b.Author,
				Description:  b.Description,
				DownloadLink: src.Link,
				Source:       src.Name,
			})
		}
	}
	return records
}

func TestMergeBooks_Idempotent(t *testing.T) {
	records := []models.SourceBook{
		{Title: "War and Peace", Author: "Leo Tolstoy", Description: "Short.", DownloadLink: "l1", Source: "flibusta.is"},
		{Title: "War and Peace", Author: "Leo Tolstoy", Description: "A longer description.", DownloadLink: "l2", Source: "litnet.com"},
		{Title: "Dead Souls", Author: "Nikolai Gogol", Description: "Genre: Satire", DownloadLink: "l3", Source: "royallib.com"},
	}

	once := mergeBooks(records)
	twice := mergeBooks(expandGroups(once))

	if len(once) != len(twice) {
		t.Fatalf("re-merging changed group count: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Title != twice[i].Title || once[i].Author != twice[i].Author || once[i].Description != twice[i].Description {
			t.Errorf("group %d changed on re-merge: %+v vs %+v", i, once[i], twice[i])
		}
		if len(once[i].Sources) != len(twice[i].Sources) {
			t.Errorf("group %d source count changed: %d vs %d", i, len(once[i].Sources), len(twice[i].Sources))
		}
	}
}
