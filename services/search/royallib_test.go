package search

import (
	"context"
	"strings"
	"testing"
)

const royallibFixture = `<html><body><table class="stripy">
<tr>
  <td><a href="/author/10">Николай Гоголь</a></td>
  <td><a href="/book/dead-souls">Мёртвые души</a></td>
  <td>Классическая проза</td>
</tr>
<tr>
  <td>колонтитул</td>
  <td>без ссылок</td>
  <td></td>
</tr>
<tr>
  <td></td>
  <td><a href="/book/orphan">Безавторная книга</a></td>
  <td>Фантастика</td>
</tr>
</table></body></html>`

func TestRoyalLibExtract(t *testing.T) {
	srv, last := htmlServer(t, royallibFixture)

	e := NewRoyalLibExtractor(srv.URL, srv.Client())
	books, err := e.Extract(context.Background(), "гоголь")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if last.URL.Path != "/search" || last.URL.Query().Get("q") != "гоголь" {
		t.Errorf("unexpected search request: %s", last.URL)
	}

	// Rows without a book link are skipped.
	if len(books) != 2 {
		t.Fatalf("expected 2 books, got %d: %+v", len(books), books)
	}

	first := books[0]
	if first.Title != "Мёртвые души" || first.Author != "Николай Гоголь" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Description != "Genre: Классическая проза" {
		t.Errorf("expected genre-derived description, got %q", first.Description)
	}
	if !strings.HasPrefix(first.Description, genrePrefix) {
		t.Errorf("genre description must carry the freeze prefix, got %q", first.Description)
	}
	if first.DownloadLink != srv.URL+"/book/dead-souls" {
		t.Errorf("unexpected link %q", first.DownloadLink)
	}
	if books[1].Author != unknownAuthor {
		t.Errorf("expected sentinel author, got %q", books[1].Author)
	}
}
