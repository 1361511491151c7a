package search

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/transform"

	"bookscout/models"
)

// browserUserAgent impersonates a desktop browser. Several of the catalog
// sites reject requests that identify themselves as a non-browser client.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// unknownAuthor is substituted when a site returns a result whose author
// cannot be located by the selector. Records without a title are dropped
// instead.
const unknownAuthor = "Unknown author"

// placeholderDescription stands in for sites whose result lists carry no
// annotation text.
const placeholderDescription = "Description not yet available."

// maxResponseBytes caps how much of a scraped page is read.
const maxResponseBytes = 4 << 20

// Extractor is implemented by each external catalog site. A failed extraction
// (timeout, non-2xx status, parse error) surfaces as an error and contributes
// zero records; the orchestrator never lets one site's failure affect another.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, query string) ([]models.SourceBook, error)
}

// fetchDocument GETs a search page and parses it with goquery. decoder, when
// non-nil, is applied to the body before parsing; the lib.ru extractor uses it
// to turn KOI8-R bytes into UTF-8 so encoding concerns never leak past the
// extractor boundary.
func fetchDocument(ctx context.Context, client *http.Client, searchURL string, decoder transform.Transformer) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body io.Reader = io.LimitReader(resp.Body, maxResponseBytes)
	if decoder != nil {
		body = transform.NewReader(body, decoder)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
