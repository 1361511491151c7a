package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bookscout/models"
)

const (
	flibustaDefaultBaseURL = "http://flibusta.is"
	flibustaTimeout        = 8 * time.Second
)

// FlibustaExtractor scrapes the flibusta.is book search. Results are plain
// anchor lists: book links carry a /b/ path prefix and the author link, when
// present, is a /a/ sibling of the book link's parent.
type FlibustaExtractor struct {
	baseURL string
	client  *http.Client
}

// NewFlibustaExtractor constructs the extractor. Empty baseURL and nil client
// fall back to the live site and a client with the default timeout.
func NewFlibustaExtractor(baseURL string, client *http.Client) *FlibustaExtractor {
	if baseURL == "" {
		baseURL = flibustaDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: flibustaTimeout}
	}
	return &FlibustaExtractor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *FlibustaExtractor) Name() string { return "flibusta.is" }

func (e *FlibustaExtractor) Extract(ctx context.Context, query string) ([]models.SourceBook, error) {
	searchURL := fmt.Sprintf("%s/booksearch?ask=%s", e.baseURL, url.QueryEscape(query))
	doc, err := fetchDocument(ctx, e.client, searchURL, nil)
	if err != nil {
		return nil, err
	}

	var books []models.SourceBook
	doc.Find("#main a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || !strings.HasPrefix(href, "/b/") {
			return
		}
		title := strings.TrimSpace(link.Text())
		// "читать"/"скачать" are action links the result list mixes in with
		// real book titles.
		if title == "" || title == "читать" || title == "скачать" {
			return
		}

		author := unknownAuthor
		if name := strings.TrimSpace(link.Parent().NextAllFiltered(`a[href^="/a/"]`).First().Text()); name != "" {
			author = name
		}

		books = append(books, models.SourceBook{
			Title:        title,
			Author:       author,
			Description:  placeholderDescription,
			DownloadLink: e.baseURL + href,
			Source:       e.Name(),
		})
	})
	return books, nil
}
