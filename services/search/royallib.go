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
	royallibDefaultBaseURL = "https://royallib.com"
	royallibTimeout        = 8 * time.Second
)

// RoyalLibExtractor scrapes royallib.com search results, which come back as a
// striped table with author and book links per row. The site publishes no
// annotations, only a genre column, so descriptions are genre-derived.
type RoyalLibExtractor struct {
	baseURL string
	client  *http.Client
}

func NewRoyalLibExtractor(baseURL string, client *http.Client) *RoyalLibExtractor {
	if baseURL == "" {
		baseURL = royallibDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: royallibTimeout}
	}
	return &RoyalLibExtractor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *RoyalLibExtractor) Name() string { return "royallib.com" }

func (e *RoyalLibExtractor) Extract(ctx context.Context, query string) ([]models.SourceBook, error) {
	searchURL := fmt.Sprintf("%s/search?q=%s", e.baseURL, url.QueryEscape(query))
	doc, err := fetchDocument(ctx, e.client, searchURL, nil)
	if err != nil {
		return nil, err
	}

	var books []models.SourceBook
	doc.Find("table.stripy tr").Each(func(_ int, row *goquery.Selection) {
		bookNode := row.Find(`a[href*="/book/"]`).First()
		title := strings.TrimSpace(bookNode.Text())
		if bookNode.Length() == 0 || title == "" {
			return
		}
		author := strings.TrimSpace(row.Find(`a[href*="/author/"]`).First().Text())
		if author == "" {
			author = unknownAuthor
		}
		href, _ := bookNode.Attr("href")
		genre := strings.TrimSpace(row.Find("td").Eq(2).Text())

		books = append(books, models.SourceBook{
			Title:        title,
			Author:       author,
			Description:  genrePrefix + " " + genre,
			DownloadLink: e.baseURL + href,
			Source:       e.Name(),
		})
	})
	return books, nil
}
