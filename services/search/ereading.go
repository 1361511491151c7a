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
	ereadingDefaultBaseURL = "https://www.e-reading.club"
	ereadingTimeout        = 8 * time.Second
)

// EReadingExtractor scrapes the e-reading.club search page. Hits are nested
// table.book blocks; the annotation sits in the second top-aligned cell and
// may run over several lines, of which only the first is the synopsis.
type EReadingExtractor struct {
	baseURL string
	client  *http.Client
}

func NewEReadingExtractor(baseURL string, client *http.Client) *EReadingExtractor {
	if baseURL == "" {
		baseURL = ereadingDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: ereadingTimeout}
	}
	return &EReadingExtractor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *EReadingExtractor) Name() string { return "e-reading.club" }

func (e *EReadingExtractor) Extract(ctx context.Context, query string) ([]models.SourceBook, error) {
	searchURL := fmt.Sprintf("%s/search.php?q=%s", e.baseURL, url.QueryEscape(query))
	doc, err := fetchDocument(ctx, e.client, searchURL, nil)
	if err != nil {
		return nil, err
	}

	var books []models.SourceBook
	doc.Find("td > table.book").Each(func(_ int, item *goquery.Selection) {
		titleNode := item.Find(`a[href^="book.php?book="]`).First()
		title := strings.TrimSpace(titleNode.Text())
		if titleNode.Length() == 0 || title == "" {
			return
		}
		author := strings.TrimSpace(item.Find(`a[href^="bookbyauthor.php?author="]`).First().Text())
		if author == "" {
			author = unknownAuthor
		}
		href, _ := titleNode.Attr("href")

		description := strings.TrimSpace(item.Find(`td[valign="top"]`).Eq(1).Text())
		if i := strings.IndexByte(description, '\n'); i >= 0 {
			description = description[:i]
		}

		books = append(books, models.SourceBook{
			Title:        title,
			Author:       author,
			Description:  description,
			DownloadLink: e.baseURL + "/" + href,
			Source:       e.Name(),
		})
	})
	return books, nil
}
