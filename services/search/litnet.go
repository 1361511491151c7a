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
	litnetDefaultBaseURL = "https://litnet.com"
	litnetTimeout        = 8 * time.Second
)

// LitnetExtractor scrapes the litnet.com search page. Each hit is a
// .book-item card with title, author name and annotation text.
type LitnetExtractor struct {
	baseURL string
	client  *http.Client
}

func NewLitnetExtractor(baseURL string, client *http.Client) *LitnetExtractor {
	if baseURL == "" {
		baseURL = litnetDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: litnetTimeout}
	}
	return &LitnetExtractor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *LitnetExtractor) Name() string { return "litnet.com" }

func (e *LitnetExtractor) Extract(ctx context.Context, query string) ([]models.SourceBook, error) {
	searchURL := fmt.Sprintf("%s/ru/search?q=%s", e.baseURL, url.QueryEscape(query))
	doc, err := fetchDocument(ctx, e.client, searchURL, nil)
	if err != nil {
		return nil, err
	}

	var books []models.SourceBook
	doc.Find(".book-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find("h4.book-title a").Text())
		if title == "" {
			return
		}
		author := strings.TrimSpace(item.Find(".author-name").Text())
		if author == "" {
			author = unknownAuthor
		}
		description := strings.TrimSpace(item.Find(".annotation-text").Text())
		link, _ := item.Find("a.cover").Attr("href")

		books = append(books, models.SourceBook{
			Title:        title,
			Author:       author,
			Description:  description,
			DownloadLink: e.baseURL + link,
			Source:       e.Name(),
		})
	})
	return books, nil
}
