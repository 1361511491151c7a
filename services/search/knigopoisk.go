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
	knigopoiskDefaultBaseURL = "https://knigopoisk.org"
	knigopoiskTimeout        = 8 * time.Second
)

// KnigopoiskExtractor scrapes the knigopoisk.org book search.
type KnigopoiskExtractor struct {
	baseURL string
	client  *http.Client
}

func NewKnigopoiskExtractor(baseURL string, client *http.Client) *KnigopoiskExtractor {
	if baseURL == "" {
		baseURL = knigopoiskDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: knigopoiskTimeout}
	}
	return &KnigopoiskExtractor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *KnigopoiskExtractor) Name() string { return "knigopoisk.org" }

func (e *KnigopoiskExtractor) Extract(ctx context.Context, query string) ([]models.SourceBook, error) {
	searchURL := fmt.Sprintf("%s/search/books?q=%s", e.baseURL, url.QueryEscape(query))
	doc, err := fetchDocument(ctx, e.client, searchURL, nil)
	if err != nil {
		return nil, err
	}

	var books []models.SourceBook
	doc.Find(".book-item").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".book-title a").Text())
		if title == "" {
			return
		}
		author := strings.TrimSpace(item.Find(".book-author a").Text())
		if author == "" {
			author = unknownAuthor
		}
		description := strings.TrimSpace(item.Find(".book-description").Text())
		link, _ := item.Find(".book-title a").Attr("href")

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
