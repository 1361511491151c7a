package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"

	"bookscout/models"
)

const (
	libruDefaultBaseURL = "http://lib.ru"
	// lib.ru answers noticeably slower than the other sites.
	libruTimeout = 10 * time.Second

	libruDescription = "Found in the Moshkov library (lib.ru)"
)

// LibRuExtractor scrapes the lib.ru search CGI. The site serves KOI8-R, so
// the body is decoded to UTF-8 before any structural parsing; every record
// that leaves this extractor is in the common text encoding.
type LibRuExtractor struct {
	baseURL string
	client  *http.Client
}

func NewLibRuExtractor(baseURL string, client *http.Client) *LibRuExtractor {
	if baseURL == "" {
		baseURL = libruDefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: libruTimeout}
	}
	return &LibRuExtractor{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (e *LibRuExtractor) Name() string { return "lib.ru" }

func (e *LibRuExtractor) Extract(ctx context.Context, query string) ([]models.SourceBook, error) {
	searchURL := fmt.Sprintf("%s/cgi-bin/search?q=%s", e.baseURL, url.QueryEscape(query))
	doc, err := fetchDocument(ctx, e.client, searchURL, charmap.KOI8R.NewDecoder())
	if err != nil {
		return nil, err
	}

	var books []models.SourceBook
	doc.Find("li").Each(func(_ int, item *goquery.Selection) {
		linkNode := item.Find("a").First()
		if linkNode.Length() == 0 {
			return
		}

		title := strings.TrimSpace(linkNode.Text())
		if title == "" {
			return
		}
		// Some entries carry no <b> author node at all; those stay in with
		// the sentinel.
		author := strings.Replace(strings.TrimSpace(item.Find("b").First().Text()), ":", "", 1)
		if author == "" {
			author = unknownAuthor
		}

		href, _ := linkNode.Attr("href")
		downloadLink := e.baseURL + href
		// The result list links back into the search CGI itself; those are
		// navigation, not books.
		if strings.Contains(downloadLink, "cgi-bin/search") {
			return
		}

		books = append(books, models.SourceBook{
			Title:        title,
			Author:       author,
			Description:  libruDescription,
			DownloadLink: downloadLink,
			Source:       e.Name(),
		})
	})
	return books, nil
}
