package models

// SourceBook is a single raw search hit as produced by one site extractor.
// It lives only between extraction and merging and is never persisted.
type SourceBook struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Description  string `json:"description"`
	DownloadLink string `json:"downloadLink"`
	Source       string `json:"source"`
}

// BookSource names one site where a grouped book was found.
type BookSource struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Book is the canonical, caller-facing record: one entry per distinct
// (author, title) pair with every contributing source attached. Sources
// keep the order in which the records arrived during merging.
type Book struct {
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	Description string       `json:"description"`
	Sources     []BookSource `json:"sources"`
}
