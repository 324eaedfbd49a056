// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the search-skills CLI.
// Each skill prints a JSON envelope on stdout with a boolean success field;
// the records here are the payloads those envelopes carry.
package types

// WebResult is a single web search hit.
type WebResult struct {
	// Index is the 1-based position of the result in the response.
	Index int `json:"index" yaml:"index"`

	// Title is the result title as returned by the search engine.
	Title string `json:"title" yaml:"title"`

	// Snippet is the short text excerpt shown with the result.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Link is the result URL.
	Link string `json:"link" yaml:"link"`
}

// WikiRef points at a Wikipedia article: title, short snippet, and URL.
type WikiRef struct {
	Title   string `json:"title" yaml:"title"`
	Snippet string `json:"snippet" yaml:"snippet"`
	URL     string `json:"url" yaml:"url"`
}

// Paper holds metadata for an arXiv paper as returned by the query API.
type Paper struct {
	// Index is the 1-based position in a search response; zero for ID lookups.
	Index int `json:"index,omitempty" yaml:"index,omitempty"`

	// Title is the paper title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Authors is the comma-joined author list in source order.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Published is the submission date in YYYY-MM-DD form.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`

	// PaperID is the arXiv identifier without version suffix (e.g. "2301.07041").
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// Abstract is the paper abstract, possibly truncated.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// URL is the abstract page, PDFURL the direct PDF link.
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// Categories lists the arXiv subject categories.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Error is set instead of the metadata fields when a requested ID
	// was not returned by the API.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ErrorEnvelope is the JSON object printed when an operation fails. Only the
// context field matching the failed operation is populated.
type ErrorEnvelope struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Query      string `json:"query,omitempty"`
	URL        string `json:"url,omitempty"`
	Title      string `json:"title,omitempty"`
	PaperIDs   string `json:"paper_ids,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}
