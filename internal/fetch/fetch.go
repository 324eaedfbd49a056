// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads web pages and extracts readable text from HTML.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/search-skills/pkg/types"
)

// TruncationMarker is appended to extracted text cut at max length.
const TruncationMarker = "\n\n[Content truncated...]"

const defaultMaxBodyBytes = int64(2 << 20)

// Result is the JSON envelope for a single page fetch. On failure only
// Success, Error, URL, and possibly StatusCode are populated.
type Result struct {
	Success     bool   `json:"success"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	TextContent string `json:"text_content,omitempty"`
	TextLength  int    `json:"text_length,omitempty"`
	StatusCode  int    `json:"status_code,omitempty"`
	HTMLContent string `json:"html_content,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Fetch downloads a page and extracts its title and readable text. Failures
// are encoded in the returned Result rather than an error so that callers
// (the fetch-url mode and the combined search pipeline) can surface them
// per-URL without aborting.
func Fetch(ctx context.Context, client *http.Client, rawURL string, includeHTML bool, cfg types.FetchConfig) Result {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return Result{URL: rawURL, Error: "URL must start with http:// or https://"}
	}

	maxLength := cfg.MaxLength
	if maxLength <= 0 {
		maxLength = 50000
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{URL: rawURL, Error: fmt.Sprintf("creating request: %v", err)}
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{URL: rawURL, Error: fmt.Sprintf("request timed out after %s", cfg.Timeout)}
		}
		return Result{URL: rawURL, Error: fmt.Sprintf("fetching URL: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Error:      fmt.Sprintf("HTTP error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Result{URL: rawURL, StatusCode: resp.StatusCode, Error: fmt.Sprintf("reading response: %v", err)}
	}

	html := string(body)
	title, text := ExtractText(html)

	if len(text) > maxLength {
		text = text[:maxLength] + TruncationMarker
	}

	r := Result{
		Success:     true,
		URL:         rawURL,
		Title:       title,
		ContentType: resp.Header.Get("Content-Type"),
		TextContent: text,
		TextLength:  len(text),
		StatusCode:  resp.StatusCode,
	}
	if includeHTML {
		if len(html) > maxLength {
			html = html[:maxLength]
		}
		r.HTMLContent = html
	}
	return r
}

// ExtractText parses HTML and returns the page title and readable text.
// Script, style, and navigation chrome are removed before text extraction;
// whitespace is collapsed per line and blank lines are dropped. When the
// input is not parseable HTML the raw text is returned with tags stripped
// by the parser's best effort.
func ExtractText(html string) (title, text string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "No title", cleanText(html)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = "No title"
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	body := doc.Find("body")
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}
	return title, cleanText(text)
}

// cleanText trims each line, collapses internal whitespace runs, and drops
// blank lines.
func cleanText(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
