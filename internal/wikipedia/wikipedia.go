// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wikipedia queries the MediaWiki action API for article lookups.
// A query is resolved as a page title (following redirects); related
// articles come from the page's outgoing links.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/search-skills/internal/httputil"
	"github.com/pdiddy/search-skills/pkg/types"
)

// Client talks to one language edition of Wikipedia. Tests point BaseURL at
// an httptest server.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

// NewClient builds a client for the configured language edition.
func NewClient(httpClient *http.Client, cfg types.WikipediaConfig) *Client {
	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	return &Client{
		HTTP:      httpClient,
		BaseURL:   fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang),
		UserAgent: cfg.UserAgent,
	}
}

// Page holds the fields of a resolved article used by the skill.
type Page struct {
	Title      string
	Extract    string
	FullURL    string
	Categories []string
}

// MediaWiki action API response envelope (format=json).
type apiResponse struct {
	Query struct {
		Pages map[string]apiPage `json:"pages"`
	} `json:"query"`
}

type apiPage struct {
	PageID     int     `json:"pageid"`
	Title      string  `json:"title"`
	Missing    *string `json:"missing"`
	Extract    string  `json:"extract"`
	FullURL    string  `json:"fullurl"`
	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
}

// GetPage resolves a title (following redirects) and returns the page with
// its plain-text extract. With intro true only the lead section is fetched.
// found is false when no article exists under the title.
func (c *Client) GetPage(ctx context.Context, title string, intro bool, categoryLimit int) (page Page, found bool, err error) {
	params := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"redirects":   {"1"},
		"titles":      {title},
		"prop":        {"extracts|info|categories"},
		"inprop":      {"url"},
		"explaintext": {"1"},
	}
	if intro {
		params.Set("exintro", "1")
	}
	if categoryLimit > 0 {
		params.Set("cllimit", strconv.Itoa(categoryLimit))
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return Page{}, false, err
	}

	for _, p := range resp.Query.Pages {
		if p.Missing != nil || p.PageID == 0 {
			return Page{}, false, nil
		}
		return pageFromAPI(p), true, nil
	}
	return Page{}, false, nil
}

// Related returns up to limit articles linked from the page, each with a
// short lead-section extract. Links that do not resolve to an existing
// article are skipped.
func (c *Client) Related(ctx context.Context, title string, limit int) ([]types.WikiRef, error) {
	params := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"redirects":   {"1"},
		"titles":      {title},
		"generator":   {"links"},
		"gpllimit":    {"20"},
		"prop":        {"extracts|info"},
		"inprop":      {"url"},
		"explaintext": {"1"},
		"exintro":     {"1"},
		"exlimit":     {"20"},
	}

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var pages []apiPage
	for _, p := range resp.Query.Pages {
		if p.Missing != nil || p.PageID == 0 || p.Extract == "" {
			continue
		}
		pages = append(pages, p)
	}

	// The pages map carries no ordering; sort by title for stable output.
	sort.Slice(pages, func(i, j int) bool { return pages[i].Title < pages[j].Title })

	if limit > 0 && len(pages) > limit {
		pages = pages[:limit]
	}

	refs := make([]types.WikiRef, 0, len(pages))
	for _, p := range pages {
		refs = append(refs, types.WikiRef{
			Title:   p.Title,
			Snippet: Snippet(p.Extract, 150),
			URL:     p.FullURL,
		})
	}
	return refs, nil
}

func (c *Client) get(ctx context.Context, params url.Values) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Wikipedia API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Wikipedia API returned HTTP %d", resp.StatusCode)
	}

	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return nil, fmt.Errorf("parsing Wikipedia response: %w", err)
	}
	return &ar, nil
}

func pageFromAPI(p apiPage) Page {
	page := Page{
		Title:   p.Title,
		Extract: strings.TrimSpace(p.Extract),
		FullURL: p.FullURL,
	}
	for _, cat := range p.Categories {
		page.Categories = append(page.Categories, cat.Title)
	}
	return page
}

// Snippet shortens s to max characters, appending an ellipsis when cut.
// Truncation is rune-based so non-English editions are not split mid-character.
func Snippet(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
