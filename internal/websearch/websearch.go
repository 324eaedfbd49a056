// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package websearch queries DuckDuckGo and shapes results into the web
// skill's JSON envelope, optionally fetching page content from top hits.
package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sap-nocops/duckduckgogo/client"

	"github.com/pdiddy/search-skills/internal/fetch"
	"github.com/pdiddy/search-skills/pkg/types"
)

// MaxResultsCap bounds --max-results to keep queries polite.
const MaxResultsCap = 10

const defaultMaxResults = 5

// Searcher performs a DuckDuckGo query. The production implementation is
// duckduckgogo's HTML client; tests substitute a fake.
type Searcher interface {
	SearchLimited(query string, limit int) ([]client.Result, error)
}

// NewSearcher returns the production DuckDuckGo searcher.
func NewSearcher() Searcher {
	return client.NewDuckDuckGoSearchClient()
}

// SearchResponse is the JSON envelope for search-only mode.
type SearchResponse struct {
	Success     bool              `json:"success"`
	Query       string            `json:"query"`
	ResultCount int               `json:"result_count"`
	Results     []types.WebResult `json:"results"`
}

// Search queries DuckDuckGo and returns shaped results. maxResults values
// above MaxResultsCap are clamped; non-positive values get the default.
func Search(s Searcher, query string, maxResults int) (SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResponse{}, fmt.Errorf("query is empty")
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > MaxResultsCap {
		maxResults = MaxResultsCap
	}

	raw, err := s.SearchLimited(query, maxResults)
	if err != nil {
		return SearchResponse{}, fmt.Errorf("web search: %w", err)
	}

	results := make([]types.WebResult, 0, len(raw))
	for i, r := range raw {
		results = append(results, types.WebResult{
			Index:   i + 1,
			Title:   fallback(r.Title, "No title"),
			Snippet: fallback(r.Snippet, "No snippet"),
			Link:    normalizeLink(r.FormattedUrl),
		})
	}

	return SearchResponse{
		Success:     true,
		Query:       query,
		ResultCount: len(results),
		Results:     results,
	}, nil
}

// FetchedContent is one entry of the combined mode's fetched_content list.
// FetchSuccess is tracked per URL so one unreachable page does not fail the
// whole response.
type FetchedContent struct {
	Index        int    `json:"index"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	TextContent  string `json:"text_content"`
	TextLength   int    `json:"text_length"`
	FetchSuccess bool   `json:"fetch_success"`
	Error        string `json:"error,omitempty"`
}

// CombinedResponse is the JSON envelope for search-and-fetch mode.
type CombinedResponse struct {
	Success        bool             `json:"success"`
	Query          string           `json:"query"`
	SearchResults  SearchResponse   `json:"search_results"`
	FetchedContent []FetchedContent `json:"fetched_content"`
	TotalResults   int              `json:"total_results"`
	FetchedCount   int              `json:"fetched_count"`
}

// SearchAndFetch runs a web search and fetches page content from the top N
// results, pausing cfg.FetchDelay between consecutive fetches. Progress is
// written to w; per-URL fetch failures are recorded inline.
func SearchAndFetch(ctx context.Context, s Searcher, httpClient *http.Client, query string, cfg types.WebSearchConfig, fcfg types.FetchConfig, w io.Writer) (CombinedResponse, error) {
	sr, err := Search(s, query, cfg.MaxResults)
	if err != nil {
		return CombinedResponse{}, err
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = 3
	}
	if topN > len(sr.Results) {
		topN = len(sr.Results)
	}

	fetched := make([]FetchedContent, 0, topN)
	for i := 0; i < topN; i++ {
		if i > 0 && cfg.FetchDelay > 0 {
			select {
			case <-ctx.Done():
				return CombinedResponse{}, ctx.Err()
			case <-time.After(cfg.FetchDelay):
			}
		}

		url := sr.Results[i].Link
		fmt.Fprintf(w, "fetching content from result %d/%d: %s\n", i+1, topN, url)

		page := fetch.Fetch(ctx, httpClient, url, false, fcfg)
		fetched = append(fetched, FetchedContent{
			Index:        i + 1,
			URL:          url,
			Title:        fallback(page.Title, "No title"),
			TextContent:  page.TextContent,
			TextLength:   page.TextLength,
			FetchSuccess: page.Success,
			Error:        page.Error,
		})
	}

	return CombinedResponse{
		Success:        true,
		Query:          query,
		SearchResults:  sr,
		FetchedContent: fetched,
		TotalResults:   len(sr.Results),
		FetchedCount:   len(fetched),
	}, nil
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}

// normalizeLink ensures result links carry a scheme; DuckDuckGo's formatted
// URLs omit it.
func normalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return "No link"
	}
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "https://" + link
	}
	return link
}
