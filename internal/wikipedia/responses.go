// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package wikipedia

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pdiddy/search-skills/pkg/types"
)

// Statuses reported in the success envelopes.
const (
	StatusSuccess   = "success"
	StatusNoResults = "no_results"
	StatusNotFound  = "not_found"
)

// SearchResponse is the JSON envelope for query mode. For a resolved page
// Result and Related are set; for a miss Message and the empty Results list
// are set instead (Results is a pointer so the empty list still serializes
// as [] rather than being omitted).
type SearchResponse struct {
	Success bool             `json:"success"`
	Status  string           `json:"status"`
	Query   string           `json:"query"`
	Message string           `json:"message,omitempty"`
	Result  *types.WikiRef   `json:"result,omitempty"`
	Related []types.WikiRef  `json:"related,omitempty"`
	Results *[]types.WikiRef `json:"results,omitempty"`
}

// ArticleResponse is the JSON envelope for title mode.
type ArticleResponse struct {
	Success        bool     `json:"success"`
	Status         string   `json:"status"`
	Title          string   `json:"title"`
	Message        string   `json:"message,omitempty"`
	Suggestion     string   `json:"suggestion,omitempty"`
	ContentType    string   `json:"content_type,omitempty"`
	Content        string   `json:"content,omitempty"`
	URL            string   `json:"url,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	CharacterCount int      `json:"character_count,omitempty"`
}

// Search resolves a query as an article and collects related articles from
// its links. A missing article is not an error: it yields a no_results
// envelope with success still true, matching the skill contract.
func Search(ctx context.Context, c *Client, query string, cfg types.WikipediaConfig) (SearchResponse, error) {
	page, found, err := c.GetPage(ctx, query, true, 0)
	if err != nil {
		return SearchResponse{}, err
	}

	if !found {
		empty := []types.WikiRef{}
		return SearchResponse{
			Success: true,
			Status:  StatusNoResults,
			Query:   query,
			Message: fmt.Sprintf("No Wikipedia articles found for: %s", query),
			Results: &empty,
		}, nil
	}

	relatedLimit := cfg.RelatedLimit
	if relatedLimit <= 0 {
		relatedLimit = 5
	}
	related, err := c.Related(ctx, page.Title, relatedLimit)
	if err != nil {
		// The main result is already in hand; degrade to an empty related list.
		related = nil
	}

	return SearchResponse{
		Success: true,
		Status:  StatusSuccess,
		Query:   query,
		Result: &types.WikiRef{
			Title:   page.Title,
			Snippet: Snippet(page.Extract, 300),
			URL:     page.FullURL,
		},
		Related: related,
	}, nil
}

// Article retrieves an article by exact title, returning either the lead
// summary or the full plain text truncated to cfg.MaxLength.
func Article(ctx context.Context, c *Client, title string, summaryOnly bool, cfg types.WikipediaConfig) (ArticleResponse, error) {
	page, found, err := c.GetPage(ctx, title, summaryOnly, 5)
	if err != nil {
		return ArticleResponse{}, err
	}

	if !found {
		return ArticleResponse{
			Success:    true,
			Status:     StatusNotFound,
			Title:      title,
			Message:    fmt.Sprintf("Wikipedia article not found: %s", title),
			Suggestion: "Try using --query to search for the correct article title",
		}, nil
	}

	maxLength := cfg.MaxLength
	if maxLength <= 0 {
		maxLength = 5000
	}

	content := page.Extract
	contentType := "full_text"
	if summaryOnly {
		contentType = "summary"
	} else if utf8.RuneCountInString(content) > maxLength {
		r := []rune(content)
		content = string(r[:maxLength]) +
			fmt.Sprintf("\n\n[... Content truncated at %d characters]", maxLength)
	}

	return ArticleResponse{
		Success:        true,
		Status:         StatusSuccess,
		Title:          page.Title,
		ContentType:    contentType,
		Content:        content,
		URL:            page.FullURL,
		Categories:     page.Categories,
		CharacterCount: utf8.RuneCountInString(content),
	}, nil
}
