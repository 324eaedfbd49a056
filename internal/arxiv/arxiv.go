// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv queries the arXiv API for paper search and retrieval.
package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/search-skills/internal/httputil"
	"github.com/pdiddy/search-skills/pkg/types"
)

// APIBase is the arXiv query endpoint. Declared as a var so tests can
// substitute an httptest server.
var APIBase = "https://export.arxiv.org/api/query"

// MaxResultsCap bounds --max-results per the arXiv API's politeness rules.
const MaxResultsCap = 20

const defaultMaxResults = 5

// AbstractTruncationMarker is appended to abstracts cut at max length.
const AbstractTruncationMarker = "\n\n[... Content truncated]"

// Client queries the arXiv API.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// SearchResponse is the JSON envelope for query mode.
type SearchResponse struct {
	Success     bool          `json:"success"`
	Query       string        `json:"query"`
	ResultCount int           `json:"result_count"`
	Results     []types.Paper `json:"results"`
}

// PapersResponse is the JSON envelope for ID-lookup mode.
type PapersResponse struct {
	Success         bool          `json:"success"`
	PapersRetrieved int           `json:"papers_retrieved"`
	Papers          []types.Paper `json:"papers"`
}

// Search queries arXiv sorted by relevance. maxResults values above
// MaxResultsCap are clamped; non-positive values get the default.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (SearchResponse, error) {
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

	params := url.Values{
		"search_query": {buildQuery(query)},
		"start":        {"0"},
		"max_results":  {strconv.Itoa(maxResults)},
		"sortBy":       {"relevance"},
		"sortOrder":    {"descending"},
	}

	feed, err := c.fetchFeed(ctx, params)
	if err != nil {
		return SearchResponse{}, err
	}

	results := make([]types.Paper, 0, len(feed.Entries))
	for i, entry := range feed.Entries {
		p := paperFromEntry(entry)
		if p.PaperID == "" {
			continue
		}
		p.Index = i + 1
		results = append(results, p)
	}

	return SearchResponse{
		Success:     true,
		Query:       query,
		ResultCount: len(results),
		Results:     results,
	}, nil
}

// Papers retrieves papers by ID. IDs the API does not return are reported
// as inline error entries rather than failing the lookup. Abstracts are
// truncated to maxLength characters.
func (c *Client) Papers(ctx context.Context, ids []string, maxLength int) (PapersResponse, error) {
	if len(ids) == 0 {
		return PapersResponse{}, fmt.Errorf("no paper IDs given")
	}
	if maxLength <= 0 {
		maxLength = 5000
	}

	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		id = NormalizeID(id)
		if id != "" {
			normalized = append(normalized, id)
		}
	}
	if len(normalized) == 0 {
		return PapersResponse{}, fmt.Errorf("no valid paper IDs given")
	}

	params := url.Values{
		"id_list":     {strings.Join(normalized, ",")},
		"max_results": {strconv.Itoa(len(normalized))},
	}

	feed, err := c.fetchFeed(ctx, params)
	if err != nil {
		return PapersResponse{}, err
	}

	papers := make([]types.Paper, 0, len(normalized))
	found := make(map[string]bool)
	for _, entry := range feed.Entries {
		p := paperFromEntry(entry)
		if p.PaperID == "" {
			continue
		}
		if utf8.RuneCountInString(p.Abstract) > maxLength {
			r := []rune(p.Abstract)
			p.Abstract = string(r[:maxLength]) + AbstractTruncationMarker
		}
		found[p.PaperID] = true
		papers = append(papers, p)
	}

	for _, id := range normalized {
		if !found[id] {
			papers = append(papers, types.Paper{
				PaperID: id,
				Error:   fmt.Sprintf("Paper not found: %s", id),
			})
		}
	}

	return PapersResponse{
		Success:         true,
		PapersRetrieved: len(papers),
		Papers:          papers,
	}, nil
}

func (c *Client) fetchFeed(ctx context.Context, params url.Values) (*feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, APIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var f feed
	if err := xml.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}
	return &f, nil
}

// buildQuery constructs the search_query parameter from free text.
func buildQuery(q string) string {
	terms := strings.Fields(q)
	return "all:" + strings.Join(terms, "+")
}

// arXiv Atom feed XML structures.
type feed struct {
	Entries []entry `xml:"entry"`
}

type entry struct {
	ID         string     `xml:"id"`
	Title      string     `xml:"title"`
	Summary    string     `xml:"summary"`
	Published  string     `xml:"published"`
	Authors    []author   `xml:"author"`
	Links      []link     `xml:"link"`
	Categories []category `xml:"category"`
}

type author struct {
	Name string `xml:"name"`
}

type link struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type category struct {
	Term string `xml:"term,attr"`
}

func paperFromEntry(e entry) types.Paper {
	id := extractID(e.ID)

	p := types.Paper{
		PaperID:  id,
		Title:    strings.Join(strings.Fields(e.Title), " "),
		Abstract: strings.TrimSpace(e.Summary),
		URL:      "https://arxiv.org/abs/" + id,
	}

	var authors []string
	for _, a := range e.Authors {
		authors = append(authors, strings.TrimSpace(a.Name))
	}
	p.Authors = strings.Join(authors, ", ")

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		p.Published = t.Format("2006-01-02")
	}

	for _, l := range e.Links {
		if l.Title == "pdf" || l.Type == "application/pdf" {
			p.PDFURL = l.Href
			break
		}
	}
	if p.PDFURL == "" && id != "" {
		p.PDFURL = "https://arxiv.org/pdf/" + id
	}

	for _, c := range e.Categories {
		if c.Term != "" {
			p.Categories = append(p.Categories, c.Term)
		}
	}

	return p
}

// extractID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041").
func extractID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	return stripVersion(idURL[idx+len(prefix):])
}

// NormalizeID reduces user-supplied identifiers (bare IDs, abs/ or pdf/
// URLs, versioned IDs) to the bare arXiv ID.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.LastIndex(id, "/abs/"); i >= 0 {
		id = id[i+len("/abs/"):]
	} else if i := strings.LastIndex(id, "/pdf/"); i >= 0 {
		id = id[i+len("/pdf/"):]
	}
	id = strings.TrimSuffix(id, ".pdf")
	return stripVersion(id)
}

// stripVersion removes a trailing version suffix (e.g. "v1", "v2").
func stripVersion(id string) string {
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			return id[:vIdx]
		}
	}
	return id
}
