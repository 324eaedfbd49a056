// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1706.03762v7</id>
    <title>Attention Is All
 You Need</title>
    <summary>  The dominant sequence transduction models are based on complex recurrent or
convolutional neural networks.  </summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <link href="http://arxiv.org/abs/1706.03762v7" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/1706.03762v7" rel="related" type="application/pdf"/>
    <category term="cs.CL"/>
    <category term="cs.LG"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2301.07041v1</id>
    <title>Second Paper</title>
    <summary>Second abstract.</summary>
    <published>2023-01-17T12:00:00Z</published>
    <author><name>Jane Doe</name></author>
    <category term="cs.AI"/>
  </entry>
</feed>`

func feedServer(t *testing.T, body string, gotParams *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotParams != nil {
			m := map[string]string{}
			for k, v := range r.URL.Query() {
				m[k] = v[0]
			}
			*gotParams = m
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, body)
	}))
}

func withServer(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()
	orig := APIBase
	APIBase = ts.URL
	t.Cleanup(func() { APIBase = orig })
	return &Client{HTTP: ts.Client(), UserAgent: "search-skills/test"}
}

func TestSearch(t *testing.T) {
	var params map[string]string
	ts := feedServer(t, sampleFeed, &params)
	defer ts.Close()
	c := withServer(t, ts)

	resp, err := c.Search(context.Background(), "transformer attention", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false")
	}
	if resp.ResultCount != 2 {
		t.Fatalf("ResultCount = %d, want 2", resp.ResultCount)
	}

	if params["search_query"] != "all:transformer+attention" {
		t.Errorf("search_query = %q", params["search_query"])
	}
	if params["sortBy"] != "relevance" {
		t.Errorf("sortBy = %q", params["sortBy"])
	}
	if params["max_results"] != "5" {
		t.Errorf("max_results = %q", params["max_results"])
	}

	p := resp.Results[0]
	if p.Index != 1 {
		t.Errorf("Index = %d", p.Index)
	}
	if p.PaperID != "1706.03762" {
		t.Errorf("PaperID = %q", p.PaperID)
	}
	if p.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q (feed newlines not collapsed)", p.Title)
	}
	if p.Authors != "Ashish Vaswani, Noam Shazeer" {
		t.Errorf("Authors = %q", p.Authors)
	}
	if p.Published != "2017-06-12" {
		t.Errorf("Published = %q", p.Published)
	}
	if p.URL != "https://arxiv.org/abs/1706.03762" {
		t.Errorf("URL = %q", p.URL)
	}
	if p.PDFURL != "http://arxiv.org/pdf/1706.03762v7" {
		t.Errorf("PDFURL = %q", p.PDFURL)
	}
	if len(p.Categories) != 2 || p.Categories[0] != "cs.CL" {
		t.Errorf("Categories = %v", p.Categories)
	}
	if strings.HasPrefix(p.Abstract, " ") || strings.HasSuffix(p.Abstract, " ") {
		t.Errorf("Abstract not trimmed: %q", p.Abstract)
	}

	// Entry with no pdf link falls back to the derived URL.
	if resp.Results[1].PDFURL != "https://arxiv.org/pdf/2301.07041" {
		t.Errorf("fallback PDFURL = %q", resp.Results[1].PDFURL)
	}
}

func TestSearchClampsMaxResults(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{100, "20"},
		{20, "20"},
		{0, "5"},
		{-1, "5"},
	}
	for _, tt := range tests {
		var params map[string]string
		ts := feedServer(t, sampleFeed, &params)
		c := withServer(t, ts)

		if _, err := c.Search(context.Background(), "q", tt.in); err != nil {
			t.Fatalf("Search(%d): %v", tt.in, err)
		}
		if params["max_results"] != tt.want {
			t.Errorf("Search(%d): max_results = %q, want %q", tt.in, params["max_results"], tt.want)
		}
		ts.Close()
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := &Client{HTTP: http.DefaultClient}
	if _, err := c.Search(context.Background(), "  ", 5); err == nil {
		t.Error("Search accepted blank query")
	}
}

func TestSearchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()
	c := withServer(t, ts)

	_, err := c.Search(context.Background(), "q", 5)
	if err == nil || !strings.Contains(err.Error(), "HTTP 400") {
		t.Errorf("err = %v", err)
	}
}

func TestPapers(t *testing.T) {
	var params map[string]string
	ts := feedServer(t, sampleFeed, &params)
	defer ts.Close()
	c := withServer(t, ts)

	resp, err := c.Papers(context.Background(), []string{"1706.03762", "2301.07041"}, 5000)
	if err != nil {
		t.Fatalf("Papers: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false")
	}
	if params["id_list"] != "1706.03762,2301.07041" {
		t.Errorf("id_list = %q", params["id_list"])
	}
	if resp.PapersRetrieved != 2 || len(resp.Papers) != 2 {
		t.Fatalf("PapersRetrieved = %d, len = %d", resp.PapersRetrieved, len(resp.Papers))
	}
	for _, p := range resp.Papers {
		if p.Error != "" {
			t.Errorf("unexpected error entry: %+v", p)
		}
		if p.Index != 0 {
			t.Errorf("Index set on ID lookup: %+v", p)
		}
	}
}

func TestPapersReportsMissingIDs(t *testing.T) {
	ts := feedServer(t, sampleFeed, nil)
	defer ts.Close()
	c := withServer(t, ts)

	resp, err := c.Papers(context.Background(), []string{"1706.03762", "9999.99999"}, 5000)
	if err != nil {
		t.Fatalf("Papers: %v", err)
	}

	// sampleFeed has two entries; the bogus ID must show up as an error entry.
	var missing *string
	for i := range resp.Papers {
		if resp.Papers[i].PaperID == "9999.99999" {
			missing = &resp.Papers[i].Error
		}
	}
	if missing == nil {
		t.Fatal("missing ID absent from papers list")
	}
	if *missing != "Paper not found: 9999.99999" {
		t.Errorf("error = %q", *missing)
	}
}

func TestPapersTruncatesAbstract(t *testing.T) {
	ts := feedServer(t, sampleFeed, nil)
	defer ts.Close()
	c := withServer(t, ts)

	resp, err := c.Papers(context.Background(), []string{"1706.03762"}, 10)
	if err != nil {
		t.Fatalf("Papers: %v", err)
	}
	abstract := resp.Papers[0].Abstract
	if !strings.HasSuffix(abstract, AbstractTruncationMarker) {
		t.Errorf("Abstract = %q, marker missing", abstract)
	}
	if len([]rune(abstract)) != 10+len([]rune(AbstractTruncationMarker)) {
		t.Errorf("Abstract length = %d", len([]rune(abstract)))
	}
}

func TestPapersNoIDs(t *testing.T) {
	c := &Client{HTTP: http.DefaultClient}
	if _, err := c.Papers(context.Background(), nil, 5000); err == nil {
		t.Error("Papers accepted empty ID list")
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2301.07041", "2301.07041"},
		{"2301.07041v2", "2301.07041"},
		{" 2301.07041 ", "2301.07041"},
		{"https://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"https://arxiv.org/pdf/2301.07041.pdf", "2301.07041"},
		{"cs/9901002", "cs/9901002"},
	}
	for _, tt := range tests {
		if got := NormalizeID(tt.in); got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"http://arxiv.org/abs/2301.07041", "2301.07041"},
		{"http://arxiv.org/abs/cs/9901002v1", "cs/9901002"},
		{"http://example.com/nothing", ""},
	}
	for _, tt := range tests {
		if got := extractID(tt.in); got != tt.want {
			t.Errorf("extractID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
