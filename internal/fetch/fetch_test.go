// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/search-skills/pkg/types"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <title>  Sample Article  </title>
  <style>body { color: red; }</style>
  <script>console.log("tracking");</script>
</head>
<body>
  <nav>Home | About</nav>
  <header>Site header</header>
  <article>
    <h1>Sample Article</h1>
    <p>First   paragraph with    extra spaces.</p>
    <p>Second paragraph.</p>
  </article>
  <footer>Copyright notice</footer>
</body>
</html>`

func pageServer(status int, contentType, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func testConfig() types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "search-skills/test"},
		MaxLength:  50000,
	}
}

func TestFetchExtractsTitleAndText(t *testing.T) {
	ts := pageServer(http.StatusOK, "text/html; charset=utf-8", samplePage)
	defer ts.Close()

	res := Fetch(context.Background(), ts.Client(), ts.URL, false, testConfig())
	if !res.Success {
		t.Fatalf("Fetch failed: %s", res.Error)
	}
	if res.Title != "Sample Article" {
		t.Errorf("Title = %q, want %q", res.Title, "Sample Article")
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", res.StatusCode)
	}
	if res.ContentType != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", res.ContentType)
	}
	if !strings.Contains(res.TextContent, "First paragraph with extra spaces.") {
		t.Errorf("whitespace not collapsed: %q", res.TextContent)
	}
	for _, gone := range []string{"console.log", "color: red", "Home | About", "Site header", "Copyright notice"} {
		if strings.Contains(res.TextContent, gone) {
			t.Errorf("text contains removed element content %q", gone)
		}
	}
	if res.TextLength != len(res.TextContent) {
		t.Errorf("TextLength = %d, want %d", res.TextLength, len(res.TextContent))
	}
	if res.HTMLContent != "" {
		t.Error("HTMLContent set without includeHTML")
	}
}

func TestFetchIncludeHTML(t *testing.T) {
	ts := pageServer(http.StatusOK, "text/html", samplePage)
	defer ts.Close()

	res := Fetch(context.Background(), ts.Client(), ts.URL, true, testConfig())
	if !res.Success {
		t.Fatalf("Fetch failed: %s", res.Error)
	}
	if !strings.Contains(res.HTMLContent, "<title>") {
		t.Errorf("HTMLContent missing raw markup: %q", res.HTMLContent)
	}
}

func TestFetchTruncation(t *testing.T) {
	long := "<html><head><title>Long</title></head><body><p>" +
		strings.Repeat("word ", 200) + "</p></body></html>"
	ts := pageServer(http.StatusOK, "text/html", long)
	defer ts.Close()

	cfg := testConfig()
	cfg.MaxLength = 100

	res := Fetch(context.Background(), ts.Client(), ts.URL, false, cfg)
	if !res.Success {
		t.Fatalf("Fetch failed: %s", res.Error)
	}
	if !strings.HasSuffix(res.TextContent, TruncationMarker) {
		t.Errorf("truncated text missing marker: %q", res.TextContent)
	}
	if len(res.TextContent) != 100+len(TruncationMarker) {
		t.Errorf("len = %d, want %d", len(res.TextContent), 100+len(TruncationMarker))
	}
}

func TestFetchRejectsNonHTTPURL(t *testing.T) {
	for _, u := range []string{"ftp://example.com/file", "example.com", "file:///etc/passwd"} {
		res := Fetch(context.Background(), http.DefaultClient, u, false, testConfig())
		if res.Success {
			t.Errorf("Fetch(%q) succeeded, want failure", u)
		}
		if res.Error != "URL must start with http:// or https://" {
			t.Errorf("Fetch(%q) error = %q", u, res.Error)
		}
	}
}

func TestFetchHTTPError(t *testing.T) {
	ts := pageServer(http.StatusNotFound, "text/html", "<html><body>missing</body></html>")
	defer ts.Close()

	res := Fetch(context.Background(), ts.Client(), ts.URL, false, testConfig())
	if res.Success {
		t.Fatal("Fetch succeeded on 404")
	}
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", res.StatusCode)
	}
	if !strings.Contains(res.Error, "HTTP error 404") {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestFetchConnectionError(t *testing.T) {
	ts := pageServer(http.StatusOK, "text/html", samplePage)
	ts.Close() // closed server refuses connections

	res := Fetch(context.Background(), http.DefaultClient, ts.URL, false, testConfig())
	if res.Success {
		t.Fatal("Fetch succeeded against closed server")
	}
	if res.Error == "" {
		t.Error("Error empty")
	}
}

func TestExtractTextNoTitle(t *testing.T) {
	title, text := ExtractText("<html><body><p>hello</p></body></html>")
	if title != "No title" {
		t.Errorf("title = %q, want %q", title, "No title")
	}
	if text != "hello" {
		t.Errorf("text = %q, want %q", text, "hello")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank lines dropped", "a\n\n\nb", "a\nb"},
		{"internal runs collapsed", "a   b\tc", "a b c"},
		{"leading and trailing trimmed", "  a  \n  b  ", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.in); got != tt.want {
				t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
