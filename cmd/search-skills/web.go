package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-skills/internal/fetch"
	"github.com/pdiddy/search-skills/internal/websearch"
	"github.com/pdiddy/search-skills/pkg/types"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Search the web with DuckDuckGo and fetch page content",
	Long: `Web searches DuckDuckGo and prints results as JSON, fetches and extracts
readable text from a URL, or combines both: search and fetch content from
the top results.

Examples:
  # Search the web
  search-skills web --query "Python async programming"

  # Fetch content from a URL
  search-skills web --fetch-url "https://example.com/article"

  # Search and auto-fetch top results
  search-skills web --query "AWS Lambda" --fetch-content --top-n 3`,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringP("query", "q", "", "search query string")
	webCmd.Flags().IntP("max-results", "m", 5, "maximum number of search results (max 10)")
	webCmd.Flags().StringP("fetch-url", "u", "", "URL to fetch content from")
	webCmd.Flags().Bool("include-html", false, "include raw HTML in the response")
	webCmd.Flags().IntP("max-length", "l", 50000, "maximum character length for fetched content")
	webCmd.Flags().BoolP("fetch-content", "f", false, "fetch content from top search results")
	webCmd.Flags().IntP("top-n", "n", 3, "number of top results to fetch content from")
	webCmd.Flags().Duration("fetch-delay", time.Second, "delay between consecutive page fetches")
	webCmd.Flags().Bool("pretty", false, "pretty-print JSON output")

	rootCmd.AddCommand(webCmd)
}

func runWeb(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	fetchURL, _ := cmd.Flags().GetString("fetch-url")

	if query == "" && fetchURL == "" {
		return fmt.Errorf("must specify either --query or --fetch-url")
	}
	if query != "" && fetchURL != "" {
		return fmt.Errorf("cannot specify both --query and --fetch-url")
	}

	// Flags are valid; from here failures are reported as JSON envelopes.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	pretty, _ := cmd.Flags().GetBool("pretty")
	includeHTML, _ := cmd.Flags().GetBool("include-html")
	fetchContent, _ := cmd.Flags().GetBool("fetch-content")

	httpCfg := httpConfig()
	client := newHTTPClient(httpCfg)
	fcfg := types.FetchConfig{
		HTTPConfig: httpCfg,
		MaxLength:  flagInt(cmd, "max-length", "web.max_length"),
	}
	ctx := cmd.Context()

	// Fetch-only mode.
	if fetchURL != "" {
		res := fetch.Fetch(ctx, client, fetchURL, includeHTML, fcfg)
		return writeResult(res, pretty, res.Success)
	}

	maxResults := flagInt(cmd, "max-results", "web.max_results")

	// Combined search-and-fetch mode.
	if fetchContent {
		cfg := types.WebSearchConfig{
			HTTPConfig: httpCfg,
			MaxResults: maxResults,
			TopN:       flagInt(cmd, "top-n", "web.top_n"),
			FetchDelay: flagDuration(cmd, "fetch-delay", "web.fetch_delay"),
		}
		resp, err := websearch.SearchAndFetch(ctx, websearch.NewSearcher(), client, query, cfg, fcfg, os.Stderr)
		if err != nil {
			return fail(types.ErrorEnvelope{Error: err.Error(), Query: query}, pretty)
		}
		return writeResult(resp, pretty, true)
	}

	// Search-only mode.
	resp, err := websearch.Search(websearch.NewSearcher(), query, maxResults)
	if err != nil {
		return fail(types.ErrorEnvelope{Error: err.Error(), Query: query}, pretty)
	}
	return writeResult(resp, pretty, true)
}
