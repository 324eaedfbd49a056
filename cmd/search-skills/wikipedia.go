package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-skills/internal/wikipedia"
	"github.com/pdiddy/search-skills/pkg/types"
)

var wikipediaCmd = &cobra.Command{
	Use:   "wikipedia",
	Short: "Search Wikipedia and retrieve articles",
	Long: `Wikipedia resolves a query as an article and lists related articles from
its links, or retrieves an article's content by exact title.

Examples:
  # Search Wikipedia
  search-skills wikipedia --query "Quantum computing"

  # Get full article text
  search-skills wikipedia --title "Python (programming language)"

  # Get summary only
  search-skills wikipedia --title "Machine learning" --summary-only

  # Search another language edition
  search-skills wikipedia --query "인공지능" --language ko`,
	RunE: runWikipedia,
}

func init() {
	wikipediaCmd.Flags().StringP("query", "q", "", "search query string")
	wikipediaCmd.Flags().StringP("title", "t", "", "exact article title to retrieve")
	wikipediaCmd.Flags().BoolP("summary-only", "s", false, "return only the article summary (with --title)")
	wikipediaCmd.Flags().IntP("max-length", "l", 5000, "maximum content length")
	wikipediaCmd.Flags().String("language", "en", "Wikipedia language code")

	rootCmd.AddCommand(wikipediaCmd)
}

func runWikipedia(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	title, _ := cmd.Flags().GetString("title")

	if query == "" && title == "" {
		return fmt.Errorf("must specify either --query or --title")
	}
	if query != "" && title != "" {
		return fmt.Errorf("cannot specify both --query and --title")
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	summaryOnly, _ := cmd.Flags().GetBool("summary-only")

	cfg := types.WikipediaConfig{
		HTTPConfig: httpConfig(),
		Language:   flagString(cmd, "language", "wikipedia.language"),
		MaxLength:  flagInt(cmd, "max-length", "wikipedia.max_length"),
	}
	client := wikipedia.NewClient(newHTTPClient(cfg.HTTPConfig), cfg)
	ctx := cmd.Context()

	if query != "" {
		resp, err := wikipedia.Search(ctx, client, query, cfg)
		if err != nil {
			return fail(types.ErrorEnvelope{Error: err.Error(), Query: query}, true)
		}
		return writeResult(resp, true, true)
	}

	resp, err := wikipedia.Article(ctx, client, title, summaryOnly, cfg)
	if err != nil {
		return fail(types.ErrorEnvelope{Error: err.Error(), Title: title}, true)
	}
	return writeResult(resp, true, true)
}
