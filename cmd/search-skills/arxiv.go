package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-skills/internal/arxiv"
	"github.com/pdiddy/search-skills/pkg/types"
)

var arxivCmd = &cobra.Command{
	Use:   "arxiv",
	Short: "Search arXiv and retrieve papers by ID",
	Long: `Arxiv searches arXiv for papers matching a query, sorted by relevance,
or retrieves papers by their arXiv IDs.

Examples:
  # Search for papers
  search-skills arxiv --query "transformer attention mechanism"

  # Get a specific paper by ID
  search-skills arxiv --paper-ids "2301.07041"

  # Get multiple papers
  search-skills arxiv --paper-ids "2301.07041,1706.03762"`,
	RunE: runArxiv,
}

func init() {
	arxivCmd.Flags().StringP("query", "q", "", "search query string")
	arxivCmd.Flags().StringP("paper-ids", "p", "", "comma-separated arXiv paper IDs")
	arxivCmd.Flags().IntP("max-results", "m", 5, "maximum number of search results (max 20)")
	arxivCmd.Flags().IntP("max-length", "l", 5000, "maximum abstract length")

	rootCmd.AddCommand(arxivCmd)
}

func runArxiv(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	paperIDs, _ := cmd.Flags().GetString("paper-ids")

	if query == "" && paperIDs == "" {
		return fmt.Errorf("must specify either --query or --paper-ids")
	}
	if query != "" && paperIDs != "" {
		return fmt.Errorf("cannot specify both --query and --paper-ids")
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cfg := types.ArxivConfig{
		HTTPConfig: httpConfig(),
		MaxResults: flagInt(cmd, "max-results", "arxiv.max_results"),
		MaxLength:  flagInt(cmd, "max-length", "arxiv.max_length"),
	}
	client := &arxiv.Client{HTTP: newHTTPClient(cfg.HTTPConfig), UserAgent: cfg.UserAgent}
	ctx := cmd.Context()

	if query != "" {
		resp, err := client.Search(ctx, query, cfg.MaxResults)
		if err != nil {
			return fail(types.ErrorEnvelope{Error: err.Error(), Query: query}, true)
		}
		return writeResult(resp, true, true)
	}

	ids := strings.Split(paperIDs, ",")
	resp, err := client.Papers(ctx, ids, cfg.MaxLength)
	if err != nil {
		return fail(types.ErrorEnvelope{Error: err.Error(), PaperIDs: paperIDs}, true)
	}
	return writeResult(resp, true, true)
}
