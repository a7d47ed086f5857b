package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notedeck/quickfind/internal/app"
	"github.com/notedeck/quickfind/internal/search"
	"github.com/notedeck/quickfind/internal/vault"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	limit  int
	format string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the vault and print ranked results",
		Long: `Search the vault for documents whose path or content contains the
query. Results are ranked with path matches and shorter paths first.

Examples:
  quickfind search "meeting notes"
  quickfind search launch --limit 5
  quickfind search retro --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "Maximum number of results")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

// searchResult is the JSON shape for one result row.
type searchResult struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Active  bool   `json:"active,omitempty"`
	Open    bool   `json:"open,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, cleanup := newLogger(cfg)
	defer cleanup()

	logger.Info("search started",
		slog.String("query", query),
		slog.Int("limit", opts.limit))

	a, err := app.New(cfg, vaultDir, vault.EmptyWorkspace{}, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := a.BuildIndex(ctx); err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	results, err := a.Search(ctx, query)
	if err != nil {
		return err
	}
	if opts.limit > 0 && len(results) > opts.limit {
		results = results[:opts.limit]
	}

	logger.Info("search complete", slog.Int("results", len(results)))

	if opts.format == "json" {
		return printJSON(cmd, results)
	}
	return printText(cmd, query, results)
}

func printJSON(cmd *cobra.Command, results []search.Result) error {
	out := make([]searchResult, len(results))
	for i, r := range results {
		out[i] = searchResult{
			Path:   r.Doc.Path,
			Kind:   r.Kind.String(),
			Active: r.IsActive,
			Open:   r.IsOpen,
		}
		if r.Snippet != nil {
			out[i].Snippet = r.Snippet.Text
		}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printText(cmd *cobra.Command, query string, results []search.Result) error {
	w := cmd.OutOrStdout()

	if len(results) == 0 {
		_, err := fmt.Fprintf(w, "No results for %q\n", query)
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Doc.Path); err != nil {
			return err
		}
		if r.Snippet != nil {
			if _, err := fmt.Fprintf(w, "    %s\n", r.Snippet.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
