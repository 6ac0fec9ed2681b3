package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/archive-search/internal/output"
	"github.com/pdiddy/archive-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the aggregator for books",
	Long: `Search sends a free-text query to the aggregator and prints the parsed
results. Author names are normalized; placeholder authors such as "coll."
are replaced by the publisher when one is listed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("lang", "", "restrict to a language code (e.g. en, ru)")
	searchCmd.Flags().String("ext", "", "restrict to a file extension (e.g. epub, pdf)")
	searchCmd.Flags().String("sort", "", "sort order: newest, oldest, largest, smallest (default relevance)")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results to print (0 = all)")
	searchCmd.Flags().String("format", "table", "output format: table, json, csl")

	viper.BindPFlag("max_results", searchCmd.Flags().Lookup("max-results"))

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table", "json", "csl":
	default:
		return fmt.Errorf("unknown format %q: use table, json, or csl", format)
	}

	lang, _ := cmd.Flags().GetString("lang")
	ext, _ := cmd.Flags().GetString("ext")
	sort, _ := cmd.Flags().GetString("sort")
	query := types.SearchQuery{
		Text:      strings.Join(args, " "),
		Language:  lang,
		Extension: ext,
		Sort:      types.SortOrder(sort),
	}

	client, cleanup, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	books, err := client.Search(commandContext(cmd), query)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return output.BooksJSON(books, w)
	case "csl":
		return output.BooksCSL(books, w)
	default:
		output.BooksTable(books, w)
		return nil
	}
}
