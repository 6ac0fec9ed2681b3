package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/archive-search/internal/authors"
	"github.com/pdiddy/archive-search/internal/output"
)

var authorsCmd = &cobra.Command{
	Use:   "authors <raw author field>",
	Short: "Show how a raw author field is normalized",
	Long: `Authors runs the author-name normalizer on one raw field without any
network access. It prints the splitting strategy chosen, the segments, and
the final names. Comma tuples that match no rule are flagged.`,
	Example: `  archive-search authors "Sullivan, William"
  archive-search authors "coll." --publisher "SitePoint, 2018"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAuthors,
}

func init() {
	authorsCmd.Flags().String("publisher", "", "raw publisher line used when the author is a placeholder")
	authorsCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(authorsCmd)
}

func runAuthors(cmd *cobra.Command, args []string) error {
	publisher, _ := cmd.Flags().GetString("publisher")
	report := authors.Inspect(strings.Join(args, " "), authors.WithPublisher(publisher))

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return output.AuthorsJSON(report, cmd.OutOrStdout())
	}
	output.AuthorsReport(report, cmd.OutOrStdout())
	return nil
}
