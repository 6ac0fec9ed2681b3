package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/archive-search/internal/output"
)

var downloadsCmd = &cobra.Command{
	Use:   "downloads <id>",
	Short: "List download mirrors for a record",
	Long: `Downloads fetches the record page for a 32-character content hash and
lists its mirror links and IPFS gateway. With a member key (the archive-key
secret or ARCHIVE_SEARCH_ARCHIVE_KEY) the fast-download link is listed first.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownloads,
}

func init() {
	downloadsCmd.Flags().Bool("json", false, "output links as JSON")

	rootCmd.AddCommand(downloadsCmd)
}

func runDownloads(cmd *cobra.Command, args []string) error {
	client, cleanup, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	links, err := client.Downloads(commandContext(cmd), args[0])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return output.LinksJSON(links, cmd.OutOrStdout())
	}
	output.LinksTable(links, cmd.OutOrStdout())
	return nil
}
