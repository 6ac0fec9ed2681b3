package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/archive-search/internal/pagecache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local page cache",
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete cached pages older than the cache TTL",
	RunE:  runCachePrune,
}

func init() {
	cachePruneCmd.Flags().Bool("all", false, "delete every cached page")

	cacheCmd.AddCommand(cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCachePrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pc, err := pagecache.Open(cfg.Cache)
	if err != nil {
		return err
	}
	defer pc.Close()

	olderThan := cfg.Cache.TTL
	all, _ := cmd.Flags().GetBool("all")
	switch {
	case all:
		olderThan = 0
	case olderThan <= 0:
		fmt.Fprintln(cmd.OutOrStdout(), "Cache TTL is not set; nothing expires. Use --all to clear the cache.")
		return nil
	}

	removed, err := pc.Prune(commandContext(cmd), olderThan)
	if err != nil {
		return err
	}
	left, err := pc.Len(commandContext(cmd))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached pages (%d remaining) from %s\n", removed, left, cfg.Cache.Dir)
	return nil
}
