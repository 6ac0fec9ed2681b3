// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the archive-search CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/archive-search/internal/archive"
	"github.com/pdiddy/archive-search/internal/pagecache"
	"github.com/pdiddy/archive-search/internal/secrets"
	"github.com/pdiddy/archive-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Set

// rootCmd is the base command for the archive-search CLI.
var rootCmd = &cobra.Command{
	Use:   "archive-search",
	Short: "Search a shadow-library aggregator and normalize author names",
	Long: `archive-search queries a shadow-library aggregator, scrapes its result pages
into structured records, and resolves download mirrors for a record.

Author fields on the aggregator are free text in many conventions
("Last, First", "A, B, and C", role-prefixed Cyrillic credits). Every record
passes through a normalizer that splits and cleans them; the authors
subcommand shows how a single field is parsed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(viper.GetString("secrets_dir"), os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if names := s.Names(); len(names) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", names)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./archive-search.yaml or ~/.config/archive-search/config.yaml)")
	pf.String("base-url", "", "aggregator base URL")
	pf.Duration("timeout", 0, "HTTP request timeout")
	pf.Bool("no-cache", false, "bypass the page cache")
	pf.BoolP("verbose", "v", false, "log requests and retries to stderr")

	viper.BindPFlag("base_url", pf.Lookup("base-url"))
	viper.BindPFlag("timeout", pf.Lookup("timeout"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))

	setDefaults()
}

func setDefaults() {
	viper.SetDefault("base_url", "https://annas-archive.org")
	viper.SetDefault("timeout", 30*time.Second)
	viper.SetDefault("user_agent", "archive-search/"+version)
	viper.SetDefault("max_retries", 5)
	viper.SetDefault("max_results", 0)
	viper.SetDefault("secrets_dir", ".secrets")
	viper.SetDefault("archive_key", "")
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.dir", defaultCacheDir())
	viper.SetDefault("cache.ttl", 24*time.Hour)
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".cache", "archive-search")
	}
	return filepath.Join(dir, "archive-search")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("archive-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "archive-search"))
		}
	}

	viper.SetEnvPrefix("ARCHIVE_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged flag, env, and file settings.
func loadConfig() (types.ArchiveConfig, error) {
	var cfg types.ArchiveConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// archiveKey prefers an explicit setting over the secrets directory.
func archiveKey() string {
	if k := viper.GetString("archive_key"); k != "" {
		return k
	}
	return loadedSecrets.Get(secrets.KeyArchive, "")
}

func logWriter() io.Writer {
	if viper.GetBool("verbose") {
		return os.Stderr
	}
	return io.Discard
}

// newClient builds an archive client from config. The returned cleanup
// closes the page cache when one was opened.
func newClient(cmd *cobra.Command) (*archive.Client, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	opts := []archive.Option{archive.WithLog(logWriter())}
	if k := archiveKey(); k != "" {
		opts = append(opts, archive.WithKey(k))
	}

	cleanup := func() {}
	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Cache.Enabled && !noCache {
		pc, err := pagecache.Open(cfg.Cache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: page cache disabled: %v\n", err)
		} else {
			opts = append(opts, archive.WithCache(pc))
			cleanup = func() { pc.Close() }
		}
	}

	client, err := archive.New(cfg, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
