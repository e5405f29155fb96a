package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"feedterm/internal/config"
	"feedterm/internal/debuglog"
	"feedterm/internal/feed"
	"feedterm/internal/render"
	"feedterm/internal/store"
	"feedterm/internal/tui"
	"feedterm/internal/validation"
)

// Version is set at build time.
var Version = "dev"

var (
	configPath     string
	generateConfig bool
	dbPathFlag     string
	dumpPath       string
	dumpFeedURL    string
	fetchURL       string
)

var rootCmd = &cobra.Command{
	Use:           "feedterm",
	Short:         "Terminal RSS feed reader",
	Long:          "feedterm fetches RSS/Atom feeds, caches their items in a local JSON or YAML file, and presents them in a full-screen terminal interface.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if generateConfig {
			return runGenerateConfig()
		}
		return runTUI()
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen interactive session (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Dump a feed database file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Load(dumpPath)
		if err != nil {
			return err
		}
		render.Database(os.Stdout, db, dumpFeedURL)
		return nil
	},
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a feed URL once and print its items",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := validation.ValidateFeedURL(fetchURL)
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		result, err := feed.NewFetcher(cfg).Fetch(url)
		if err != nil {
			return err
		}

		label := result.Title
		if label == "" {
			label = url
		}
		render.Items(os.Stdout, label, result.Items)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("feedterm %s\n", Version)
		fmt.Println("terminal feed reader")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to configuration file")
	rootCmd.Flags().BoolVar(&generateConfig, "generate-config", false, "write the default config file and exit")
	rootCmd.Flags().StringVar(&dbPathFlag, "db", "", "path to the database file (overrides config)")
	tuiCmd.Flags().StringVar(&dbPathFlag, "db", "", "path to the database file (overrides config)")

	dbCmd.Flags().StringVar(&dumpPath, "path", "", "path to the database file (.json, .yml, .yaml)")
	dbCmd.MarkFlagRequired("path")
	dbCmd.Flags().StringVar(&dumpFeedURL, "feed", "", "only show entries for this feed URL")

	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "feed URL to retrieve")
	fetchCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(tuiCmd, dbCmd, fetchCmd, versionCmd)
}

func runTUI() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dbPathFlag != "" {
		cfg.Database.Path = dbPathFlag
	}

	if err := debuglog.Setup(debuglog.ParseLevel(cfg.Log.Level), cfg.Log.Path); err != nil {
		return err
	}
	defer debuglog.Close()

	db, err := store.LoadOrInit(cfg.Database.Path)
	if err != nil {
		return err
	}

	app := tui.NewApp(db, cfg.Database.Path, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}

func runGenerateConfig() error {
	path := configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "feedterm", "config.toml")
	}

	if err := config.GenerateDefaultConfig(path); err != nil {
		return err
	}
	fmt.Printf("Generated default configuration at: %s\n", path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
