package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
	"github.com/Elekcktra/cars-analyzer/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cars-analyzer",
	Short: "MCAT CARS error-log analyzer",
	Long: "cars-analyzer classifies the reasons you missed CARS questions, ranks your weakest skills,\n" +
		"and generates targeted practice passages you can discuss with an AI tutor.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CARS_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "YAML file replacing the built-in error categories")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CARS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCatalog returns the --catalog override or the built-in catalog.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	p, _ := cmd.Flags().GetString("catalog")
	if p == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(p)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", p, err)
	}
	return c, nil
}

// newLogger builds the command logger. fallback receives log output when
// --log-file is not set. The returned close func releases the log file.
func newLogger(cmd *cobra.Command, fallback io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}

	w, closeFn := fallback, func() {}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
