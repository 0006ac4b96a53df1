package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Elekcktra/cars-analyzer/internal/app"
	"github.com/Elekcktra/cars-analyzer/internal/generator"
	"github.com/Elekcktra/cars-analyzer/internal/llm"
	"github.com/Elekcktra/cars-analyzer/internal/report"
	"github.com/Elekcktra/cars-analyzer/internal/session"
	"github.com/Elekcktra/cars-analyzer/internal/store"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <error-log.csv>",
	Short: "Practice your top error categories with generated passages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Logs would corrupt the full-screen UI, so they are dropped unless
		// --log-file is set. Every LLM call is still recorded in the store.
		logger, closeLog, err := newLogger(cmd, io.Discard)
		if err != nil {
			return err
		}
		defer closeLog()

		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		a, err := analyze(args[0], cat)
		if err != nil {
			return err
		}

		ranked := report.Rank(a.report)
		if len(ranked) == 0 {
			printAnalysis(cmd.OutOrStdout(), a)
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo(), logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Set OPENAI_API_KEY (or CARS_LLM_PROVIDER with the matching key) to generate passages.")
			return err
		}

		gen := generator.NewLLM(provider, cat, generator.DefaultConfig())
		sess := session.New(gen, session.WithLogger(logger))
		keys := session.SelectionKeys(ranked)

		if prefetch, _ := cmd.Flags().GetBool("prefetch"); prefetch {
			fmt.Fprintf(cmd.ErrOrStderr(), "Generating %d practice passages...\n", len(keys))
			if err := sess.Prefetch(ctx, keys, len(keys)); err != nil {
				// Units that failed are generated again when opened.
				fmt.Fprintln(cmd.ErrOrStderr(), "Some passages failed to generate:", err)
			}
		}

		return app.Run(ctx, sess, keys)
	},
}

func init() {
	practiceCmd.Flags().Bool("prefetch", false, "Generate all practice passages before opening the UI")
}
