package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
	"github.com/Elekcktra/cars-analyzer/internal/diagnosis"
	"github.com/Elekcktra/cars-analyzer/internal/errorlog"
	"github.com/Elekcktra/cars-analyzer/internal/report"
	"github.com/Elekcktra/cars-analyzer/internal/ui/chart"
	"github.com/Elekcktra/cars-analyzer/internal/ui/theme"
	"github.com/spf13/cobra"
)

const chartWidth = 72

var analyzeCmd = &cobra.Command{
	Use:   "analyze <error-log.csv>",
	Short: "Classify an error log and show your error patterns",
	Long: "Reads a CSV with Passage_Title and Why_I_Got_It_Wrong columns, matches each explanation\n" +
		"against the error categories, and prints counts, fixes, a chart, and a targeted drill.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, closeLog, err := newLogger(cmd, cmd.ErrOrStderr())
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
		printAnalysis(cmd.OutOrStdout(), a)
		return nil
	},
}

// analysis is the result of loading and classifying an error log.
type analysis struct {
	catalog *catalog.Catalog
	loaded  *errorlog.LoadResult
	report  *diagnosis.Report
}

func analyze(path string, cat *catalog.Catalog) (*analysis, error) {
	loaded, err := errorlog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load error log: %w", err)
	}
	return &analysis{
		catalog: cat,
		loaded:  loaded,
		report:  diagnosis.Classify(loaded.Records, cat),
	}, nil
}

func printAnalysis(w io.Writer, a *analysis) {
	fmt.Fprintf(w, "Loaded %d errors for analysis!", len(a.loaded.Records))
	if a.loaded.Skipped > 0 {
		fmt.Fprintf(w, " (%d rows without an explanation skipped)", a.loaded.Skipped)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprintln(w, theme.Title.Render("Your Error Patterns"))
	if a.report.Empty() {
		fmt.Fprintln(w, theme.Warning.Render("No analyzable error patterns found. Add more detailed descriptions."))
	} else {
		for _, c := range a.report.Categories() {
			fmt.Fprintf(w, "%s %s\n", theme.Category.Render(c), theme.Count.Render(fmt.Sprintf("(%dx)", a.report.Count(c))))
			fmt.Fprintf(w, "  Examples: %s\n", strings.Join(report.UniquePassages(a.report, c), ", "))
			fmt.Fprintf(w, "  Fix: %s\n", report.FixSuggestion(a.catalog, c))
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, theme.Title.Render("Error Trends"))
		fmt.Fprintln(w, chart.Render(report.Chart(a.report), chartWidth))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Title.Render("Targeted Practice"))
	fmt.Fprintln(w, report.TargetedPractice(a.report, a.catalog))
}
