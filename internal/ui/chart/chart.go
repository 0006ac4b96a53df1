// Package chart renders the error-frequency bar chart for the terminal.
package chart

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Elekcktra/cars-analyzer/internal/report"
	"github.com/Elekcktra/cars-analyzer/internal/ui/theme"
)

// MinBarWidth is the narrowest bar drawn for the largest count.
const MinBarWidth = 4

// Render draws one horizontal bar per category in the given order, scaled
// so the largest count fills the available width.
func Render(bars []report.Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}

	labelWidth, maxCount := 0, 0
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Category))
		maxCount = max(maxCount, b.Count)
	}
	countWidth := len(fmt.Sprint(maxCount)) + 2

	barWidth := max(width-labelWidth-countWidth-2, MinBarWidth)

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		filled := 0
		if maxCount > 0 {
			filled = b.Count * barWidth / maxCount
		}
		if b.Count > 0 && filled == 0 {
			filled = 1
		}

		label := theme.Label.Render(b.Category + strings.Repeat(" ", labelWidth-lipgloss.Width(b.Category)))
		bar := theme.BarFilled.Render(strings.Repeat(" ", filled)) +
			theme.BarEmpty.Render(strings.Repeat(" ", barWidth-filled))
		count := theme.Count.Render(fmt.Sprintf("  %d", b.Count))

		lines = append(lines, label+"  "+bar+count)
	}
	return strings.Join(lines, "\n")
}
