// Package report ranks classified errors and derives the views shown to
// the learner: the top categories, a chart projection, fix suggestions, and
// a targeted drill.
package report

import (
	"fmt"
	"sort"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
	"github.com/Elekcktra/cars-analyzer/internal/diagnosis"
)

// TopN is the number of categories selected for practice.
const TopN = 3

// Entry is one ranked category with its matched passages.
type Entry struct {
	Category string
	Passages []string
}

// Count returns the number of matches for the entry.
func (e Entry) Count() int { return len(e.Passages) }

// Bar is one chart column.
type Bar struct {
	Category string
	Count    int
}

// Rank returns up to TopN entries sorted by match count, highest first.
// Equal counts keep the report's first-seen order.
func Rank(r *diagnosis.Report) []Entry {
	return RankN(r, TopN)
}

// RankN is Rank with an explicit limit. n <= 0 returns every category.
func RankN(r *diagnosis.Report, n int) []Entry {
	entries := make([]Entry, 0, r.Len())
	for _, c := range r.Categories() {
		entries = append(entries, Entry{Category: c, Passages: r.Passages(c)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count() > entries[j].Count()
	})

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopError returns the category with the most matches, the earliest one on
// ties. ok is false for an empty report.
func TopError(r *diagnosis.Report) (category string, ok bool) {
	best := -1
	for _, c := range r.Categories() {
		if n := r.Count(c); n > best {
			category, best = c, n
		}
	}
	return category, best > 0
}

// Chart projects the report to category counts in report order.
func Chart(r *diagnosis.Report) []Bar {
	bars := make([]Bar, 0, r.Len())
	for _, c := range r.Categories() {
		bars = append(bars, Bar{Category: c, Count: r.Count(c)})
	}
	return bars
}

// UniquePassages returns the passages for category with repeats removed,
// keeping first-seen order. Storage in the report stays raw; this is for
// display.
func UniquePassages(r *diagnosis.Report, category string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.Passages(category) {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// FixSuggestion returns the remediation text for category.
func FixSuggestion(cat *catalog.Catalog, category string) string {
	return cat.Fix(category)
}

// TargetedPractice returns a drill aimed at the report's top error, or the
// generic fallback drill when nothing matched.
func TargetedPractice(r *diagnosis.Report, cat *catalog.Catalog) string {
	top, ok := TopError(r)
	if !ok {
		return catalog.FallbackDrill
	}
	return fmt.Sprintf("%s (Your top error: %s)", cat.Drill(top), top)
}
