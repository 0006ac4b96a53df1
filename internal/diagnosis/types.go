// Package diagnosis classifies free-text error explanations into catalog
// categories by keyword lookup.
package diagnosis

import "strings"

// ErrorRecord is one row of an error log: the passage the question came
// from and the learner's explanation of why they got it wrong.
type ErrorRecord struct {
	PassageID   string
	Explanation string // "" when the row had no explanation
}

// HasExplanation reports whether the record carries usable explanation text.
func (r ErrorRecord) HasExplanation() bool {
	return strings.TrimSpace(r.Explanation) != ""
}

// Report maps categories to the passages that matched them. Categories are
// kept in the order they first received a match, and each passage sequence
// preserves input row order, duplicates included. A category is only
// present once it has at least one passage.
type Report struct {
	order    []string
	passages map[string][]string
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{passages: make(map[string][]string)}
}

// Add appends passageID under category.
func (r *Report) Add(category, passageID string) {
	if _, ok := r.passages[category]; !ok {
		r.order = append(r.order, category)
	}
	r.passages[category] = append(r.passages[category], passageID)
}

// Categories returns the categories in first-seen order.
func (r *Report) Categories() []string {
	return append([]string(nil), r.order...)
}

// Passages returns a copy of the passage sequence for category.
func (r *Report) Passages(category string) []string {
	return append([]string(nil), r.passages[category]...)
}

// Count returns the number of matches recorded for category.
func (r *Report) Count(category string) int {
	return len(r.passages[category])
}

// Len returns the number of categories present.
func (r *Report) Len() int { return len(r.order) }

// Empty reports whether no record matched any category.
func (r *Report) Empty() bool { return len(r.order) == 0 }
