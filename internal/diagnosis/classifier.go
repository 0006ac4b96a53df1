package diagnosis

import (
	"strings"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
)

// Classify assigns every record to each category whose keywords occur in
// its lowercased explanation. A record may land in several categories or
// none. Records without an explanation are skipped.
func Classify(records []ErrorRecord, cat *catalog.Catalog) *Report {
	report := NewReport()
	for _, rec := range records {
		if !rec.HasExplanation() {
			continue
		}
		for _, name := range Categorize(rec.Explanation, cat) {
			report.Add(name, rec.PassageID)
		}
	}
	return report
}

// Categorize returns the categories matched by a single explanation, in
// catalog order.
func Categorize(explanation string, cat *catalog.Catalog) []string {
	return cat.Match(strings.ToLower(explanation))
}
