// Package errorlog reads the learner's CSV error log into records the
// classifier consumes.
package errorlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Elekcktra/cars-analyzer/internal/diagnosis"
)

// Column headers the log must carry. A "#" column is tolerated and ignored.
const (
	ColumnPassage     = "Passage_Title"
	ColumnExplanation = "Why_I_Got_It_Wrong"
)

// LoadResult holds the usable records and the number of rows dropped for
// lacking an explanation.
type LoadResult struct {
	Records []diagnosis.ErrorRecord
	Skipped int
}

// LoadFile reads an error log from a CSV file.
func LoadFile(path string) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open error log: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads an error log. Rows with an empty explanation are counted in
// Skipped and left out of Records; a missing required column is an error.
func Load(r io.Reader) (*LoadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("error log is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	passageCol, explanationCol := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		switch h {
		case ColumnPassage:
			passageCol = i
		case ColumnExplanation:
			explanationCol = i
		}
	}
	if passageCol < 0 {
		return nil, fmt.Errorf("missing column %q", ColumnPassage)
	}
	if explanationCol < 0 {
		return nil, fmt.Errorf("missing column %q", ColumnExplanation)
	}

	result := &LoadResult{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		explanation := strings.TrimSpace(field(row, explanationCol))
		if explanation == "" {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, diagnosis.ErrorRecord{
			PassageID:   strings.TrimSpace(field(row, passageCol)),
			Explanation: explanation,
		})
	}
	return result, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
