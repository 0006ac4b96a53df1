package session

import (
	"strings"

	"github.com/Elekcktra/cars-analyzer/internal/generator"
)

// AnswerUnavailable replaces the answer section when generated content
// lacks the answer delimiter.
const AnswerUnavailable = "⚠️ Answers not available."

// Content is generated practice split at the answer delimiter.
type Content struct {
	Passage         string
	Answer          string
	AnswerAvailable bool
}

// ParseContent splits raw generated text into its passage and answer
// sections. Without a delimiter the whole text is the passage and the
// answer is AnswerUnavailable.
func ParseContent(raw string) Content {
	passage, answer, found := strings.Cut(raw, generator.AnswerDelimiter)
	if !found {
		return Content{Passage: strings.TrimSpace(raw), Answer: AnswerUnavailable}
	}
	return Content{
		Passage:         strings.TrimSpace(passage),
		Answer:          strings.TrimSpace(answer),
		AnswerAvailable: true,
	}
}
