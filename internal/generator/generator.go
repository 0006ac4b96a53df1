// Package generator produces CARS practice passages and tutor replies
// through an LLM provider.
package generator

import (
	"context"
	"fmt"
)

// AnswerDelimiter separates the passage and questions from the answer
// key in generated content.
const AnswerDelimiter = "### Answer & Explanation"

// Role identifies the speaker of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one entry of a practice conversation.
type Turn struct {
	Role Role
	Text string
}

// Generator produces content for a category. With no history it writes a
// fresh passage with questions and an answer key; with history it answers
// the latest user turn.
type Generator interface {
	Generate(ctx context.Context, category string, history []Turn) (string, error)
}

// Func adapts an ordinary function to Generator.
type Func func(ctx context.Context, category string, history []Turn) (string, error)

// Generate calls f.
func (f Func) Generate(ctx context.Context, category string, history []Turn) (string, error) {
	return f(ctx, category, history)
}

// GenerationError reports a failed generation for a category.
type GenerationError struct {
	Category string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s practice: %v", e.Category, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
