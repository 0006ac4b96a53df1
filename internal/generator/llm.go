package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
	"github.com/Elekcktra/cars-analyzer/internal/llm"
)

// Purpose labels recorded with each LLM request event.
const (
	PurposePassage  = "practice-passage"
	PurposeFollowup = "practice-followup"
)

// Config holds sampling parameters for generation requests.
type Config struct {
	MaxTokens        int
	Temperature      float64
	PresencePenalty  float64
	FrequencyPenalty float64
}

// DefaultConfig returns the sampling parameters used for CARS practice.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        2048,
		Temperature:      0.7,
		PresencePenalty:  0.3,
		FrequencyPenalty: 0.2,
	}
}

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	catalog  *catalog.Catalog
	cfg      Config
}

// NewLLM creates an LLMGenerator. cat supplies the common mistakes used to
// flavour passage prompts and may be nil.
func NewLLM(provider llm.Provider, cat *catalog.Catalog, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, catalog: cat, cfg: cfg}
}

// Generate implements Generator. Errors are returned as *GenerationError.
func (g *LLMGenerator) Generate(ctx context.Context, category string, history []Turn) (string, error) {
	req, purpose, err := g.buildRequest(category, history)
	if err != nil {
		return "", &GenerationError{Category: category, Err: err}
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, purpose), req)
	if err != nil {
		return "", &GenerationError{Category: category, Err: err}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", &GenerationError{Category: category, Err: &llm.ErrInvalidResponse{Err: fmt.Errorf("empty completion")}}
	}
	return text, nil
}

func (g *LLMGenerator) buildRequest(category string, history []Turn) (llm.Request, string, error) {
	req := llm.Request{
		MaxTokens:        g.cfg.MaxTokens,
		Temperature:      g.cfg.Temperature,
		PresencePenalty:  g.cfg.PresencePenalty,
		FrequencyPenalty: g.cfg.FrequencyPenalty,
	}

	if len(history) == 0 {
		data := promptData{Category: category, Delimiter: AnswerDelimiter}
		if g.catalog != nil {
			data.Mistakes = g.catalog.Mistakes(category)
		}
		system, err := render(passageTmpl, data)
		if err != nil {
			return req, "", fmt.Errorf("render passage prompt: %w", err)
		}
		req.System = system
		req.Messages = []llm.Message{{Role: llm.RoleUser, Content: passageUserMessage(category)}}
		return req, PurposePassage, nil
	}

	system, err := render(followupTmpl, promptData{Category: category})
	if err != nil {
		return req, "", fmt.Errorf("render follow-up prompt: %w", err)
	}
	req.System = system
	req.Messages = make([]llm.Message, 0, len(history))
	for _, t := range history {
		role := llm.RoleUser
		if t.Role == RoleAssistant {
			role = llm.RoleAssistant
		}
		req.Messages = append(req.Messages, llm.Message{Role: role, Content: t.Text})
	}
	return req, PurposeFollowup, nil
}
