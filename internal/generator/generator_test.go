package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elekcktra/cars-analyzer/internal/catalog"
	"github.com/Elekcktra/cars-analyzer/internal/llm"
)

func TestLLMGenerator_FreshPassage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  Passage text\n" + AnswerDelimiter + "\nB  "})
	g := NewLLM(mock, catalog.Default(), DefaultConfig())

	out, err := g.Generate(context.Background(), "Tone/Attitude", nil)
	require.NoError(t, err)
	assert.Equal(t, "Passage text\n"+AnswerDelimiter+"\nB", out)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Contains(t, req.System, "weakest CARS skill: Tone/Attitude")
	assert.Contains(t, req.System, AnswerDelimiter)
	assert.Contains(t, req.System, "misidentifying neutral tone and overlooking qualifying words")
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
	assert.Equal(t, "Create a full CARS passage and 3 MCQs targeting: Tone/Attitude", req.Messages[0].Content)

	assert.Equal(t, 2048, req.MaxTokens)
	assert.InDelta(t, 0.7, req.Temperature, 1e-9)
	assert.InDelta(t, 0.3, req.PresencePenalty, 1e-9)
	assert.InDelta(t, 0.2, req.FrequencyPenalty, 1e-9)
}

func TestLLMGenerator_NoMistakesLine(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	g := NewLLM(mock, catalog.Default(), DefaultConfig())

	_, err := g.Generate(context.Background(), "Overthinking", nil)
	require.NoError(t, err)

	req, _ := mock.LastCall()
	assert.NotContains(t, req.System, "tend to slip")
}

func TestLLMGenerator_NilCatalog(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	g := NewLLM(mock, nil, DefaultConfig())

	_, err := g.Generate(context.Background(), "Vocabulary", nil)
	require.NoError(t, err)
}

func TestLLMGenerator_FollowUp(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Because paragraph 2 says so."})
	g := NewLLM(mock, catalog.Default(), DefaultConfig())

	history := []Turn{
		{Role: RoleAssistant, Text: "the passage"},
		{Role: RoleUser, Text: "why B?"},
	}
	out, err := g.Generate(context.Background(), "Detail Missed", history)
	require.NoError(t, err)
	assert.Equal(t, "Because paragraph 2 says so.", out)

	req, _ := mock.LastCall()
	assert.Contains(t, req.System, "friendly MCAT CARS tutor")
	assert.Contains(t, req.System, "involving the skill: Detail Missed")
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleAssistant, Content: "the passage"},
		{Role: llm.RoleUser, Content: "why B?"},
	}, req.Messages)
}

// purposeProvider records the purpose label it was called with.
type purposeProvider struct {
	purposes []string
}

func (p *purposeProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return &llm.Response{Text: "ok"}, nil
}

func (p *purposeProvider) ModelID() string { return "purpose" }

func TestLLMGenerator_PurposeLabels(t *testing.T) {
	p := &purposeProvider{}
	g := NewLLM(p, nil, DefaultConfig())
	ctx := context.Background()

	_, _ = g.Generate(ctx, "Vocabulary", nil)
	_, _ = g.Generate(ctx, "Vocabulary", []Turn{{Role: RoleUser, Text: "?"}})

	assert.Equal(t, []string{PurposePassage, PurposeFollowup}, p.purposes)
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("quota")}})
	g := NewLLM(mock, nil, DefaultConfig())

	_, err := g.Generate(context.Background(), "Vocabulary", nil)
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "Vocabulary", genErr.Category)

	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl))
	assert.True(t, strings.HasPrefix(err.Error(), "generate Vocabulary practice:"))
}

func TestLLMGenerator_EmptyCompletion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   "})
	g := NewLLM(mock, nil, DefaultConfig())

	_, err := g.Generate(context.Background(), "Vocabulary", nil)
	var inv *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &inv))
}

func TestFunc(t *testing.T) {
	var g Generator = Func(func(_ context.Context, category string, history []Turn) (string, error) {
		return category + ":" + string(rune('0'+len(history))), nil
	})
	out, err := g.Generate(context.Background(), "X", []Turn{{}, {}})
	require.NoError(t, err)
	assert.Equal(t, "X:2", out)
}
