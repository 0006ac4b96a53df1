package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Elekcktra/cars-analyzer/internal/generator"
	"github.com/Elekcktra/cars-analyzer/internal/session"
)

type scriptedGen struct {
	mu      sync.Mutex
	calls   int
	failing bool
}

func (g *scriptedGen) Generate(_ context.Context, category string, history []generator.Turn) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	if g.failing {
		return "", &generator.GenerationError{Category: category, Err: errors.New("offline")}
	}
	if len(history) == 0 {
		return "Passage on " + category + "\n" + generator.AnswerDelimiter + "\nAnswer key for " + category, nil
	}
	return "Tutor reply", nil
}

var testKeys = []session.Key{
	{Category: "Tone/Attitude", Slot: 0},
	{Category: "Vocabulary", Slot: 1},
}

func newTestModel(gen generator.Generator) Model {
	sess := session.New(gen, session.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	m := New(context.Background(), sess, testKeys)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

// drain executes cmd, expanding batches, and feeds every app message back
// into the model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case contentReadyMsg, replyReadyMsg:
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}

func bodyText(m Model) string {
	return strings.Join(m.bodyLines(200), "\n")
}

func TestInit_GeneratesFirstUnit(t *testing.T) {
	gen := &scriptedGen{}
	m := newTestModel(gen)

	if !m.loading[testKeys[0]] {
		t.Fatal("first unit not marked loading")
	}
	if !strings.Contains(bodyText(m), "Generating a practice passage") {
		t.Errorf("loading body = %q", bodyText(m))
	}

	m = drain(t, m, m.Init())

	if m.loading[testKeys[0]] {
		t.Error("first unit still loading")
	}
	body := bodyText(m)
	if !strings.Contains(body, "Passage on Tone/Attitude") {
		t.Errorf("body missing passage: %q", body)
	}
	if strings.Contains(body, "Answer key") {
		t.Error("answers shown before reveal")
	}
}

func TestReveal(t *testing.T) {
	m := newTestModel(&scriptedGen{})
	m = drain(t, m, m.Init())

	m, _ = press(m, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	if !strings.Contains(bodyText(m), "Answer key for Tone/Attitude") {
		t.Errorf("answers not shown after reveal: %q", bodyText(m))
	}
	if !m.sess.IsRevealed(testKeys[0]) {
		t.Error("session not revealed")
	}
}

func TestTab_SwitchesAndGeneratesOnce(t *testing.T) {
	gen := &scriptedGen{}
	m := newTestModel(gen)
	m = drain(t, m, m.Init())

	m, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyTab})
	if m.active != 1 {
		t.Fatalf("active = %d, want 1", m.active)
	}
	m = drain(t, m, cmd)
	if !strings.Contains(bodyText(m), "Passage on Vocabulary") {
		t.Errorf("second unit body = %q", bodyText(m))
	}

	m, cmd = press(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.active != 0 {
		t.Fatalf("active = %d, want 0", m.active)
	}
	if cmd != nil {
		t.Error("returning to a generated unit started a command")
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestAsk_AppendsConversation(t *testing.T) {
	m := newTestModel(&scriptedGen{})
	m = drain(t, m, m.Init())

	m = typeText(m, "why B?")
	m, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.asking[testKeys[0]] {
		t.Fatal("not marked asking")
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared: %q", m.input.Value())
	}

	m = drain(t, m, cmd)
	if m.asking[testKeys[0]] {
		t.Error("still asking after reply")
	}

	transcript := m.sess.Transcript(testKeys[0])
	if len(transcript) != 2 || transcript[1].Text != "Tutor reply" {
		t.Fatalf("transcript = %+v", transcript)
	}
	body := bodyText(m)
	if !strings.Contains(body, "why B?") || !strings.Contains(body, "Tutor reply") {
		t.Errorf("conversation missing from body: %q", body)
	}
}

func TestAsk_EmptyInputIgnored(t *testing.T) {
	m := newTestModel(&scriptedGen{})
	m = drain(t, m, m.Init())

	m, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || m.asking[testKeys[0]] {
		t.Error("empty input started a request")
	}
}

func TestGenerationFailureShowsErrorAndRetries(t *testing.T) {
	gen := &scriptedGen{failing: true}
	m := newTestModel(gen)
	m = drain(t, m, m.Init())

	if !strings.Contains(m.errs[testKeys[0]], "offline") {
		t.Fatalf("error = %q", m.errs[testKeys[0]])
	}

	gen.failing = false
	m, cmd := press(m, tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})
	m = drain(t, m, cmd)

	if m.errs[testKeys[0]] != "" {
		t.Errorf("error not cleared: %q", m.errs[testKeys[0]])
	}
	if _, ok := m.sess.Content(testKeys[0]); !ok {
		t.Error("content missing after retry")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&scriptedGen{})
	_, cmd := press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
}

func TestScrollClamped(t *testing.T) {
	m := newTestModel(&scriptedGen{})
	m = drain(t, m, m.Init())

	m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if m.scroll[testKeys[0]] != 0 {
		t.Errorf("scroll = %d after up at top", m.scroll[testKeys[0]])
	}
	for range 50 {
		m, _ = press(m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	maxOffset := max(len(m.bodyLines(m.bodyWidth()))-m.bodyHeight(), 0)
	if m.scroll[testKeys[0]] != maxOffset {
		t.Errorf("scroll = %d, want %d", m.scroll[testKeys[0]], maxOffset)
	}
}

func TestRun_NoKeys(t *testing.T) {
	if err := Run(context.Background(), nil, nil); err == nil {
		t.Error("Run with no keys should fail")
	}
}
