// Package session manages the practice units of one learner session:
// generated content cached per unit, the answer reveal gate, and the
// follow-up conversation transcript.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Elekcktra/cars-analyzer/internal/generator"
	"github.com/Elekcktra/cars-analyzer/internal/llm"
)

// HistoryWindow is the number of most recent transcript entries replayed
// to the generator after the unit's content.
const HistoryWindow = 5

// View is the render-ready state of a unit.
type View struct {
	Key             Key
	State           UnitState
	Passage         string
	Answer          string
	AnswerAvailable bool
	Revealed        bool
	Transcript      []generator.Turn
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// Session owns the practice units for a single learner. Units are created
// on first reference and live as long as the session. A Session is safe for
// concurrent use; operations on different units never block each other.
type Session struct {
	id     string
	gen    generator.Generator
	logger *slog.Logger

	mu    sync.Mutex
	units map[Key]*unit
	order []Key
}

// New creates a Session that generates content with gen.
func New(gen generator.Generator, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		gen:    gen,
		logger: slog.Default(),
		units:  make(map[Key]*unit),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("session_id", s.id)
	return s
}

// ID returns the session identifier recorded with generator requests.
func (s *Session) ID() string { return s.id }

// Units returns the keys of all referenced units in creation order.
func (s *Session) Units() []Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Key(nil), s.order...)
}

// unit returns the unit for key, creating it on first reference.
func (s *Session) unit(key Key) *unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[key]
	if !ok {
		u = &unit{}
		s.units[key] = u
		s.order = append(s.order, key)
	}
	return u
}

func (s *Session) lookup(key Key) (*unit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[key]
	return u, ok
}

// GetOrGenerateContent returns the unit's content, generating it for
// key.Category on first use. Content is generated at most once per key;
// later calls return the cached text. A failed generation caches nothing,
// so the call may simply be repeated.
func (s *Session) GetOrGenerateContent(ctx context.Context, key Key) (string, error) {
	u := s.unit(key)
	if c, ok := u.cached(); ok {
		return c, nil
	}

	u.op.Lock()
	defer u.op.Unlock()
	return s.ensureContent(ctx, key, u)
}

// ensureContent must be called with u.op held.
func (s *Session) ensureContent(ctx context.Context, key Key, u *unit) (string, error) {
	if c, ok := u.cached(); ok {
		return c, nil
	}

	u.mu.Lock()
	u.pending = true
	u.mu.Unlock()

	text, err := s.gen.Generate(s.context(ctx), key.Category, nil)

	u.mu.Lock()
	u.pending = false
	if err == nil {
		u.content = text
		u.hasContent = true
	}
	u.mu.Unlock()

	if err != nil {
		s.logger.Warn("content generation failed", "unit", key.String(), "error", err)
		return "", err
	}

	if !ParseContent(text).AnswerAvailable {
		s.logger.Warn("generated content has no answer section", "unit", key.String())
	}
	s.logger.Debug("content generated", "unit", key.String(), "chars", len(text))
	return text, nil
}

// Content returns the parsed content of a unit, or false if none has been
// generated yet.
func (s *Session) Content(key Key) (Content, bool) {
	u, ok := s.lookup(key)
	if !ok {
		return Content{}, false
	}
	c, ok := u.cached()
	if !ok {
		return Content{}, false
	}
	return ParseContent(c), true
}

// Reveal opens the unit's answer gate. It is idempotent and cannot be
// undone.
func (s *Session) Reveal(key Key) {
	u := s.unit(key)
	u.mu.Lock()
	u.revealed = true
	u.mu.Unlock()
}

// IsRevealed reports whether Reveal has been called for key.
func (s *Session) IsRevealed(key Key) bool {
	u, ok := s.lookup(key)
	if !ok {
		return false
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.revealed
}

// AppendUserTurn records a learner message in the unit's transcript. It
// waits for any in-flight generation on the same unit.
func (s *Session) AppendUserTurn(key Key, text string) {
	u := s.unit(key)
	u.op.Lock()
	defer u.op.Unlock()
	u.appendTurn(generator.Turn{Role: generator.RoleUser, Text: text})
}

// RequestAssistantTurn asks the generator to answer the conversation so
// far and appends the reply to the transcript. The generator sees the
// unit's content as an assistant turn followed by the last HistoryWindow
// transcript entries. Content is generated first if the unit has none.
// On failure the transcript is left unchanged.
func (s *Session) RequestAssistantTurn(ctx context.Context, key Key) (string, error) {
	u := s.unit(key)
	u.op.Lock()
	defer u.op.Unlock()
	return s.requestAssistantTurn(ctx, key, u)
}

// Ask appends a user turn and requests the assistant reply as one
// operation. The user turn is kept even if the reply fails.
func (s *Session) Ask(ctx context.Context, key Key, text string) (string, error) {
	u := s.unit(key)
	u.op.Lock()
	defer u.op.Unlock()
	u.appendTurn(generator.Turn{Role: generator.RoleUser, Text: text})
	return s.requestAssistantTurn(ctx, key, u)
}

// requestAssistantTurn must be called with u.op held.
func (s *Session) requestAssistantTurn(ctx context.Context, key Key, u *unit) (string, error) {
	content, err := s.ensureContent(ctx, key, u)
	if err != nil {
		return "", err
	}

	history := buildHistory(content, u.transcriptCopy())
	reply, err := s.gen.Generate(s.context(ctx), key.Category, history)
	if err != nil {
		s.logger.Warn("follow-up generation failed", "unit", key.String(), "error", err)
		return "", err
	}

	u.appendTurn(generator.Turn{Role: generator.RoleAssistant, Text: reply})
	return reply, nil
}

func buildHistory(content string, transcript []generator.Turn) []generator.Turn {
	if len(transcript) > HistoryWindow {
		transcript = transcript[len(transcript)-HistoryWindow:]
	}
	history := make([]generator.Turn, 0, len(transcript)+1)
	history = append(history, generator.Turn{Role: generator.RoleAssistant, Text: content})
	return append(history, transcript...)
}

// Transcript returns a copy of the unit's conversation.
func (s *Session) Transcript(key Key) []generator.Turn {
	u, ok := s.lookup(key)
	if !ok {
		return nil
	}
	return u.transcriptCopy()
}

// State returns the lifecycle stage of a unit.
func (s *Session) State(key Key) UnitState {
	u, ok := s.lookup(key)
	if !ok {
		return StateUninitialized
	}
	return u.state()
}

// Snapshot returns the render-ready view of a unit without blocking on
// in-flight generation.
func (s *Session) Snapshot(key Key) View {
	v := View{Key: key}
	u, ok := s.lookup(key)
	if !ok {
		return v
	}

	v.State = u.state()
	u.mu.RLock()
	v.Revealed = u.revealed
	v.Transcript = append([]generator.Turn(nil), u.transcript...)
	if u.hasContent {
		c := ParseContent(u.content)
		v.Passage, v.Answer, v.AnswerAvailable = c.Passage, c.Answer, c.AnswerAvailable
	}
	u.mu.RUnlock()
	return v
}

// Prefetch generates content for keys concurrently, at most limit at a
// time (limit <= 0 means no bound). Generation already in flight runs to
// completion; after the first failure no further units are started.
func (s *Session) Prefetch(ctx context.Context, keys []Key, limit int) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, key := range keys {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			_, err := s.GetOrGenerateContent(ctx, key)
			return err
		})
	}
	return g.Wait()
}

func (s *Session) context(ctx context.Context) context.Context {
	return llm.WithSessionID(ctx, s.id)
}
