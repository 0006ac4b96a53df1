// Package app is the interactive practice terminal UI.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Elekcktra/cars-analyzer/internal/session"
	"github.com/Elekcktra/cars-analyzer/internal/ui/components"
	"github.com/Elekcktra/cars-analyzer/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root Bubble Tea model for a practice session. Each tab is
// one unit of the session; content is generated when a tab is first shown.
type Model struct {
	ctx     context.Context
	sess    *session.Session
	keys    []session.Key
	active  int
	input   components.ChatInput
	loading map[session.Key]bool
	asking  map[session.Key]bool
	errs    map[session.Key]string
	scroll  map[session.Key]int
	frame   int
	ticking bool
	width   int
	height  int
}

// New creates a practice model over keys. keys must not be empty.
func New(ctx context.Context, sess *session.Session, keys []session.Key) Model {
	m := Model{
		ctx:     ctx,
		sess:    sess,
		keys:    keys,
		input:   components.NewChatInput("Ask about this passage...", 500),
		loading: make(map[session.Key]bool),
		asking:  make(map[session.Key]bool),
		errs:    make(map[session.Key]string),
		scroll:  make(map[session.Key]int),
	}
	if _, ok := sess.Content(keys[0]); !ok {
		m.loading[keys[0]] = true
		m.ticking = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if !m.loading[m.activeKey()] {
		return m.input.Init()
	}
	return tea.Batch(m.input.Init(), generateCmd(m.ctx, m.sess, m.activeKey()), spinnerTick())
}

func (m Model) activeKey() session.Key {
	return m.keys[m.active]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case contentReadyMsg:
		delete(m.loading, msg.Key)
		if msg.Err != nil {
			m.errs[msg.Key] = fmt.Sprintf("Generation failed: %v (Ctrl+G to retry)", msg.Err)
		} else {
			delete(m.errs, msg.Key)
		}
		return m, nil

	case replyReadyMsg:
		delete(m.asking, msg.Key)
		if msg.Err != nil {
			m.errs[msg.Key] = fmt.Sprintf("Reply failed: %v", msg.Err)
		} else {
			delete(m.errs, msg.Key)
			m.scroll[msg.Key] = scrollToEnd
		}
		m.syncInput()
		return m, nil

	case spinnerTickMsg:
		if !m.busy() {
			m.ticking = false
			return m, nil
		}
		m.frame = (m.frame + 1) % len(spinnerFrames)
		return m, spinnerTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.activeKey()

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.active = (m.active + 1) % len(m.keys)
		m.syncInput()
		return m.ensureContent()

	case "shift+tab":
		m.active = (m.active - 1 + len(m.keys)) % len(m.keys)
		m.syncInput()
		return m.ensureContent()

	case "ctrl+r":
		m.sess.Reveal(key)
		return m, nil

	case "ctrl+g":
		if _, ok := m.sess.Content(key); !ok {
			return m.ensureContent()
		}
		return m, nil

	case "up":
		m.scrollBy(-1)
		return m, nil
	case "down":
		m.scrollBy(1)
		return m, nil
	case "pgup":
		m.scrollBy(-m.bodyHeight())
		return m, nil
	case "pgdown":
		m.scrollBy(m.bodyHeight())
		return m, nil

	case "enter":
		text := m.input.Value()
		if text == "" || m.asking[key] {
			return m, nil
		}
		m.input.Reset()
		m.asking[key] = true
		delete(m.errs, key)
		m.syncInput()
		return m, tea.Batch(askCmd(m.ctx, m.sess, key, text), m.startSpinner())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ensureContent starts generation for the active unit if it has no
// content and none is in flight.
func (m Model) ensureContent() (Model, tea.Cmd) {
	key := m.activeKey()
	if m.loading[key] {
		return m, nil
	}
	if _, ok := m.sess.Content(key); ok {
		return m, nil
	}
	m.loading[key] = true
	delete(m.errs, key)
	return m, tea.Batch(generateCmd(m.ctx, m.sess, key), m.startSpinner())
}

func (m *Model) startSpinner() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return spinnerTick()
}

func (m Model) busy() bool {
	return len(m.loading) > 0 || len(m.asking) > 0
}

func (m *Model) syncInput() {
	m.input.SetDisabled(m.asking[m.activeKey()])
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func generateCmd(ctx context.Context, sess *session.Session, key session.Key) tea.Cmd {
	return func() tea.Msg {
		_, err := sess.GetOrGenerateContent(ctx, key)
		return contentReadyMsg{Key: key, Err: err}
	}
}

func askCmd(ctx context.Context, sess *session.Session, key session.Key, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := sess.Ask(ctx, key, text)
		return replyReadyMsg{Key: key, Err: err}
	}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.activeKey().Category, m.status(), m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.renderContent(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) status() string {
	s := fmt.Sprintf("%d/%d", m.active+1, len(m.keys))
	if m.busy() {
		s = spinnerFrames[m.frame] + " " + s
	}
	return s
}

func (m Model) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "Ctrl+R", Description: "Reveal"},
		{Key: "Enter", Description: "Ask"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Run starts the practice UI and blocks until the user quits.
func Run(ctx context.Context, sess *session.Session, keys []session.Key) error {
	if len(keys) == 0 {
		return fmt.Errorf("no practice units")
	}
	p := tea.NewProgram(New(ctx, sess, keys))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
