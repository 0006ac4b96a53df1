package app

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Elekcktra/cars-analyzer/internal/generator"
	"github.com/Elekcktra/cars-analyzer/internal/session"
	"github.com/Elekcktra/cars-analyzer/internal/ui/theme"
)

// scrollToEnd pins the body to its last page.
const scrollToEnd = int(^uint(0) >> 1)

// chromeHeight is the header and footer height; the content area adds
// the tab row, a spacer, the status row, and the input row.
const (
	chromeHeight  = 6
	contentRows   = 4
	contentMargin = 2
)

func (m Model) bodyHeight() int {
	return max(m.height-chromeHeight-contentRows, 1)
}

func (m Model) bodyWidth() int {
	return max(m.width-2*contentMargin, 10)
}

// scrollBy moves the active unit's body offset by delta lines, clamped to
// the body length.
func (m *Model) scrollBy(delta int) {
	key := m.activeKey()
	maxOffset := max(len(m.bodyLines(m.bodyWidth()))-m.bodyHeight(), 0)

	offset := min(m.scroll[key], maxOffset)
	offset = max(min(offset+delta, maxOffset), 0)
	m.scroll[key] = offset
}

func (m Model) renderContent(width, height int) string {
	key := m.activeKey()
	bodyHeight := max(height-contentRows, 1)

	lines := m.bodyLines(m.bodyWidth())
	maxOffset := max(len(lines)-bodyHeight, 0)
	offset := min(m.scroll[key], maxOffset)
	end := min(offset+bodyHeight, len(lines))
	visible := lines[offset:end]

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	for range bodyHeight - len(visible) {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if msg := m.errs[key]; msg != "" {
		b.WriteString(theme.ErrorText.Render(msg))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, contentMargin).
		Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.keys))
	for i, k := range m.keys {
		style := theme.TabInactive
		if i == m.active {
			style = theme.TabActive
		}
		tabs[i] = style.Render(k.Category)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// bodyLines renders the scrollable part of the active unit, wrapped to
// width.
func (m Model) bodyLines(width int) []string {
	key := m.activeKey()
	view := m.sess.Snapshot(key)
	wrap := lipgloss.NewStyle().Width(width)

	var parts []string
	add := func(s string) { parts = append(parts, s) }

	switch {
	case view.State == session.StateHidden || view.State == session.StateRevealed:
		add(theme.Section.Render("Passage + Questions"))
		add(wrap.Render(view.Passage))
		add("")
		add(theme.Section.Render("Answers & Explanations"))
		if view.Revealed {
			if view.AnswerAvailable {
				add(wrap.Render(view.Answer))
			} else {
				add(theme.Warning.Render(view.Answer))
			}
		} else {
			add(theme.Hint.Render("Press Ctrl+R to reveal answers."))
		}
	case m.loading[key]:
		add(theme.Hint.Render(spinnerFrames[m.frame] + " Generating a practice passage for " + key.Category + "..."))
	default:
		add(theme.Hint.Render("No passage yet."))
	}

	if len(view.Transcript) > 0 {
		add("")
		add(theme.Section.Render("Conversation"))
		for _, t := range view.Transcript {
			add(renderTurn(t, wrap))
		}
	}
	if m.asking[key] {
		add(theme.Hint.Render(spinnerFrames[m.frame] + " Thinking..."))
	}

	return strings.Split(strings.Join(parts, "\n"), "\n")
}

func renderTurn(t generator.Turn, wrap lipgloss.Style) string {
	label := theme.AssistantTurn.Render("Tutor:")
	if t.Role == generator.RoleUser {
		label = theme.UserTurn.Render("You:")
	}
	return label + "\n" + wrap.Render(t.Text)
}
