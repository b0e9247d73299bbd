package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// shellView wraps every page in the shared chrome: brand header, the page
// body, an optional consent dialog and the status bar.
func (m Model) shellView(body string) string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.consentPromptVisible {
		b.WriteString("\n\n")
		b.WriteString(m.consentPromptView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.statusBarView())

	return b.String()
}

func (m Model) headerView() string {
	left := brandView(m.cfg.Brand)
	if m.cfg.Tagline != "" {
		left += divider + faintStyle(m.cfg.Tagline)
	}
	left += divider + faintStyle(m.store.Router().Current().String())

	right := m.sessionBadge()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) sessionBadge() string {
	s := m.store.Session()
	parts := []string{}
	if s.UserLoggedIn {
		parts = append(parts, fmt.Sprintf("%s %s", text.EmojiSaved, s.UserName))
	}
	if s.BusinessLoggedIn {
		parts = append(parts, "business")
	}
	if len(parts) == 0 {
		return faintStyle("not logged in")
	}
	if s.Type != v1.UserTypeUser {
		parts = append(parts, faintStyle(string(s.Type)))
	}
	return strings.Join(parts, divider)
}

func (m Model) statusBarView() string {
	if m.statusMessage != "" {
		return statusBarMessageStyle(" " + m.statusMessage + " ")
	}

	help := " ? help"
	count := fmt.Sprintf("%d listings", m.directory.Count())
	status := string(m.directory.Status())
	saved := fmt.Sprintf("%d saved", m.store.SavedDeals().Len())

	line := help + divider + count + divider + saved + divider + status
	pad := m.width - lipgloss.Width(line)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return statusBarStyle(line)
}

func (m Model) consentPromptView() string {
	msg := wordwrap.String(
		"We use a single cookie-equivalent flag to remember this choice. "+
			"Accept? (y/n)", max(20, min(m.width-8, 60)))
	return dialogBoxStyle.Render(msg)
}
