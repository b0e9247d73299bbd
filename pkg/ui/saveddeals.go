package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/text"
)

// savedModel lists the session's bookmarked deals in the order they were
// saved.
type savedModel struct {
	cursor int
}

func newSavedModel() savedModel {
	return savedModel{}
}

func (s savedModel) update(msg tea.Msg, m *Model) (savedModel, tea.Cmd) {
	saved := m.store.SavedDeals().List()
	if s.cursor >= len(saved) {
		s.cursor = max(0, len(saved)-1)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if s.cursor < len(saved)-1 {
				s.cursor++
			}
		case "k", "up":
			if s.cursor > 0 {
				s.cursor--
			}
		case "enter":
			if len(saved) > 0 {
				return s, navigateCmd(nav.ToListing(saved[s.cursor]))
			}
		case "b":
			if len(saved) > 0 {
				id := saved[s.cursor]
				return s, func() tea.Msg { return toggleSaveMsg{id: id} }
			}
		case "d":
			return s, navigateCmd(nav.To(nav.PageDirectory))
		}
	}
	return s, nil
}

func (s savedModel) view(m *Model) string {
	var b strings.Builder

	b.WriteString(sectionTitle(fmt.Sprintf("%s Saved deals", text.EmojiSaved)))
	b.WriteString("\n")

	if !m.store.Session().UserLoggedIn {
		b.WriteString("Log in to start saving deals.\n\n")
		b.WriteString(urlStyle("press l on the home page to log in"))
		return b.String()
	}

	saved := m.store.SavedDeals().List()
	if len(saved) == 0 {
		b.WriteString(faintStyle("nothing saved yet — browse the directory and press b on a listing"))
		b.WriteString("\n\n")
		b.WriteString(urlStyle("d: open the directory"))
		return b.String()
	}

	for i, id := range saved {
		// A vanished listing still shows by id so the user can unsave it.
		line := string(id)
		if l, err := m.directory.Get(id, false); err == nil {
			line = l.Name
			if l.HasDeal() {
				line += faintStyle(divider + l.Deal)
			}
		}
		if i == s.cursor {
			b.WriteString(listActive(line))
		} else {
			b.WriteString(listBullet(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle("j/k: move" + divider + "enter: open" + divider + "b: unsave" + divider + "esc: back"))
	return b.String()
}
