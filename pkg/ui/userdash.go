package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/tabs"
	"github.com/preferreddeals/prefdeals/pkg/text"
)

// userDashModel is the end-user dashboard. Its tab cursor is independent
// from the business and partner dashboards.
type userDashModel struct {
	tabs *tabs.Cursor
}

func newUserDashModel() userDashModel {
	return userDashModel{tabs: tabs.MustNew("saved", "profile", "preferences")}
}

func (u userDashModel) update(msg tea.Msg, m *Model) (userDashModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextTab):
			u.tabs.Next()
			return u, nil
		case key.Matches(msg, m.keys.PrevTab):
			u.tabs.Prev()
			return u, nil
		}
		switch msg.String() {
		case "S":
			return u, navigateCmd(nav.To(nav.PageSavedDeals))
		case "L":
			return u, func() tea.Msg { return logoutMsg{} }
		}
	}
	return u, nil
}

func (u userDashModel) view(m *Model) string {
	var b strings.Builder

	sess := m.store.Session()
	if !sess.UserLoggedIn {
		b.WriteString(sectionTitle("Your dashboard"))
		b.WriteString("\n")
		b.WriteString("Log in to see your saved deals and profile.\n\n")
		b.WriteString(urlStyle("press l on the home page to log in"))
		return b.String()
	}

	b.WriteString(tabRowView(u.tabs.Labels(), u.tabs.Index(), m.width))
	b.WriteString("\n\n")

	switch u.tabs.Current() {
	case "saved":
		b.WriteString(sectionTitle(fmt.Sprintf("%s Saved deals", text.EmojiSaved)))
		b.WriteString("\n")
		saved := m.store.SavedDeals().List()
		if len(saved) == 0 {
			b.WriteString(faintStyle("nothing saved yet — browse the directory and press b"))
		} else {
			for _, id := range saved {
				l, err := m.directory.Get(id, false)
				if err != nil {
					continue
				}
				b.WriteString(listBullet(l.Name))
				b.WriteString("\n")
			}
			b.WriteString("\n")
			b.WriteString(urlStyle("S: open saved deals"))
		}
	case "profile":
		b.WriteString(sectionTitle("Profile"))
		b.WriteString("\n")
		b.WriteString(listBullet("name: " + sess.UserName))
		b.WriteString("\n")
		b.WriteString(listBullet("email: " + sess.UserEmail))
		b.WriteString("\n")
		b.WriteString(listBullet("account type: " + string(sess.Type)))
	case "preferences":
		b.WriteString(sectionTitle("Preferences"))
		b.WriteString("\n")
		b.WriteString(listBullet("cookie consent: " + string(m.consentChoice)))
		b.WriteString("\n")
		b.WriteString(faintStyle("change preferences on the settings page"))
	}

	b.WriteString("\n\n")
	b.WriteString(faintStyle("tab: next tab" + divider + "L: log out" + divider + "esc: back"))
	return b.String()
}
