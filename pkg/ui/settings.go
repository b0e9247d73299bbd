package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

var userTypes = []v1.UserType{
	v1.UserTypeUser,
	v1.UserTypePartner,
	v1.UserTypeDistribution,
	v1.UserTypeAdmin,
}

// settingsModel lets the user switch the demo user type and reset the
// cookie-consent choice.
type settingsModel struct {
	cursor int
}

func newSettingsModel() settingsModel {
	return settingsModel{}
}

func (s settingsModel) update(msg tea.Msg, m *Model) (settingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if s.cursor < len(userTypes)-1 {
				s.cursor++
			}
		case "k", "up":
			if s.cursor > 0 {
				s.cursor--
			}
		case "enter":
			t := userTypes[s.cursor]
			return s, func() tea.Msg { return setUserTypeMsg{t: t} }
		case "c":
			// Forget the stored choice; the prompt returns on next launch.
			if err := m.consentStore.Save(v1.ConsentUnset); err != nil {
				return s, func() tea.Msg { return errMsg{err} }
			}
			return s, func() tea.Msg { return statusMsg{text: "cookie choice reset"} }
		}
	}
	return s, nil
}

func (s settingsModel) view(m *Model) string {
	var b strings.Builder

	b.WriteString(sectionTitle("Settings"))
	b.WriteString("\n")

	b.WriteString("Viewing as:\n")
	for i, t := range userTypes {
		line := string(t)
		if t == m.store.Session().Type {
			line += faintStyle(" (current)")
		}
		if i == s.cursor {
			b.WriteString(listActive(line))
		} else {
			b.WriteString(listBullet(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Cookie consent: %s\n", string(m.consentChoice)))
	b.WriteString("\n")
	b.WriteString(faintStyle("j/k: move" + divider + "enter: switch user type" + divider + "c: reset cookie choice" + divider + "esc: back"))
	return b.String()
}
