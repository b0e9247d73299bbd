package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/nav"
)

// loginModel is the user login form: email plus display name. Submission
// goes through loginSubmitMsg so the root model owns the outcome.
type loginModel struct {
	emailInput textinput.Model
	nameInput  textinput.Model
	focusIdx   int
	warning    string
}

func newLoginModel() loginModel {
	email := textinput.NewModel()
	email.Placeholder = "you@example.com"
	email.Prompt = "email: "
	email.CharLimit = 128
	email.Focus()

	name := textinput.NewModel()
	name.Placeholder = "Your Name"
	name.Prompt = "name:  "
	name.CharLimit = 64

	return loginModel{emailInput: email, nameInput: name}
}

func (l *loginModel) focusField(idx int) {
	l.focusIdx = idx
	if idx == 0 {
		l.emailInput.Focus()
		l.nameInput.Blur()
	} else {
		l.emailInput.Blur()
		l.nameInput.Focus()
	}
}

func (l loginModel) update(msg tea.Msg, m *Model) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			l.focusField((l.focusIdx + 1) % 2)
			return l, textinput.Blink
		case "enter":
			email := strings.TrimSpace(l.emailInput.Value())
			name := strings.TrimSpace(l.nameInput.Value())
			if email == "" || name == "" {
				l.warning = "email and name are both required"
				return l, nil
			}
			l.warning = ""
			return l, func() tea.Msg { return loginSubmitMsg{email: email, name: name} }
		}
	}

	var cmd tea.Cmd
	if l.focusIdx == 0 {
		l.emailInput, cmd = l.emailInput.Update(msg)
	} else {
		l.nameInput, cmd = l.nameInput.Update(msg)
	}
	return l, cmd
}

func (l loginModel) view(m *Model) string {
	var b strings.Builder

	if m.store.Session().UserLoggedIn {
		b.WriteString(sectionTitle("You're logged in"))
		b.WriteString("\n")
		b.WriteString("Logged in as " + m.store.Session().UserName + " <" + m.store.Session().UserEmail + ">\n\n")
		b.WriteString(faintStyle("S: saved deals" + divider + "esc: back"))
		return b.String()
	}

	b.WriteString(sectionTitle("Log in"))
	b.WriteString("\n")
	b.WriteString("Log in to save deals and sync them across visits.\n\n")
	b.WriteString(l.emailInput.View())
	b.WriteString("\n")
	b.WriteString(l.nameInput.View())
	b.WriteString("\n\n")
	if l.warning != "" {
		b.WriteString(warnStyle(l.warning))
		b.WriteString("\n\n")
	}
	b.WriteString(faintStyle("tab: next field" + divider + "enter: log in" + divider + "esc: back"))
	return b.String()
}

// bizAuthModel is the business auth page with login and signup sub-tabs.
// Which sub-tab shows is the router's preferred-tab state, not a field here:
// navigation hooks reset it and CTAs override it, and this page must render
// whatever they decided.
type bizAuthModel struct {
	emailInput textinput.Model
	bizInput   textinput.Model
	focusIdx   int
	warning    string
}

func newBizAuthModel() bizAuthModel {
	email := textinput.NewModel()
	email.Placeholder = "owner@business.com"
	email.Prompt = "email:    "
	email.CharLimit = 128
	email.Focus()

	biz := textinput.NewModel()
	biz.Placeholder = "Business Name"
	biz.Prompt = "business: "
	biz.CharLimit = 64

	return bizAuthModel{emailInput: email, bizInput: biz}
}

func (a *bizAuthModel) focusField(idx int) {
	a.focusIdx = idx
	if idx == 0 {
		a.emailInput.Focus()
		a.bizInput.Blur()
	} else {
		a.emailInput.Blur()
		a.bizInput.Focus()
	}
}

func (a bizAuthModel) update(msg tea.Msg, m *Model) (bizAuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			// tab switches between the login/signup sub-tabs; within a tab,
			// up/down moves between fields.
			if m.store.Router().PreferredLoginTab() == nav.FormTabLogin {
				m.store.Router().SetPreferredLoginTab(nav.FormTabSignup)
			} else {
				m.store.Router().SetPreferredLoginTab(nav.FormTabLogin)
			}
			a.warning = ""
			return a, nil
		case "up", "down":
			a.focusField((a.focusIdx + 1) % 2)
			return a, textinput.Blink
		case "enter":
			email := strings.TrimSpace(a.emailInput.Value())
			biz := strings.TrimSpace(a.bizInput.Value())
			if email == "" || biz == "" {
				a.warning = "email and business name are both required"
				return a, nil
			}
			a.warning = ""
			return a, func() tea.Msg { return signupBusinessMsg{} }
		}
	}

	var cmd tea.Cmd
	if a.focusIdx == 0 {
		a.emailInput, cmd = a.emailInput.Update(msg)
	} else {
		a.bizInput, cmd = a.bizInput.Update(msg)
	}
	return a, cmd
}

func (a bizAuthModel) view(m *Model) string {
	var b strings.Builder

	if m.store.Session().BusinessLoggedIn {
		b.WriteString(sectionTitle("Business account"))
		b.WriteString("\n")
		b.WriteString("Business " + string(m.store.Session().BusinessID) + " is logged in.\n\n")
		b.WriteString(faintStyle("esc: back"))
		return b.String()
	}

	tab := m.store.Router().PreferredLoginTab()
	active := 0
	if tab == nav.FormTabSignup {
		active = 1
	}
	b.WriteString(tabRowView([]string{"log in", "sign up"}, active, m.width))
	b.WriteString("\n\n")

	if tab == nav.FormTabLogin {
		b.WriteString("Log in to manage your listing and deals.\n\n")
	} else {
		b.WriteString("Create a business account and get listed today.\n\n")
	}

	b.WriteString(a.emailInput.View())
	b.WriteString("\n")
	b.WriteString(a.bizInput.View())
	b.WriteString("\n\n")
	if a.warning != "" {
		b.WriteString(warnStyle(a.warning))
		b.WriteString("\n\n")
	}
	b.WriteString(faintStyle("tab: switch tab" + divider + "up/down: field" + divider + "enter: submit" + divider + "esc: back"))
	return b.String()
}

// partnerAuthModel is the distribution partner counterpart to bizAuthModel,
// keyed off the router's preferred partner tab.
type partnerAuthModel struct {
	emailInput textinput.Model
	orgInput   textinput.Model
	focusIdx   int
	warning    string
}

func newPartnerAuthModel() partnerAuthModel {
	email := textinput.NewModel()
	email.Placeholder = "partner@network.com"
	email.Prompt = "email: "
	email.CharLimit = 128
	email.Focus()

	org := textinput.NewModel()
	org.Placeholder = "Organization"
	org.Prompt = "org:   "
	org.CharLimit = 64

	return partnerAuthModel{emailInput: email, orgInput: org}
}

func (a *partnerAuthModel) focusField(idx int) {
	a.focusIdx = idx
	if idx == 0 {
		a.emailInput.Focus()
		a.orgInput.Blur()
	} else {
		a.emailInput.Blur()
		a.orgInput.Focus()
	}
}

func (a partnerAuthModel) update(msg tea.Msg, m *Model) (partnerAuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if m.store.Router().PreferredPartnerTab() == nav.FormTabLogin {
				m.store.Router().SetPreferredPartnerTab(nav.FormTabSignup)
			} else {
				m.store.Router().SetPreferredPartnerTab(nav.FormTabLogin)
			}
			a.warning = ""
			return a, nil
		case "up", "down":
			a.focusField((a.focusIdx + 1) % 2)
			return a, textinput.Blink
		case "enter":
			email := strings.TrimSpace(a.emailInput.Value())
			org := strings.TrimSpace(a.orgInput.Value())
			if email == "" || org == "" {
				a.warning = "email and organization are both required"
				return a, nil
			}
			a.warning = ""
			return a, navigateCmd(nav.To(nav.PageDistributionPartner))
		}
	}

	var cmd tea.Cmd
	if a.focusIdx == 0 {
		a.emailInput, cmd = a.emailInput.Update(msg)
	} else {
		a.orgInput, cmd = a.orgInput.Update(msg)
	}
	return a, cmd
}

func (a partnerAuthModel) view(m *Model) string {
	var b strings.Builder

	tab := m.store.Router().PreferredPartnerTab()
	active := 0
	if tab == nav.FormTabSignup {
		active = 1
	}
	b.WriteString(tabRowView([]string{"log in", "sign up"}, active, m.width))
	b.WriteString("\n\n")

	if tab == nav.FormTabLogin {
		b.WriteString("Log in to your partner dashboard.\n\n")
	} else {
		b.WriteString("Apply to run a rebranded directory for your audience.\n\n")
	}

	b.WriteString(a.emailInput.View())
	b.WriteString("\n")
	b.WriteString(a.orgInput.View())
	b.WriteString("\n\n")
	if a.warning != "" {
		b.WriteString(warnStyle(a.warning))
		b.WriteString("\n\n")
	}
	b.WriteString(faintStyle("tab: switch tab" + divider + "up/down: field" + divider + "enter: submit" + divider + "esc: back"))
	return b.String()
}
