package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// contactModel is the contact-us form. Submission is local only; there's no
// backend to send to, so a successful submit just clears the form and
// confirms in the status bar.
type contactModel struct {
	nameInput    textinput.Model
	emailInput   textinput.Model
	messageInput textinput.Model
	focusIdx     int
	warning      string
}

func newContactModel() contactModel {
	name := textinput.NewModel()
	name.Placeholder = "Your Name"
	name.Prompt = "name:    "
	name.CharLimit = 64
	name.Focus()

	email := textinput.NewModel()
	email.Placeholder = "you@example.com"
	email.Prompt = "email:   "
	email.CharLimit = 128

	message := textinput.NewModel()
	message.Placeholder = "How can we help?"
	message.Prompt = "message: "
	message.CharLimit = 280

	return contactModel{nameInput: name, emailInput: email, messageInput: message}
}

func (c *contactModel) focusField(idx int) {
	c.focusIdx = ((idx % 3) + 3) % 3
	inputs := []*textinput.Model{&c.nameInput, &c.emailInput, &c.messageInput}
	for i, in := range inputs {
		if i == c.focusIdx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (c contactModel) update(msg tea.Msg, m *Model) (contactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			c.focusField(c.focusIdx + 1)
			return c, textinput.Blink
		case "shift+tab", "up":
			c.focusField(c.focusIdx - 1)
			return c, textinput.Blink
		case "enter":
			name := strings.TrimSpace(c.nameInput.Value())
			email := strings.TrimSpace(c.emailInput.Value())
			message := strings.TrimSpace(c.messageInput.Value())
			if name == "" || email == "" || message == "" {
				c.warning = "all fields are required"
				return c, nil
			}
			c.warning = ""
			c.nameInput.Reset()
			c.emailInput.Reset()
			c.messageInput.Reset()
			c.focusField(0)
			return c, func() tea.Msg { return statusMsg{text: "thanks! we'll be in touch"} }
		}
	}

	var cmd tea.Cmd
	switch c.focusIdx {
	case 0:
		c.nameInput, cmd = c.nameInput.Update(msg)
	case 1:
		c.emailInput, cmd = c.emailInput.Update(msg)
	case 2:
		c.messageInput, cmd = c.messageInput.Update(msg)
	}
	return c, cmd
}

func (c contactModel) view(m *Model) string {
	var b strings.Builder

	b.WriteString(sectionTitle("Contact us"))
	b.WriteString("\n")
	b.WriteString("Questions about listings, billing or partnerships?\n\n")
	b.WriteString(c.nameInput.View())
	b.WriteString("\n")
	b.WriteString(c.emailInput.View())
	b.WriteString("\n")
	b.WriteString(c.messageInput.View())
	b.WriteString("\n\n")
	if c.warning != "" {
		b.WriteString(warnStyle(c.warning))
		b.WriteString("\n\n")
	}
	b.WriteString(faintStyle("tab: next field" + divider + "enter: send" + divider + "esc: back"))
	return b.String()
}
