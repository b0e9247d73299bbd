package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/preferreddeals/prefdeals/pkg/db"
	"github.com/preferreddeals/prefdeals/pkg/hours"
	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

type detailModel struct {
	viewport    viewport.Model
	renderedFor v1.ID
	width       int
	height      int
}

func newDetailModel() detailModel {
	return detailModel{viewport: viewport.Model{Width: 80, Height: 20}}
}

func (d *detailModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.viewport.Width = w
	d.viewport.Height = max(5, h-10)
	d.renderedFor = "" // force re-render at the new width
}

func (d detailModel) update(msg tea.Msg, m *Model) (detailModel, tea.Cmd) {
	id := m.store.Router().Selected()
	if id == "" {
		return d, nil
	}

	if d.renderedFor != id {
		if content, err := d.render(m, id); err == nil {
			d.viewport.SetContent(content)
			d.viewport.GotoTop()
			d.renderedFor = id
		} else if err == db.ErrNoListingFound {
			// Listing disappeared from under us; back to the directory.
			return d, navigateCmd(nav.To(nav.PageDirectory))
		} else {
			m.log.Errorw("unable to render listing", "id", id, "err", err)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			return d, func() tea.Msg { return toggleSaveMsg{id: id} }
		case "y":
			// The share affordance: surface the public link in the status
			// bar. Terminals keep clipboard access to the user.
			return d, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("share link: https://preferreddeals.example.com/l/%s", id)}
			}
		}
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

func (d detailModel) render(m *Model, id v1.ID) (string, error) {
	l, err := m.directory.Get(id, false)
	if err != nil {
		return "", err
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", l.Name)
	fmt.Fprintf(&md, "%s %s, %s\n\n", text.CategoryEmoji(l.Category), l.Category, l.Location)
	if l.Description != "" {
		fmt.Fprintf(&md, "%s\n\n", l.Description)
	}
	if l.HasDeal() {
		fmt.Fprintf(&md, "## %s Current deal\n\n%s\n", text.EmojiDeal, l.Deal)
	}

	var contact []string
	if l.Phone != "" {
		contact = append(contact, l.Phone)
	}
	if l.Email != "" {
		contact = append(contact, l.Email)
	}
	if l.Website != "" {
		contact = append(contact, l.Website)
	}
	if len(contact) > 0 {
		fmt.Fprintf(&md, "\n## Contact\n\n%s\n", strings.Join(contact, " · "))
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(d.width-4, 100)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md.String())
}

func (d detailModel) view(m *Model) string {
	id := m.store.Router().Selected()
	if id == "" {
		// Render contract: without a selected listing only the shell shows.
		return faintStyle("no listing selected — press D for the directory")
	}

	l, err := m.directory.Get(id, false)
	if err != nil {
		return warnStyle("that listing is gone")
	}

	var b strings.Builder

	badges := []string{}
	if l.Premium {
		badges = append(badges, premiumStyle(text.EmojiPremium+" premium"))
	}
	if m.store.SavedDeals().Contains(id) {
		badges = append(badges, text.EmojiSaved+" saved")
	}
	if open, known := hours.OpenAt(l, time.Now()); known {
		if open {
			badges = append(badges, text.EmojiOpen+" open now")
		} else {
			badges = append(badges, faintStyle(text.EmojiClosed+" closed now"))
		}
	}
	badges = append(badges, faintStyle("listed "+text.RelativeTime(l.CreationTimestamp)))
	b.WriteString(strings.Join(badges, divider))
	b.WriteString("\n")

	if d.renderedFor == id {
		b.WriteString(d.viewport.View())
	} else {
		// First frame after navigation; update hasn't rendered yet.
		if content, err := d.render(m, id); err == nil {
			vp := d.viewport
			vp.SetContent(content)
			b.WriteString(vp.View())
		}
	}

	b.WriteString("\n")
	b.WriteString(faintStyle("b: save deal" + divider + "y: share" + divider + "esc: back"))
	return b.String()
}
