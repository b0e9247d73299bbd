package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/tabs"
	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// partnerModel is the distribution partner dashboard. Six tabs, its own
// cursor; moving through these never disturbs the business dashboard's tab.
type partnerModel struct {
	tabs      *tabs.Cursor
	locations []v1.Location
}

func newPartnerModel() partnerModel {
	return partnerModel{
		tabs: tabs.MustNew("overview", "pending", "approved", "marketplace", "locations", "analytics"),
		locations: []v1.Location{
			{ID: "loc-downtown", Name: "Downtown", Address: "12 Main St", Active: true},
			{ID: "loc-riverside", Name: "Riverside", Address: "88 Water Ave", Active: true},
			{ID: "loc-airport", Name: "Airport Concourse", Address: "Terminal B", Active: false},
		},
	}
}

func (p partnerModel) update(msg tea.Msg, m *Model) (partnerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextTab):
			p.tabs.Next()
			return p, nil
		case key.Matches(msg, m.keys.PrevTab):
			p.tabs.Prev()
			return p, nil
		}
	}
	return p, nil
}

func (p partnerModel) view(m *Model) string {
	var b strings.Builder

	b.WriteString(tabRowView(p.tabs.Labels(), p.tabs.Index(), m.width))
	b.WriteString("\n\n")

	switch p.tabs.Current() {
	case "overview":
		b.WriteString(sectionTitle("Partner overview"))
		b.WriteString("\n")
		b.WriteString(listBullet(fmt.Sprintf("%d locations (%d active)", len(p.locations), p.activeCount())))
		b.WriteString("\n")
		b.WriteString(listBullet(fmt.Sprintf("%d listings in your marketplace", m.directory.Count())))
	case "pending":
		b.WriteString(sectionTitle("Pending listings"))
		b.WriteString("\n")
		b.WriteString(faintStyle("no listings waiting for approval"))
	case "approved":
		b.WriteString(sectionTitle("Approved listings"))
		b.WriteString("\n")
		b.WriteString(p.approvedView(m))
	case "marketplace":
		b.WriteString(sectionTitle("Marketplace"))
		b.WriteString("\n")
		b.WriteString("Syndicate deals from the main directory into your locations.\n")
		b.WriteString(faintStyle(fmt.Sprintf("%d deals available to syndicate", p.dealCount(m))))
	case "locations":
		b.WriteString(sectionTitle("Locations"))
		b.WriteString("\n")
		for _, loc := range p.locations {
			line := fmt.Sprintf("%s %s", text.EmojiLocation, loc.Name)
			if loc.Address != "" {
				line += faintStyle(" " + loc.Address)
			}
			if !loc.Active {
				line += warnStyle(" (inactive)")
			}
			b.WriteString(listBullet(line))
			b.WriteString("\n")
		}
	case "analytics":
		b.WriteString(sectionTitle("Network analytics"))
		b.WriteString("\n")
		b.WriteString(listBullet("network views: 5,120"))
		b.WriteString("\n")
		b.WriteString(listBullet("click-throughs: 430"))
	}

	b.WriteString("\n\n")
	b.WriteString(faintStyle("tab: next tab" + divider + "shift+tab: prev tab" + divider + "esc: back"))
	return b.String()
}

func (p partnerModel) activeCount() int {
	n := 0
	for _, loc := range p.locations {
		if loc.Active {
			n++
		}
	}
	return n
}

func (p partnerModel) dealCount(m *Model) int {
	ls, err := m.directory.ListAll()
	if err != nil {
		return 0
	}
	n := 0
	for _, l := range ls {
		if l.HasDeal() {
			n++
		}
	}
	return n
}

func (p partnerModel) approvedView(m *Model) string {
	ls, err := m.directory.ListAll()
	if err != nil {
		return warnStyle("unable to load listings")
	}
	var b strings.Builder
	for _, l := range ls {
		b.WriteString(listBullet(fmt.Sprintf("%s %s", text.CategoryEmoji(l.Category), l.Name)))
		b.WriteString("\n")
	}
	return b.String()
}
