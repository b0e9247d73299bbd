package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/nav"
)

func homeUpdate(msg tea.Msg, m *Model) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "d":
			return navigateCmd(nav.To(nav.PageDirectory))
		case "p":
			return navigateCmd(nav.To(nav.PagePricing))
		case "l":
			return navigateCmd(nav.To(nav.PageLogin))
		case "B":
			// business CTA opens the signup sub-tab
			return func() tea.Msg { return openBusinessSignupMsg{} }
		case "M":
			return navigateCmd(nav.To(nav.PageManageYourListing))
		case "P":
			return navigateCmd(nav.To(nav.PageBecomePartner))
		case "u":
			return navigateCmd(nav.To(nav.PageUserDashboard))
		case "s":
			return navigateCmd(nav.To(nav.PageSettings))
		case "c":
			return navigateCmd(nav.To(nav.PageContactUs))
		case "t":
			return navigateCmd(nav.To(nav.PageTerms))
		case "v":
			return navigateCmd(nav.To(nav.PagePrivacy))
		case "k":
			return navigateCmd(nav.To(nav.PageCookies))
		case "a":
			return navigateCmd(nav.To(nav.PageAbout))
		}
	}
	return nil
}

func homeView(m *Model) string {
	var b strings.Builder

	b.WriteString(sectionTitle(fmt.Sprintf("Welcome to %s", m.cfg.Brand)))
	b.WriteString("\n")
	b.WriteString("Browse local businesses, grab their best deals, and keep the\n")
	b.WriteString("ones you like saved for later.\n\n")

	b.WriteString(listBullet(fmt.Sprintf("%d businesses listed right now", m.directory.Count())))
	b.WriteString("\n")
	b.WriteString(listBullet(fmt.Sprintf("%d deals saved this session", m.store.SavedDeals().Len())))
	b.WriteString("\n\n")

	b.WriteString(listActive("enter — browse the directory"))
	b.WriteString("\n")
	b.WriteString(listBullet("l — log in to save deals"))
	b.WriteString("\n")
	b.WriteString(listBullet("B — list your business" + divider + "M — manage your listing"))
	b.WriteString("\n")
	b.WriteString(listBullet("p — pricing" + divider + "P — become a partner"))
	b.WriteString("\n")
	b.WriteString(listBullet("u — your dashboard" + divider + "s — settings" + divider + "c — contact us"))
	b.WriteString("\n\n")
	b.WriteString(faintStyle("t: terms" + divider + "v: privacy" + divider + "k: cookies" + divider + "a: about"))
	b.WriteString("\n")

	return b.String()
}

func becomePartnerUpdate(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "P" {
		return func() tea.Msg { return openPartnerSignupMsg{} }
	}
	return nil
}

func becomePartnerView(m *Model) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Become a distribution partner"))
	b.WriteString("\n")
	b.WriteString("Run a rebranded sub-directory for your neighborhood, venue or\n")
	b.WriteString("publication. You curate the listings; we run the plumbing.\n\n")
	b.WriteString(listBullet("white-label directory under your own name"))
	b.WriteString("\n")
	b.WriteString(listBullet("approve or reject listings before they go live"))
	b.WriteString("\n")
	b.WriteString(listBullet("per-location analytics"))
	b.WriteString("\n\n")
	b.WriteString(urlStyle("press P to open the partner dashboard login"))
	b.WriteString("\n")
	return b.String()
}
