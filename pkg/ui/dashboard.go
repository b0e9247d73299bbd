package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/tabs"
	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// dashboardModel is the business-owner dashboard. Tab state lives here and
// is independent from every other tabbed page.
type dashboardModel struct {
	tabs     *tabs.Cursor
	invoices []v1.Invoice
}

func newDashboardModel() dashboardModel {
	return dashboardModel{
		tabs:     tabs.MustNew("analytics", "listings", "billing"),
		invoices: mockInvoices(),
	}
}

// mockInvoices stands in for a billing backend.
func mockInvoices() []v1.Invoice {
	now := time.Now()
	return []v1.Invoice{
		{Number: "inv-0003", AmountCents: 4900, Status: v1.InvoiceDue, Issued: now.AddDate(0, 0, -3)},
		{Number: "inv-0002", AmountCents: 4900, Status: v1.InvoicePaid, Issued: now.AddDate(0, -1, -3)},
		{Number: "inv-0001", AmountCents: 4900, Status: v1.InvoicePaid, Issued: now.AddDate(0, -2, -3)},
	}
}

func (d dashboardModel) update(msg tea.Msg, m *Model) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextTab):
			d.tabs.Next()
			return d, nil
		case key.Matches(msg, m.keys.PrevTab):
			d.tabs.Prev()
			return d, nil
		}
		if d.tabs.Current() == "billing" && msg.String() == "p" && !m.paymentPending {
			return d, func() tea.Msg { return startPaymentMsg{} }
		}
	}
	return d, nil
}

func (d dashboardModel) view(m *Model) string {
	var b strings.Builder

	if !m.store.Session().BusinessLoggedIn {
		b.WriteString(sectionTitle("Business dashboard"))
		b.WriteString("\n")
		b.WriteString("You need a business account to see this page.\n\n")
		b.WriteString(urlStyle("press B on the home page to create one"))
		return b.String()
	}

	b.WriteString(tabRowView(d.tabs.Labels(), d.tabs.Index(), m.width))
	b.WriteString("\n\n")

	switch d.tabs.Current() {
	case "analytics":
		b.WriteString(d.analyticsView(m))
	case "listings":
		b.WriteString(d.listingsView(m))
	case "billing":
		b.WriteString(d.billingView(m))
	}

	b.WriteString("\n\n")
	b.WriteString(faintStyle("tab: next tab" + divider + "shift+tab: prev tab" + divider + "esc: back"))
	return b.String()
}

func (d dashboardModel) analyticsView(m *Model) string {
	var b strings.Builder
	b.WriteString(sectionTitle("This month"))
	b.WriteString("\n")
	b.WriteString(listBullet("directory views: 1,248"))
	b.WriteString("\n")
	b.WriteString(listBullet(fmt.Sprintf("deal saves: %d", m.store.SavedDeals().Len())))
	b.WriteString("\n")
	b.WriteString(listBullet("detail opens: 312"))
	return b.String()
}

func (d dashboardModel) listingsView(m *Model) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Your listings"))
	b.WriteString("\n")

	ls, err := m.directory.ListAll()
	if err != nil {
		return b.String() + warnStyle("unable to load listings")
	}
	for _, l := range ls {
		line := l.Name
		if l.Premium {
			line += " " + premiumStyle(text.EmojiPremium)
		}
		if l.HasDeal() {
			line += " " + text.EmojiDeal
		}
		b.WriteString(listBullet(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(faintStyle(fmt.Sprintf("edit a listing by changing its yaml file, e.g. %s", m.directory.StoragePath("my-business"))))
	return b.String()
}

func (d dashboardModel) billingView(m *Model) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Invoices"))
	b.WriteString("\n")
	for _, inv := range d.invoices {
		status := string(inv.Status)
		if inv.Status == v1.InvoicePaid {
			status = faintStyle(status)
		} else {
			status = warnStyle(status)
		}
		b.WriteString(listBullet(fmt.Sprintf("%s  %s  %s  %s",
			inv.Number, text.Money(inv.AmountCents), status, inv.Issued.Format("Jan 2, 2006"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.paymentPending {
		b.WriteString(urlStyle("processing payment…"))
	} else {
		b.WriteString(urlStyle("p: pay due invoice (mock)"))
	}
	return b.String()
}
