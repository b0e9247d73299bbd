package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preferreddeals/prefdeals/pkg/text"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// pricingModel shows the subscription tiers. The annual toggle is pure
// presentation; figures derive from the plan, nothing is stored.
type pricingModel struct {
	plans  []v1.Plan
	annual bool
}

func newPricingModel(plans []v1.Plan) pricingModel {
	return pricingModel{plans: plans}
}

func (p pricingModel) update(msg tea.Msg, m *Model) (pricingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a", "m":
			p.annual = !p.annual
			return p, nil
		case "enter":
			return p, func() tea.Msg { return openBusinessSignupMsg{} }
		}
	}
	return p, nil
}

func (p pricingModel) view(m *Model) string {
	var b strings.Builder

	b.WriteString(sectionTitle("Pricing"))
	b.WriteString("\n")
	if p.annual {
		b.WriteString("Billed annually." + divider + urlStyle("m: show monthly"))
	} else {
		b.WriteString("Billed monthly." + divider + urlStyle("a: show annual"))
	}
	b.WriteString("\n\n")

	for _, plan := range p.plans {
		var line string
		if p.annual {
			line = fmt.Sprintf("%-10s %s/yr", plan.Name, text.Money(plan.AnnualCents()))
			if s := plan.AnnualSavingsCents(); s > 0 {
				line += faintStyle(fmt.Sprintf("  save %s", text.Money(s)))
			}
		} else {
			line = fmt.Sprintf("%-10s %s/mo", plan.Name, text.Money(plan.MonthlyCents))
		}
		b.WriteString(listBullet(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(urlStyle("enter: sign your business up"))
	b.WriteString("\n")
	b.WriteString(faintStyle("esc: back"))
	return b.String()
}
