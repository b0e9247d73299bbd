package v1

import "time"

// Billing mockups. None of this talks to a payment provider; the dashboard
// renders these structs verbatim.

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceDue     InvoiceStatus = "due"
	InvoiceOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	Number      string        `yaml:"number" validate:"required"`
	Issued      time.Time     `yaml:"issued" validate:"required"`
	AmountCents int64         `yaml:"amountCents" validate:"required"`
	Status      InvoiceStatus `yaml:"status" validate:"required"`
}

// Plan is a subscription tier. Annual billing is discounted; the pricing page
// shows the derived figures rather than storing them.
type Plan struct {
	Name                  string `yaml:"name" validate:"required"`
	MonthlyCents          int64  `yaml:"monthlyCents" validate:"required"`
	AnnualDiscountPercent int64  `yaml:"annualDiscountPercent" validate:"min=0,max=100"`
}

// AnnualCents is twelve months less the annual discount.
func (p Plan) AnnualCents() int64 {
	full := p.MonthlyCents * 12
	return full - full*p.AnnualDiscountPercent/100
}

// AnnualSavingsCents is what switching from monthly to annual billing saves.
func (p Plan) AnnualSavingsCents() int64 {
	return p.MonthlyCents*12 - p.AnnualCents()
}

// Location is a distribution partner's sub-directory site.
type Location struct {
	ID      ID     `yaml:"id" validate:"required"`
	Name    string `yaml:"name" validate:"required"`
	Address string `yaml:"address,omitempty"`
	Active  bool   `yaml:"active,omitempty"`
}
