// Package hours answers "is this place open right now" for listing cards.
package hours

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// calendarFor builds a business calendar matching a listing's posted hours.
func calendarFor(h *v1.Hours) *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.SetWorkHours(h.Open, h.Close)
	if h.OpenWeekends {
		c.SetWorkday(time.Saturday, true)
		c.SetWorkday(time.Sunday, true)
	}
	if !h.OpenHolidays {
		c.AddHoliday(us.Holidays...)
	}
	return c
}

// OpenAt reports whether the listing is open at t. known is false when the
// listing posts no hours, in which case no badge should render.
func OpenAt(l *v1.Listing, t time.Time) (open bool, known bool) {
	if l.Hours == nil {
		return false, false
	}
	return calendarFor(l.Hours).IsWorkTime(t), true
}
