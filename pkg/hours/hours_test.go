package hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

func listingWithHours(h *v1.Hours) *v1.Listing {
	return &v1.Listing{
		ListingMetadata: v1.ListingMetadata{
			ID:       "test",
			Name:     "Test",
			Category: "Cafe",
			Location: "NYC",
			Hours:    h,
		},
	}
}

func TestNoPostedHoursIsUnknown(t *testing.T) {
	_, known := OpenAt(listingWithHours(nil), time.Now())
	assert.False(t, known)
}

func TestWeekdayHours(t *testing.T) {
	l := listingWithHours(&v1.Hours{
		Open:  9 * time.Hour,
		Close: 17 * time.Hour,
	})

	// 2021-06-09 was a Wednesday.
	wednesdayNoon := time.Date(2021, 6, 9, 12, 0, 0, 0, time.UTC)
	open, known := OpenAt(l, wednesdayNoon)
	assert.True(t, known)
	assert.True(t, open)

	wednesdayNight := time.Date(2021, 6, 9, 22, 0, 0, 0, time.UTC)
	open, _ = OpenAt(l, wednesdayNight)
	assert.False(t, open)
}

func TestClosedOnWeekendsUnlessPosted(t *testing.T) {
	weekdaysOnly := listingWithHours(&v1.Hours{
		Open:  9 * time.Hour,
		Close: 17 * time.Hour,
	})
	sevenDays := listingWithHours(&v1.Hours{
		Open:         9 * time.Hour,
		Close:        17 * time.Hour,
		OpenWeekends: true,
	})

	// 2021-06-12 was a Saturday.
	saturdayNoon := time.Date(2021, 6, 12, 12, 0, 0, 0, time.UTC)

	open, _ := OpenAt(weekdaysOnly, saturdayNoon)
	assert.False(t, open)

	open, _ = OpenAt(sevenDays, saturdayNoon)
	assert.True(t, open)
}

func TestClosedOnHolidaysUnlessPosted(t *testing.T) {
	closedHolidays := listingWithHours(&v1.Hours{
		Open:  9 * time.Hour,
		Close: 17 * time.Hour,
	})
	openHolidays := listingWithHours(&v1.Hours{
		Open:         9 * time.Hour,
		Close:        17 * time.Hour,
		OpenHolidays: true,
	})

	// 2021-07-05 (Monday) was the observed Independence Day holiday.
	holidayNoon := time.Date(2021, 7, 5, 12, 0, 0, 0, time.UTC)

	open, _ := OpenAt(closedHolidays, holidayNoon)
	assert.False(t, open)

	open, _ = OpenAt(openHolidays, holidayNoon)
	assert.True(t, open)
}
