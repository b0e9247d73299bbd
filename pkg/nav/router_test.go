package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySetsExactlyOneCurrentPage(t *testing.T) {
	r := NewRouter()
	require.Equal(t, PageHome, r.Current())

	for _, p := range []Page{PageDirectory, PageAbout, PagePricing, PageHome, PageTerms} {
		r.Apply(To(p))
		assert.Equal(t, p, r.Current())
	}
}

func TestDirectoryFiltersAreSticky(t *testing.T) {
	r := NewRouter()

	r.Apply(ToDirectory("Food", "NYC"))
	c, l := r.Filters()
	require.Equal(t, "Food", c)
	require.Equal(t, "NYC", l)

	// Navigating elsewhere must not touch the filters.
	r.Apply(To(PageAbout))
	c, l = r.Filters()
	assert.Equal(t, "Food", c)
	assert.Equal(t, "NYC", l)

	// Returning to the directory with no filters supplied clears them,
	// because a directory navigation always overwrites both.
	r.Apply(To(PageDirectory))
	c, l = r.Filters()
	assert.Empty(t, c)
	assert.Empty(t, l)
}

func TestDirectoryNavigationScenario(t *testing.T) {
	r := NewRouter()

	r.Apply(ToDirectory("Restaurant", "NYC"))
	assert.Equal(t, PageDirectory, r.Current())
	c, l := r.Filters()
	assert.Equal(t, "Restaurant", c)
	assert.Equal(t, "NYC", l)

	r.Apply(To(PageAbout))
	assert.Equal(t, PageAbout, r.Current())
	c, l = r.Filters()
	assert.Equal(t, "Restaurant", c)
	assert.Equal(t, "NYC", l)

	r.Apply(To(PageDirectory))
	c, l = r.Filters()
	assert.Empty(t, c)
	assert.Empty(t, l)
}

func TestPostNavHooksResetPreferredTabs(t *testing.T) {
	r := NewRouter()

	r.SetPreferredLoginTab(FormTabSignup)
	r.Apply(To(PageManageYourListing))
	assert.Equal(t, FormTabLogin, r.PreferredLoginTab())

	r.SetPreferredPartnerTab(FormTabSignup)
	r.Apply(To(PagePartnerDashboardLogin))
	assert.Equal(t, FormTabLogin, r.PreferredPartnerTab())

	// Hooks only fire for their own destination.
	r.SetPreferredLoginTab(FormTabSignup)
	r.Apply(To(PageAbout))
	assert.Equal(t, FormTabSignup, r.PreferredLoginTab())
}

func TestSelectedListing(t *testing.T) {
	r := NewRouter()
	require.Empty(t, r.Selected())

	r.Apply(ToListing("biz-42"))
	assert.Equal(t, PageListingDetail, r.Current())
	assert.EqualValues(t, "biz-42", r.Selected())

	// A plain navigation does not clear the selection.
	r.Apply(To(PageDirectory))
	assert.EqualValues(t, "biz-42", r.Selected())

	r.ClearSelected()
	assert.Empty(t, r.Selected())
}

func TestPageStringsAreUniqueAndNonEmpty(t *testing.T) {
	seen := map[string]bool{}
	for p := PageHome; p <= PagePartnerDashboardLogin; p++ {
		s := p.String()
		require.NotEmpty(t, s)
		require.False(t, seen[s], "duplicate page tag %q", s)
		seen[s] = true
	}
	assert.Len(t, seen, 20)
}
