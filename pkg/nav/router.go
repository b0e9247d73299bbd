package nav

import (
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

// Intent is a requested transition: a target page plus the auxiliary
// parameters some pages consume. Zero values mean "not supplied".
type Intent struct {
	Page     Page
	Category string
	Location string
	Listing  v1.ID
}

// To builds a plain navigation intent.
func To(p Page) Intent {
	return Intent{Page: p}
}

// ToDirectory builds a directory navigation carrying filters. Empty strings
// clear the corresponding filter.
func ToDirectory(category, location string) Intent {
	return Intent{Page: PageDirectory, Category: category, Location: location}
}

// ToListing builds a detail-page navigation for one listing.
func ToListing(id v1.ID) Intent {
	return Intent{Page: PageListingDetail, Listing: id}
}

// postNavHooks are the per-destination fix-ups that run after every
// navigation. Keyed by page so the special cases stay enumerable; call sites
// that want a different sub-tab set it after navigating.
var postNavHooks = map[Page]func(*Router){
	PageManageYourListing: func(r *Router) {
		r.loginTab = FormTabLogin
	},
	PagePartnerDashboardLogin: func(r *Router) {
		r.partnerTab = FormTabLogin
	},
}

// Router owns which page is current and the cross-page view parameters.
// Directory filters are sticky: only a navigation whose target is the
// directory overwrites them, and it always overwrites both (absent values
// clear). Every other destination leaves them as they were.
type Router struct {
	current    Page
	category   string
	location   string
	selected   v1.ID
	loginTab   FormTab
	partnerTab FormTab
}

func NewRouter() *Router {
	return &Router{
		current:    PageHome,
		loginTab:   FormTabLogin,
		partnerTab: FormTabLogin,
	}
}

// Apply consumes an intent. The intent fully replaces the current page and,
// for directory targets only, the stored filters.
func (r *Router) Apply(in Intent) {
	r.current = in.Page

	if in.Page == PageDirectory {
		r.category = in.Category
		r.location = in.Location
	}

	if in.Listing != "" {
		r.selected = in.Listing
	}

	if hook, ok := postNavHooks[in.Page]; ok {
		hook(r)
	}
}

func (r *Router) Current() Page {
	return r.current
}

// Filters returns the sticky directory filters. Empty string means unset.
func (r *Router) Filters() (category, location string) {
	return r.category, r.location
}

// Selected is the listing the detail page renders. The detail page renders
// only the shell when this is empty.
func (r *Router) Selected() v1.ID {
	return r.selected
}

func (r *Router) ClearSelected() {
	r.selected = ""
}

func (r *Router) PreferredLoginTab() FormTab {
	return r.loginTab
}

func (r *Router) SetPreferredLoginTab(t FormTab) {
	r.loginTab = t
}

func (r *Router) PreferredPartnerTab() FormTab {
	return r.partnerTab
}

func (r *Router) SetPreferredPartnerTab(t FormTab) {
	r.partnerTab = t
}
