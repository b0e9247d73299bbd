package nav

// Page is the closed set of top-level views. Exactly one page is current at
// any time; navigation anywhere else is a compile error, not a blank render.
type Page int

const (
	PageHome Page = iota
	PageDirectory
	PageBecomePartner
	PageDashboard
	PageDistributionPartner
	PageListingDetail
	PageLogin
	PageSavedDeals
	PageUserDashboard
	PageTerms
	PagePrivacy
	PageCookies
	PageAbout
	PageHelp
	PagePricing
	PageSettings
	PageContactUs
	PageListYourBusiness
	PageManageYourListing
	PagePartnerDashboardLogin
)

func (p Page) String() string {
	return map[Page]string{
		PageHome:                  "home",
		PageDirectory:             "directory",
		PageBecomePartner:         "become-partner",
		PageDashboard:             "dashboard",
		PageDistributionPartner:   "distribution-partner",
		PageListingDetail:         "listing-detail",
		PageLogin:                 "login",
		PageSavedDeals:            "saved-deals",
		PageUserDashboard:         "user-dashboard",
		PageTerms:                 "terms",
		PagePrivacy:               "privacy",
		PageCookies:               "cookies",
		PageAbout:                 "about",
		PageHelp:                  "help",
		PagePricing:               "pricing",
		PageSettings:              "settings",
		PageContactUs:             "contact-us",
		PageListYourBusiness:      "list-your-business",
		PageManageYourListing:     "manage-your-listing",
		PagePartnerDashboardLogin: "partner-dashboard-login",
	}[p]
}

// PageFromTag resolves a page tag from config. Unknown tags report false so
// callers can fall back rather than render nothing.
func PageFromTag(tag string) (Page, bool) {
	for p := PageHome; p <= PagePartnerDashboardLogin; p++ {
		if p.String() == tag {
			return p, true
		}
	}
	return PageHome, false
}

// FormTab is which sub-tab an auth page should open on. Footer links want
// login, in-page CTAs want signup.
type FormTab string

const (
	FormTabLogin  FormTab = "login"
	FormTabSignup FormTab = "signup"
)
