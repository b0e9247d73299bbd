package ui

import (
	"github.com/preferreddeals/prefdeals/pkg/nav"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// navigateMsg requests a page transition. Page views emit these through
// their callbacks; only the root model consumes them.
type navigateMsg struct {
	intent nav.Intent
}

// loginSubmitMsg is a user-login attempt from the login form.
type loginSubmitMsg struct {
	email string
	name  string
}

type logoutMsg struct{}

// signupBusinessMsg opens a business account.
type signupBusinessMsg struct{}

// toggleSaveMsg bookmarks or un-bookmarks a deal. The root model enforces
// the logged-out guard.
type toggleSaveMsg struct {
	id v1.ID
}

type setUserTypeMsg struct {
	t v1.UserType
}

// openBusinessSignupMsg and openPartnerSignupMsg are the CTA paths that land
// on an auth page with the signup sub-tab preferred.
type openBusinessSignupMsg struct{}
type openPartnerSignupMsg struct{}

// startPaymentMsg kicks off the mock payment flow.
type startPaymentMsg struct{}

// consentLoadedMsg carries the persisted cookie-consent choice read at
// startup.
type consentLoadedMsg struct {
	choice v1.CookieConsent
	err    error
}

// consentPromptMsg fires after the prompt delay. gen must match the model's
// current consent generation or the message is stale and dropped.
type consentPromptMsg struct {
	gen int
}

// paymentDoneMsg fires after the mock payment redirect delay. Same
// generation discipline as consentPromptMsg: leaving the billing flow bumps
// the generation so a late redirect cannot fire against stale state.
type paymentDoneMsg struct {
	gen int
}

// statusMsg surfaces an ephemeral notice in the status bar.
type statusMsg struct {
	text string
}

// statusMessageTimeoutMsg clears the status bar message.
type statusMessageTimeoutMsg struct {
	gen int
}

// repaintMsg is a periodic nudge so fsnotify-driven listing edits show up
// without user input.
type repaintMsg struct{}

// contentFoundMsg carries extra markdown page paths discovered under the
// configured content directory.
type contentFoundMsg struct {
	paths []string
}
