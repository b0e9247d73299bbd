// Package store is the composition root for all cross-page state. The UI
// model owns exactly one Store and every mutation flows through the methods
// below; page views get read access and narrow callbacks, never the raw
// fields. That discipline is the architecture, not an accident.
package store

import (
	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/saved"
	"github.com/preferreddeals/prefdeals/pkg/session"
	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

type Store struct {
	router  *nav.Router
	session *session.Session
	deals   *saved.Registry
}

func New(auth session.Authenticator) *Store {
	return &Store{
		router:  nav.NewRouter(),
		session: session.New(auth),
		deals:   saved.NewRegistry(),
	}
}

func (s *Store) Router() *nav.Router {
	return s.router
}

func (s *Store) Session() *session.Session {
	return s.session
}

func (s *Store) SavedDeals() *saved.Registry {
	return s.deals
}

// Navigate applies a navigation intent.
func (s *Store) Navigate(in nav.Intent) {
	s.router.Apply(in)
}

// LoginUser authenticates and, on success, lands the user on the directory.
func (s *Store) LoginUser(email, name string) error {
	if err := s.session.LoginUser(email, name); err != nil {
		return err
	}
	s.router.Apply(nav.To(nav.PageDirectory))
	return nil
}

// LogoutUser clears the account, empties the saved-deals registry and lands
// on the directory. Saved deals never outlive the login that created them.
func (s *Store) LogoutUser() {
	s.session.LogoutUser()
	s.deals.Clear()
	s.router.Apply(nav.To(nav.PageDirectory))
}

// SignupBusiness opens a business account and lands on its dashboard.
func (s *Store) SignupBusiness() v1.ID {
	id := s.session.SignupBusiness()
	s.router.Apply(nav.To(nav.PageDashboard))
	return id
}

// ToggleSave bookmarks or un-bookmarks a deal. The registry itself has no
// auth knowledge, so the guard lives here: toggling while logged out mutates
// nothing and redirects to the login page instead. Returns whether the
// registry was touched.
func (s *Store) ToggleSave(id v1.ID) bool {
	if !s.session.UserLoggedIn {
		s.router.Apply(nav.To(nav.PageLogin))
		return false
	}
	s.deals.Toggle(id)
	return true
}

func (s *Store) SetUserType(t v1.UserType) {
	s.session.SetUserType(t)
}
