// Package session holds the process-lifetime login state. Nothing here is
// persisted; a restart logs everyone out.
package session

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

var ErrLoginRejected = fmt.Errorf("login rejected")

// Account is what an authenticator vouches for.
type Account struct {
	Email string
	Name  string
}

// Authenticator is the seam where a real identity provider would plug in.
// Implementations must be able to fail; the session never assumes success.
type Authenticator interface {
	Authenticate(email, name string) (Account, error)
}

// MockAuthenticator accepts any well-formed email and non-empty name. It
// stands in for the absent backend and must not ship against real accounts.
type MockAuthenticator struct{}

func (MockAuthenticator) Authenticate(email, name string) (Account, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if !strings.Contains(email, "@") {
		return Account{}, fmt.Errorf("%w: %q is not an email address", ErrLoginRejected, email)
	}
	if name == "" {
		return Account{}, fmt.Errorf("%w: name is required", ErrLoginRejected)
	}
	return Account{Email: email, Name: name}, nil
}

// Session is the cross-page account state. A business login and a user login
// can coexist; the user-type tag only changes which affordances render.
type Session struct {
	auth Authenticator

	BusinessLoggedIn bool
	BusinessID       v1.ID
	UserLoggedIn     bool
	UserName         string
	UserEmail        string
	Type             v1.UserType
}

func New(auth Authenticator) *Session {
	return &Session{auth: auth, Type: v1.UserTypeUser}
}

// LoginUser authenticates and, on success, records the account.
func (s *Session) LoginUser(email, name string) error {
	acct, err := s.auth.Authenticate(email, name)
	if err != nil {
		return err
	}
	s.UserLoggedIn = true
	s.UserEmail = acct.Email
	s.UserName = acct.Name
	return nil
}

// LogoutUser clears the user account fields. The caller is responsible for
// clearing the saved-deals registry alongside (see store.LogoutUser).
func (s *Session) LogoutUser() {
	s.UserLoggedIn = false
	s.UserName = ""
	s.UserEmail = ""
}

// SignupBusiness records a business login under a fresh collision-resistant
// id and returns it.
func (s *Session) SignupBusiness() v1.ID {
	id := v1.ID(uuid.NewString())
	s.BusinessLoggedIn = true
	s.BusinessID = id
	return id
}

func (s *Session) LogoutBusiness() {
	s.BusinessLoggedIn = false
	s.BusinessID = ""
}

// SetUserType is a demo affordance for switching between role views without
// real role data.
func (s *Session) SetUserType(t v1.UserType) {
	s.Type = t
}
