package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preferreddeals/prefdeals/pkg/nav"
	"github.com/preferreddeals/prefdeals/pkg/session"
)

func newStore() *Store {
	return New(session.MockAuthenticator{})
}

func TestLoginLandsOnDirectory(t *testing.T) {
	s := newStore()
	require.NoError(t, s.LoginUser("a@b.com", "A"))
	assert.Equal(t, nav.PageDirectory, s.Router().Current())
	assert.True(t, s.Session().UserLoggedIn)
}

func TestFailedLoginDoesNotNavigate(t *testing.T) {
	s := newStore()
	s.Navigate(nav.To(nav.PageLogin))

	err := s.LoginUser("nope", "A")
	require.Error(t, err)
	assert.Equal(t, nav.PageLogin, s.Router().Current())
	assert.False(t, s.Session().UserLoggedIn)
}

func TestLogoutAlwaysEmptiesSavedDeals(t *testing.T) {
	s := newStore()
	require.NoError(t, s.LoginUser("a@b.com", "A"))
	s.ToggleSave("biz-1")
	s.ToggleSave("biz-2")
	require.Equal(t, 2, s.SavedDeals().Len())

	s.LogoutUser()
	assert.Zero(t, s.SavedDeals().Len())
	assert.Equal(t, nav.PageDirectory, s.Router().Current())

	// Also from empty.
	s.LogoutUser()
	assert.Zero(t, s.SavedDeals().Len())
}

func TestToggleSaveGuardRedirectsWhenLoggedOut(t *testing.T) {
	s := newStore()
	s.Navigate(nav.To(nav.PageDirectory))

	ok := s.ToggleSave("biz-1")
	assert.False(t, ok)
	assert.False(t, s.SavedDeals().Contains("biz-1"))
	assert.Equal(t, nav.PageLogin, s.Router().Current())
}

func TestSaveLifecycleScenario(t *testing.T) {
	s := newStore()

	// Logged out: the guard rejects the toggle and yields a login redirect.
	require.False(t, s.ToggleSave("biz-1"))
	require.Equal(t, nav.PageLogin, s.Router().Current())
	require.False(t, s.SavedDeals().Contains("biz-1"))

	require.NoError(t, s.LoginUser("a@b.com", "A"))
	require.True(t, s.ToggleSave("biz-1"))
	assert.True(t, s.SavedDeals().Contains("biz-1"))

	s.LogoutUser()
	assert.False(t, s.SavedDeals().Contains("biz-1"))
}

func TestSignupBusinessLandsOnDashboard(t *testing.T) {
	s := newStore()
	id := s.SignupBusiness()
	assert.NotEmpty(t, id)
	assert.Equal(t, nav.PageDashboard, s.Router().Current())
	assert.Equal(t, id, s.Session().BusinessID)
}
