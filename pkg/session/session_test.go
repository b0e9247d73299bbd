package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/preferreddeals/prefdeals/pkg/types/v1"
)

func TestLoginUser(t *testing.T) {
	s := New(MockAuthenticator{})
	require.False(t, s.UserLoggedIn)

	err := s.LoginUser("a@b.com", "A")
	require.NoError(t, err)
	assert.True(t, s.UserLoggedIn)
	assert.Equal(t, "a@b.com", s.UserEmail)
	assert.Equal(t, "A", s.UserName)
}

func TestLoginUserRejected(t *testing.T) {
	s := New(MockAuthenticator{})

	for _, tc := range []struct{ email, name string }{
		{"not-an-email", "A"},
		{"", "A"},
		{"a@b.com", ""},
		{"a@b.com", "   "},
	} {
		err := s.LoginUser(tc.email, tc.name)
		assert.ErrorIs(t, err, ErrLoginRejected, "email=%q name=%q", tc.email, tc.name)
		assert.False(t, s.UserLoggedIn)
		assert.Empty(t, s.UserEmail)
	}
}

func TestLogoutUserClearsAccountFields(t *testing.T) {
	s := New(MockAuthenticator{})
	require.NoError(t, s.LoginUser("a@b.com", "A"))

	s.LogoutUser()
	assert.False(t, s.UserLoggedIn)
	assert.Empty(t, s.UserName)
	assert.Empty(t, s.UserEmail)
}

func TestSignupBusiness(t *testing.T) {
	s := New(MockAuthenticator{})
	id := s.SignupBusiness()
	require.NotEmpty(t, id)
	assert.True(t, s.BusinessLoggedIn)
	assert.Equal(t, id, s.BusinessID)

	// Ids are not reused across signups.
	s.LogoutBusiness()
	assert.NotEqual(t, id, s.SignupBusiness())
}

func TestSetUserType(t *testing.T) {
	s := New(MockAuthenticator{})
	assert.Equal(t, v1.UserTypeUser, s.Type)
	s.SetUserType(v1.UserTypeDistribution)
	assert.Equal(t, v1.UserTypeDistribution, s.Type)
}
