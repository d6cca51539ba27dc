package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentEmailBeforeLoginFails(t *testing.T) {
	s := New()
	_, err := s.CurrentEmail()
	require.ErrorIs(t, err, ErrNoCurrentUser)
	assert.False(t, s.LoggedIn())
}

func TestLoginSetsIdentity(t *testing.T) {
	s := New()
	s.Login("a@b.com")

	email, err := s.CurrentEmail()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
	assert.Equal(t, "user1", s.UserID())
	assert.True(t, s.LoggedIn())
}

func TestLogoutClearsIdentity(t *testing.T) {
	s := New()
	s.Login("a@b.com")
	s.Logout()

	_, err := s.CurrentEmail()
	require.ErrorIs(t, err, ErrNoCurrentUser)
	assert.Empty(t, s.UserID())
}

func TestLoginReplacesPreviousIdentity(t *testing.T) {
	s := New()
	s.Login("first@example.com")
	s.Login("second@example.com")

	email, err := s.CurrentEmail()
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", email)
}
