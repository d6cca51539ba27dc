// Package session simulates the ambient authenticated identity that the
// Course Builder application normally gets from the App Engine users service.
//
// The original test suite kept the identity in process-wide environment
// variables; here it is an explicit object owned by one Browser, so two
// harness instances in the same process cannot clobber each other. A Session
// still holds at most one identity at a time and is not safe for concurrent
// use.
package session

import "errors"

// ErrNoCurrentUser is returned by CurrentEmail when no identity is set.
var ErrNoCurrentUser = errors.New("no current user")

// simulatedUserID is the opaque user id assigned to every simulated login.
// The application only cares that it is stable and non-empty.
const simulatedUserID = "user1"

// Session holds the simulated identity for one browser.
type Session struct {
	email  string
	userID string
}

// New returns a logged-out session.
func New() *Session {
	return &Session{}
}

// Login sets the simulated identity to the given email address.
func (s *Session) Login(email string) {
	s.email = email
	s.userID = simulatedUserID
}

// Logout clears the simulated identity.
func (s *Session) Logout() {
	s.email = ""
	s.userID = ""
}

// LoggedIn reports whether an identity is currently set.
func (s *Session) LoggedIn() bool {
	return s.email != ""
}

// CurrentEmail returns the email of the simulated identity, or
// ErrNoCurrentUser if nobody is logged in. It never returns an empty string
// with a nil error.
func (s *Session) CurrentEmail() (string, error) {
	if s.email == "" {
		return "", ErrNoCurrentUser
	}
	return s.email, nil
}

// UserID returns the opaque id of the simulated identity, or "" if nobody is
// logged in.
func (s *Session) UserID() string {
	return s.userID
}
