package coursetests

import (
	"github.com/code679/course-builder/browser"
	"github.com/code679/course-builder/framework"
	"github.com/code679/course-builder/session"
)

type environment struct {
	appURL string
}

// T represents a test or subtest in the Course Builder functional suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with per-test debug
// logging provided by the lower-level framework package. To make test
// assertions, you can use the testify assert and require packages, passing
// the *T as if it were a *testing.T.
//
// Every T instance owns a fresh Browser with its own logged-out session, so
// subtests never inherit another test's identity.
type T struct {
	context *framework.Context
	env     *environment
	browser *browser.Browser
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{
		context: context,
		env:     env,
		browser: browser.New(env.appURL, session.New(), context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest, like testing.T.Run. The specified function receives a
// new T with its own browser and session.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs debug output for the test; the console reporter shows it for
// failed tests.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Browser returns this test's browser.
func (t *T) Browser() *browser.Browser {
	return t.browser
}

// Login simulates signing in with the given email.
func (t *T) Login(email string) {
	t.browser.Session().Login(email)
}

// Logout clears the simulated identity.
func (t *T) Logout() {
	t.browser.Session().Logout()
}
