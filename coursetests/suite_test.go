package coursetests

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code679/course-builder/framework"
)

func TestRegisterEndToEnd(t *testing.T) {
	appURL := newTestApp(t)
	b := newBrowser(t, appURL)
	b.Session().Login("alice@example.com")

	resp, err := b.Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode, "root must redirect a new student")

	require.NoError(t, Register(b, "Alice"))

	resp, err = ViewMyProfile(b)
	require.NoError(t, err)
	assert.Contains(t, resp.Body, "Alice")
	assert.Contains(t, resp.Body, "alice@example.com")
}

func TestLoggedOutPermissionSweep(t *testing.T) {
	appURL := newTestApp(t)
	b := newBrowser(t, appURL)

	require.NoError(t, AssertLoggedOut(b))
}

func TestEnrolledPermissionSweep(t *testing.T) {
	appURL := newTestApp(t)
	b := newBrowser(t, appURL)
	b.Session().Login("enrolled@example.com")
	require.NoError(t, Register(b, "Eve"))

	require.NoError(t, AssertEnrolled(b))
}

func TestUnenrolledPermissionSweep(t *testing.T) {
	appURL := newTestApp(t)
	b := newBrowser(t, appURL)
	b.Session().Login("unenrolled@example.com")
	require.NoError(t, Register(b, "Uma"))
	require.NoError(t, Unregister(b))

	require.NoError(t, AssertUnenrolled(b))
}

func TestChangeNameUpdatesProfile(t *testing.T) {
	appURL := newTestApp(t)
	b := newBrowser(t, appURL)
	b.Session().Login("rename@example.com")
	require.NoError(t, Register(b, "Dana"))

	require.NoError(t, ChangeName(b, "Danielle"))
}

func TestVisitorsFailWithoutLogin(t *testing.T) {
	appURL := newTestApp(t)
	b := newBrowser(t, appURL)

	for _, p := range []Page{PageCourse, PageMyProfile, PageForum} {
		_, err := Visit(b, p)
		assert.Error(t, err, "%s should not be served to an anonymous visitor", p)
	}
}

func TestFullSuitePassesAgainstStubApp(t *testing.T) {
	appURL := newTestApp(t)

	results := RunTestSuite(appURL, nil, nil)
	if !results.OK() {
		for _, f := range results.Failures {
			for _, err := range f.Errors {
				t.Errorf("[%s] %s", f.TestID, err)
			}
		}
	}
}

func TestSuiteFilterSkipsTests(t *testing.T) {
	appURL := newTestApp(t)

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("permissions"))

	results := RunTestSuite(appURL, filters.AsFilter, nil)
	assert.True(t, results.OK())

	ranPermissions := false
	for _, r := range results.Tests {
		id := r.TestID.String()
		if id == "" || id == "permissions" {
			continue
		}
		assert.True(t, strings.HasPrefix(id, "permissions/"), "unexpected test ran: %s", id)
		ranPermissions = true
	}
	assert.True(t, ranPermissions, "the permissions tests should have run")
}
