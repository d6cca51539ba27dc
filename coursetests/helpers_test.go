package coursetests

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/code679/course-builder/browser"
	"github.com/code679/course-builder/fixtures"
	"github.com/code679/course-builder/session"
	"github.com/code679/course-builder/store"
	"github.com/code679/course-builder/stubapp"
)

// newTestApp starts a stub application seeded from the shipped fixtures and
// returns its base URL.
func newTestApp(t *testing.T) string {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ns := s.Namespace("test-" + uuid.NewString())
	require.NoError(t, fixtures.Load(ns, filepath.Join("..", "fixtures", "data")))

	app := stubapp.New(ns, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server := httptest.NewServer(app.Handler())
	t.Cleanup(server.Close)
	return server.URL
}

// newBrowser returns a logged-out browser pointed at the given application.
func newBrowser(t *testing.T, appURL string) *browser.Browser {
	t.Helper()
	return browser.New(appURL, session.New(), nil)
}
