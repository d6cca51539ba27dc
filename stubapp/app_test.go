package stubapp

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code679/course-builder/fixtures"
	"github.com/code679/course-builder/store"
)

type testClient struct {
	t       *testing.T
	baseURL string
	client  *http.Client
	email   string
}

func newTestApp(t *testing.T) *testClient {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ns := s.Namespace("test-" + uuid.NewString())
	require.NoError(t, fixtures.Load(ns, filepath.Join("..", "fixtures", "data")))

	app := New(ns, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server := httptest.NewServer(app.Handler())
	t.Cleanup(server.Close)

	return &testClient{
		t:       t,
		baseURL: server.URL,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *testClient) do(method, path string, form url.Values) (*http.Response, string) {
	c.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, c.baseURL+path, body)
	require.NoError(c.t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if c.email != "" {
		req.Header.Set(UserEmailHeader, c.email)
		req.Header.Set(UserIDHeader, "user1")
	}
	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(data)
}

func (c *testClient) get(path string) (*http.Response, string) {
	return c.do(http.MethodGet, path, nil)
}

func (c *testClient) register(name string) {
	c.t.Helper()
	resp, body := c.do(http.MethodPost, "/register", url.Values{"form01": []string{name}})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	require.Contains(c.t, body, "Thank you for registering for")
}

func TestAnonymousVisitorIsRedirected(t *testing.T) {
	c := newTestApp(t)

	resp, _ := c.get("/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/preview", resp.Header.Get("Location"))

	for _, path := range []string{"/course", "/announcements", "/forum",
		"/student/home", "/assessment?name=Pre", "/unit?unit=1&lesson=1"} {
		resp, _ := c.get(path)
		assert.Equal(t, http.StatusFound, resp.StatusCode, "path %s", path)
		assert.Equal(t, "/preview", resp.Header.Get("Location"), "path %s", path)
	}
}

func TestPreviewIsPublic(t *testing.T) {
	c := newTestApp(t)

	resp, body := c.get("/preview")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, " the stakes are high.")
	assert.Contains(t, body, `<li><p class="top_content">Pre-course assessment</p></li>`)
	assert.NotContains(t, body, "user-info", "preview page is not personalized")
}

func TestSignedInUnregisteredUserIsSentToRegister(t *testing.T) {
	c := newTestApp(t)
	c.email = "new@example.com"

	resp, _ := c.get("/")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))

	resp, _ = c.get("/course")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))

	resp, body := c.get("/register")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "What is your name?")
}

func TestRegistrationEnrollsTheStudent(t *testing.T) {
	c := newTestApp(t)
	c.email = "zoe@example.com"
	c.register("Zoe")

	resp, body := c.get("/course")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "zoe@example.com")
	assert.Contains(t, body, `<a href="assessment?name=Pre">Pre-course assessment</a>`)

	// enrolled students get the course, not the preview or the form
	resp, _ = c.get("/preview")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/course", resp.Header.Get("Location"))
	resp, _ = c.get("/register")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestUnitAndActivityPages(t *testing.T) {
	c := newTestApp(t)
	c.email = "uma@example.com"
	c.register("Uma")

	resp, body := c.get("/unit?unit=1&lesson=1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Unit 1 - Introduction")
	assert.Contains(t, body, "uma@example.com")

	resp, body = c.get("/activity?unit=1&lesson=2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<script src="assets/js/activity-1.2.js"></script>`)

	resp, _ = c.get("/unit?unit=9&lesson=1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// lesson 1.1 has no activity
	resp, _ = c.get("/activity?unit=1&lesson=1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAssessmentPages(t *testing.T) {
	c := newTestApp(t)
	c.email = "al@example.com"
	c.register("Al")

	for _, name := range []string{"Pre", "Mid", "Fin"} {
		resp, body := c.get("/assessment?name=" + name)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "assets/js/assessment-"+name+".js")
	}

	resp, _ := c.get("/assessment?name=Bogus")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfileAndRename(t *testing.T) {
	c := newTestApp(t)
	c.email = "dana@example.com"
	c.register("Dana")

	resp, body := c.get("/student/home")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Date enrolled")
	assert.Contains(t, body, "Dana")
	assert.Contains(t, body, "dana@example.com")

	resp, _ = c.do(http.MethodPost, "/student/editstudent",
		url.Values{"name": []string{"Danielle"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	_, body = c.get("/student/home")
	assert.Contains(t, body, "Danielle")
}

func TestUnenroll(t *testing.T) {
	c := newTestApp(t)
	c.email = "hugh@example.com"
	c.register("Hugh")

	resp, body := c.get("/student/unenroll")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "to unenroll from")

	resp, _ = c.do(http.MethodPost, "/student/unenroll",
		url.Values{"confirm": []string{"yes"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	// back to unenrolled behavior
	resp, _ = c.get("/course")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/register", resp.Header.Get("Location"))
}
