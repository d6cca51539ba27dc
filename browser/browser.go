// Package browser implements the HTTP side of the harness: a minimal
// scripted browser that issues requests against the application under test,
// canonicalizes relative links the same way the application's templates
// expect, and carries the simulated identity on every request.
package browser

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/code679/course-builder/framework"
	"github.com/code679/course-builder/session"
)

// The application's pages emit relative links resolved by a <base> tag. The
// original templates never quote the href consistently, hence the loose match.
var baseTagPattern = regexp.MustCompile(`<base href=['"]?([^'" >]+)`)

// Browser issues requests against one application, for one simulated user.
// It remembers the body of the most recent response so that relative URLs can
// be resolved against its <base> tag. Redirects are never followed
// automatically, because several flows assert on the redirect itself.
//
// A Browser is not safe for concurrent use.
type Browser struct {
	baseURL  string
	client   *http.Client
	sess     *session.Session
	logger   framework.Logger
	lastBody string
}

// New creates a Browser for the application at appBaseURL. If sess is nil a
// fresh logged-out session is created.
func New(appBaseURL string, sess *session.Session, logger framework.Logger) *Browser {
	if sess == nil {
		sess = session.New()
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Browser{
		baseURL: strings.TrimRight(appBaseURL, "/"),
		sess:    sess,
		logger:  logger,
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Session returns the simulated identity attached to this browser.
func (b *Browser) Session() *session.Session {
	return b.sess
}

// Canonicalize creates an absolute path from href: a path already rooted at
// "/" is returned unchanged, anything else is prefixed with the value of the
// <base> tag found in the most recent response body, or "/" if none was seen.
func (b *Browser) Canonicalize(href string) string {
	if strings.HasPrefix(href, "/") {
		return href
	}
	base := "/"
	if m := baseTagPattern.FindStringSubmatch(b.lastBody); m != nil {
		base = m[1]
	}
	return base + href
}

// Get fetches a page. The URL may be relative; see Canonicalize.
func (b *Browser) Get(target string) (*Response, error) {
	path := b.Canonicalize(target)
	b.logger.Printf("HTTP get: %s", path)
	req, err := http.NewRequest(http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return b.do(req)
}

// Post sends a form-encoded POST. The URL may be relative; see Canonicalize.
func (b *Browser) Post(target string, params url.Values) (*Response, error) {
	path := b.Canonicalize(target)
	b.logger.Printf("HTTP post: %s", path)
	req, err := http.NewRequest(http.MethodPost, b.baseURL+path, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// Click follows the first link in resp whose text contains name.
func (b *Browser) Click(resp *Response, name string) (*Response, error) {
	b.logger.Printf("link click: %s", name)
	href, err := resp.ClickTarget(name)
	if err != nil {
		return nil, err
	}
	return b.Get(href)
}

// Submit submits a form previously obtained from a Response, with whatever
// field values have been set on it.
func (b *Browser) Submit(form *Form) (*Response, error) {
	b.logger.Printf("form submit: %s", form.Action)
	if strings.EqualFold(form.Method, http.MethodGet) {
		target := form.Action
		if query := form.Values().Encode(); query != "" {
			target += "?" + query
		}
		return b.Get(target)
	}
	return b.Post(form.Action, form.Values())
}

func (b *Browser) do(req *http.Request) (*Response, error) {
	if email, err := b.sess.CurrentEmail(); err == nil {
		req.Header.Set("X-User-Email", email)
		req.Header.Set("X-User-Id", b.sess.UserID())
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	r := &Response{
		browser:    b,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(data),
		url:        req.URL,
	}
	b.lastBody = r.Body
	return r, nil
}

// WaitForService polls the application root until it responds to HTTP at all
// (any status code counts, since the root redirects for anonymous visitors).
// This gives an externally launched application time to start listening.
func WaitForService(appBaseURL string, timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Connecting to application at %s", appBaseURL)
	deadline := time.Now().Add(timeout)
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	var lastErr error
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.Get(strings.TrimRight(appBaseURL, "/") + "/")
		if err == nil {
			resp.Body.Close()
			fmt.Fprintln(output)
			return nil
		}
		lastErr = err
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("application did not respond within %s: %w", timeout, lastErr)
		}
		time.Sleep(time.Millisecond * 20)
	}
}
