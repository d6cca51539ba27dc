package coursetests

import (
	"fmt"
	"net/http"

	"github.com/code679/course-builder/browser"
)

// Page is an enumerated tag for every application page the permission matrix
// talks about. Pages are identified by tag rather than by visitor function so
// that the allowed/denied sets are plain values that can be compared and
// subtracted.
type Page int

const (
	PageRegistration Page = iota
	PagePreview
	PageCourse
	PageUnit
	PageActivity
	PageAnnouncements
	PageMyProfile
	PageForum
	PageAssessments
)

var pageNames = map[Page]string{
	PageRegistration:  "registration",
	PagePreview:       "preview",
	PageCourse:        "course",
	PageUnit:          "unit",
	PageActivity:      "activity",
	PageAnnouncements: "announcements",
	PageMyProfile:     "my profile",
	PageForum:         "forum",
	PageAssessments:   "assessments",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return fmt.Sprintf("page(%d)", int(p))
}

// Visitor fetches one application page and verifies its expected content,
// returning the response for further chaining.
type Visitor func(*browser.Browser) (*browser.Response, error)

var visitors = map[Page]Visitor{
	PageRegistration:  ViewRegistration,
	PagePreview:       ViewPreview,
	PageCourse:        ViewCourse,
	PageUnit:          ViewUnit,
	PageActivity:      ViewActivity,
	PageAnnouncements: ViewAnnouncements,
	PageMyProfile:     ViewMyProfile,
	PageForum:         ViewForum,
	PageAssessments:   ViewAssessments,
}

// Visit runs the visitor registered for the given page.
func Visit(b *browser.Browser, p Page) (*browser.Response, error) {
	visitor, ok := visitors[p]
	if !ok {
		return nil, fmt.Errorf("no visitor registered for %s", p)
	}
	return visitor(b)
}

// assertPersonalized verifies that the page shows the simulated user's email,
// proving it was rendered for the authenticated user and not from some
// anonymous cache.
func assertPersonalized(b *browser.Browser, resp *browser.Response) error {
	email, err := b.Session().CurrentEmail()
	if err != nil {
		return err
	}
	return AssertContains(email, resp.Body)
}

// ViewRegistration fetches the student registration form.
func ViewRegistration(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("register")
	if err != nil {
		return nil, err
	}
	if err := AssertContains("What is your name?", resp.Body); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewPreview fetches the public course preview page. This page is never
// personalized.
func ViewPreview(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("preview")
	if err != nil {
		return nil, err
	}
	if err := AssertContains(" the stakes are high.", resp.Body); err != nil {
		return nil, err
	}
	if err := AssertContains(
		`<li><p class="top_content">Pre-course assessment</p></li>`, resp.Body); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewCourse fetches the main course page.
func ViewCourse(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("course")
	if err != nil {
		return nil, err
	}
	if err := AssertContains(" the stakes are high.", resp.Body); err != nil {
		return nil, err
	}
	if err := AssertContains(
		`<a href="assessment?name=Pre">Pre-course assessment</a>`, resp.Body); err != nil {
		return nil, err
	}
	if err := assertPersonalized(b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewUnit fetches the first lesson of unit 1.
func ViewUnit(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("unit?unit=1&lesson=1")
	if err != nil {
		return nil, err
	}
	if err := AssertContains("Unit 1 - Introduction", resp.Body); err != nil {
		return nil, err
	}
	if err := assertPersonalized(b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewActivity fetches the activity for unit 1, lesson 2.
func ViewActivity(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("activity?unit=1&lesson=2")
	if err != nil {
		return nil, err
	}
	if err := AssertContains(
		`<script src="assets/js/activity-1.2.js"></script>`, resp.Body); err != nil {
		return nil, err
	}
	if err := assertPersonalized(b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewAnnouncements fetches the announcements page.
func ViewAnnouncements(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("announcements")
	if err != nil {
		return nil, err
	}
	if err := AssertContains("Example Announcement", resp.Body); err != nil {
		return nil, err
	}
	if err := assertPersonalized(b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewMyProfile fetches the student profile page.
func ViewMyProfile(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("student/home")
	if err != nil {
		return nil, err
	}
	if err := AssertContains("Date enrolled", resp.Body); err != nil {
		return nil, err
	}
	if err := assertPersonalized(b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewForum fetches the course forum page.
func ViewForum(b *browser.Browser) (*browser.Response, error) {
	resp, err := b.Get("forum")
	if err != nil {
		return nil, err
	}
	if err := AssertContains(
		`document.getElementById("forum_embed").src =`, resp.Body); err != nil {
		return nil, err
	}
	if err := assertPersonalized(b, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewAssessments fetches all three assessments in order, returning the last
// response.
func ViewAssessments(b *browser.Browser) (*browser.Response, error) {
	var resp *browser.Response
	for _, name := range []string{"Pre", "Mid", "Fin"} {
		var err error
		resp, err = b.Get("assessment?name=" + name)
		if err != nil {
			return nil, err
		}
		if err := AssertContains(
			fmt.Sprintf("assets/js/assessment-%s.js", name), resp.Body); err != nil {
			return nil, err
		}
		if err := AssertEquals(http.StatusOK, resp.StatusCode); err != nil {
			return nil, err
		}
		if err := assertPersonalized(b, resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
