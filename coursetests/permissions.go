package coursetests

import "github.com/code679/course-builder/browser"

// The permission matrix: which pages each kind of user may and may not see.
// Three kinds of user exist: anonymous visitors, enrolled students, and
// signed-in students who are not (or no longer) enrolled.

// LoggedOutAllowedPages returns the pages an anonymous visitor can see.
func LoggedOutAllowedPages() []Page {
	return []Page{PagePreview}
}

// LoggedOutDeniedPages returns the pages an anonymous visitor can't see.
func LoggedOutDeniedPages() []Page {
	return []Page{
		PageAnnouncements, PageForum, PageCourse, PageAssessments,
		PageUnit, PageActivity, PageMyProfile, PageRegistration,
	}
}

// EnrolledStudentAllowedPages returns the pages a signed-in, enrolled student
// can see.
func EnrolledStudentAllowedPages() []Page {
	return []Page{
		PageAnnouncements, PageForum, PageCourse, PageAssessments,
		PageUnit, PageActivity, PageMyProfile,
	}
}

// EnrolledStudentDeniedPages returns the pages a signed-in, enrolled student
// can't see.
func EnrolledStudentDeniedPages() []Page {
	return []Page{PageRegistration, PagePreview}
}

// UnenrolledStudentAllowedPages returns the pages a signed-in, unenrolled
// student can see.
func UnenrolledStudentAllowedPages() []Page {
	return []Page{PageRegistration, PagePreview}
}

// UnenrolledStudentDeniedPages returns the pages a signed-in, unenrolled
// student can't see. The set is computed, never declared: it is exactly the
// enrolled-student allowed set minus the unenrolled-student allowed set, so
// it stays consistent when either of those lists changes.
func UnenrolledStudentDeniedPages() []Page {
	allowed := make(map[Page]bool)
	for _, p := range UnenrolledStudentAllowedPages() {
		allowed[p] = true
	}
	var denied []Page
	for _, p := range EnrolledStudentAllowedPages() {
		if !allowed[p] {
			denied = append(denied, p)
		}
	}
	return denied
}

// AssertLoggedOut checks that exactly the pages for an anonymous visitor are
// visible.
func AssertLoggedOut(b *browser.Browser) error {
	if err := AssertNoneFail(b, LoggedOutAllowedPages()); err != nil {
		return err
	}
	return AssertAllFail(b, LoggedOutDeniedPages())
}

// AssertEnrolled checks that exactly the pages for an enrolled student are
// visible.
func AssertEnrolled(b *browser.Browser) error {
	if err := AssertNoneFail(b, EnrolledStudentAllowedPages()); err != nil {
		return err
	}
	return AssertAllFail(b, EnrolledStudentDeniedPages())
}

// AssertUnenrolled checks that exactly the pages for an unenrolled student
// are visible.
func AssertUnenrolled(b *browser.Browser) error {
	if err := AssertNoneFail(b, UnenrolledStudentAllowedPages()); err != nil {
		return err
	}
	return AssertAllFail(b, UnenrolledStudentDeniedPages())
}
