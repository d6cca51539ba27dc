package coursetests

import (
	"fmt"
	"strings"

	"github.com/code679/course-builder/browser"
)

// AssertEquals returns an equality-mismatch error unless expected == actual.
func AssertEquals(expected, actual interface{}) error {
	if expected != actual {
		return fmt.Errorf("expected '%v', does not match actual '%v'", expected, actual)
	}
	return nil
}

// AssertContains returns a containment-mismatch error unless needle appears
// in haystack.
func AssertContains(needle, haystack string) error {
	if !strings.Contains(haystack, needle) {
		return fmt.Errorf("can't find '%s' in '%s'", needle, haystack)
	}
	return nil
}

// MustFailError reports that a page which was expected to be inaccessible was
// served successfully. It is a distinct type so that callers of AssertAllFail
// can always tell "the visitor correctly failed" (any other error, swallowed)
// apart from "the must-fail check itself failed" (this error, propagated).
type MustFailError struct {
	Page Page
}

func (e *MustFailError) Error() string {
	return fmt.Sprintf("expected to fail: %s", e.Page)
}

// AssertNoneFail visits every page and returns the first visitor error, if
// any. A visitor error here means an allowed page was not served correctly.
func AssertNoneFail(b *browser.Browser, pages []Page) error {
	for _, p := range pages {
		if _, err := Visit(b, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// AssertAllFail visits every page and expects each visitor to fail. A visitor
// that succeeds produces a *MustFailError naming the page.
//
// Any visitor error at all counts as the expected denial, including a failed
// content assertion inside the visitor itself. That matches the original
// suite's behavior, at the cost of conflating a broken visitor with a
// correctly denied page.
func AssertAllFail(b *browser.Browser, pages []Page) error {
	for _, p := range pages {
		if _, err := Visit(b, p); err == nil {
			return &MustFailError{Page: p}
		}
	}
	return nil
}
