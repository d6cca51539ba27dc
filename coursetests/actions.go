package coursetests

import (
	"net/http"

	"github.com/code679/course-builder/browser"
)

// Register signs the current simulated user up as a student with the given
// name: the root page must redirect (the user has no student record yet), the
// registration form is filled in and submitted, and the resulting profile is
// verified.
func Register(b *browser.Browser, name string) error {
	resp, err := b.Get("/")
	if err != nil {
		return err
	}
	if err := AssertEquals(http.StatusFound, resp.StatusCode); err != nil {
		return err
	}

	resp, err = ViewRegistration(b)
	if err != nil {
		return err
	}
	form, err := resp.Form()
	if err != nil {
		return err
	}
	form.Set("form01", name)
	resp, err = b.Submit(form)
	if err != nil {
		return err
	}
	if err := AssertContains("Thank you for registering for", resp.Body); err != nil {
		return err
	}
	return CheckProfile(b, name)
}

// CheckProfile verifies that the profile page shows the given name and the
// current simulated email.
func CheckProfile(b *browser.Browser, name string) error {
	resp, err := ViewMyProfile(b)
	if err != nil {
		return err
	}
	if err := AssertContains("Email", resp.Body); err != nil {
		return err
	}
	if err := AssertContains(name, resp.Body); err != nil {
		return err
	}
	email, err := b.Session().CurrentEmail()
	if err != nil {
		return err
	}
	return AssertContains(email, resp.Body)
}

// ChangeName updates the student's name through the profile page form.
func ChangeName(b *browser.Browser, newName string) error {
	resp, err := b.Get("student/home")
	if err != nil {
		return err
	}
	form, err := resp.Form()
	if err != nil {
		return err
	}
	form.Set("name", newName)
	resp, err = b.Submit(form)
	if err != nil {
		return err
	}
	if err := AssertEquals(http.StatusFound, resp.StatusCode); err != nil {
		return err
	}
	return CheckProfile(b, newName)
}

// Unregister unenrolls the current student through the profile page's
// unenroll link and confirmation form.
func Unregister(b *browser.Browser) error {
	resp, err := b.Get("student/home")
	if err != nil {
		return err
	}
	resp, err = b.Click(resp, "Unenroll")
	if err != nil {
		return err
	}
	if err := AssertContains("to unenroll from", resp.Body); err != nil {
		return err
	}
	form, err := resp.Form()
	if err != nil {
		return err
	}
	_, err = b.Submit(form)
	return err
}
