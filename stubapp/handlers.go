package stubapp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/code679/course-builder/fixtures"
)

const courseTitle = "Power Searching with Google"

// courseBlurb appears on the preview and course pages.
const courseBlurb = "With so much at your fingertips, the stakes are high." +
	" Learn to find what you need, faster."

// page writes a minimal HTML page. Every page carries the <base> tag the
// browser's canonicalizer looks for; pages served to a signed-in user also
// show that user's email, which is what the harness uses to prove a page is
// personalized.
func (a *App) page(w http.ResponseWriter, email, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var sb strings.Builder
	sb.WriteString("<html><head><base href='/'><title>")
	sb.WriteString(courseTitle)
	sb.WriteString("</title></head><body>\n")
	sb.WriteString(body)
	if email != "" {
		fmt.Fprintf(&sb, "\n<div class='user-info'>%s | <a href='student/home'>My profile</a></div>", email)
	}
	sb.WriteString("\n</body></html>")
	fmt.Fprint(w, sb.String())
}

func (a *App) units() ([]fixtures.Unit, error) {
	var units []fixtures.Unit
	err := a.ns.Scan(fixtures.KindUnit, func(key string, data []byte) error {
		var u fixtures.Unit
		if err := json.Unmarshal(data, &u); err != nil {
			return err
		}
		units = append(units, u)
		return nil
	})
	return units, err
}

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	email := currentEmail(r)
	switch {
	case email == "":
		http.Redirect(w, r, "/preview", http.StatusFound)
	case a.isEnrolled(email):
		http.Redirect(w, r, "/course", http.StatusFound)
	default:
		http.Redirect(w, r, "/register", http.StatusFound)
	}
}

func (a *App) handlePreview(w http.ResponseWriter, r *http.Request) {
	// Enrolled students are sent straight to the course; the preview is for
	// everyone else.
	if email := currentEmail(r); email != "" && a.isEnrolled(email) {
		http.Redirect(w, r, "/course", http.StatusFound)
		return
	}
	units, err := a.units()
	if err != nil {
		a.serverError(w, err)
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h1>%s</h1>\n<p>%s</p>\n<ul>\n", courseTitle, courseBlurb)
	for _, u := range units {
		fmt.Fprintf(&sb, "<li><p class=\"top_content\">%s</p></li>\n", u.Title)
	}
	sb.WriteString("</ul>\n<p><a href='register'>Register</a></p>")
	a.page(w, "", sb.String())
}

func (a *App) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if !a.requireUser(w, r) {
		return
	}
	if a.isEnrolled(currentEmail(r)) {
		http.Redirect(w, r, "/course", http.StatusFound)
		return
	}
	body := fmt.Sprintf(
		"<h1>%s</h1>\n<p>What is your name?</p>\n"+
			"<form action='register' method='post'>"+
			"<input name='form01' value=''>"+
			"<button type='submit'>Register</button></form>",
		courseTitle)
	a.page(w, "", body)
}

func (a *App) handleRegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if !a.requireUser(w, r) {
		return
	}
	email := currentEmail(r)
	name := r.FormValue("form01")
	a.enroll(email, name)
	body := fmt.Sprintf("<p>Thank you for registering for %s, %s.</p>\n"+
		"<p><a href='course'>Go to the course</a></p>", courseTitle, name)
	a.page(w, email, body)
}

func (a *App) handleCourse(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	units, err := a.units()
	if err != nil {
		a.serverError(w, err)
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "<h1>%s</h1>\n<p>%s</p>\n<ul>\n", courseTitle, courseBlurb)
	for _, u := range units {
		switch u.Type {
		case "A":
			fmt.Fprintf(&sb, "<li><a href=\"assessment?name=%s\">%s</a></li>\n", u.UnitID, u.Title)
		case "U":
			fmt.Fprintf(&sb, "<li><a href=\"unit?unit=%s&lesson=1\">Unit %s - %s</a></li>\n",
				u.UnitID, u.UnitID, u.Title)
		default:
			fmt.Fprintf(&sb, "<li>%s</li>\n", u.Title)
		}
	}
	sb.WriteString("</ul>")
	a.page(w, currentEmail(r), sb.String())
}

func (a *App) handleUnit(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	unitID := r.URL.Query().Get("unit")
	lessonID := r.URL.Query().Get("lesson")

	var unit fixtures.Unit
	if err := a.ns.Get(fixtures.KindUnit, "U:"+unitID, &unit); err != nil {
		http.NotFound(w, r)
		return
	}
	var lesson fixtures.Lesson
	if err := a.ns.Get(fixtures.KindLesson, unitID+":"+lessonID, &lesson); err != nil {
		http.NotFound(w, r)
		return
	}

	body := fmt.Sprintf("<h1>Unit %s - %s</h1>\n<h2>Lesson %d: %s</h2>\n<p>%s</p>",
		unit.UnitID, unit.Title, lesson.ID, lesson.Title, lesson.Objectives)
	a.page(w, currentEmail(r), body)
}

func (a *App) handleActivity(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	unitID := r.URL.Query().Get("unit")
	lessonID := r.URL.Query().Get("lesson")

	var lesson fixtures.Lesson
	if err := a.ns.Get(fixtures.KindLesson, unitID+":"+lessonID, &lesson); err != nil || !lesson.Activity {
		http.NotFound(w, r)
		return
	}

	body := fmt.Sprintf("<h1>Activity: %s</h1>\n"+
		"<script src=\"assets/js/activity-%s.%s.js\"></script>",
		lesson.Title, unitID, lessonID)
	a.page(w, currentEmail(r), body)
}

func (a *App) handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	body := "<h1>Announcements</h1>\n" +
		"<h2>Example Announcement</h2>\n" +
		"<p>Welcome to the course. Watch this space for schedule changes.</p>"
	a.page(w, currentEmail(r), body)
}

func (a *App) handleForum(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	body := "<h1>Forum</h1>\n<iframe id='forum_embed'></iframe>\n" +
		"<script>document.getElementById(\"forum_embed\").src =\n" +
		"  'https://groups.google.com/forum/embed/?place=forum/" +
		"power-searching-course';</script>"
	a.page(w, currentEmail(r), body)
}

func (a *App) handleAssessment(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	name := r.URL.Query().Get("name")
	var unit fixtures.Unit
	if err := a.ns.Get(fixtures.KindUnit, "A:"+name, &unit); err != nil {
		http.NotFound(w, r)
		return
	}
	body := fmt.Sprintf("<h1>%s</h1>\n"+
		"<script src=\"assets/js/assessment-%s.js\"></script>", unit.Title, name)
	a.page(w, currentEmail(r), body)
}

func (a *App) handleStudentHome(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	email := currentEmail(r)
	s := a.studentFor(email)
	body := fmt.Sprintf(
		"<h1>My profile</h1>\n"+
			"<p>Email: %s</p>\n"+
			"<p>Name: %s</p>\n"+
			"<p>Date enrolled: %s</p>\n"+
			"<form action='student/editstudent' method='post'>"+
			"<input name='name' value='%s'>"+
			"<button type='submit'>Change name</button></form>\n"+
			"<p><a href='student/unenroll'>Unenroll</a></p>",
		email, s.Name, s.EnrolledOn.Format("January 2, 2006"), s.Name)
	a.page(w, email, body)
}

func (a *App) handleEditStudent(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	a.rename(currentEmail(r), r.FormValue("name"))
	http.Redirect(w, r, "/student/home", http.StatusFound)
}

func (a *App) handleUnenrollConfirm(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	body := fmt.Sprintf(
		"<p>Are you sure you want to unenroll from %s?</p>\n"+
			"<form action='student/unenroll' method='post'>"+
			"<input type='hidden' name='confirm' value='yes'>"+
			"<button type='submit'>Unenroll</button></form>", courseTitle)
	a.page(w, currentEmail(r), body)
}

func (a *App) handleUnenrollSubmit(w http.ResponseWriter, r *http.Request) {
	if !a.requireEnrolled(w, r) {
		return
	}
	a.unenroll(currentEmail(r))
	http.Redirect(w, r, "/preview", http.StatusFound)
}

func (a *App) serverError(w http.ResponseWriter, err error) {
	a.logger.Error("internal error", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
