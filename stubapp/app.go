// Package stubapp is a minimal in-process rendition of the Course Builder
// web application, serving just enough of each page for the functional-test
// harness to exercise its page visitors and permission matrix against. It is
// used by the harness's own tests and by the binary's -selftest mode.
//
// Course content comes from a store namespace seeded by the fixtures package.
// Student records (registration name, enrollment state) live in memory and
// last for the lifetime of the App.
package stubapp

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/code679/course-builder/store"
)

// Header names carrying the simulated identity, in place of the cookie the
// real development appserver would use.
const (
	UserEmailHeader = "X-User-Email"
	UserIDHeader    = "X-User-Id"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

type student struct {
	Name       string
	Enrolled   bool
	EnrolledOn time.Time
}

// App is one instance of the stub application.
type App struct {
	ns     *store.Namespace
	logger *slog.Logger
	router chi.Router

	mu       sync.Mutex
	students map[string]*student
}

// New creates an App reading course content from the given namespace.
func New(ns *store.Namespace, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		ns:       ns,
		logger:   logger,
		students: make(map[string]*student),
	}
	a.router = a.setupRouter()
	return a
}

// Handler returns the HTTP handler for the application.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.identityMiddleware)
	r.Use(a.loggingMiddleware)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", UserEmailHeader, UserIDHeader},
		MaxAge:         300,
	})
	r.Use(corsHandler.Handler)

	r.Get("/", a.handleRoot)
	r.Get("/preview", a.handlePreview)
	r.Get("/register", a.handleRegisterForm)
	r.Post("/register", a.handleRegisterSubmit)
	r.Get("/course", a.handleCourse)
	r.Get("/unit", a.handleUnit)
	r.Get("/activity", a.handleActivity)
	r.Get("/announcements", a.handleAnnouncements)
	r.Get("/forum", a.handleForum)
	r.Get("/assessment", a.handleAssessment)
	r.Get("/student/home", a.handleStudentHome)
	r.Post("/student/editstudent", a.handleEditStudent)
	r.Get("/student/unenroll", a.handleUnenrollConfirm)
	r.Post("/student/unenroll", a.handleUnenrollSubmit)

	return r
}

// identityMiddleware extracts the simulated identity from request headers.
func (a *App) identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(UserEmailHeader)
		ctx := context.WithValue(r.Context(), userEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *App) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			a.logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func currentEmail(r *http.Request) string {
	email, _ := r.Context().Value(userEmailKey).(string)
	return email
}

func (a *App) studentFor(email string) *student {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.students[email]
}

func (a *App) enroll(email, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.students[email] = &student{Name: name, Enrolled: true, EnrolledOn: time.Now()}
}

func (a *App) rename(email, name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s := a.students[email]; s != nil {
		s.Name = name
	}
}

func (a *App) unenroll(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s := a.students[email]; s != nil {
		s.Enrolled = false
	}
}

func (a *App) isEnrolled(email string) bool {
	s := a.studentFor(email)
	return s != nil && s.Enrolled
}

// requireUser redirects anonymous visitors away, returning false if the
// request has been handled.
func (a *App) requireUser(w http.ResponseWriter, r *http.Request) bool {
	if currentEmail(r) == "" {
		http.Redirect(w, r, "/preview", http.StatusFound)
		return false
	}
	return true
}

// requireEnrolled redirects anonymous visitors to the preview page and
// unenrolled students to registration, returning false if the request has
// been handled.
func (a *App) requireEnrolled(w http.ResponseWriter, r *http.Request) bool {
	if !a.requireUser(w, r) {
		return false
	}
	if !a.isEnrolled(currentEmail(r)) {
		http.Redirect(w, r, "/register", http.StatusFound)
		return false
	}
	return true
}
