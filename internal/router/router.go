// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// Brightsite platform. It organizes routes into public and admin groups
// with appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"brightsite/internal/handlers"
	"brightsite/internal/middleware"
	"brightsite/internal/session"
	"brightsite/web"
)

// publicPages are the marketing pages every site serves. Each gets its
// own route so the composition engine never sees an unknown page id
// from the public side.
var publicPages = map[string]string{
	"/":         "home",
	"/about":    "about",
	"/services": "services",
	"/why":      "why",
	"/website":  "website",
	"/contact":  "contact",
	"/join":     "join",
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. secureCookies should be true when the site
// is served over TLS.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check: no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Embedded static assets (site CSS, admin CSS, vendored JS).
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Generated theme stylesheet, versioned by the style namespace.
	r.Get("/assets/theme.css", public.ThemeCSS)

	// Public marketing pages.
	for path, pageID := range publicPages {
		r.Get(path, public.PageHandler(pageID))
	}

	// Visitor form submissions get a rate limit so a scripted client
	// cannot flood the inbox or the notification mailer.
	formLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(formLimiter.Middleware)
		r.Post("/contact", public.SubmitContact)
		r.Post("/join", public.SubmitMembership)
	})

	// Admin routes: CSRF protection over everything, auth per group.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secureCookies))

		// Auth pages, accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA: requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Dashboard
			r.Get("/", admin.Dashboard)
			r.Get("/dashboard", admin.Dashboard)

			// Appearance pickers
			r.Route("/appearance", func(r chi.Router) {
				r.Get("/", admin.Appearance)
				r.Post("/color-theme", admin.SelectColorTheme)
				r.Post("/design-template", admin.SelectDesignTemplate)
				r.Post("/website-template", admin.SelectWebsiteTemplate)
			})

			// Page documents and sections
			r.Route("/pages", func(r chi.Router) {
				r.Get("/", admin.PagesList)
				r.Get("/{pageID}", admin.PageEdit)
				r.Post("/{pageID}/content", admin.PageContentSave)
				r.Post("/{pageID}/sections", admin.SectionCreate)
				r.Post("/{pageID}/sections/{sectionID}", admin.SectionUpdate)
				r.Post("/{pageID}/sections/{sectionID}/move", admin.SectionMove)
				r.Post("/{pageID}/sections/{sectionID}/delete", admin.SectionDelete)
			})

			// Navigation
			r.Route("/navigation", func(r chi.Router) {
				r.Get("/", admin.Navigation)
				r.Post("/", admin.NavCreate)
				r.Post("/{navID}", admin.NavUpdate)
				r.Post("/{navID}/delete", admin.NavDelete)
			})

			// Testimonials
			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", admin.Testimonials)
				r.Post("/", admin.TestimonialCreate)
				r.Post("/{testimonialID}", admin.TestimonialUpdate)
				r.Post("/{testimonialID}/delete", admin.TestimonialDelete)
			})

			// Form submissions inbox
			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", admin.Submissions)
				r.Post("/{submissionID}/read", admin.SubmissionMarkRead)
				r.Post("/{submissionID}/delete", admin.SubmissionDelete)
			})

			// Media library
			r.Route("/media", func(r chi.Router) {
				r.Get("/", admin.MediaLibrary)
				r.Post("/", admin.MediaUpload)
				r.Post("/{mediaID}/delete", admin.MediaDelete)
			})

			// Settings, admin role only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/settings", admin.Settings)
				r.Post("/settings", admin.SettingsSave)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
