// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"brightsite/internal/session"
)

// contextKey keeps our context values from colliding with other packages.
type contextKey string

// SessionKey is where LoadSession stores the *session.Data.
const SessionKey contextKey = "session"

// LoadSession resolves the session cookie against Valkey and attaches
// the result to the request context. It never blocks a request; the
// gates below enforce authentication. A Valkey failure degrades to
// an unauthenticated request.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if data, err := store.Get(r.Context(), r); err == nil && data != nil {
				r = r.WithContext(context.WithValue(r.Context(), SessionKey, data))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// redirectUnless gates a handler on a session predicate, bouncing
// failing requests to target.
func redirectUnless(next http.Handler, ok func(*session.Data) bool, target string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ok(SessionFromCtx(r.Context())) {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth sends anonymous requests to the login page. Apply after
// LoadSession.
func RequireAuth(next http.Handler) http.Handler {
	return redirectUnless(next,
		func(s *session.Data) bool { return s != nil },
		"/admin/login")
}

// Require2FA sends half-authenticated sessions to 2FA setup. A nil
// session passes through here; RequireAuth runs earlier in the chain.
func Require2FA(next http.Handler) http.Handler {
	return redirectUnless(next,
		func(s *session.Data) bool { return s == nil || s.TwoFADone },
		"/admin/2fa/setup")
}

// RequireAdmin returns 403 for any role other than admin. Editors get
// the denial rather than a redirect so the failure is visible.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromCtx(r.Context())
		if sess == nil || sess.Role != "admin" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromCtx returns the session attached by LoadSession, or nil
// for anonymous requests.
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}
