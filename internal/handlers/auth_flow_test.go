// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"

	"brightsite/internal/models"
	"brightsite/internal/session"
)

// seededAdmin returns the seeded admin account, skipping the test when the
// database has not been seeded.
func seededAdmin(t *testing.T, env *testEnv) *models.User {
	t.Helper()
	user, err := env.UserStore.FindByEmail("admin@brightsite.local")
	if err != nil || user == nil {
		t.Skip("seeded admin user not present, run migrations and seed first")
	}
	return user
}

// authPost builds a form POST request with the given session attached.
func authPost(path string, form url.Values, sess *session.Data) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if sess != nil {
		req = req.WithContext(ctxWithSession(req.Context(), sess))
	}
	return req
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != location {
		t.Errorf("Location = %q, want %q", loc, location)
	}
}

func TestLoginPage(t *testing.T) {
	env := newTestEnv(t)

	t.Run("anonymous sees the form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		rec := httptest.NewRecorder()

		env.Auth.LoginPage(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Errorf("Content-Type = %q", ct)
		}
	})

	t.Run("authenticated skips to dashboard", func(t *testing.T) {
		sess := testSession(uuid.New(), "admin@brightsite.local", "admin", true)
		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		env.Auth.LoginPage(rec, req)

		wantRedirect(t, rec, "/admin/dashboard")
	})

	t.Run("half-authenticated still sees the form", func(t *testing.T) {
		sess := testSession(uuid.New(), "admin@brightsite.local", "admin", false)
		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		env.Auth.LoginPage(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200 for a session without 2FA", rec.Code)
		}
	})
}

func TestLoginSubmitValidCredentials(t *testing.T) {
	env := newTestEnv(t)
	user := seededAdmin(t, env)

	// Clear TOTP so the redirect target is deterministic.
	if err := env.UserStore.ResetTOTP(user.ID); err != nil {
		t.Fatalf("reset totp: %v", err)
	}

	form := url.Values{"email": {"admin@brightsite.local"}, "password": {"admin"}}
	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, authPost("/admin/login", form, nil))

	wantRedirect(t, rec, "/admin/2fa/setup")

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Error("no session cookie set after login")
	}
}

func TestLoginSubmitEnrolledGoesToVerify(t *testing.T) {
	env := newTestEnv(t)
	user := seededAdmin(t, env)

	if err := env.UserStore.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("set totp secret: %v", err)
	}
	if err := env.UserStore.EnableTOTP(user.ID); err != nil {
		t.Fatalf("enable totp: %v", err)
	}
	t.Cleanup(func() { env.UserStore.ResetTOTP(user.ID) })

	form := url.Values{"email": {"admin@brightsite.local"}, "password": {"admin"}}
	rec := httptest.NewRecorder()
	env.Auth.LoginSubmit(rec, authPost("/admin/login", form, nil))

	wantRedirect(t, rec, "/admin/2fa/verify")
}

func TestLoginSubmitBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	seededAdmin(t, env)

	cases := map[string]url.Values{
		"wrong password": {"email": {"admin@brightsite.local"}, "password": {"definitely-not-it"}},
		"unknown email":  {"email": {"nobody-here@example.com"}, "password": {"irrelevant"}},
	}

	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.Auth.LoginSubmit(rec, authPost("/admin/login", form, nil))

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200 (re-rendered login)", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Invalid email or password") {
				t.Error("missing error message in body")
			}
		})
	}
}

func TestTwoFASetupPage(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no session redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/2fa/setup", nil)
		rec := httptest.NewRecorder()

		env.Auth.TwoFASetupPage(rec, req)

		wantRedirect(t, rec, "/admin/login")
	})

	t.Run("unenrolled user gets a QR code", func(t *testing.T) {
		user := seededAdmin(t, env)
		if err := env.UserStore.ResetTOTP(user.ID); err != nil {
			t.Fatalf("reset totp: %v", err)
		}

		sess := testSession(user.ID, user.Email, string(user.Role), false)
		req := httptest.NewRequest(http.MethodGet, "/admin/2fa/setup", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		env.Auth.TwoFASetupPage(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "data:image/png;base64,") && !strings.Contains(body, "QRCode") {
			t.Error("setup page has no QR code image")
		}
	})

	t.Run("enrolled user is sent to verify", func(t *testing.T) {
		user := seededAdmin(t, env)
		if err := env.UserStore.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
			t.Fatalf("set totp secret: %v", err)
		}
		if err := env.UserStore.EnableTOTP(user.ID); err != nil {
			t.Fatalf("enable totp: %v", err)
		}
		t.Cleanup(func() { env.UserStore.ResetTOTP(user.ID) })

		sess := testSession(user.ID, user.Email, string(user.Role), false)
		req := httptest.NewRequest(http.MethodGet, "/admin/2fa/setup", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		env.Auth.TwoFASetupPage(rec, req)

		wantRedirect(t, rec, "/admin/2fa/verify")
	})
}

func TestTwoFAVerifyPage(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no session redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/2fa/verify", nil)
		rec := httptest.NewRecorder()

		env.Auth.TwoFAVerifyPage(rec, req)

		wantRedirect(t, rec, "/admin/login")
	})

	t.Run("renders for a half-authenticated session", func(t *testing.T) {
		sess := testSession(uuid.New(), "admin@brightsite.local", "admin", false)
		req := httptest.NewRequest(http.MethodGet, "/admin/2fa/verify", nil)
		req = req.WithContext(ctxWithSession(req.Context(), sess))
		rec := httptest.NewRecorder()

		env.Auth.TwoFAVerifyPage(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestTwoFAVerifySubmit(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no session redirects to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.Auth.TwoFAVerifySubmit(rec, authPost("/admin/2fa/verify", url.Values{"code": {"123456"}}, nil))

		wantRedirect(t, rec, "/admin/login")
	})

	t.Run("wrong code re-renders the form", func(t *testing.T) {
		user := seededAdmin(t, env)
		if err := env.UserStore.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
			t.Fatalf("set totp secret: %v", err)
		}
		if err := env.UserStore.EnableTOTP(user.ID); err != nil {
			t.Fatalf("enable totp: %v", err)
		}
		t.Cleanup(func() { env.UserStore.ResetTOTP(user.ID) })

		sess := testSession(user.ID, user.Email, string(user.Role), false)
		rec := httptest.NewRecorder()
		env.Auth.TwoFAVerifySubmit(rec, authPost("/admin/2fa/verify", url.Values{"code": {"000000"}}, sess))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200 (re-rendered form)", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid code") {
			t.Error("missing error message in body")
		}
	})

	t.Run("missing secret redirects to setup", func(t *testing.T) {
		user := seededAdmin(t, env)
		if err := env.UserStore.ResetTOTP(user.ID); err != nil {
			t.Fatalf("reset totp: %v", err)
		}

		sess := testSession(user.ID, user.Email, string(user.Role), false)
		rec := httptest.NewRecorder()
		env.Auth.TwoFAVerifySubmit(rec, authPost("/admin/2fa/verify", url.Values{"code": {"123456"}}, sess))

		wantRedirect(t, rec, "/admin/2fa/setup")
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	t.Run("destroys the session", func(t *testing.T) {
		user := seededAdmin(t, env)

		createRec := httptest.NewRecorder()
		sessID, err := env.Sessions.Create(context.Background(), createRec, &session.Data{
			UserID:    user.ID,
			Email:     user.Email,
			Role:      string(user.Role),
			TwoFADone: true,
		})
		if err != nil {
			t.Fatalf("create session: %v", err)
		}
		if sessID == "" {
			t.Fatal("empty session ID")
		}

		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		for _, c := range createRec.Result().Cookies() {
			req.AddCookie(c)
		}
		sess := testSession(user.ID, user.Email, string(user.Role), true)
		req = req.WithContext(ctxWithSession(req.Context(), sess))

		rec := httptest.NewRecorder()
		env.Auth.Logout(rec, req)

		wantRedirect(t, rec, "/admin/login")

		for _, c := range rec.Result().Cookies() {
			if c.Name == session.CookieName && c.MaxAge >= 0 {
				t.Errorf("session cookie not cleared, MaxAge = %d", c.MaxAge)
			}
		}
	})

	t.Run("no cookie still redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
		rec := httptest.NewRecorder()

		env.Auth.Logout(rec, req)

		wantRedirect(t, rec, "/admin/login")
	})
}
