// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func csrfHandler(secure bool) http.Handler {
	return NewCSRF(secure)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

// tokenFor issues a GET against the handler and returns the CSRF cookie
// it produced.
func tokenFor(t *testing.T, handler http.Handler) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	for _, c := range rr.Result().Cookies() {
		if c.Name == CSRFCookieName {
			return c
		}
	}
	t.Fatal("CSRF cookie not set")
	return nil
}

func TestNewCSRFSecureFlag(t *testing.T) {
	for _, secure := range []bool{true, false} {
		handler := csrfHandler(secure)
		cookie := tokenFor(t, handler)

		if cookie.Secure != secure {
			t.Errorf("secure=%v: cookie Secure flag is %v", secure, cookie.Secure)
		}
		if cookie.SameSite != http.SameSiteStrictMode {
			t.Errorf("cookie SameSite: got %v, want StrictMode", cookie.SameSite)
		}
		if cookie.Value == "" {
			t.Error("cookie value should not be empty")
		}
	}
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	handler := csrfHandler(false)
	cookie := tokenFor(t, handler)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("POST without token: got %d, want 403", rr.Code)
	}
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	handler := csrfHandler(false)
	cookie := tokenFor(t, handler)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	req.AddCookie(cookie)
	req.Header.Set(CSRFHeaderName, cookie.Value)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("POST with header token: got %d, want 200", rr.Code)
	}
}

func TestCSRFAcceptsFormFieldToken(t *testing.T) {
	handler := csrfHandler(false)
	cookie := tokenFor(t, handler)

	req := httptest.NewRequest(http.MethodPost, "/admin/pages?"+CSRFFormField+"="+cookie.Value, nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("POST with form field token: got %d, want 200", rr.Code)
	}
}

func TestCSRFTokenFromCtx(t *testing.T) {
	t.Run("token lands in the context", func(t *testing.T) {
		var ctxToken string
		handler := NewCSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxToken = CSRFTokenFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

		if ctxToken == "" {
			t.Fatal("expected a token in the context")
		}

		var cookieToken string
		for _, c := range rr.Result().Cookies() {
			if c.Name == CSRFCookieName {
				cookieToken = c.Value
			}
		}
		if ctxToken != cookieToken {
			t.Errorf("context token %q != cookie token %q", ctxToken, cookieToken)
		}
	})

	t.Run("empty without the middleware", func(t *testing.T) {
		ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
		if token := CSRFTokenFromCtx(ctx); token != "" {
			t.Errorf("expected empty string, got %q", token)
		}
	})

	t.Run("existing cookie is reused", func(t *testing.T) {
		var ctxToken string
		handler := NewCSRF(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxToken = CSRFTokenFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: "token-from-earlier-visit"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if ctxToken != "token-from-earlier-visit" {
			t.Errorf("context token %q, want the existing cookie value", ctxToken)
		}
	})
}

func TestCSRFSafeMethodsPassThrough(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			handler := csrfHandler(false)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(method, "/admin/dashboard", nil))

			if rr.Code != http.StatusOK {
				t.Errorf("%s: got %d, want 200", method, rr.Code)
			}
		})
	}
}

func TestCSRFUnsafeMethodsRequireToken(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			handler := csrfHandler(false)
			cookie := tokenFor(t, handler)

			req := httptest.NewRequest(method, "/admin/pages/home", nil)
			req.AddCookie(cookie)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusForbidden {
				t.Errorf("%s without token: got %d, want 403", method, rr.Code)
			}
		})
	}
}
