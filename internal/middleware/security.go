// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// Headers set on every response. The admin panel renders user-supplied
// content, so the browser-side protections matter there in particular.
var secureHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "SAMEORIGIN",
	// The legacy XSS auditor does more harm than good; "0" turns it off.
	"X-XSS-Protection":   "0",
	"Referrer-Policy":    "strict-origin-when-cross-origin",
	"Permissions-Policy": "interest-cohort=()",
}

// SecureHeaders applies the baseline security headers to every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range secureHeaders {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}
