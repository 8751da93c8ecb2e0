// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration and the
// health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestPublicPageRoutes(t *testing.T) {
	// Every marketing page the engine composes must have a route, and
	// the root must resolve to the home page.
	want := map[string]string{
		"/":         "home",
		"/about":    "about",
		"/services": "services",
		"/why":      "why",
		"/website":  "website",
		"/contact":  "contact",
		"/join":     "join",
	}

	if len(publicPages) != len(want) {
		t.Fatalf("publicPages has %d entries, want %d", len(publicPages), len(want))
	}
	for path, pageID := range want {
		if got := publicPages[path]; got != pageID {
			t.Errorf("publicPages[%q]: got %q, want %q", path, got, pageID)
		}
	}
}
