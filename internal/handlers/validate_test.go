// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"testing"
)

func TestValidateNavItem(t *testing.T) {
	tests := []struct {
		name      string
		label     string
		href      string
		wantError bool
	}{
		{"valid path", "Services", "/services", false},
		{"valid absolute", "Blog", "https://example.com/blog", false},
		{"empty label", "", "/services", true},
		{"whitespace label", "   ", "/services", true},
		{"label too long", strings.Repeat("a", 101), "/services", true},
		{"empty href", "Services", "", true},
		{"relative href", "Services", "services", true},
		{"javascript href", "Services", "javascript:alert(1)", true},
		{"href too long", "Services", "/" + strings.Repeat("a", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateNavItem(tt.label, tt.href)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateTestimonial(t *testing.T) {
	tests := []struct {
		name      string
		author    string
		quote     string
		rating    int
		wantError bool
	}{
		{"valid", "Alex", "Great gym, friendly coaches.", 5, false},
		{"unrated ok", "Alex", "Great gym.", 0, false},
		{"empty author", "", "Great gym.", 5, true},
		{"whitespace author", "  ", "Great gym.", 5, true},
		{"author too long", strings.Repeat("a", 101), "Great gym.", 5, true},
		{"empty quote", "Alex", "", 5, true},
		{"quote too long", "Alex", strings.Repeat("a", 2001), 5, true},
		{"rating too high", "Alex", "Great gym.", 6, true},
		{"rating negative", "Alex", "Great gym.", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateTestimonial(tt.author, tt.quote, tt.rating)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantError bool
	}{
		{"valid object", `{"hero": {"title": "Hi"}}`, false},
		{"empty object", `{}`, false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"truncated json", `{"hero":`, true},
		{"too long", `{"x": "` + strings.Repeat("a", maxDocumentLen) + `"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateDocument(tt.raw)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateSection(t *testing.T) {
	tests := []struct {
		name        string
		sectionType string
		payload     string
		background  string
		wantError   bool
	}{
		{"valid text", "text", `{"title": "About"}`, "", false},
		{"valid stats", "stats", `{"items": []}`, "#ffffff", false},
		{"empty payload defaults", "text", "", "", false},
		{"unknown type", "carousel", `{}`, "", true},
		{"bad payload json", "text", `{"title":`, "", true},
		{"background too long", "text", `{}`, strings.Repeat("a", 33), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateSection(tt.sectionType, tt.payload, tt.background)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}
