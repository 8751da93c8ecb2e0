// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"brightsite/internal/models"
)

// Validation limits for admin form fields.
const (
	maxLabelLen    = 100
	maxHrefLen     = 300
	maxAuthorLen   = 100
	maxRoleLen     = 100
	maxQuoteLen    = 2_000
	maxDocumentLen = 200_000
	maxPayloadLen  = 50_000
	maxBgColorLen  = 32
)

// validateNavItem checks navigation form inputs and returns the first
// error found.
func validateNavItem(label, href string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "Label is required."
	}
	if utf8.RuneCountInString(label) > maxLabelLen {
		return "Label is too long (max 100 characters)."
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return "Link is required."
	}
	if utf8.RuneCountInString(href) > maxHrefLen {
		return "Link is too long (max 300 characters)."
	}
	if !strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		return "Link must be a path or an absolute http(s) URL."
	}
	return ""
}

// validateTestimonial checks testimonial form inputs.
func validateTestimonial(author, quote string, rating int) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return "Author is required."
	}
	if utf8.RuneCountInString(author) > maxAuthorLen {
		return "Author is too long (max 100 characters)."
	}
	quote = strings.TrimSpace(quote)
	if quote == "" {
		return "Quote is required."
	}
	if utf8.RuneCountInString(quote) > maxQuoteLen {
		return "Quote is too long (max 2,000 characters)."
	}
	if rating < 0 || rating > 5 {
		return "Rating must be between 0 and 5."
	}
	return ""
}

// validateDocument checks a raw page content document before it is
// persisted.
func validateDocument(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Document is required."
	}
	if len(raw) > maxDocumentLen {
		return "Document is too long (max 200,000 characters)."
	}
	if !json.Valid([]byte(raw)) {
		return "Document is not valid JSON."
	}
	return ""
}

// validateSection checks section form inputs, including that the type is
// a known discriminator.
func validateSection(sectionType, payload, backgroundColor string) string {
	known := false
	for _, t := range models.SectionTypes {
		if string(t) == sectionType {
			known = true
			break
		}
	}
	if !known {
		return "Unknown section type."
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		payload = "{}"
	}
	if len(payload) > maxPayloadLen {
		return "Payload is too long (max 50,000 characters)."
	}
	if !json.Valid([]byte(payload)) {
		return "Payload is not valid JSON."
	}
	if utf8.RuneCountInString(backgroundColor) > maxBgColorLen {
		return "Background color is too long."
	}
	return ""
}
