// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// NavItem is one entry in the public navigation bar, ordered by Position.
type NavItem struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Href      string    `json:"href"`
	Position  int       `json:"position"`
	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Testimonial is a customer quote shown by testimonial sections. The
// section payload carries only a heading; entries live here.
type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"` // 1-5, 0 = unrated
	Published bool      `json:"published"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
