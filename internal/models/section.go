// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SectionType discriminates the payload shape of a dynamic section.
type SectionType string

const (
	SectionText         SectionType = "text"
	SectionImageText    SectionType = "image-text"
	SectionFeatures     SectionType = "features"
	SectionStats        SectionType = "stats"
	SectionVideo        SectionType = "video"
	SectionTestimonials SectionType = "testimonials"
)

// SectionTypes lists every known discriminator, in the order the admin
// section picker offers them.
var SectionTypes = []SectionType{
	SectionText, SectionImageText, SectionFeatures,
	SectionStats, SectionVideo, SectionTestimonials,
}

// Section is an admin-authored content block rendered in sequence on a
// page, after the page's fixed structural blocks. The payload is kept
// raw; the renderer decodes it per type, so unknown or legacy types
// survive round trips without loss.
type Section struct {
	ID              uuid.UUID       `json:"id"`
	PageID          string          `json:"page_id"`
	Type            SectionType     `json:"type"`
	Position        int             `json:"position"`
	Payload         json.RawMessage `json:"payload"`
	BackgroundColor string          `json:"backgroundColor,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TextPayload is the payload of a "text" section. Content is trusted,
// admin-authored markup.
type TextPayload struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// ImageTextPayload pairs copy with an image; ImagePosition ("left" or
// "right") controls visual order.
type ImageTextPayload struct {
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Image         string `json:"image"`
	ImagePosition string `json:"imagePosition,omitempty"`
}

// FeaturesPayload is a heading over icon cards. An empty list renders
// the heading with no cards.
type FeaturesPayload struct {
	Title    string     `json:"title,omitempty"`
	Features []CardItem `json:"features"`
}

// StatsPayload is a heading over number/label pairs, rendered in a
// fixed-column grid regardless of count.
type StatsPayload struct {
	Title string `json:"title,omitempty"`
	Stats []Stat `json:"stats"`
}

// VideoPayload is a heading over embedded videos. VideoLayout selects
// container CSS only (single, grid-2, grid-3, horizontal, vertical);
// URLs are not validated here, playback is a browser concern.
type VideoPayload struct {
	Title       string  `json:"title,omitempty"`
	Videos      []Video `json:"videos"`
	VideoLayout string  `json:"videoLayout,omitempty"`
}

// Video is one embedded video entry.
type Video struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url"`
}

// TestimonialsPayload carries only a heading; testimonial entries are
// fetched from their own store at render time.
type TestimonialsPayload struct {
	Title string `json:"title,omitempty"`
}
