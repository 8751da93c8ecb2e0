// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package sections renders dynamic, typed content sections. Rendering
// is a pure function of the section's type discriminator and payload:
// identical input produces identical output, and an unknown type
// renders nothing rather than failing, so pages built before a new
// section type shipped keep rendering after schema changes.
package sections

import (
	"bytes"
	"encoding/json"
	"html/template"

	"brightsite/internal/markdown"
	"brightsite/internal/models"
)

// Render dispatches on the section's type and returns the rendered
// block. The second return is false when nothing should be rendered:
// unknown type, or a payload that does not decode. Testimonial entries
// are passed in by the caller since the payload carries only a heading.
func Render(sec models.Section, testimonials []models.Testimonial) (template.HTML, bool) {
	switch sec.Type {
	case models.SectionText:
		return renderText(sec)
	case models.SectionImageText:
		return renderImageText(sec)
	case models.SectionFeatures:
		return renderFeatures(sec)
	case models.SectionStats:
		return renderStats(sec)
	case models.SectionVideo:
		return renderVideo(sec)
	case models.SectionTestimonials:
		return renderTestimonials(sec, testimonials)
	default:
		// Unknown discriminators are skipped silently: section schemas
		// evolve and stored pages must outlive old builds.
		return "", false
	}
}

// RenderAll renders a page's sections in stored order, skipping any
// that produce no output.
func RenderAll(secs []models.Section, testimonials []models.Testimonial) []template.HTML {
	var out []template.HTML
	for _, sec := range secs {
		if html, ok := Render(sec, testimonials); ok {
			out = append(out, html)
		}
	}
	return out
}

func renderText(sec models.Section) (template.HTML, bool) {
	var p models.TextPayload
	if err := json.Unmarshal(sec.Payload, &p); err != nil {
		return "", false
	}
	return execute("text", map[string]any{
		"Section": sec,
		"Title":   p.Title,
		"Content": richText(p.Content),
	})
}

func renderImageText(sec models.Section) (template.HTML, bool) {
	var p models.ImageTextPayload
	if err := json.Unmarshal(sec.Payload, &p); err != nil {
		return "", false
	}
	pos := p.ImagePosition
	if pos != "left" {
		pos = "right"
	}
	return execute("image-text", map[string]any{
		"Section":  sec,
		"Title":    p.Title,
		"Content":  richText(p.Content),
		"Image":    p.Image,
		"Position": pos,
	})
}

func renderFeatures(sec models.Section) (template.HTML, bool) {
	var p models.FeaturesPayload
	if err := json.Unmarshal(sec.Payload, &p); err != nil {
		return "", false
	}
	// An empty list still renders the heading over an empty grid.
	return execute("features", map[string]any{
		"Section":  sec,
		"Title":    p.Title,
		"Features": p.Features,
	})
}

func renderStats(sec models.Section) (template.HTML, bool) {
	var p models.StatsPayload
	if err := json.Unmarshal(sec.Payload, &p); err != nil {
		return "", false
	}
	return execute("stats", map[string]any{
		"Section": sec,
		"Title":   p.Title,
		"Stats":   p.Stats,
	})
}

func renderVideo(sec models.Section) (template.HTML, bool) {
	var p models.VideoPayload
	if err := json.Unmarshal(sec.Payload, &p); err != nil {
		return "", false
	}
	layout := p.VideoLayout
	switch layout {
	case "single", "grid-2", "grid-3", "horizontal", "vertical":
	default:
		layout = "single"
	}
	return execute("video", map[string]any{
		"Section": sec,
		"Title":   p.Title,
		"Videos":  p.Videos,
		"Layout":  layout,
	})
}

func renderTestimonials(sec models.Section, testimonials []models.Testimonial) (template.HTML, bool) {
	var p models.TestimonialsPayload
	if err := json.Unmarshal(sec.Payload, &p); err != nil {
		return "", false
	}
	return execute("testimonials", map[string]any{
		"Section":      sec,
		"Title":        p.Title,
		"Testimonials": testimonials,
	})
}

// richText converts admin-authored markdown to HTML and marks it
// trusted. Sections are an admin-only input channel; raw HTML passes
// through unsanitized by design.
func richText(src string) template.HTML {
	if src == "" {
		return ""
	}
	html, err := markdown.ToHTML(src)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(html)
}

func execute(name string, data map[string]any) (template.HTML, bool) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", false
	}
	return template.HTML(buf.String()), true
}
