// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package catalog

// DesignTemplate bundles component-level style choices. It controls how
// individual components look (hero presentation, cards, buttons,
// section chrome), independent of page structure and palette.
type DesignTemplate struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Hero     HeroStyle    `json:"hero"`
	Section  SectionStyle `json:"section"`
	Card     CardStyle    `json:"card"`
	Button   ButtonStyle  `json:"button"`
	Layout   LayoutStyle  `json:"layout"`
}

func (t DesignTemplate) Key() string   { return t.ID }
func (t DesignTemplate) Label() string { return t.Name }

// HeroStyle controls hero block presentation.
type HeroStyle struct {
	Style     string `json:"style"`     // gradient, solid, image-overlay, split
	Alignment string `json:"alignment"` // left, center
	Animation string `json:"animation"` // none, fade-up, slide-in
}

// SectionStyle controls per-section chrome: spacing, container width,
// and the divider drawn between sections.
type SectionStyle struct {
	Spacing   string `json:"spacing"`   // compact, regular, airy
	Container string `json:"container"` // narrow, regular, wide
	Divider   string `json:"divider"`   // none, line, wave, angle
}

// CardStyle controls card components (feature grids, service lists).
type CardStyle struct {
	Style  string `json:"style"`  // flat, outlined, elevated
	Radius string `json:"radius"` // none, small, large, pill
	Shadow string `json:"shadow"` // none, soft, strong
	Hover  string `json:"hover"`  // none, lift, glow
}

// ButtonStyle controls button components.
type ButtonStyle struct {
	Style     string `json:"style"`     // solid, outline, ghost
	Size      string `json:"size"`      // small, regular, large
	Radius    string `json:"radius"`    // none, small, pill
	Animation string `json:"animation"` // none, scale, shine
}

// LayoutStyle controls page chrome rendered by every design template.
type LayoutStyle struct {
	Header      string `json:"header"`      // solid, transparent, floating
	Footer      string `json:"footer"`      // simple, columns, minimal
	Nav         string `json:"nav"`         // links, buttons, underline
	ContentFlow string `json:"contentFlow"` // stacked, alternating
}

// DesignTemplates is the ordered design template catalog.
var DesignTemplates = []DesignTemplate{
	{
		ID:       "classic",
		Name:     "Classic",
		Category: "business",
		Hero:     HeroStyle{Style: "solid", Alignment: "center", Animation: "none"},
		Section:  SectionStyle{Spacing: "regular", Container: "regular", Divider: "line"},
		Card:     CardStyle{Style: "outlined", Radius: "small", Shadow: "none", Hover: "none"},
		Button:   ButtonStyle{Style: "solid", Size: "regular", Radius: "small", Animation: "none"},
		Layout:   LayoutStyle{Header: "solid", Footer: "columns", Nav: "links", ContentFlow: "stacked"},
	},
	{
		ID:       "modern-gradient",
		Name:     "Modern Gradient",
		Category: "creative",
		Hero:     HeroStyle{Style: "gradient", Alignment: "left", Animation: "fade-up"},
		Section:  SectionStyle{Spacing: "airy", Container: "wide", Divider: "wave"},
		Card:     CardStyle{Style: "elevated", Radius: "large", Shadow: "soft", Hover: "lift"},
		Button:   ButtonStyle{Style: "solid", Size: "large", Radius: "pill", Animation: "scale"},
		Layout:   LayoutStyle{Header: "transparent", Footer: "columns", Nav: "buttons", ContentFlow: "alternating"},
	},
	{
		ID:       "minimal-flat",
		Name:     "Minimal Flat",
		Category: "minimal",
		Hero:     HeroStyle{Style: "solid", Alignment: "left", Animation: "none"},
		Section:  SectionStyle{Spacing: "compact", Container: "narrow", Divider: "none"},
		Card:     CardStyle{Style: "flat", Radius: "none", Shadow: "none", Hover: "none"},
		Button:   ButtonStyle{Style: "outline", Size: "regular", Radius: "none", Animation: "none"},
		Layout:   LayoutStyle{Header: "solid", Footer: "minimal", Nav: "underline", ContentFlow: "stacked"},
	},
	{
		ID:       "bold-contrast",
		Name:     "Bold Contrast",
		Category: "creative",
		Hero:     HeroStyle{Style: "image-overlay", Alignment: "center", Animation: "slide-in"},
		Section:  SectionStyle{Spacing: "airy", Container: "wide", Divider: "angle"},
		Card:     CardStyle{Style: "elevated", Radius: "small", Shadow: "strong", Hover: "glow"},
		Button:   ButtonStyle{Style: "solid", Size: "large", Radius: "small", Animation: "shine"},
		Layout:   LayoutStyle{Header: "floating", Footer: "simple", Nav: "buttons", ContentFlow: "alternating"},
	},
	{
		ID:       "soft-rounded",
		Name:     "Soft Rounded",
		Category: "friendly",
		Hero:     HeroStyle{Style: "split", Alignment: "left", Animation: "fade-up"},
		Section:  SectionStyle{Spacing: "regular", Container: "regular", Divider: "wave"},
		Card:     CardStyle{Style: "elevated", Radius: "pill", Shadow: "soft", Hover: "lift"},
		Button:   ButtonStyle{Style: "solid", Size: "regular", Radius: "pill", Animation: "scale"},
		Layout:   LayoutStyle{Header: "solid", Footer: "columns", Nav: "links", ContentFlow: "stacked"},
	},
}
