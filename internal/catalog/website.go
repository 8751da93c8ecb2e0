// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package catalog

// WebsiteTemplate bundles page-level structural choices: overall layout,
// navigation placement, and an explicit per-page structure. It decides
// WHAT appears where; the design template decides how it looks.
type WebsiteTemplate struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Layout        string  `json:"layout"`        // full-width, boxed, split
	NavPlacement  string  `json:"navPlacement"`  // top, top-center, side
	HeroKind      string  `json:"heroKind"`      // banner, split, minimal
	ContentFlow   string  `json:"contentFlow"`   // linear, zigzag
	SectionLayout string  `json:"sectionLayout"` // stacked, cards, bands
	Pages         PageSet `json:"pages"`
}

func (t WebsiteTemplate) Key() string   { return t.ID }
func (t WebsiteTemplate) Label() string { return t.Name }

// PageSet holds the per-page structure for every fixed public page.
type PageSet struct {
	Home     HomeStructure `json:"home"`
	About    PageStructure `json:"about"`
	Services PageStructure `json:"services"`
	Contact  PageStructure `json:"contact"`
	Join     PageStructure `json:"join"`
}

// HomeStructure describes the home page: a layout variant and the exact
// ordered list of structural block names to render. Blocks absent from
// the page-content document are skipped at render time.
type HomeStructure struct {
	Variant      string   `json:"variant"`
	SectionOrder []string `json:"sectionOrder"`
}

// PageStructure describes a secondary page: a layout variant and, for
// pages carrying a form, the form presentation style.
type PageStructure struct {
	Variant   string `json:"variant"`
	FormStyle string `json:"formStyle,omitempty"` // inline, card, split
}

// Structure returns the per-page structure for a page id. Unknown page
// ids get the about structure, the plainest of the set.
func (t WebsiteTemplate) Structure(pageID string) PageStructure {
	switch pageID {
	case "about":
		return t.Pages.About
	case "services":
		return t.Pages.Services
	case "contact":
		return t.Pages.Contact
	case "join":
		return t.Pages.Join
	default:
		return t.Pages.About
	}
}

// WebsiteTemplates is the ordered website template catalog.
var WebsiteTemplates = []WebsiteTemplate{
	{
		ID:            "classic-business",
		Name:          "Classic Business",
		Category:      "business",
		Layout:        "boxed",
		NavPlacement:  "top",
		HeroKind:      "banner",
		ContentFlow:   "linear",
		SectionLayout: "stacked",
		Pages: PageSet{
			Home:     HomeStructure{Variant: "standard", SectionOrder: []string{"hero", "intro", "services", "features", "cta"}},
			About:    PageStructure{Variant: "standard"},
			Services: PageStructure{Variant: "grid"},
			Contact:  PageStructure{Variant: "standard", FormStyle: "card"},
			Join:     PageStructure{Variant: "standard", FormStyle: "card"},
		},
	},
	{
		ID:            "bold",
		Name:          "Bold",
		Category:      "impact",
		Layout:        "full-width",
		NavPlacement:  "top-center",
		HeroKind:      "banner",
		ContentFlow:   "zigzag",
		SectionLayout: "bands",
		Pages: PageSet{
			Home:     HomeStructure{Variant: "impact", SectionOrder: []string{"hero", "stats", "services", "features", "benefits", "cta"}},
			About:    PageStructure{Variant: "wide"},
			Services: PageStructure{Variant: "bands"},
			Contact:  PageStructure{Variant: "split", FormStyle: "split"},
			Join:     PageStructure{Variant: "split", FormStyle: "split"},
		},
	},
	{
		ID:            "minimal-zen",
		Name:          "Minimal Zen",
		Category:      "minimal",
		Layout:        "boxed",
		NavPlacement:  "top",
		HeroKind:      "minimal",
		ContentFlow:   "linear",
		SectionLayout: "stacked",
		Pages: PageSet{
			Home:     HomeStructure{Variant: "quiet", SectionOrder: []string{"hero", "intro", "services", "cta"}},
			About:    PageStructure{Variant: "narrow"},
			Services: PageStructure{Variant: "list"},
			Contact:  PageStructure{Variant: "narrow", FormStyle: "inline"},
			Join:     PageStructure{Variant: "narrow", FormStyle: "inline"},
		},
	},
	{
		ID:            "split-showcase",
		Name:          "Split Showcase",
		Category:      "creative",
		Layout:        "split",
		NavPlacement:  "side",
		HeroKind:      "split",
		ContentFlow:   "zigzag",
		SectionLayout: "cards",
		Pages: PageSet{
			Home:     HomeStructure{Variant: "showcase", SectionOrder: []string{"hero", "features", "stats", "intro", "services", "cta"}},
			About:    PageStructure{Variant: "split"},
			Services: PageStructure{Variant: "cards"},
			Contact:  PageStructure{Variant: "split", FormStyle: "card"},
			Join:     PageStructure{Variant: "split", FormStyle: "card"},
		},
	},
}
