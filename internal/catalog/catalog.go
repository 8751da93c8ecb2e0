// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package catalog holds the fixed catalogs of color themes, design
// templates, and website templates. Catalog entries are constant data;
// adding an entry is a code change, never a stored-document operation,
// which guarantees every page can always resolve a complete set of
// visual parameters even when a stored selection id is stale or corrupt.
package catalog

// Kind identifies one of the three selection axes. The values match the
// field names of the remote settings document so the two never drift.
type Kind string

const (
	KindColorTheme      Kind = "colorTheme"
	KindDesignTemplate  Kind = "designTemplate"
	KindWebsiteTemplate Kind = "websiteTemplate"
)

// Kinds lists all selection axes in a stable order.
var Kinds = []Kind{KindColorTheme, KindDesignTemplate, KindWebsiteTemplate}

// Entry is the common surface of all catalog records, used where the
// admin UI lists entries generically.
type Entry interface {
	Key() string
	Label() string
}

// ResolveColorTheme looks up a color theme by id. An unknown or empty id
// resolves to the first catalog entry, never an error.
func ResolveColorTheme(id string) ColorTheme {
	for _, t := range ColorThemes {
		if t.ID == id {
			return t
		}
	}
	return ColorThemes[0]
}

// ResolveDesignTemplate looks up a design template by id, falling back
// to the first catalog entry on miss.
func ResolveDesignTemplate(id string) DesignTemplate {
	for _, t := range DesignTemplates {
		if t.ID == id {
			return t
		}
	}
	return DesignTemplates[0]
}

// ResolveWebsiteTemplate looks up a website template by id, falling back
// to the first catalog entry on miss.
func ResolveWebsiteTemplate(id string) WebsiteTemplate {
	for _, t := range WebsiteTemplates {
		if t.ID == id {
			return t
		}
	}
	return WebsiteTemplates[0]
}

// Resolve looks up an entry on any axis. Unknown kinds resolve on the
// color theme axis so callers always get a usable record back.
func Resolve(kind Kind, id string) Entry {
	switch kind {
	case KindDesignTemplate:
		return ResolveDesignTemplate(id)
	case KindWebsiteTemplate:
		return ResolveWebsiteTemplate(id)
	default:
		return ResolveColorTheme(id)
	}
}

// DefaultID returns the id of the first entry on the given axis, the
// value used when neither cache nor settings carry a selection.
func DefaultID(kind Kind) string {
	switch kind {
	case KindDesignTemplate:
		return DesignTemplates[0].ID
	case KindWebsiteTemplate:
		return WebsiteTemplates[0].ID
	default:
		return ColorThemes[0].ID
	}
}

// Entries returns the full ordered catalog for an axis. Used by the
// admin appearance page to render selection pickers.
func Entries(kind Kind) []Entry {
	switch kind {
	case KindDesignTemplate:
		out := make([]Entry, len(DesignTemplates))
		for i, t := range DesignTemplates {
			out[i] = t
		}
		return out
	case KindWebsiteTemplate:
		out := make([]Entry, len(WebsiteTemplates))
		for i, t := range WebsiteTemplates {
			out[i] = t
		}
		return out
	default:
		out := make([]Entry, len(ColorThemes))
		for i, t := range ColorThemes {
			out[i] = t
		}
		return out
	}
}
