// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package stylevars maintains the global style namespace: the CSS custom
// properties and template marker classes derived from the currently
// selected color theme, design template, and website template. Every
// rendered component reads the active values from here instead of having
// them threaded through as parameters.
//
// Writes go through the selection store only. Each Apply call replaces
// the complete property set for its axis in one locked write, so readers
// never observe a half-applied record.
package stylevars

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"brightsite/internal/catalog"
)

// Namespace holds per-axis property sets and one active marker class per
// axis. Applying a record for an axis replaces that axis's set entirely;
// it never merges with the previous record.
type Namespace struct {
	mu      sync.RWMutex
	vars    map[catalog.Kind]map[string]string
	markers map[catalog.Kind]string
	version uint64
}

// New returns an empty namespace. Nothing is applied until the selection
// store loads and applies its resolved records.
func New() *Namespace {
	return &Namespace{
		vars:    make(map[catalog.Kind]map[string]string),
		markers: make(map[catalog.Kind]string),
	}
}

// ApplyColorTheme projects a color theme's tokens into the namespace.
func (n *Namespace) ApplyColorTheme(t catalog.ColorTheme) {
	n.set(catalog.KindColorTheme, "theme-"+t.ID, map[string]string{
		"--color-primary":       t.Primary,
		"--color-primary-hover": t.PrimaryHover,
		"--color-primary-light": t.PrimaryLight,
		"--color-primary-dark":  t.PrimaryDark,
		"--gradient-primary":    t.Gradient,
		"--gradient-soft":       t.GradientSoft,
	})
}

// ApplyDesignTemplate projects a design template's component style
// choices into the namespace.
func (n *Namespace) ApplyDesignTemplate(t catalog.DesignTemplate) {
	n.set(catalog.KindDesignTemplate, "design-"+t.ID, map[string]string{
		"--hero-style":        t.Hero.Style,
		"--hero-alignment":    t.Hero.Alignment,
		"--hero-animation":    t.Hero.Animation,
		"--section-spacing":   t.Section.Spacing,
		"--section-container": t.Section.Container,
		"--section-divider":   t.Section.Divider,
		"--card-style":        t.Card.Style,
		"--card-radius":       t.Card.Radius,
		"--card-shadow":       t.Card.Shadow,
		"--card-hover":        t.Card.Hover,
		"--button-style":      t.Button.Style,
		"--button-size":       t.Button.Size,
		"--button-radius":     t.Button.Radius,
		"--button-animation":  t.Button.Animation,
		"--layout-header":     t.Layout.Header,
		"--layout-footer":     t.Layout.Footer,
		"--layout-nav":        t.Layout.Nav,
		"--layout-flow":       t.Layout.ContentFlow,
	})
}

// ApplyWebsiteTemplate projects a website template's structural choices
// into the namespace. Structure mostly flows through the composition
// engine; these properties exist so template-scoped CSS can react to the
// active layout without markup changes.
func (n *Namespace) ApplyWebsiteTemplate(t catalog.WebsiteTemplate) {
	n.set(catalog.KindWebsiteTemplate, "site-"+t.ID, map[string]string{
		"--site-layout":         t.Layout,
		"--site-nav-placement":  t.NavPlacement,
		"--site-hero-kind":      t.HeroKind,
		"--site-content-flow":   t.ContentFlow,
		"--site-section-layout": t.SectionLayout,
	})
}

// set replaces an axis's property set and marker under one lock so the
// namespace never exposes a partially applied record.
func (n *Namespace) set(kind catalog.Kind, marker string, vars map[string]string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.vars[kind] = vars
	n.markers[kind] = marker
	n.version++
}

// Get returns a single property value across all axes.
func (n *Namespace) Get(key string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, set := range n.vars {
		if v, ok := set[key]; ok {
			return v, true
		}
	}
	return "", false
}

// Snapshot returns a copy of every applied property.
func (n *Namespace) Snapshot() map[string]string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make(map[string]string)
	for _, set := range n.vars {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}

// Markers returns the active marker classes, one per applied axis, in
// stable axis order. Rendered onto <body> so template-scoped selectors
// (e.g. body.site-bold .hero) take effect.
func (n *Namespace) Markers() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var out []string
	for _, kind := range catalog.Kinds {
		if m := n.markers[kind]; m != "" {
			out = append(out, m)
		}
	}
	return out
}

// Version increases on every apply. The page cache folds it into its
// keys so a selection change never serves stale HTML.
func (n *Namespace) Version() uint64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.version
}

// CSS renders the namespace as a :root custom-property block, keys
// sorted for stable output.
func (n *Namespace) CSS() string {
	snap := n.Snapshot()
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", k, snap[k])
	}
	b.WriteString("}\n")
	return b.String()
}
