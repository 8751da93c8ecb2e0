// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package engine composes public pages. A page is the site chrome, then
// the structural blocks the active website template orders (skipping
// blocks the page's content document does not carry), then the
// admin-authored dynamic sections in their stored order.
package engine

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"brightsite/internal/catalog"
	"brightsite/internal/markdown"
	"brightsite/internal/models"
	"brightsite/internal/sections"
	"brightsite/internal/selection"
	"brightsite/internal/stylevars"
	"brightsite/internal/store"
)

// defaultBlockOrder is the structural block order for every page except
// home, whose order comes from the active website template. Absent
// blocks are skipped, so one order serves all secondary pages.
var defaultBlockOrder = []string{
	"hero", "intro", "services", "features", "stats", "benefits", "form", "cta",
}

// pageTitles maps page ids to the <title> used when the hero block is
// absent or untitled.
var pageTitles = map[string]string{
	"home":     "Home",
	"about":    "About Us",
	"services": "Services",
	"contact":  "Contact",
	"join":     "Join",
	"why":      "Why Us",
	"website":  "Website",
}

// Page is the outcome of composing one public page.
type Page struct {
	HTML []byte
	// Configured is false when the page has neither a content document
	// nor any sections; HTML then holds the setup prompt page.
	Configured bool
}

// Engine composes public pages from stored content, the active
// selections, and the style namespace.
type Engine struct {
	pages        *store.PageContentStore
	sections     *store.SectionStore
	testimonials *store.TestimonialStore
	nav          *store.NavStore
	settings     *store.SiteSettingStore
	sel          *selection.Store
	vars         *stylevars.Namespace
	lookups      *lookupCache
	log          *slog.Logger
}

// New creates a composition engine.
func New(
	pages *store.PageContentStore,
	secs *store.SectionStore,
	testimonials *store.TestimonialStore,
	nav *store.NavStore,
	settings *store.SiteSettingStore,
	sel *selection.Store,
	vars *stylevars.Namespace,
	log *slog.Logger,
) *Engine {
	return &Engine{
		pages:        pages,
		sections:     secs,
		testimonials: testimonials,
		nav:          nav,
		settings:     settings,
		sel:          sel,
		vars:         vars,
		lookups:      newLookupCache(),
		log:          log,
	}
}

// FlushLookups drops the short-TTL lookup cache. Admin handlers call
// this after editing nav items, testimonials, or site settings.
func (e *Engine) FlushLookups() {
	e.lookups.flush()
}

// chromeData feeds the outer page template.
type chromeData struct {
	SiteName        string
	Title           string
	MetaDescription string
	PageID          string
	Variant         string
	Layout          string
	NavPlacement    string
	HeroKind        string
	ThemeCSSHref    string
	Markers         []string
	Nav             []models.NavItem
	Blocks          []template.HTML
	Year            int
}

// ComposePage builds the full HTML for a public page. A storage error
// returns an error; a page with no document and no sections returns a
// prompt page with Configured false.
func (e *Engine) ComposePage(pageID string) (*Page, error) {
	doc, err := e.pages.Find(pageID)
	if err != nil {
		return nil, fmt.Errorf("compose %q: %w", pageID, err)
	}
	secs, err := e.sections.ListByPage(pageID)
	if err != nil {
		return nil, fmt.Errorf("compose %q: %w", pageID, err)
	}

	var content *models.PageContent
	if doc != nil {
		content = doc.Content
	}

	if content == nil && len(secs) == 0 {
		html, err := e.renderShell(pageID, nil, []template.HTML{mustFragment("not-configured")})
		if err != nil {
			return nil, err
		}
		return &Page{HTML: html, Configured: false}, nil
	}

	wt := catalog.ResolveWebsiteTemplate(e.sel.Current(catalog.KindWebsiteTemplate))

	var blocks []template.HTML
	for _, name := range e.blockOrder(pageID, wt) {
		if !content.HasBlock(name) {
			continue
		}
		html, err := e.renderBlock(pageID, name, content, wt)
		if err != nil {
			e.log.Warn("structural block failed", "page", pageID, "block", name, "error", err)
			continue
		}
		blocks = append(blocks, html)
	}

	if len(secs) > 0 {
		blocks = append(blocks, sections.RenderAll(secs, e.loadTestimonials(secs))...)
	}

	html, err := e.renderShell(pageID, content, blocks)
	if err != nil {
		return nil, err
	}
	return &Page{HTML: html, Configured: true}, nil
}

// ErrorPage renders the generic failure page. Used by handlers when
// ComposePage returns an error.
func (e *Engine) ErrorPage(pageID string) []byte {
	html, err := e.renderShell(pageID, nil, []template.HTML{mustFragment("error")})
	if err != nil {
		// The shell itself failing leaves only a bare fallback.
		return []byte("<!DOCTYPE html><html><body><h1>Something went wrong</h1></body></html>")
	}
	return html
}

// blockOrder returns the structural block order for a page. The home
// page follows the active website template; other pages share a fixed
// order and rely on absent blocks being skipped.
func (e *Engine) blockOrder(pageID string, wt catalog.WebsiteTemplate) []string {
	if pageID == "home" {
		return wt.Pages.Home.SectionOrder
	}
	return defaultBlockOrder
}

// renderBlock executes one structural block template.
func (e *Engine) renderBlock(pageID, name string, content *models.PageContent, wt catalog.WebsiteTemplate) (template.HTML, error) {
	var buf bytes.Buffer
	var err error

	switch name {
	case "hero":
		err = tmpl.ExecuteTemplate(&buf, "hero", map[string]any{
			"Block": content.Hero, "HeroKind": wt.HeroKind,
		})
	case "intro":
		err = tmpl.ExecuteTemplate(&buf, "intro", map[string]any{
			"Block": content.Intro, "Body": richBody(content.Intro.Body),
		})
	case "services":
		err = tmpl.ExecuteTemplate(&buf, "cards", map[string]any{
			"Block": content.Services, "Name": "services",
		})
	case "features":
		err = tmpl.ExecuteTemplate(&buf, "cards", map[string]any{
			"Block": content.Features, "Name": "features",
		})
	case "stats":
		err = tmpl.ExecuteTemplate(&buf, "stats", map[string]any{"Block": content.Stats})
	case "cta":
		err = tmpl.ExecuteTemplate(&buf, "cta", map[string]any{"Block": content.CTA})
	case "benefits":
		err = tmpl.ExecuteTemplate(&buf, "benefits", map[string]any{"Block": content.Benefits})
	case "form":
		formType := "contact"
		if pageID == "join" {
			formType = "membership"
		}
		err = tmpl.ExecuteTemplate(&buf, "form", map[string]any{
			"Block":     content.Form,
			"FormType":  formType,
			"FormStyle": formStyle(wt.Structure(pageID).FormStyle),
		})
	default:
		return "", fmt.Errorf("unknown structural block %q", name)
	}
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// renderShell wraps rendered blocks in the site chrome.
func (e *Engine) renderShell(pageID string, content *models.PageContent, blocks []template.HTML) ([]byte, error) {
	wt := catalog.ResolveWebsiteTemplate(e.sel.Current(catalog.KindWebsiteTemplate))

	data := chromeData{
		SiteName:     e.siteName(),
		Title:        e.pageTitle(pageID, content),
		PageID:       pageID,
		Variant:      e.pageVariant(pageID, wt),
		Layout:       wt.Layout,
		NavPlacement: wt.NavPlacement,
		HeroKind:     wt.HeroKind,
		ThemeCSSHref: fmt.Sprintf("/assets/theme.css?v=%d", e.vars.Version()),
		Markers:      e.vars.Markers(),
		Nav:          e.loadNav(),
		Blocks:       blocks,
		Year:         time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, fmt.Errorf("render page shell: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Engine) pageTitle(pageID string, content *models.PageContent) string {
	if content != nil && content.Hero != nil && content.Hero.Title != "" {
		return content.Hero.Title
	}
	if title, ok := pageTitles[pageID]; ok {
		return title
	}
	return pageID
}

func (e *Engine) pageVariant(pageID string, wt catalog.WebsiteTemplate) string {
	if pageID == "home" {
		return wt.Pages.Home.Variant
	}
	return wt.Structure(pageID).Variant
}

// siteName reads the configured site name through the lookup cache.
func (e *Engine) siteName() string {
	if name, ok := e.lookups.siteName(); ok {
		return name
	}
	name, err := e.settings.Get(models.SettingSiteName, "Brightsite")
	if err != nil {
		e.log.Warn("site name lookup failed", "error", err)
		return "Brightsite"
	}
	e.lookups.setSiteName(name)
	return name
}

// loadNav reads visible nav items through the lookup cache. A failed
// read renders the page without navigation rather than failing it.
func (e *Engine) loadNav() []models.NavItem {
	if items, ok := e.lookups.nav(); ok {
		return items
	}
	items, err := e.nav.ListVisible()
	if err != nil {
		e.log.Warn("nav lookup failed", "error", err)
		return nil
	}
	e.lookups.setNav(items)
	return items
}

// loadTestimonials fetches published testimonials, but only when some
// section on the page actually renders them.
func (e *Engine) loadTestimonials(secs []models.Section) []models.Testimonial {
	needed := false
	for _, sec := range secs {
		if sec.Type == models.SectionTestimonials {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}

	if items, ok := e.lookups.testimonials(); ok {
		return items
	}
	items, err := e.testimonials.ListPublished()
	if err != nil {
		e.log.Warn("testimonials lookup failed", "error", err)
		return nil
	}
	e.lookups.setTestimonials(items)
	return items
}

// richBody converts Markdown body copy to HTML, falling back to the
// raw text escaped by the template on conversion failure.
func richBody(src string) template.HTML {
	if src == "" {
		return ""
	}
	html, err := markdown.ToHTML(src)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(html)
}

// formStyle normalizes a template's form style to a CSS-safe token.
func formStyle(style string) string {
	switch style {
	case "inline", "card", "split":
		return style
	default:
		return "card"
	}
}

// mustFragment executes a data-free template fragment. The fragments
// are static, so failure is a programming error.
func mustFragment(name string) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, nil); err != nil {
		panic(err)
	}
	return template.HTML(buf.String())
}
