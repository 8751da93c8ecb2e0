// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for Brightsite. Handlers
// are grouped by concern (admin, public, auth) and receive their
// dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brightsite/internal/cache"
	"brightsite/internal/catalog"
	"brightsite/internal/engine"
	"brightsite/internal/models"
	"brightsite/internal/render"
	"brightsite/internal/selection"
	"brightsite/internal/storage"
	"brightsite/internal/store"
)

// adminPageTitles labels the fixed public pages in the admin UI.
var adminPageTitles = map[string]string{
	"home":     "Home",
	"about":    "About Us",
	"services": "Services",
	"why":      "Why Us",
	"website":  "Website",
	"contact":  "Contact",
	"join":     "Join",
}

// documentSkeleton seeds the content editor for pages that have no
// document yet.
const documentSkeleton = `{
  "hero": {
    "title": "",
    "subtitle": ""
  },
  "intro": {
    "title": "",
    "body": ""
  }
}`

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer     *render.Renderer
	pageStore    *store.PageContentStore
	sectionStore *store.SectionStore
	navStore     *store.NavStore
	testimonials *store.TestimonialStore
	submissions  *store.SubmissionStore
	settingStore *store.SiteSettingStore
	mediaStore   *store.MediaStore
	storage      *storage.Client
	sel          *selection.Store
	engine       *engine.Engine
	pageCache    *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil when S3 is not configured; pageCache may be
// nil when Valkey is not configured.
func NewAdmin(renderer *render.Renderer, pageStore *store.PageContentStore, sectionStore *store.SectionStore, navStore *store.NavStore, testimonials *store.TestimonialStore, submissions *store.SubmissionStore, settingStore *store.SiteSettingStore, mediaStore *store.MediaStore, storageClient *storage.Client, sel *selection.Store, eng *engine.Engine, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:     renderer,
		pageStore:    pageStore,
		sectionStore: sectionStore,
		navStore:     navStore,
		testimonials: testimonials,
		submissions:  submissions,
		settingStore: settingStore,
		mediaStore:   mediaStore,
		storage:      storageClient,
		sel:          sel,
		engine:       eng,
		pageCache:    pageCache,
	}
}

// Dashboard renders the admin dashboard with site stats and the active
// appearance selections.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	pageIDs, _ := a.pageStore.PageIDs()
	var sectionCount int
	for _, id := range publicPages {
		n, _ := a.sectionStore.CountByPage(id)
		sectionCount += n
	}
	unread, _ := a.submissions.CountUnread()
	mediaCount, _ := a.mediaStore.Count()

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"PageCount":       len(pageIDs),
			"SectionCount":    sectionCount,
			"UnreadCount":     unread,
			"MediaCount":      mediaCount,
			"ColorTheme":      catalog.ResolveColorTheme(a.sel.Current(catalog.KindColorTheme)).Name,
			"DesignTemplate":  catalog.ResolveDesignTemplate(a.sel.Current(catalog.KindDesignTemplate)).Name,
			"WebsiteTemplate": catalog.ResolveWebsiteTemplate(a.sel.Current(catalog.KindWebsiteTemplate)).Name,
		},
	})
}

// --- Appearance ---

// Appearance renders the theme and template picker page.
func (a *Admin) Appearance(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "appearance", &render.PageData{
		Title:   "Appearance",
		Section: "appearance",
		Data: map[string]any{
			"ColorTheme":       a.sel.Current(catalog.KindColorTheme),
			"DesignTemplate":   a.sel.Current(catalog.KindDesignTemplate),
			"WebsiteTemplate":  a.sel.Current(catalog.KindWebsiteTemplate),
			"ColorThemes":      catalog.ColorThemes,
			"DesignTemplates":  catalog.DesignTemplates,
			"WebsiteTemplates": catalog.WebsiteTemplates,
		},
	})
}

// SelectColorTheme applies a color theme selection.
func (a *Admin) SelectColorTheme(w http.ResponseWriter, r *http.Request) {
	a.applySelection(w, r, catalog.KindColorTheme)
}

// SelectDesignTemplate applies a design template selection.
func (a *Admin) SelectDesignTemplate(w http.ResponseWriter, r *http.Request) {
	a.applySelection(w, r, catalog.KindDesignTemplate)
}

// SelectWebsiteTemplate applies a website template selection.
func (a *Admin) SelectWebsiteTemplate(w http.ResponseWriter, r *http.Request) {
	a.applySelection(w, r, catalog.KindWebsiteTemplate)
}

// applySelection persists a selection and drops cached pages composed
// under the previous look.
func (a *Admin) applySelection(w http.ResponseWriter, r *http.Request, kind catalog.Kind) {
	id := r.FormValue("id")
	applied := a.sel.Select(r.Context(), kind, id)
	slog.Info("appearance changed", "kind", kind, "selected", applied)

	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
	http.Redirect(w, r, "/admin/appearance", http.StatusSeeOther)
}

// --- Pages ---

type pageRow struct {
	ID           string
	Title        string
	HasContent   bool
	SectionCount int
}

// PagesList renders the fixed public pages and their content status.
func (a *Admin) PagesList(w http.ResponseWriter, r *http.Request) {
	rows := make([]pageRow, 0, len(publicPages))
	for _, id := range publicPages {
		raw, err := a.pageStore.FindRaw(id)
		if err != nil {
			slog.Error("page content lookup failed", "page", id, "error", err)
		}
		count, _ := a.sectionStore.CountByPage(id)
		rows = append(rows, pageRow{
			ID:           id,
			Title:        adminPageTitles[id],
			HasContent:   raw != nil,
			SectionCount: count,
		})
	}

	a.renderer.Page(w, r, "pages_list", &render.PageData{
		Title:   "Pages",
		Section: "pages",
		Data:    map[string]any{"Pages": rows},
	})
}

// PageEdit renders the content document editor and section list for one
// page.
func (a *Admin) PageEdit(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	title, ok := adminPageTitles[pageID]
	if !ok {
		http.NotFound(w, r)
		return
	}

	a.renderPageEdit(w, r, pageID, title, "", "")
}

// renderPageEdit renders the editor, optionally overriding the document
// text (to preserve admin input after a validation error).
func (a *Admin) renderPageEdit(w http.ResponseWriter, r *http.Request, pageID, title, docOverride, errMsg string) {
	doc := docOverride
	if doc == "" {
		raw, err := a.pageStore.FindRaw(pageID)
		if err != nil {
			slog.Error("page content lookup failed", "page", pageID, "error", err)
		}
		if raw != nil {
			doc = string(raw)
		} else {
			doc = documentSkeleton
		}
	}

	sections, err := a.sectionStore.ListByPage(pageID)
	if err != nil {
		slog.Error("list sections failed", "page", pageID, "error", err)
	}

	a.renderer.Page(w, r, "page_edit", &render.PageData{
		Title:   "Edit " + title,
		Section: "pages",
		Data: map[string]any{
			"PageID":       pageID,
			"Title":        title,
			"Document":     doc,
			"Sections":     sections,
			"SectionTypes": models.SectionTypes,
			"Error":        errMsg,
		},
	})
}

// PageContentSave persists the content document for a page.
func (a *Admin) PageContentSave(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	title, ok := adminPageTitles[pageID]
	if !ok {
		http.NotFound(w, r)
		return
	}

	doc := r.FormValue("document")
	if msg := validateDocument(doc); msg != "" {
		a.renderPageEdit(w, r, pageID, title, doc, msg)
		return
	}

	if err := a.pageStore.SaveRaw(pageID, json.RawMessage(doc)); err != nil {
		slog.Error("save page content failed", "page", pageID, "error", err)
		a.renderPageEdit(w, r, pageID, title, doc, "The document could not be saved.")
		return
	}

	a.invalidatePage(r, pageID)
	http.Redirect(w, r, "/admin/pages/"+pageID, http.StatusSeeOther)
}

// --- Sections ---

// SectionCreate appends a new section to a page.
func (a *Admin) SectionCreate(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	title, ok := adminPageTitles[pageID]
	if !ok {
		http.NotFound(w, r)
		return
	}

	sectionType := r.FormValue("type")
	payload := strings.TrimSpace(r.FormValue("payload"))
	if payload == "" {
		payload = "{}"
	}
	bg := strings.TrimSpace(r.FormValue("background_color"))

	if msg := validateSection(sectionType, payload, bg); msg != "" {
		a.renderPageEdit(w, r, pageID, title, "", msg)
		return
	}

	sec := &models.Section{
		PageID:          pageID,
		Type:            models.SectionType(sectionType),
		Payload:         json.RawMessage(payload),
		BackgroundColor: bg,
	}
	if _, err := a.sectionStore.Create(sec); err != nil {
		slog.Error("create section failed", "page", pageID, "error", err)
		a.renderPageEdit(w, r, pageID, title, "", "The section could not be created.")
		return
	}

	a.invalidatePage(r, pageID)
	http.Redirect(w, r, "/admin/pages/"+pageID, http.StatusSeeOther)
}

// SectionUpdate saves payload and background edits for one section.
func (a *Admin) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	title, ok := adminPageTitles[pageID]
	if !ok {
		http.NotFound(w, r)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "sectionID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	sectionType := r.FormValue("type")
	payload := strings.TrimSpace(r.FormValue("payload"))
	bg := strings.TrimSpace(r.FormValue("background_color"))

	if msg := validateSection(sectionType, payload, bg); msg != "" {
		a.renderPageEdit(w, r, pageID, title, "", msg)
		return
	}

	sec, err := a.sectionStore.FindByID(id)
	if err != nil || sec == nil {
		http.NotFound(w, r)
		return
	}

	sec.Type = models.SectionType(sectionType)
	sec.Payload = json.RawMessage(payload)
	sec.BackgroundColor = bg
	if err := a.sectionStore.Update(sec); err != nil {
		slog.Error("update section failed", "section", id, "error", err)
		a.renderPageEdit(w, r, pageID, title, "", "The section could not be saved.")
		return
	}

	a.invalidatePage(r, pageID)
	http.Redirect(w, r, "/admin/pages/"+pageID, http.StatusSeeOther)
}

// SectionMove shifts a section one slot up or down within its page.
func (a *Admin) SectionMove(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	id, err := uuid.Parse(chi.URLParam(r, "sectionID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	direction := r.FormValue("direction")

	sections, err := a.sectionStore.ListByPage(pageID)
	if err != nil {
		slog.Error("list sections failed", "page", pageID, "error", err)
		http.Redirect(w, r, "/admin/pages/"+pageID, http.StatusSeeOther)
		return
	}

	ids := make([]uuid.UUID, len(sections))
	idx := -1
	for i, s := range sections {
		ids[i] = s.ID
		if s.ID == id {
			idx = i
		}
	}

	swap := -1
	switch {
	case direction == "up" && idx > 0:
		swap = idx - 1
	case direction == "down" && idx >= 0 && idx < len(ids)-1:
		swap = idx + 1
	}
	if swap >= 0 {
		ids[idx], ids[swap] = ids[swap], ids[idx]
		if err := a.sectionStore.Reorder(pageID, ids); err != nil {
			slog.Error("reorder sections failed", "page", pageID, "error", err)
		}
		a.invalidatePage(r, pageID)
	}

	http.Redirect(w, r, "/admin/pages/"+pageID, http.StatusSeeOther)
}

// SectionDelete removes one section.
func (a *Admin) SectionDelete(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")
	id, err := uuid.Parse(chi.URLParam(r, "sectionID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.sectionStore.Delete(id); err != nil {
		slog.Error("delete section failed", "section", id, "error", err)
	}

	a.invalidatePage(r, pageID)
	http.Redirect(w, r, "/admin/pages/"+pageID, http.StatusSeeOther)
}

// --- Navigation ---

// Navigation renders the nav item management page.
func (a *Admin) Navigation(w http.ResponseWriter, r *http.Request) {
	items, err := a.navStore.ListAll()
	if err != nil {
		slog.Error("list nav items failed", "error", err)
	}

	a.renderer.Page(w, r, "navigation", &render.PageData{
		Title:   "Navigation",
		Section: "navigation",
		Data:    map[string]any{"Items": items},
	})
}

// NavCreate appends a nav item.
func (a *Admin) NavCreate(w http.ResponseWriter, r *http.Request) {
	label := strings.TrimSpace(r.FormValue("label"))
	href := strings.TrimSpace(r.FormValue("href"))
	if msg := validateNavItem(label, href); msg != "" {
		http.Redirect(w, r, "/admin/navigation", http.StatusSeeOther)
		return
	}

	if _, err := a.navStore.Create(&models.NavItem{Label: label, Href: href, Visible: true}); err != nil {
		slog.Error("create nav item failed", "error", err)
	}

	a.invalidateChrome(r)
	http.Redirect(w, r, "/admin/navigation", http.StatusSeeOther)
}

// NavUpdate saves edits to one nav item.
func (a *Admin) NavUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "navID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	label := strings.TrimSpace(r.FormValue("label"))
	href := strings.TrimSpace(r.FormValue("href"))
	visible := r.FormValue("visible") == "1"
	if msg := validateNavItem(label, href); msg != "" {
		http.Redirect(w, r, "/admin/navigation", http.StatusSeeOther)
		return
	}

	if err := a.navStore.Update(&models.NavItem{ID: id, Label: label, Href: href, Visible: visible}); err != nil {
		slog.Error("update nav item failed", "nav", id, "error", err)
	}

	a.invalidateChrome(r)
	http.Redirect(w, r, "/admin/navigation", http.StatusSeeOther)
}

// NavDelete removes a nav item.
func (a *Admin) NavDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "navID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.navStore.Delete(id); err != nil {
		slog.Error("delete nav item failed", "nav", id, "error", err)
	}

	a.invalidateChrome(r)
	http.Redirect(w, r, "/admin/navigation", http.StatusSeeOther)
}

// --- Testimonials ---

// Testimonials renders the testimonial management page.
func (a *Admin) Testimonials(w http.ResponseWriter, r *http.Request) {
	items, err := a.testimonials.ListAll()
	if err != nil {
		slog.Error("list testimonials failed", "error", err)
	}

	a.renderer.Page(w, r, "testimonials", &render.PageData{
		Title:   "Testimonials",
		Section: "testimonials",
		Data:    map[string]any{"Items": items},
	})
}

// TestimonialCreate appends a testimonial, published by default.
func (a *Admin) TestimonialCreate(w http.ResponseWriter, r *http.Request) {
	author := strings.TrimSpace(r.FormValue("author"))
	role := strings.TrimSpace(r.FormValue("role"))
	quote := strings.TrimSpace(r.FormValue("quote"))
	rating, _ := strconv.Atoi(r.FormValue("rating"))
	if msg := validateTestimonial(author, quote, rating); msg != "" {
		http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
		return
	}

	t := &models.Testimonial{Author: author, Role: role, Quote: quote, Rating: rating, Published: true}
	if _, err := a.testimonials.Create(t); err != nil {
		slog.Error("create testimonial failed", "error", err)
	}

	a.invalidateChrome(r)
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// TestimonialUpdate saves edits to one testimonial.
func (a *Admin) TestimonialUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	author := strings.TrimSpace(r.FormValue("author"))
	role := strings.TrimSpace(r.FormValue("role"))
	quote := strings.TrimSpace(r.FormValue("quote"))
	rating, _ := strconv.Atoi(r.FormValue("rating"))
	published := r.FormValue("published") == "1"
	if msg := validateTestimonial(author, quote, rating); msg != "" {
		http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
		return
	}

	t := &models.Testimonial{ID: id, Author: author, Role: role, Quote: quote, Rating: rating, Published: published}
	if err := a.testimonials.Update(t); err != nil {
		slog.Error("update testimonial failed", "testimonial", id, "error", err)
	}

	a.invalidateChrome(r)
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// TestimonialDelete removes a testimonial.
func (a *Admin) TestimonialDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.testimonials.Delete(id); err != nil {
		slog.Error("delete testimonial failed", "testimonial", id, "error", err)
	}

	a.invalidateChrome(r)
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

// --- Submissions ---

// Submissions renders the form submission inbox.
func (a *Admin) Submissions(w http.ResponseWriter, r *http.Request) {
	items, err := a.submissions.List()
	if err != nil {
		slog.Error("list submissions failed", "error", err)
	}
	unread, _ := a.submissions.CountUnread()

	a.renderer.Page(w, r, "submissions", &render.PageData{
		Title:   "Submissions",
		Section: "submissions",
		Data: map[string]any{
			"Items":       items,
			"UnreadCount": unread,
		},
	})
}

// SubmissionMarkRead marks a submission as read. Repeated calls keep the
// original read timestamp.
func (a *Admin) SubmissionMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "submissionID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.submissions.MarkRead(id); err != nil {
		slog.Error("mark submission read failed", "submission", id, "error", err)
	}
	http.Redirect(w, r, "/admin/submissions", http.StatusSeeOther)
}

// SubmissionDelete removes a submission.
func (a *Admin) SubmissionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "submissionID"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.submissions.Delete(id); err != nil {
		slog.Error("delete submission failed", "submission", id, "error", err)
	}
	http.Redirect(w, r, "/admin/submissions", http.StatusSeeOther)
}

// --- Settings ---

// settingsFormKeys are the settings the admin form may write. Anything
// else in site_settings (selections included) is untouched by a save.
var settingsFormKeys = []string{
	"site.name", "site.tagline",
	"email.host", "email.port", "email.username", "email.password",
	"email.from", "email.to", "email.subject", "email.body",
}

// Settings renders the site and email settings form.
func (a *Admin) Settings(w http.ResponseWriter, r *http.Request) {
	a.renderSettings(w, r, false)
}

// SettingsSave persists the settings form.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	values := make(map[string]string, len(settingsFormKeys)+1)
	for _, key := range settingsFormKeys {
		values[key] = strings.TrimSpace(r.FormValue(key))
	}
	// Unchecked checkboxes are absent from the form body.
	if r.FormValue("email.enabled") == "true" {
		values["email.enabled"] = "true"
	} else {
		values["email.enabled"] = "false"
	}

	if err := a.settingStore.SetMany(values); err != nil {
		slog.Error("save settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidateChrome(r)
	a.renderSettings(w, r, true)
}

func (a *Admin) renderSettings(w http.ResponseWriter, r *http.Request, saved bool) {
	settings, err := a.settingStore.All()
	if err != nil {
		slog.Error("load settings failed", "error", err)
	}

	a.renderer.Page(w, r, "settings", &render.PageData{
		Title:   "Settings",
		Section: "settings",
		Data: map[string]any{
			"Saved":         saved,
			"SiteName":      settings.Get("site.name", ""),
			"Tagline":       settings.Get("site.tagline", ""),
			"EmailEnabled":  settings.Get("email.enabled", "false") == "true",
			"EmailHost":     settings.Get("email.host", ""),
			"EmailPort":     settings.Get("email.port", "587"),
			"EmailUsername": settings.Get("email.username", ""),
			"EmailPassword": settings.Get("email.password", ""),
			"EmailFrom":     settings.Get("email.from", ""),
			"EmailTo":       settings.Get("email.to", ""),
			"EmailSubject":  settings.Get("email.subject", "New {{type}} submission from {{name}}"),
			"EmailBody":     settings.Get("email.body", ""),
		},
	})
}

// --- Cache helpers ---

// invalidatePage drops cached copies of one page after a content edit.
func (a *Admin) invalidatePage(r *http.Request, pageID string) {
	if a.pageCache != nil {
		a.pageCache.InvalidatePage(r.Context(), pageID)
	}
}

// invalidateChrome drops all cached pages and the engine's lookup cache.
// Used when navigation, testimonials, or settings change, since those
// appear on every page.
func (a *Admin) invalidateChrome(r *http.Request) {
	a.engine.FlushLookups()
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(r.Context())
	}
}
