// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html"
	"log/slog"
	"net/http"
	"strconv"

	"brightsite/internal/cache"
	"brightsite/internal/engine"
	"brightsite/internal/forms"
	"brightsite/internal/stylevars"
)

// publicPages lists the page ids served on the public site, in nav order.
var publicPages = []string{"home", "about", "services", "why", "website", "contact", "join"}

// Public groups handlers for the public-facing site composed by the page
// engine. It checks the L2 Valkey page cache before invoking the engine,
// and stores composed results on miss. Pages without content are never
// cached, so the setup prompt disappears as soon as content is added.
type Public struct {
	engine    *engine.Engine
	forms     *forms.Service
	vars      *stylevars.Namespace
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil when
// Valkey is not configured; pages are then composed on every request.
func NewPublic(eng *engine.Engine, formSvc *forms.Service, vars *stylevars.Namespace, pageCache *cache.PageCache) *Public {
	return &Public{
		engine:    eng,
		forms:     formSvc,
		vars:      vars,
		pageCache: pageCache,
	}
}

// PageHandler returns a handler serving one public page by its id.
func (p *Public) PageHandler(pageID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.servePage(w, r, pageID)
	}
}

// servePage composes a page through the engine, caching configured
// results under a key that folds in the active style version.
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, pageID string) {
	ctx := r.Context()
	key := cache.PageKey(pageID, p.vars.Version())

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	page, err := p.engine.ComposePage(pageID)
	if err != nil {
		slog.Error("compose page failed", "page", pageID, "error", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(p.engine.ErrorPage(pageID))
		return
	}

	// Only fully configured pages are cached. The prompt page must keep
	// reflecting content changes immediately.
	if page.Configured && p.pageCache != nil {
		p.pageCache.Set(ctx, key, page.HTML)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.HTML)
}

// ThemeCSS serves the custom-property stylesheet for the active color
// theme and templates. The URL carries the style version as a query
// param, so the response can be cached aggressively by browsers.
func (p *Public) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("ETag", `"v`+strconv.FormatUint(p.vars.Version(), 10)+`"`)
	w.Write([]byte(p.vars.CSS()))
}

// SubmitContact handles the public contact form POST.
func (p *Public) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err := p.forms.SubmitContact(forms.ContactInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Message: r.FormValue("message"),
	})
	p.finishSubmission(w, r, "contact", err)
}

// SubmitMembership handles the public membership form POST.
func (p *Public) SubmitMembership(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err := p.forms.SubmitMembership(forms.MembershipInput{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Phone: r.FormValue("phone"),
		Goal:  r.FormValue("goal"),
		Notes: r.FormValue("notes"),
	})
	p.finishSubmission(w, r, "join", err)
}

// finishSubmission renders the outcome of a form submission. Validation
// problems get a 422 with the first message; anything else is a 500.
func (p *Public) finishSubmission(w http.ResponseWriter, r *http.Request, backPage string, err error) {
	switch {
	case err == nil:
		p.resultPage(w, http.StatusOK, "Thank you!",
			"We received your message and will get back to you shortly.", "/"+backPage)
	case forms.IsValidationError(err):
		p.resultPage(w, http.StatusUnprocessableEntity, "Please check your input",
			forms.ValidationMessage(err), "/"+backPage)
	default:
		slog.Error("form submission failed", "page", backPage, "error", err)
		p.resultPage(w, http.StatusInternalServerError, "Something went wrong",
			"Your message could not be saved. Please try again in a moment.", "/"+backPage)
	}
}

// resultPage writes a minimal standalone page styled consistently with
// the engine output. It deliberately avoids the engine so form outcomes
// render even when page composition is failing.
func (p *Public) resultPage(w http.ResponseWriter, status int, title, message, backHref string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	safeTitle := html.EscapeString(title)
	safeMessage := html.EscapeString(message)
	w.Write([]byte(`<!DOCTYPE html>
<html><head><title>` + safeTitle + `</title>
<link rel="stylesheet" href="/static/site.css">
<link rel="stylesheet" href="/assets/theme.css?v=` + strconv.FormatUint(p.vars.Version(), 10) + `"></head>
<body class="form-result">
<main class="page-prompt">
<h1>` + safeTitle + `</h1>
<p>` + safeMessage + `</p>
<a href="` + backHref + `">Go back</a>
</main></body></html>`))
}
