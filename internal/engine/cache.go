// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// cache.go provides a short-TTL in-memory cache for the lookups every
// page composition repeats: nav items, published testimonials, and the
// site name. These change rarely but are read on each request; a small
// TTL keeps admin edits visible within a minute without a database
// round trip per page view.
package engine

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"brightsite/internal/models"
)

const (
	lookupTTL       = time.Minute
	lookupSweep     = 5 * time.Minute
	keyNav          = "nav"
	keyTestimonials = "testimonials"
	keySiteName     = "site-name"
)

// lookupCache wraps go-cache with typed accessors.
type lookupCache struct {
	c *gocache.Cache
}

func newLookupCache() *lookupCache {
	return &lookupCache{c: gocache.New(lookupTTL, lookupSweep)}
}

func (l *lookupCache) nav() ([]models.NavItem, bool) {
	if v, ok := l.c.Get(keyNav); ok {
		return v.([]models.NavItem), true
	}
	return nil, false
}

func (l *lookupCache) setNav(items []models.NavItem) {
	l.c.SetDefault(keyNav, items)
}

func (l *lookupCache) testimonials() ([]models.Testimonial, bool) {
	if v, ok := l.c.Get(keyTestimonials); ok {
		return v.([]models.Testimonial), true
	}
	return nil, false
}

func (l *lookupCache) setTestimonials(items []models.Testimonial) {
	l.c.SetDefault(keyTestimonials, items)
}

func (l *lookupCache) siteName() (string, bool) {
	if v, ok := l.c.Get(keySiteName); ok {
		return v.(string), true
	}
	return "", false
}

func (l *lookupCache) setSiteName(name string) {
	l.c.SetDefault(keySiteName, name)
}

// flush drops everything. Called after admin edits so the public site
// reflects them immediately instead of after the TTL.
func (l *lookupCache) flush() {
	l.c.Flush()
}
