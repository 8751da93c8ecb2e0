// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package selection tracks which theme and template ids are active for
// the site. Selections live in two places: Valkey as a fast local
// cache, and the site_settings table as the durable source of truth.
// When both are readable and disagree, the database wins and the cache
// is rewritten to match. When the database is unreachable the cached
// value keeps the site styled until it recovers.
package selection

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"brightsite/internal/catalog"
	"brightsite/internal/models"
	"brightsite/internal/stylevars"
)

const selectionKeyPrefix = "selection:"

// Cached selections have no natural expiry; they are rewritten on every
// load and select. The TTL only bounds staleness after a wipe.
const selectionTTL = 30 * 24 * time.Hour

// SettingsRemote is the durable side of the selection store. Satisfied
// by store.SiteSettingStore.
type SettingsRemote interface {
	Get(key, fallback string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Store resolves and persists the active selection for each axis.
type Store struct {
	valkey   *redis.Client
	settings SettingsRemote
	vars     *stylevars.Namespace
	log      *slog.Logger

	mu      sync.RWMutex
	current map[catalog.Kind]string
}

// New creates a selection store. Call Load before serving traffic so
// the style namespace reflects persisted selections instead of defaults.
func New(valkey *redis.Client, settings SettingsRemote, vars *stylevars.Namespace, log *slog.Logger) *Store {
	return &Store{
		valkey:   valkey,
		settings: settings,
		vars:     vars,
		log:      log,
		current:  make(map[catalog.Kind]string),
	}
}

// resolveSelection picks the effective id from the two persistence
// tiers. A readable remote value always wins; the local cache only
// carries the site through remote failures or a cold database.
func resolveSelection(local, remote, fallback string) string {
	if remote != "" {
		return remote
	}
	if local != "" {
		return local
	}
	return fallback
}

// Load resolves every axis from cache and database, reconciles the two
// and applies the results to the style namespace. Safe to call again
// later; it simply re-syncs.
func (s *Store) Load(ctx context.Context) {
	for _, kind := range catalog.Kinds {
		local := s.cacheGet(ctx, kind)
		remote := s.remoteGet(kind)

		id := resolveSelection(local, remote, catalog.DefaultID(kind))
		// The catalog normalizes ids that no longer exist.
		id = catalog.Resolve(kind, id).Key()

		if remote != "" && local != remote {
			s.cacheSet(ctx, kind, remote)
		}

		s.activate(kind, id)
	}
}

// Select makes an id the active selection for an axis. The cache is
// written before returning so a crash right after still comes back up
// with the new look; the database write failing only logs, since the
// next successful Select or Load will repair it.
func (s *Store) Select(ctx context.Context, kind catalog.Kind, id string) string {
	resolved := catalog.Resolve(kind, id).Key()

	s.cacheSet(ctx, kind, resolved)
	s.activate(kind, resolved)

	if err := s.settings.Set(string(kind), resolved); err != nil {
		s.log.Warn("selection not persisted to database",
			"kind", kind, "id", resolved, "error", err)
	}
	return resolved
}

// Current returns the active id for an axis. Before Load it returns
// the axis default.
func (s *Store) Current(kind catalog.Kind) string {
	s.mu.RLock()
	id, ok := s.current[kind]
	s.mu.RUnlock()
	if !ok {
		return catalog.DefaultID(kind)
	}
	return id
}

// activate records the id and pushes the axis variables into the
// style namespace.
func (s *Store) activate(kind catalog.Kind, id string) {
	s.mu.Lock()
	s.current[kind] = id
	s.mu.Unlock()

	switch kind {
	case catalog.KindColorTheme:
		s.vars.ApplyColorTheme(catalog.ResolveColorTheme(id))
	case catalog.KindDesignTemplate:
		s.vars.ApplyDesignTemplate(catalog.ResolveDesignTemplate(id))
	case catalog.KindWebsiteTemplate:
		s.vars.ApplyWebsiteTemplate(catalog.ResolveWebsiteTemplate(id))
	}
}

func (s *Store) cacheGet(ctx context.Context, kind catalog.Kind) string {
	if s.valkey == nil {
		return ""
	}
	val, err := s.valkey.Get(ctx, selectionKeyPrefix+string(kind)).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		s.log.Warn("selection cache read failed", "kind", kind, "error", err)
		return ""
	}
	return val
}

func (s *Store) cacheSet(ctx context.Context, kind catalog.Kind, id string) {
	if s.valkey == nil {
		return
	}
	if err := s.valkey.Set(ctx, selectionKeyPrefix+string(kind), id, selectionTTL).Err(); err != nil {
		s.log.Warn("selection cache write failed", "kind", kind, "error", err)
	}
}

// remoteGet reads an axis from site_settings. The website template axis
// once lived under a different key; a value still parked there is
// migrated to the current key on first sight.
func (s *Store) remoteGet(kind catalog.Kind) string {
	val, err := s.settings.Get(string(kind), "")
	if err != nil {
		s.log.Warn("selection settings read failed", "kind", kind, "error", err)
		return ""
	}
	if val != "" || kind != catalog.KindWebsiteTemplate {
		return val
	}

	legacy, err := s.settings.Get(models.LegacyWebsiteKey, "")
	if err != nil || legacy == "" {
		return ""
	}
	if err := s.settings.Set(string(kind), legacy); err != nil {
		s.log.Warn("legacy selection key migration failed", "error", err)
		return legacy
	}
	if err := s.settings.Delete(models.LegacyWebsiteKey); err != nil {
		s.log.Warn("legacy selection key cleanup failed", "error", err)
	}
	s.log.Info("migrated legacy website template setting", "id", legacy)
	return legacy
}
