// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"time"

	"brightsite/internal/models"
)

const upsertSettingSQL = `
	INSERT INTO site_settings (key, value, updated_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// SiteSettingStore holds the site-wide key/value configuration, including
// contact details, social links, SMTP settings and the appearance
// selections that survive a cache flush.
type SiteSettingStore struct {
	db *sql.DB
}

func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

// All loads every setting into a map for template rendering.
func (s *SiteSettingStore) All() (models.SiteSettings, error) {
	rows, err := s.db.Query(`SELECT key, value FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(models.SiteSettings)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

// Get returns one setting. Missing keys and empty values both yield the
// fallback so templates never render blanks for required fields.
func (s *SiteSettingStore) Get(key, fallback string) (string, error) {
	var val string
	err := s.db.QueryRow(`SELECT value FROM site_settings WHERE key = $1`, key).Scan(&val)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	if val == "" {
		return fallback, nil
	}
	return val, nil
}

// Set upserts one setting.
func (s *SiteSettingStore) Set(key, value string) error {
	_, err := s.db.Exec(upsertSettingSQL, key, value, time.Now())
	return err
}

// SetMany upserts a batch of settings atomically, so a half-saved
// settings form never becomes visible.
func (s *SiteSettingStore) SetMany(settings map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertSettingSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for k, v := range settings {
		if _, err := stmt.Exec(k, v, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes a setting. Unknown keys are a no-op.
func (s *SiteSettingStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM site_settings WHERE key = $1`, key)
	return err
}
