// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"brightsite/internal/models"
)

// PageContentStore handles the per-page content documents. Each fixed
// page owns one JSONB document; the shape is open-ended on the wire
// and decoded into models.PageContent on read.
type PageContentStore struct {
	db *sql.DB
}

// NewPageContentStore creates a new PageContentStore with the given database connection.
func NewPageContentStore(db *sql.DB) *PageContentStore {
	return &PageContentStore{db: db}
}

// Find retrieves the content document for a page. Returns nil if the
// page has no document yet.
func (s *PageContentStore) Find(pageID string) (*models.PageDocument, error) {
	var raw []byte
	doc := &models.PageDocument{PageID: pageID}
	err := s.db.QueryRow(`
		SELECT data, updated_at FROM page_content WHERE page_id = $1
	`, pageID).Scan(&raw, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page content: %w", err)
	}

	content := &models.PageContent{}
	if err := json.Unmarshal(raw, content); err != nil {
		return nil, fmt.Errorf("decode page content %q: %w", pageID, err)
	}
	doc.Content = content
	return doc, nil
}

// Save upserts the content document for a page.
func (s *PageContentStore) Save(pageID string, content *models.PageContent) error {
	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode page content %q: %w", pageID, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO page_content (page_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (page_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, pageID, raw, time.Now())
	if err != nil {
		return fmt.Errorf("save page content: %w", err)
	}
	return nil
}

// SaveRaw upserts a page's document from raw JSON without decoding it
// first. Used by the admin editor, which round-trips the document as
// submitted so unrecognized blocks are preserved.
func (s *PageContentStore) SaveRaw(pageID string, raw json.RawMessage) error {
	if !json.Valid(raw) {
		return fmt.Errorf("save page content %q: invalid JSON", pageID)
	}
	_, err := s.db.Exec(`
		INSERT INTO page_content (page_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (page_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, pageID, []byte(raw), time.Now())
	if err != nil {
		return fmt.Errorf("save page content: %w", err)
	}
	return nil
}

// FindRaw retrieves a page's document as stored JSON. Returns nil if
// the page has no document.
func (s *PageContentStore) FindRaw(pageID string) (json.RawMessage, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT data FROM page_content WHERE page_id = $1`, pageID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page content: %w", err)
	}
	return raw, nil
}

// PageIDs returns the ids of every page that has a document, sorted.
func (s *PageContentStore) PageIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT page_id FROM page_content ORDER BY page_id`)
	if err != nil {
		return nil, fmt.Errorf("list page ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan page id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
