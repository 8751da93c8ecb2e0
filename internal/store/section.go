// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brightsite/internal/models"
)

// SectionStore handles the admin-authored dynamic sections appended
// after a page's structural blocks.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore creates a new SectionStore with the given database connection.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

// ListByPage returns a page's sections ordered by position.
func (s *SectionStore) ListByPage(pageID string) ([]models.Section, error) {
	rows, err := s.db.Query(`
		SELECT id, page_id, type, position, payload, background_color,
		       created_at, updated_at
		FROM sections
		WHERE page_id = $1
		ORDER BY position, created_at
	`, pageID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var items []models.Section
	for rows.Next() {
		var sec models.Section
		if err := rows.Scan(
			&sec.ID, &sec.PageID, &sec.Type, &sec.Position, &sec.Payload,
			&sec.BackgroundColor, &sec.CreatedAt, &sec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, sec)
	}
	return items, rows.Err()
}

// FindByID retrieves a section by its UUID. Returns nil if not found.
func (s *SectionStore) FindByID(id uuid.UUID) (*models.Section, error) {
	sec := &models.Section{}
	err := s.db.QueryRow(`
		SELECT id, page_id, type, position, payload, background_color,
		       created_at, updated_at
		FROM sections WHERE id = $1
	`, id).Scan(
		&sec.ID, &sec.PageID, &sec.Type, &sec.Position, &sec.Payload,
		&sec.BackgroundColor, &sec.CreatedAt, &sec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section by id: %w", err)
	}
	return sec, nil
}

// Create inserts a new section at the end of its page and returns it
// with the generated ID and position.
func (s *SectionStore) Create(sec *models.Section) (*models.Section, error) {
	result := &models.Section{}
	err := s.db.QueryRow(`
		INSERT INTO sections (page_id, type, position, payload, background_color)
		VALUES ($1, $2,
		        (SELECT COALESCE(MAX(position), -1) + 1 FROM sections WHERE page_id = $1),
		        $3, $4)
		RETURNING id, page_id, type, position, payload, background_color,
		          created_at, updated_at
	`, sec.PageID, sec.Type, sec.Payload, sec.BackgroundColor,
	).Scan(
		&result.ID, &result.PageID, &result.Type, &result.Position, &result.Payload,
		&result.BackgroundColor, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return result, nil
}

// Update modifies a section's type, payload and background color.
// Position changes only through Reorder.
func (s *SectionStore) Update(sec *models.Section) error {
	_, err := s.db.Exec(`
		UPDATE sections SET
			type = $1, payload = $2, background_color = $3, updated_at = NOW()
		WHERE id = $4
	`, sec.Type, sec.Payload, sec.BackgroundColor, sec.ID)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// Reorder rewrites the positions of a page's sections to match the
// given id order. IDs not listed keep their rows but sink below the
// listed ones on the next natural sort.
func (s *SectionStore) Reorder(pageID string, ids []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("reorder sections: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE sections SET position = $1, updated_at = NOW()
		WHERE id = $2 AND page_id = $3`)
	if err != nil {
		return fmt.Errorf("reorder sections: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		if _, err := stmt.Exec(i, id, pageID); err != nil {
			return fmt.Errorf("reorder sections: %w", err)
		}
	}
	return tx.Commit()
}

// Delete removes a section by ID.
func (s *SectionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

// CountByPage returns the number of sections on a page.
func (s *SectionStore) CountByPage(pageID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sections WHERE page_id = $1`, pageID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sections: %w", err)
	}
	return count, nil
}
