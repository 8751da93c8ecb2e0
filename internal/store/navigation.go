// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brightsite/internal/models"
)

// NavStore manages the public navigation bar entries.
type NavStore struct {
	db *sql.DB
}

// NewNavStore creates a new NavStore with the given database connection.
func NewNavStore(db *sql.DB) *NavStore {
	return &NavStore{db: db}
}

// ListVisible returns visible nav items ordered by position. Used on
// every public page render, so callers are expected to cache the result.
func (s *NavStore) ListVisible() ([]models.NavItem, error) {
	return s.list(`WHERE visible`)
}

// ListAll returns every nav item, visible or not, ordered by position.
func (s *NavStore) ListAll() ([]models.NavItem, error) {
	return s.list(``)
}

func (s *NavStore) list(where string) ([]models.NavItem, error) {
	rows, err := s.db.Query(`
		SELECT id, label, href, position, visible, created_at, updated_at
		FROM nav_items ` + where + `
		ORDER BY position, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list nav items: %w", err)
	}
	defer rows.Close()

	var items []models.NavItem
	for rows.Next() {
		var n models.NavItem
		if err := rows.Scan(
			&n.ID, &n.Label, &n.Href, &n.Position, &n.Visible,
			&n.CreatedAt, &n.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan nav item: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Create inserts a nav item at the end of the bar and returns it.
func (s *NavStore) Create(item *models.NavItem) (*models.NavItem, error) {
	result := &models.NavItem{}
	err := s.db.QueryRow(`
		INSERT INTO nav_items (label, href, position, visible)
		VALUES ($1, $2,
		        (SELECT COALESCE(MAX(position), -1) + 1 FROM nav_items),
		        $3)
		RETURNING id, label, href, position, visible, created_at, updated_at
	`, item.Label, item.Href, item.Visible,
	).Scan(
		&result.ID, &result.Label, &result.Href, &result.Position, &result.Visible,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create nav item: %w", err)
	}
	return result, nil
}

// Update modifies a nav item.
func (s *NavStore) Update(item *models.NavItem) error {
	_, err := s.db.Exec(`
		UPDATE nav_items SET
			label = $1, href = $2, position = $3, visible = $4, updated_at = NOW()
		WHERE id = $5
	`, item.Label, item.Href, item.Position, item.Visible, item.ID)
	if err != nil {
		return fmt.Errorf("update nav item: %w", err)
	}
	return nil
}

// Delete removes a nav item by ID.
func (s *NavStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM nav_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete nav item: %w", err)
	}
	return nil
}
