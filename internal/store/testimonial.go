// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brightsite/internal/models"
)

// TestimonialStore manages the customer quotes rendered by testimonial
// sections.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

// ListPublished returns published testimonials ordered by position.
func (s *TestimonialStore) ListPublished() ([]models.Testimonial, error) {
	return s.list(`WHERE published`)
}

// ListAll returns every testimonial, published or not, ordered by position.
func (s *TestimonialStore) ListAll() ([]models.Testimonial, error) {
	return s.list(``)
}

func (s *TestimonialStore) list(where string) ([]models.Testimonial, error) {
	rows, err := s.db.Query(`
		SELECT id, author, role, quote, rating, published, position,
		       created_at, updated_at
		FROM testimonials ` + where + `
		ORDER BY position, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	var items []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(
			&t.ID, &t.Author, &t.Role, &t.Quote, &t.Rating, &t.Published,
			&t.Position, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// Create inserts a testimonial at the end of the list and returns it.
func (s *TestimonialStore) Create(t *models.Testimonial) (*models.Testimonial, error) {
	result := &models.Testimonial{}
	err := s.db.QueryRow(`
		INSERT INTO testimonials (author, role, quote, rating, published, position)
		VALUES ($1, $2, $3, $4, $5,
		        (SELECT COALESCE(MAX(position), -1) + 1 FROM testimonials))
		RETURNING id, author, role, quote, rating, published, position,
		          created_at, updated_at
	`, t.Author, t.Role, t.Quote, t.Rating, t.Published,
	).Scan(
		&result.ID, &result.Author, &result.Role, &result.Quote, &result.Rating,
		&result.Published, &result.Position, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies a testimonial.
func (s *TestimonialStore) Update(t *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			author = $1, role = $2, quote = $3, rating = $4,
			published = $5, position = $6, updated_at = NOW()
		WHERE id = $7
	`, t.Author, t.Role, t.Quote, t.Rating, t.Published, t.Position, t.ID)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
