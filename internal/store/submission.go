// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"brightsite/internal/models"
)

// SubmissionStore persists visitor form submissions.
type SubmissionStore struct {
	db *sql.DB
}

// NewSubmissionStore creates a new SubmissionStore with the given database connection.
func NewSubmissionStore(db *sql.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// Create inserts a submission and returns it with the generated ID.
func (s *SubmissionStore) Create(sub *models.FormSubmission) (*models.FormSubmission, error) {
	result := &models.FormSubmission{}
	err := s.db.QueryRow(`
		INSERT INTO form_submissions (type, name, email, phone, message, goal, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, type, name, email, phone, message, goal, notes, read_at, created_at
	`, sub.Type, sub.Name, sub.Email, sub.Phone, sub.Message, sub.Goal, sub.Notes,
	).Scan(
		&result.ID, &result.Type, &result.Name, &result.Email, &result.Phone,
		&result.Message, &result.Goal, &result.Notes, &result.ReadAt, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return result, nil
}

// List returns all submissions, newest first.
func (s *SubmissionStore) List() ([]models.FormSubmission, error) {
	rows, err := s.db.Query(`
		SELECT id, type, name, email, phone, message, goal, notes, read_at, created_at
		FROM form_submissions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var items []models.FormSubmission
	for rows.Next() {
		var sub models.FormSubmission
		if err := rows.Scan(
			&sub.ID, &sub.Type, &sub.Name, &sub.Email, &sub.Phone,
			&sub.Message, &sub.Goal, &sub.Notes, &sub.ReadAt, &sub.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		items = append(items, sub)
	}
	return items, rows.Err()
}

// FindByID retrieves a submission by its UUID. Returns nil if not found.
func (s *SubmissionStore) FindByID(id uuid.UUID) (*models.FormSubmission, error) {
	sub := &models.FormSubmission{}
	err := s.db.QueryRow(`
		SELECT id, type, name, email, phone, message, goal, notes, read_at, created_at
		FROM form_submissions WHERE id = $1
	`, id).Scan(
		&sub.ID, &sub.Type, &sub.Name, &sub.Email, &sub.Phone,
		&sub.Message, &sub.Goal, &sub.Notes, &sub.ReadAt, &sub.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find submission by id: %w", err)
	}
	return sub, nil
}

// MarkRead stamps a submission as read. Already-read submissions keep
// their original read timestamp.
func (s *SubmissionStore) MarkRead(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE form_submissions SET read_at = NOW()
		WHERE id = $1 AND read_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("mark submission read: %w", err)
	}
	return nil
}

// Delete removes a submission by ID.
func (s *SubmissionStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM form_submissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}
	return nil
}

// CountUnread returns the number of submissions no admin has opened yet.
func (s *SubmissionStore) CountUnread() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM form_submissions WHERE read_at IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread submissions: %w", err)
	}
	return count, nil
}
