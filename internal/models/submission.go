// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionType distinguishes the two public form schemas.
type SubmissionType string

const (
	SubmissionContact    SubmissionType = "contact"
	SubmissionMembership SubmissionType = "membership"
)

// FormSubmission is a visitor-submitted contact or membership request.
// Created once by the public surface and never mutated there; only the
// admin side reads and updates it.
type FormSubmission struct {
	ID        uuid.UUID      `json:"id"`
	Type      SubmissionType `json:"type"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     *string        `json:"phone,omitempty"`
	Message   *string        `json:"message,omitempty"` // contact form
	Goal      *string        `json:"goal,omitempty"`    // membership form
	Notes     *string        `json:"notes,omitempty"`   // membership form
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// IsRead reports whether an admin has already opened the submission.
func (s *FormSubmission) IsRead() bool {
	return s.ReadAt != nil
}
