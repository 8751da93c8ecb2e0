// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package forms validates and processes the two public forms. A
// submission is persisted first; the notification mail is best-effort
// and never fails the request.
package forms

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"brightsite/internal/models"
	"brightsite/internal/store"
)

// ContactInput is the contact form as submitted.
type ContactInput struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email,max=254"`
	Phone   string `validate:"omitempty,max=32"`
	Message string `validate:"required,min=5,max=4000"`
}

// MembershipInput is the join form as submitted.
type MembershipInput struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email,max=254"`
	Phone string `validate:"omitempty,max=32"`
	Goal  string `validate:"omitempty,oneof=weight-loss muscle-gain endurance general-fitness"`
	Notes string `validate:"omitempty,max=4000"`
}

// Notifier delivers a notification for a stored submission. Satisfied
// by mailer.Mailer.
type Notifier interface {
	Notify(sub *models.FormSubmission) error
}

// Service validates, stores, and announces form submissions.
type Service struct {
	validate    *validator.Validate
	submissions *store.SubmissionStore
	notifier    Notifier
	log         *slog.Logger
}

// New creates a form service. notifier may be nil to disable mail.
func New(submissions *store.SubmissionStore, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		validate:    validator.New(),
		submissions: submissions,
		notifier:    notifier,
		log:         log,
	}
}

// SubmitContact validates and stores a contact form submission.
func (s *Service) SubmitContact(in ContactInput) (*models.FormSubmission, error) {
	trim(&in.Name, &in.Email, &in.Phone, &in.Message)
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	sub := &models.FormSubmission{
		Type:    models.SubmissionContact,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   optional(in.Phone),
		Message: optional(in.Message),
	}
	return s.finish(sub)
}

// SubmitMembership validates and stores a membership request.
func (s *Service) SubmitMembership(in MembershipInput) (*models.FormSubmission, error) {
	trim(&in.Name, &in.Email, &in.Phone, &in.Goal, &in.Notes)
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	sub := &models.FormSubmission{
		Type:  models.SubmissionMembership,
		Name:  in.Name,
		Email: in.Email,
		Phone: optional(in.Phone),
		Goal:  optional(in.Goal),
		Notes: optional(in.Notes),
	}
	return s.finish(sub)
}

func (s *Service) finish(sub *models.FormSubmission) (*models.FormSubmission, error) {
	stored, err := s.submissions.Create(sub)
	if err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(stored); err != nil {
			s.log.Warn("submission notification failed",
				"type", stored.Type, "id", stored.ID, "error", err)
		}
	}
	return stored, nil
}

// IsValidationError reports whether an error came from input
// validation rather than storage, so handlers can answer 422 vs 500.
func IsValidationError(err error) bool {
	var verr validator.ValidationErrors
	return errors.As(err, &verr)
}

// ValidationMessage renders a one-line, user-facing description of the
// first validation failure.
func ValidationMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) || len(verr) == 0 {
		return "Invalid input."
	}
	fe := verr[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "Please fill in the " + field + " field."
	case "email":
		return "Please enter a valid email address."
	case "min":
		return "The " + field + " field is too short."
	case "max":
		return "The " + field + " field is too long."
	case "oneof":
		return "Please pick one of the listed goals."
	default:
		return "The " + field + " field is invalid."
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
