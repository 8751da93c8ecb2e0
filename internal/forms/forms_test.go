// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package forms

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"brightsite/internal/database"
	"brightsite/internal/models"
	"brightsite/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brightsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brightsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

type recordingNotifier struct {
	subs []*models.FormSubmission
	err  error
}

func (r *recordingNotifier) Notify(sub *models.FormSubmission) error {
	r.subs = append(r.subs, sub)
	return r.err
}

func testService(t *testing.T, db *sql.DB, n Notifier) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store.NewSubmissionStore(db), n, log)
}

func cleanEmail(t *testing.T, db *sql.DB, email string) {
	t.Helper()
	t.Cleanup(func() { db.Exec("DELETE FROM form_submissions WHERE email = $1", email) })
}

func TestSubmitContact(t *testing.T) {
	db := testDB(t)
	notifier := &recordingNotifier{}
	s := testService(t, db, notifier)

	email := "forms-contact@forms-test.local"
	cleanEmail(t, db, email)

	sub, err := s.SubmitContact(ContactInput{
		Name:    "  Ana Pop  ",
		Email:   email,
		Message: "Do you have morning classes?",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}

	if sub.Name != "Ana Pop" {
		t.Errorf("name not trimmed: %q", sub.Name)
	}
	if sub.Phone != nil {
		t.Error("empty phone should store as NULL")
	}
	if len(notifier.subs) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.subs))
	}
	if notifier.subs[0].ID != sub.ID {
		t.Error("notification carries a different submission")
	}
}

func TestSubmitContactValidation(t *testing.T) {
	db := testDB(t)
	s := testService(t, db, nil)

	tests := []struct {
		name string
		in   ContactInput
	}{
		{"missing name", ContactInput{Email: "a@b.co", Message: "hello there"}},
		{"bad email", ContactInput{Name: "Ana", Email: "not-an-email", Message: "hello there"}},
		{"missing message", ContactInput{Name: "Ana", Email: "a@b.co"}},
		{"message too short", ContactInput{Name: "Ana", Email: "a@b.co", Message: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SubmitContact(tt.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !IsValidationError(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
			if ValidationMessage(err) == "" {
				t.Error("expected a user-facing message")
			}
		})
	}
}

func TestSubmitMembership(t *testing.T) {
	db := testDB(t)
	s := testService(t, db, nil)

	email := "forms-membership@forms-test.local"
	cleanEmail(t, db, email)

	sub, err := s.SubmitMembership(MembershipInput{
		Name:  "Ion Ionescu",
		Email: email,
		Goal:  "muscle-gain",
		Notes: "Available evenings.",
	})
	if err != nil {
		t.Fatalf("SubmitMembership: %v", err)
	}
	if sub.Type != models.SubmissionMembership {
		t.Errorf("type: got %q", sub.Type)
	}
	if sub.Goal == nil || *sub.Goal != "muscle-gain" {
		t.Errorf("goal: got %v", sub.Goal)
	}
	if sub.Message != nil {
		t.Error("membership submission must not set the contact message field")
	}
}

func TestSubmitMembershipRejectsUnknownGoal(t *testing.T) {
	db := testDB(t)
	s := testService(t, db, nil)

	_, err := s.SubmitMembership(MembershipInput{
		Name:  "Ion",
		Email: "goal@forms-test.local",
		Goal:  "become-invisible",
	})
	if err == nil {
		t.Fatal("expected validation error for unknown goal")
	}
	if !IsValidationError(err) {
		t.Errorf("expected a validation error, got %v", err)
	}
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	db := testDB(t)
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	s := testService(t, db, notifier)

	email := "forms-notify-fail@forms-test.local"
	cleanEmail(t, db, email)

	sub, err := s.SubmitContact(ContactInput{
		Name:    "Ana",
		Email:   email,
		Message: "Notification failure must not lose my message.",
	})
	if err != nil {
		t.Fatalf("SubmitContact: %v", err)
	}

	// The submission is stored regardless.
	found, err := store.NewSubmissionStore(db).FindByID(sub.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Error("submission lost when the notifier failed")
	}
}

func TestIsValidationErrorOtherErrors(t *testing.T) {
	if IsValidationError(errors.New("boom")) {
		t.Error("plain errors are not validation errors")
	}
	if IsValidationError(nil) {
		t.Error("nil is not a validation error")
	}
}
