// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package mailer

import (
	"strings"
	"testing"

	"brightsite/internal/models"
)

func strptr(s string) *string { return &s }

func TestSubstituteContact(t *testing.T) {
	sub := &models.FormSubmission{
		Type:    models.SubmissionContact,
		Name:    "Ana Pop",
		Email:   "ana@example.com",
		Phone:   strptr("+40 700 111 222"),
		Message: strptr("When are you open?"),
	}

	got := Substitute("New {{type}} submission from {{name}} <{{email}}>", sub)
	want := "New contact submission from Ana Pop <ana@example.com>"
	if got != want {
		t.Errorf("subject: got %q, want %q", got, want)
	}

	body := Substitute("Phone: {{phone}}\n\n{{message}}", sub)
	if !strings.Contains(body, "+40 700 111 222") {
		t.Error("phone placeholder not substituted")
	}
	if !strings.Contains(body, "When are you open?") {
		t.Error("message placeholder not substituted")
	}
}

func TestSubstituteMembershipMessage(t *testing.T) {
	sub := &models.FormSubmission{
		Type:  models.SubmissionMembership,
		Name:  "Ion",
		Email: "ion@example.com",
		Goal:  strptr("endurance"),
		Notes: strptr("Evenings only."),
	}

	body := Substitute("{{message}}", sub)
	if !strings.Contains(body, "Goal: endurance") {
		t.Errorf("goal missing from membership message: %q", body)
	}
	if !strings.Contains(body, "Evenings only.") {
		t.Errorf("notes missing from membership message: %q", body)
	}
}

func TestSubstituteNilOptionalFields(t *testing.T) {
	sub := &models.FormSubmission{
		Type:  models.SubmissionContact,
		Name:  "Bare",
		Email: "bare@example.com",
	}

	got := Substitute("phone={{phone}} msg={{message}}", sub)
	if got != "phone= msg=" {
		t.Errorf("got %q", got)
	}
}

func TestSubstituteLeavesUnknownPlaceholders(t *testing.T) {
	sub := &models.FormSubmission{Type: models.SubmissionContact, Name: "X", Email: "x@x"}
	got := Substitute("{{name}} {{nope}}", sub)
	if got != "X {{nope}}" {
		t.Errorf("got %q", got)
	}
}

func TestSanitizeHeaderStripsNewlines(t *testing.T) {
	got := sanitizeHeader("hello\r\nBcc: evil@example.com")
	if strings.ContainsAny(got, "\r\n") {
		t.Errorf("header still contains newlines: %q", got)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@site", "to@site", "Subject line", "Body text"))
	for _, want := range []string{
		"From: from@site\r\n",
		"To: to@site\r\n",
		"Subject: Subject line\r\n",
		"\r\n\r\nBody text",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
