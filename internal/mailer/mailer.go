// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package mailer sends form submission notifications over SMTP. Mail
// settings live in the site_settings table so admins can change them
// without a restart; they are re-read on every send.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"brightsite/internal/models"
	"brightsite/internal/store"
)

// Mailer delivers submission notifications to the configured address.
type Mailer struct {
	settings *store.SiteSettingStore

	// send is swappable in tests. Defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates a mailer reading its configuration from site settings.
func New(settings *store.SiteSettingStore) *Mailer {
	return &Mailer{settings: settings, send: smtp.SendMail}
}

// Notify sends a notification for a submission. Returns nil without
// sending when notifications are disabled or incompletely configured.
func (m *Mailer) Notify(sub *models.FormSubmission) error {
	all, err := m.settings.All()
	if err != nil {
		return fmt.Errorf("load mail settings: %w", err)
	}
	cfg := models.EmailSettingsFrom(all)
	if !cfg.Enabled {
		return nil
	}
	if cfg.Host == "" || cfg.From == "" || cfg.To == "" {
		return fmt.Errorf("mail notifications enabled but not fully configured")
	}

	subject := Substitute(cfg.Subject, sub)
	body := Substitute(cfg.Body, sub)

	msg := buildMessage(cfg.From, cfg.To, subject, body)

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	if err := m.send(addr, auth, cfg.From, []string{cfg.To}, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// Substitute replaces the {{name}}-style placeholders in subject and
// body templates with submission fields. Unknown placeholders are left
// as-is.
func Substitute(tmpl string, sub *models.FormSubmission) string {
	r := strings.NewReplacer(
		"{{name}}", sub.Name,
		"{{email}}", sub.Email,
		"{{type}}", string(sub.Type),
		"{{phone}}", deref(sub.Phone),
		"{{message}}", messageText(sub),
	)
	return r.Replace(tmpl)
}

// messageText picks the free-text field that fits the submission type:
// the message for contact, goal plus notes for membership.
func messageText(sub *models.FormSubmission) string {
	if sub.Type == models.SubmissionMembership {
		parts := []string{}
		if g := deref(sub.Goal); g != "" {
			parts = append(parts, "Goal: "+g)
		}
		if n := deref(sub.Notes); n != "" {
			parts = append(parts, n)
		}
		return strings.Join(parts, "\n")
	}
	return deref(sub.Message)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// sanitizeHeader strips CR and LF so visitor input can never inject
// additional mail headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
