// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user, starter page-content documents, a few dynamic sections,
// and navigation entries. Each group is created only when its table is
// empty, so repeated runs are no-ops.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedPages(db); err != nil {
		return err
	}
	if err := seedSections(db); err != nil {
		return err
	}
	if err := seedNavigation(db); err != nil {
		return err
	}
	if err := seedTestimonials(db); err != nil {
		return err
	}
	return nil
}

func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// 2FA starts disabled; the admin must enroll on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@brightsite.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@brightsite.local",
		"password", "admin",
	)
	return nil
}

func seedPages(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM page_content").Scan(&count); err != nil {
		return fmt.Errorf("seed check page_content: %w", err)
	}
	if count > 0 {
		return nil
	}

	pages := map[string]string{
		"home": `{
			"hero": {"title": "Train With Purpose", "subtitle": "A modern club for every level.", "primaryLabel": "Join Now", "primaryHref": "/join", "secondaryLabel": "Our Services", "secondaryHref": "/services"},
			"intro": {"title": "Welcome", "body": "We have helped our community move better for over a decade."},
			"services": {"title": "What We Offer", "items": [{"icon": "dumbbell", "title": "Personal Training", "description": "One-on-one coaching tailored to your goals."}, {"icon": "users", "title": "Group Classes", "description": "High-energy sessions, all levels welcome."}]},
			"stats": {"title": "By The Numbers", "items": [{"number": "1200+", "label": "Members"}, {"number": "14", "label": "Coaches"}, {"number": "30+", "label": "Weekly Classes"}]},
			"cta": {"title": "Ready to start?", "body": "Your first session is on us.", "buttonLabel": "Get Started", "buttonHref": "/join"}
		}`,
		"about": `{
			"hero": {"title": "About Us", "subtitle": "Who we are and why we do it."},
			"intro": {"title": "Our Story", "body": "Founded in 2012, we grew from a garage gym into a community hub."}
		}`,
		"services": `{
			"hero": {"title": "Services", "subtitle": "Everything you need under one roof."},
			"services": {"title": "Programs", "items": [{"icon": "dumbbell", "title": "Strength", "description": "Barbell fundamentals to advanced lifting."}, {"icon": "heart", "title": "Conditioning", "description": "Build an engine that lasts."}]}
		}`,
		"contact": `{
			"hero": {"title": "Contact", "subtitle": "We usually reply within one business day."},
			"form": {"title": "Send us a message", "description": "Questions, feedback, partnerships — all welcome."}
		}`,
		"join": `{
			"hero": {"title": "Join", "subtitle": "Become a member today."},
			"benefits": {"title": "Membership includes", "items": ["Unlimited classes", "Free onboarding session", "Member events"]},
			"form": {"title": "Apply for membership", "description": "Tell us about your goals and we will match you with a coach."}
		}`,
	}

	for pageID, data := range pages {
		if _, err := db.Exec(`INSERT INTO page_content (page_id, data) VALUES ($1, $2)`, pageID, data); err != nil {
			return fmt.Errorf("seed page %s: %w", pageID, err)
		}
	}

	slog.Info("database seeded with starter pages", "count", len(pages))
	return nil
}

func seedSections(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sections").Scan(&count); err != nil {
		return fmt.Errorf("seed check sections: %w", err)
	}
	if count > 0 {
		return nil
	}

	type row struct {
		pageID  string
		typ     string
		pos     int
		payload string
	}
	rows := []row{
		{"home", "testimonials", 0, `{"title": "What our members say"}`},
		{"about", "image-text", 0, `{"title": "The Space", "content": "800 square meters of training floor.", "image": "/static/img/space.jpg", "imagePosition": "left"}`},
		{"about", "stats", 1, `{"title": "Milestones", "stats": [{"number": "12", "label": "Years"}, {"number": "3", "label": "Locations"}]}`},
		{"why", "text", 0, `{"title": "Why choose us", "content": "Coaching first. Equipment second. Community always."}`},
	}

	for _, r := range rows {
		_, err := db.Exec(`
			INSERT INTO sections (page_id, type, position, payload)
			VALUES ($1, $2, $3, $4)
		`, r.pageID, r.typ, r.pos, r.payload)
		if err != nil {
			return fmt.Errorf("seed section %s/%s: %w", r.pageID, r.typ, err)
		}
	}

	slog.Info("database seeded with starter sections", "count", len(rows))
	return nil
}

func seedNavigation(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM nav_items").Scan(&count); err != nil {
		return fmt.Errorf("seed check nav_items: %w", err)
	}
	if count > 0 {
		return nil
	}

	items := []struct {
		label string
		href  string
	}{
		{"Home", "/"},
		{"About", "/about"},
		{"Services", "/services"},
		{"Why Us", "/why"},
		{"Contact", "/contact"},
		{"Join", "/join"},
	}

	for i, item := range items {
		_, err := db.Exec(`
			INSERT INTO nav_items (label, href, position, visible)
			VALUES ($1, $2, $3, TRUE)
		`, item.label, item.href, i)
		if err != nil {
			return fmt.Errorf("seed nav item %s: %w", item.label, err)
		}
	}
	return nil
}

func seedTestimonials(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM testimonials").Scan(&count); err != nil {
		return fmt.Errorf("seed check testimonials: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := []struct {
		author, role, quote string
		rating              int
	}{
		{"Dana K.", "Member since 2022", "The coaching completely changed how I train.", 5},
		{"Marcus T.", "Member since 2023", "Best community I have been part of.", 5},
		{"Ines R.", "Member since 2021", "I came for the classes and stayed for the people.", 4},
	}

	for i, r := range rows {
		_, err := db.Exec(`
			INSERT INTO testimonials (author, role, quote, rating, published, position)
			VALUES ($1, $2, $3, $4, TRUE, $5)
		`, r.author, r.role, r.quote, r.rating, i)
		if err != nil {
			return fmt.Errorf("seed testimonial %s: %w", r.author, err)
		}
	}
	return nil
}
