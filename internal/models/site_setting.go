// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"time"
)

// Well-known settings keys. The three selection keys are the canonical
// durable location for the active theme/template ids; LegacyWebsiteKey
// is an older standalone location read only as a migration source.
const (
	SettingColorTheme      = "colorTheme"
	SettingDesignTemplate  = "designTemplate"
	SettingWebsiteTemplate = "websiteTemplate"
	LegacyWebsiteKey       = "website-template"

	SettingSiteName    = "siteName"
	SettingSiteTagline = "siteTagline"
	SettingAddress     = "address"
	SettingPhone       = "phone"
	SettingEmail       = "email"
)

// SiteSetting represents a single configuration key-value pair.
type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings is a convenience map for accessing settings by key.
type SiteSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s SiteSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}

// EmailSettings is the notification mail configuration, assembled from
// the email.* settings keys.
type EmailSettings struct {
	Enabled  bool   `json:"enabled"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"-"`
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"` // supports {{name}}, {{email}}, {{type}}
	Body     string `json:"body"`    // supports {{name}}, {{email}}, {{phone}}, {{message}}
}

// EmailSettingsFrom assembles EmailSettings from the settings map.
// Missing keys leave zero values; Enabled defaults to false so a blank
// install never attempts delivery.
func EmailSettingsFrom(s SiteSettings) EmailSettings {
	port, _ := strconv.Atoi(s.Get("email.port", "587"))
	return EmailSettings{
		Enabled:  s.Get("email.enabled", "false") == "true",
		Host:     s.Get("email.host", ""),
		Port:     port,
		Username: s.Get("email.username", ""),
		Password: s.Get("email.password", ""),
		From:     s.Get("email.from", ""),
		To:       s.Get("email.to", ""),
		Subject:  s.Get("email.subject", "New {{type}} submission from {{name}}"),
		Body:     s.Get("email.body", "Name: {{name}}\nEmail: {{email}}\nPhone: {{phone}}\n\n{{message}}"),
	}
}
