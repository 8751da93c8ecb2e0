// Copyright (c) 2026 Brightsite Labs <hello@brightsite.dev>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database
// tables and documents, and the core types shared across the platform.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is an admin panel permission level. Editors manage content;
// admins additionally manage settings and users.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// User is an admin panel account. Public visitors never have accounts.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	TOTPSecret   *string   `json:"-"` // nil until 2FA enrolment starts
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Needs2FASetup reports whether the account still has to enrol in 2FA.
// Every account must enrol on first login.
func (u *User) Needs2FASetup() bool {
	return !u.TOTPEnabled
}
