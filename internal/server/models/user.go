// Package models holds the persistent record types of the accounts service.
package models

import "time"

// Role is a user's global role. RoleAdmin is granted only to the first user
// ever registered (the bootstrap admin).
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is an account record. PasswordHash never leaves the service boundary:
// it is excluded from JSON and blanked by the service layer before a user is
// returned to a caller.
type User struct {
	ID           string                `json:"id"`
	Email        string                `json:"email"`
	FullName     string                `json:"full_name"`
	PasswordHash string                `json:"-"`
	Role         Role                  `json:"role"`
	IsAdmin      bool                  `json:"is_admin"`
	Workspaces   []WorkspaceMembership `json:"workspaces"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}
