package models

import "time"

// WorkspaceRole is the role a user holds inside a single workspace.
type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "owner"
	WorkspaceRoleAdmin  WorkspaceRole = "admin"
	WorkspaceRoleMember WorkspaceRole = "member"
)

// Admin reports whether the role carries workspace-level admin rights.
func (r WorkspaceRole) Admin() bool {
	return r == WorkspaceRoleOwner || r == WorkspaceRoleAdmin
}

// WorkspaceMembership associates a user with a workspace and a role within it.
type WorkspaceMembership struct {
	UserID      string        `json:"user_id"`
	WorkspaceID string        `json:"workspace_id"`
	Role        WorkspaceRole `json:"role"`
	CreatedAt   time.Time     `json:"created_at"`
}
