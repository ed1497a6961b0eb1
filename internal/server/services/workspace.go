package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/teambase/internal/common"
	"github.com/avolkovs/teambase/internal/server/models"
	"github.com/avolkovs/teambase/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// WorkspaceService answers resource-scoped authorization questions over
// workspace membership records.
type WorkspaceService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewWorkspaceService(db *sql.DB, m repomanager.RepositoryManager) *WorkspaceService {
	return &WorkspaceService{db: db, repos: m}
}

// IsAdmin reports whether user has administrative standing in the workspace:
// either the global admin flag, or a membership whose role is admin or owner.
// "Not admin" is a false result, never an error; only a malformed workspace
// id (common.ErrValidation) or a store failure (common.ErrStorage) fails.
func (s *WorkspaceService) IsAdmin(ctx context.Context, user *models.User, workspaceID string) (bool, error) {

	if workspaceID == "" {
		return false, fmt.Errorf("%w: workspace id required", common.ErrValidation)
	}
	if _, err := uuid.Parse(workspaceID); err != nil {
		return false, fmt.Errorf("%w: malformed workspace id", common.ErrValidation)
	}

	if user.IsAdmin {
		return true, nil
	}

	m, err := s.repos.Memberships(s.db).Get(ctx, user.ID, workspaceID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return m.Role.Admin(), nil
}

// AddMember records a membership. The authorization resolver itself only
// reads; this write path exists for workspace management collaborators.
func (s *WorkspaceService) AddMember(ctx context.Context, userID, workspaceID string, role models.WorkspaceRole) (*models.WorkspaceMembership, error) {

	if _, err := uuid.Parse(workspaceID); err != nil {
		return nil, fmt.Errorf("%w: malformed workspace id", common.ErrValidation)
	}

	m := &models.WorkspaceMembership{UserID: userID, WorkspaceID: workspaceID, Role: role}
	if err := s.repos.Memberships(s.db).Add(ctx, m); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: already a member", common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorage, err)
	}

	return m, nil
}
