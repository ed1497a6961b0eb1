// Package memberships persists per-workspace role records. The authorization
// resolver only reads them; rows are written by workspace management flows.
package memberships

import (
	"context"

	"github.com/avolkovs/teambase/internal/server/models"
)

type Repository interface {
	Add(ctx context.Context, m *models.WorkspaceMembership) error
	Get(ctx context.Context, userID string, workspaceID string) (*models.WorkspaceMembership, error)
	ListByUser(ctx context.Context, userID string) ([]models.WorkspaceMembership, error)
}
