package memberships

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avolkovs/teambase/internal/common"
	"github.com/avolkovs/teambase/internal/dbx"
	"github.com/avolkovs/teambase/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, m *models.WorkspaceMembership) error {

	query :=
		`INSERT INTO workspace_memberships (user_id, workspace_id, role)
         VALUES ($1, $2, $3)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query, m.UserID, m.WorkspaceID, m.Role).Scan(&m.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string, workspaceID string) (*models.WorkspaceMembership, error) {
	query :=
		`SELECT user_id, workspace_id, role, created_at FROM workspace_memberships
		 WHERE user_id = $1 AND workspace_id = $2
		 `

	m := &models.WorkspaceMembership{}
	err := r.db.QueryRowContext(ctx, query, userID, workspaceID).
		Scan(&m.UserID, &m.WorkspaceID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.WorkspaceMembership, error) {
	query :=
		`SELECT user_id, workspace_id, role, created_at FROM workspace_memberships
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.WorkspaceMembership{}
	for rows.Next() {
		var m models.WorkspaceMembership
		if err := rows.Scan(&m.UserID, &m.WorkspaceID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
