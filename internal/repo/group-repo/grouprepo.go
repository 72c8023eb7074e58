package grouprepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	query := `
		SELECT id, admin_id, name, current_amount, voting_enabled, created_at
		FROM groups
		WHERE id = $1
	`
	var g domain.Group
	err := r.db.QueryRow(ctx, query, groupID).Scan(&g.ID, &g.AdminID, &g.Name, &g.CurrentAmount, &g.VotingEnabled, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get group", zap.Error(err), zap.Stringer("group_id", groupID))
		return nil, err
	}
	return &g, nil
}

// ListContributorIDs returns members with a positive contribution, the group's voters.
func (r *Repository) ListContributorIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM contributions
		WHERE group_id = $1 AND total_contributed > 0
		ORDER BY user_id
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to list contributors", zap.Error(err), zap.Stringer("group_id", groupID))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan contributor row", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
