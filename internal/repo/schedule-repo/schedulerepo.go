package schedulerepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM scheduled_contributions
		WHERE active AND next_run_at <= $1
		ORDER BY next_run_at
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("failed to list due contributions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("failed to scan scheduled contribution id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// LockDue locks the schedule when it is still due. Rows already taken by another
// worker are skipped and reported as nil.
func (r *Repository) LockDue(ctx context.Context, id uuid.UUID, now time.Time) (*domain.ScheduledContribution, error) {
	query := `
		SELECT id, group_id, user_id, amount, frequency, next_run_at, active, failure_count, last_run_at
		FROM scheduled_contributions
		WHERE id = $1 AND active AND next_run_at <= $2
		FOR UPDATE SKIP LOCKED
	`
	var s domain.ScheduledContribution
	err := r.db.QueryRow(ctx, query, id, now).Scan(
		&s.ID, &s.GroupID, &s.UserID, &s.Amount, &s.Frequency, &s.NextRunAt, &s.Active, &s.FailureCount, &s.LastRunAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock scheduled contribution", zap.Error(err), zap.Stringer("schedule_id", id))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Save(ctx context.Context, s *domain.ScheduledContribution) error {
	query := `
		UPDATE scheduled_contributions
		SET next_run_at = $1, active = $2, failure_count = $3, last_run_at = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, s.NextRunAt, s.Active, s.FailureCount, s.LastRunAt, s.ID)
	if err != nil {
		zap.L().Error("failed to save scheduled contribution", zap.Error(err), zap.Stringer("schedule_id", s.ID))
		return err
	}
	return nil
}
