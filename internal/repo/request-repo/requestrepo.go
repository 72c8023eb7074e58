package requestrepo

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

const requestColumns = `id, group_id, requester_id, kind, amount, percentage, purpose, status,
	failure_reason, eligible_voters, deadline, created_at, resolved_at, version`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(
		&req.ID, &req.GroupID, &req.RequesterID, &req.Kind, &req.Amount, &req.Percentage, &req.Purpose,
		&req.Status, &req.FailureReason, &req.EligibleVoters, &req.Deadline, &req.CreatedAt,
		&req.ResolvedAt, &req.Version,
	)
	if err != nil {
		return nil, err
	}
	req.Ballots = make(map[uuid.UUID]domain.Ballot)
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) error {
	query := `
		INSERT INTO withdrawal_requests (id, group_id, requester_id, kind, amount, percentage, purpose, status,
			failure_reason, eligible_voters, deadline, created_at, resolved_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.GroupID, req.RequesterID, req.Kind, req.Amount, req.Percentage, req.Purpose, req.Status,
		req.FailureReason, req.EligibleVoters, req.Deadline, req.CreatedAt, req.ResolvedAt, req.Version,
	)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err), zap.Stringer("request_id", req.ID))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM withdrawal_requests WHERE id = $1`, id)
}

// GetForUpdate locks the request row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return r.get(ctx, `SELECT `+requestColumns+` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get withdrawal request", zap.Error(err), zap.Stringer("request_id", id))
		return nil, err
	}
	ballots, err := r.ballots(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	for voter, b := range ballots[id] {
		req.Ballots[voter] = b
	}
	return req, nil
}

func (r *Repository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM withdrawal_requests
		WHERE group_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err), zap.Stringer("group_id", groupID))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	var ids []uuid.UUID
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
		ids = append(ids, req.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return requests, nil
	}

	ballots, err := r.ballots(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		for voter, b := range ballots[requests[i].ID] {
			requests[i].Ballots[voter] = b
		}
	}
	return requests, nil
}

func (r *Repository) ballots(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]map[uuid.UUID]domain.Ballot, error) {
	query := `
		SELECT request_id, voter_id, vote, cast_at
		FROM ballots
		WHERE request_id = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("failed to fetch ballots", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	res := make(map[uuid.UUID]map[uuid.UUID]domain.Ballot, len(ids))
	for rows.Next() {
		var requestID uuid.UUID
		var b domain.Ballot
		if err := rows.Scan(&requestID, &b.VoterID, &b.Vote, &b.CastAt); err != nil {
			zap.L().Error("failed to scan ballot row", zap.Error(err))
			return nil, err
		}
		if res[requestID] == nil {
			res[requestID] = make(map[uuid.UUID]domain.Ballot)
		}
		res[requestID][b.VoterID] = b
	}
	return res, rows.Err()
}

// SaveBallot inserts the voter's ballot or replaces the previous one.
func (r *Repository) SaveBallot(ctx context.Context, requestID uuid.UUID, ballot domain.Ballot) error {
	query := `
		INSERT INTO ballots (request_id, voter_id, vote, cast_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (request_id, voter_id) DO UPDATE SET vote = EXCLUDED.vote, cast_at = EXCLUDED.cast_at
	`
	_, err := r.db.Exec(ctx, query, requestID, ballot.VoterID, ballot.Vote, ballot.CastAt)
	if err != nil {
		zap.L().Error("can't save ballot", zap.Error(err), zap.Stringer("request_id", requestID))
		return err
	}
	return nil
}

// UpdateStatus persists the request's status fields guarded by its version and
// bumps the version on success.
func (r *Repository) UpdateStatus(ctx context.Context, req *domain.WithdrawalRequest) error {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, failure_reason = $2, resolved_at = $3, version = version + 1
		WHERE id = $4 AND version = $5
	`
	tag, err := r.db.Exec(ctx, query, req.Status, req.FailureReason, req.ResolvedAt, req.ID, req.Version)
	if err != nil {
		zap.L().Error("failed to update withdrawal request", zap.Error(err), zap.Stringer("request_id", req.ID))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	req.Version++
	return nil
}

func (r *Repository) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM withdrawal_requests
		WHERE status = 'pending' AND deadline <= $1
		ORDER BY deadline ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't get due withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan due request id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
