package ledgerrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
)

// Repository holds the balance rows mutated by the ledger service.
// Lock* methods must run inside a transaction.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) LockGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	query := `
		SELECT id, admin_id, name, current_amount, voting_enabled, created_at
		FROM groups
		WHERE id = $1
		FOR UPDATE
	`
	var g domain.Group
	err := r.db.QueryRow(ctx, query, groupID).Scan(&g.ID, &g.AdminID, &g.Name, &g.CurrentAmount, &g.VotingEnabled, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock group", zap.Error(err), zap.Stringer("group_id", groupID))
		return nil, err
	}
	return &g, nil
}

func (r *Repository) SetGroupAmount(ctx context.Context, groupID uuid.UUID, amount int64) error {
	query := `UPDATE groups SET current_amount = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, amount, groupID)
	if err != nil {
		zap.L().Error("failed to update group amount", zap.Error(err), zap.Stringer("group_id", groupID))
		return err
	}
	return nil
}

// LockWallets creates missing wallets and locks all of them ordered by user id.
func (r *Repository) LockWallets(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	insert := `
		INSERT INTO wallets (user_id, balance)
		SELECT unnest($1::uuid[]), 0
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, insert, userIDs); err != nil {
		zap.L().Error("failed to ensure wallets", zap.Error(err))
		return nil, err
	}

	query := `
		SELECT user_id, balance
		FROM wallets
		WHERE user_id = ANY($1)
		ORDER BY user_id
		FOR UPDATE
	`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		zap.L().Error("failed to lock wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	balances := make(map[uuid.UUID]int64, len(userIDs))
	for rows.Next() {
		var id uuid.UUID
		var balance int64
		if err := rows.Scan(&id, &balance); err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		balances[id] = balance
	}
	return balances, rows.Err()
}

func (r *Repository) SetWalletBalance(ctx context.Context, userID uuid.UUID, balance int64) error {
	query := `UPDATE wallets SET balance = $1, updated_at = NOW() WHERE user_id = $2`
	_, err := r.db.Exec(ctx, query, balance, userID)
	if err != nil {
		zap.L().Error("failed to update wallet balance", zap.Error(err), zap.Stringer("user_id", userID))
		return err
	}
	return nil
}

func (r *Repository) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
		SELECT user_id, balance, updated_at
		FROM wallets
		WHERE user_id = $1
	`
	var w domain.Wallet
	err := r.db.QueryRow(ctx, query, userID).Scan(&w.UserID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err), zap.Stringer("user_id", userID))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) Contributions(ctx context.Context, groupID uuid.UUID) ([]domain.Contribution, error) {
	return r.contributions(ctx, `
		SELECT group_id, user_id, total_contributed
		FROM contributions
		WHERE group_id = $1 AND total_contributed > 0
		ORDER BY user_id
	`, groupID)
}

func (r *Repository) LockContributions(ctx context.Context, groupID uuid.UUID) ([]domain.Contribution, error) {
	return r.contributions(ctx, `
		SELECT group_id, user_id, total_contributed
		FROM contributions
		WHERE group_id = $1 AND total_contributed > 0
		ORDER BY user_id
		FOR UPDATE
	`, groupID)
}

func (r *Repository) contributions(ctx context.Context, query string, groupID uuid.UUID) ([]domain.Contribution, error) {
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("failed to fetch contributions", zap.Error(err), zap.Stringer("group_id", groupID))
		return nil, err
	}
	defer rows.Close()

	var res []domain.Contribution
	for rows.Next() {
		var c domain.Contribution
		if err := rows.Scan(&c.GroupID, &c.UserID, &c.TotalContributed); err != nil {
			zap.L().Error("failed to scan contribution row", zap.Error(err))
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// AddContribution adds a positive amount to a member's running total,
// creating the row on first contribution.
func (r *Repository) AddContribution(ctx context.Context, groupID, userID uuid.UUID, delta int64) error {
	query := `
		INSERT INTO contributions (group_id, user_id, total_contributed)
		VALUES ($1, $2, $3)
		ON CONFLICT (group_id, user_id)
		DO UPDATE SET total_contributed = contributions.total_contributed + EXCLUDED.total_contributed
	`
	_, err := r.db.Exec(ctx, query, groupID, userID, delta)
	if err != nil {
		zap.L().Error("failed to adjust contribution", zap.Error(err), zap.Stringer("group_id", groupID), zap.Stringer("user_id", userID))
		return err
	}
	return nil
}

// ReduceContribution subtracts amount from an existing contribution row. The
// row must exist and hold at least amount.
func (r *Repository) ReduceContribution(ctx context.Context, groupID, userID uuid.UUID, amount int64) error {
	query := `
		UPDATE contributions
		SET total_contributed = total_contributed - $3
		WHERE group_id = $1 AND user_id = $2 AND total_contributed >= $3
	`
	tag, err := r.db.Exec(ctx, query, groupID, userID, amount)
	if err != nil {
		zap.L().Error("failed to reduce contribution", zap.Error(err), zap.Stringer("group_id", groupID), zap.Stringer("user_id", userID))
		return err
	}
	if tag.RowsAffected() != 1 {
		zap.L().Error("contribution row missing or too small to reduce",
			zap.Stringer("group_id", groupID), zap.Stringer("user_id", userID), zap.Int64("amount", amount))
		return domain.ErrInvariantViolation
	}
	return nil
}

func (r *Repository) InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (operation_id, account_type, account_id, delta, reason)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, e := range entries {
		if _, err := r.db.Exec(ctx, query, e.OperationID, e.AccountType, e.AccountID, e.Delta, e.Reason); err != nil {
			zap.L().Error("failed to insert ledger entry", zap.Error(err), zap.Stringer("operation_id", e.OperationID))
			return err
		}
	}
	return nil
}
