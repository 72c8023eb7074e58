// Package ledgerservice moves money between group pools and member wallets.
// Every operation re-reads balances under row locks and writes a balanced set
// of ledger entries in the caller's transaction.
package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
	"github.com/GlebRadaev/groupvault/pkg/metrics"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type Repo interface {
	LockGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error)
	SetGroupAmount(ctx context.Context, groupID uuid.UUID, amount int64) error
	LockWallets(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	SetWalletBalance(ctx context.Context, userID uuid.UUID, balance int64) error
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Contributions(ctx context.Context, groupID uuid.UUID) ([]domain.Contribution, error)
	LockContributions(ctx context.Context, groupID uuid.UUID) ([]domain.Contribution, error)
	AddContribution(ctx context.Context, groupID, userID uuid.UUID, delta int64) error
	ReduceContribution(ctx context.Context, groupID, userID uuid.UUID, amount int64) error
	InsertEntries(ctx context.Context, entries []domain.LedgerEntry) error
}

type Options struct {
	// WithdrawalFee is kept by the platform on every withdrawal, in kobo.
	WithdrawalFee int64
	// Strict makes invariant violations panic instead of failing the operation.
	Strict bool
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
	opts      Options
}

func New(repo Repo, txManager pg.TXManager, opts Options) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		opts:      opts,
	}
}

const (
	opWithdrawal   = "withdrawal"
	opRefund       = "refund"
	opContribution = "contribution"
)

// DebitGroupCreditUser pays amount out of the group pool into userID's wallet,
// less the configured withdrawal fee.
func (s *Service) DebitGroupCreditUser(ctx context.Context, groupID, userID uuid.UUID, amount int64, reason string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.lockGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if group.CurrentAmount < amount {
			return domain.ErrInsufficientFunds
		}

		wallets, err := s.repo.LockWallets(ctx, []uuid.UUID{userID})
		if err != nil {
			return internal(err)
		}

		fee := min(s.opts.WithdrawalFee, amount)
		groupAfter := group.CurrentAmount - amount
		walletAfter := wallets[userID] + amount - fee
		if err := s.guard(groupAfter, walletAfter); err != nil {
			return err
		}

		if err := s.repo.SetGroupAmount(ctx, groupID, groupAfter); err != nil {
			return internal(err)
		}
		if err := s.repo.SetWalletBalance(ctx, userID, walletAfter); err != nil {
			return internal(err)
		}

		op := uuid.New()
		entries := []domain.LedgerEntry{
			{OperationID: op, AccountType: domain.AccountGroup, AccountID: groupID, Delta: -amount, Reason: reason},
			{OperationID: op, AccountType: domain.AccountWallet, AccountID: userID, Delta: amount, Reason: reason},
		}
		if fee > 0 {
			entries = append(entries, domain.LedgerEntry{
				OperationID: op, AccountType: domain.AccountFee, AccountID: userID, Delta: -fee, Reason: "withdrawal_fee",
			})
		}
		return s.insert(ctx, entries)
	})
	s.observe(opWithdrawal, amount, err)
	return err
}

// RefundContributors returns percentage of every contributor's running total
// to their wallet. Either every share is paid or none is.
func (s *Service) RefundContributors(ctx context.Context, groupID uuid.UUID, percentage int, reason string) ([]domain.RefundShare, error) {
	if percentage <= 0 || percentage > 100 {
		return nil, fmt.Errorf("%w: percentage must be in (0, 100]", domain.ErrInvalidInput)
	}

	var shares []domain.RefundShare
	var total int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.lockGroup(ctx, groupID)
		if err != nil {
			return err
		}
		contributions, err := s.repo.LockContributions(ctx, groupID)
		if err != nil {
			return internal(err)
		}

		shares, total = Shares(contributions, percentage)
		if total > group.CurrentAmount {
			return domain.ErrInsufficientFunds
		}
		if len(shares) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(shares))
		for _, sh := range shares {
			ids = append(ids, sh.UserID)
		}
		wallets, err := s.repo.LockWallets(ctx, ids)
		if err != nil {
			return internal(err)
		}

		groupAfter := group.CurrentAmount - total
		if err := s.guard(groupAfter); err != nil {
			return err
		}

		op := uuid.New()
		entries := []domain.LedgerEntry{
			{OperationID: op, AccountType: domain.AccountGroup, AccountID: groupID, Delta: -total, Reason: reason},
		}
		for _, sh := range shares {
			walletAfter := wallets[sh.UserID] + sh.Amount
			if err := s.guard(walletAfter); err != nil {
				return err
			}
			if err := s.repo.SetWalletBalance(ctx, sh.UserID, walletAfter); err != nil {
				return internal(err)
			}
			if err := s.repo.ReduceContribution(ctx, groupID, sh.UserID, sh.Amount); err != nil {
				return internal(err)
			}
			entries = append(entries, domain.LedgerEntry{
				OperationID: op, AccountType: domain.AccountWallet, AccountID: sh.UserID, Delta: sh.Amount, Reason: reason,
			})
		}
		if err := s.repo.SetGroupAmount(ctx, groupID, groupAfter); err != nil {
			return internal(err)
		}
		return s.insert(ctx, entries)
	})
	s.observe(opRefund, total, err)
	if err != nil {
		return nil, err
	}
	return shares, nil
}

// DebitWalletCreditGroup moves amount from userID's wallet into the group pool
// and adds it to the member's contribution total.
func (s *Service) DebitWalletCreditGroup(ctx context.Context, userID, groupID uuid.UUID, amount int64, reason string) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.lockGroup(ctx, groupID)
		if err != nil {
			return err
		}
		wallets, err := s.repo.LockWallets(ctx, []uuid.UUID{userID})
		if err != nil {
			return internal(err)
		}
		if wallets[userID] < amount {
			return domain.ErrInsufficientFunds
		}

		walletAfter := wallets[userID] - amount
		groupAfter := group.CurrentAmount + amount
		if err := s.guard(walletAfter, groupAfter); err != nil {
			return err
		}

		if err := s.repo.SetWalletBalance(ctx, userID, walletAfter); err != nil {
			return internal(err)
		}
		if err := s.repo.SetGroupAmount(ctx, groupID, groupAfter); err != nil {
			return internal(err)
		}
		if err := s.repo.AddContribution(ctx, groupID, userID, amount); err != nil {
			return internal(err)
		}

		op := uuid.New()
		return s.insert(ctx, []domain.LedgerEntry{
			{OperationID: op, AccountType: domain.AccountWallet, AccountID: userID, Delta: -amount, Reason: reason},
			{OperationID: op, AccountType: domain.AccountGroup, AccountID: groupID, Delta: amount, Reason: reason},
		})
	})
	s.observe(opContribution, amount, err)
	return err
}

// PreviewRefund computes the shares a refund would pay right now without locking.
func (s *Service) PreviewRefund(ctx context.Context, groupID uuid.UUID, percentage int) ([]domain.RefundShare, int64, error) {
	contributions, err := s.repo.Contributions(ctx, groupID)
	if err != nil {
		return nil, 0, internal(err)
	}
	shares, total := Shares(contributions, percentage)
	return shares, total, nil
}

// GetWallet returns the wallet of userID, or an empty one if none exists yet.
func (s *Service) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return nil, internal(err)
	}
	if wallet == nil {
		return &domain.Wallet{UserID: userID}, nil
	}
	return wallet, nil
}

// Shares splits a refund of percentage across contributions, rounding each
// share down to the kobo. Result is ordered by user id.
func Shares(contributions []domain.Contribution, percentage int) ([]domain.RefundShare, int64) {
	pct := decimal.NewFromInt(int64(percentage)).Div(decimal.NewFromInt(100))

	shares := make([]domain.RefundShare, 0, len(contributions))
	var total int64
	for _, c := range contributions {
		amount := decimal.NewFromInt(c.TotalContributed).Mul(pct).Floor().IntPart()
		if amount <= 0 {
			continue
		}
		shares = append(shares, domain.RefundShare{UserID: c.UserID, Amount: amount})
		total += amount
	}
	sort.Slice(shares, func(i, j int) bool {
		return shares[i].UserID.String() < shares[j].UserID.String()
	})
	return shares, total
}

func (s *Service) lockGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	group, err := s.repo.LockGroup(ctx, groupID)
	if err != nil {
		return nil, internal(err)
	}
	if group == nil {
		return nil, fmt.Errorf("group %s: %w", groupID, domain.ErrNotFound)
	}
	return group, nil
}

func (s *Service) insert(ctx context.Context, entries []domain.LedgerEntry) error {
	if err := s.repo.InsertEntries(ctx, entries); err != nil {
		return internal(err)
	}
	return nil
}

// guard rejects any balance that would go negative.
func (s *Service) guard(balances ...int64) error {
	for _, b := range balances {
		if b >= 0 {
			continue
		}
		if s.opts.Strict {
			panic(fmt.Sprintf("ledger: balance would become %d", b))
		}
		zap.L().Error("ledger invariant violated", zap.Int64("balance", b))
		return fmt.Errorf("%w: %w", domain.ErrInternal, domain.ErrInvariantViolation)
	}
	return nil
}

func (s *Service) observe(op string, amount int64, err error) {
	result := "ok"
	switch {
	case err == nil:
		metrics.LedgerMovedKobo.WithLabelValues(op).Add(float64(amount))
	case errors.Is(err, domain.ErrInsufficientFunds):
		result = "insufficient_funds"
	default:
		result = "error"
		zap.L().Error("ledger operation failed", zap.String("operation", op), zap.Error(err))
	}
	metrics.LedgerOperations.WithLabelValues(op, result).Inc()
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInternal, err)
}
