package contributionservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
)

//go:generate mockgen -source=contributionservice.go -destination=mock_contributionservice.go -package=contributionservice

type ScheduleRepo interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	LockDue(ctx context.Context, id uuid.UUID, now time.Time) (*domain.ScheduledContribution, error)
	Save(ctx context.Context, s *domain.ScheduledContribution) error
}

type Ledger interface {
	DebitWalletCreditGroup(ctx context.Context, userID, groupID uuid.UUID, amount int64, reason string) error
}

type Outcome string

const (
	OutcomeSkipped     Outcome = "skipped"
	OutcomeContributed Outcome = "contributed"
	OutcomeShort       Outcome = "insufficient_funds"
	OutcomeDeactivated Outcome = "deactivated"
)

type Service struct {
	schedules   ScheduleRepo
	ledger      Ledger
	txManager   pg.TXManager
	maxFailures int
}

func New(schedules ScheduleRepo, ledger Ledger, txManager pg.TXManager, maxFailures int) *Service {
	return &Service{
		schedules:   schedules,
		ledger:      ledger,
		txManager:   txManager,
		maxFailures: maxFailures,
	}
}

// Contribute moves amount from the member's wallet into the group.
func (s *Service) Contribute(ctx context.Context, userID, groupID uuid.UUID, amount int64) error {
	return s.ledger.DebitWalletCreditGroup(ctx, userID, groupID, amount, "contribution")
}

func (s *Service) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := s.schedules.ListDue(ctx, now, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInternal, err)
	}
	return ids, nil
}

// RunScheduled performs one due scheduled contribution. A short wallet counts
// as a failed attempt; the schedule still advances and is switched off after
// maxFailures consecutive failures.
func (s *Service) RunScheduled(ctx context.Context, id uuid.UUID, now time.Time) (Outcome, error) {
	outcome := OutcomeSkipped
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		sc, err := s.schedules.LockDue(ctx, id, now)
		if err != nil {
			return err
		}
		if sc == nil {
			return nil
		}

		err = s.ledger.DebitWalletCreditGroup(ctx, sc.UserID, sc.GroupID, sc.Amount, "scheduled_contribution")
		switch {
		case err == nil:
			outcome = OutcomeContributed
			sc.FailureCount = 0
			sc.LastRunAt = &now
		case errors.Is(err, domain.ErrInsufficientFunds):
			outcome = OutcomeShort
			sc.FailureCount++
			if s.maxFailures > 0 && sc.FailureCount >= s.maxFailures {
				outcome = OutcomeDeactivated
				sc.Active = false
			}
		default:
			return err
		}

		for !sc.NextRunAt.After(now) {
			sc.NextRunAt = sc.Frequency.Next(sc.NextRunAt)
		}
		return s.schedules.Save(ctx, sc)
	})
	if err != nil {
		zap.L().Error("scheduled contribution failed", zap.Error(err), zap.Stringer("schedule_id", id))
		return OutcomeSkipped, err
	}
	if outcome != OutcomeSkipped {
		zap.L().Info("scheduled contribution processed", zap.Stringer("schedule_id", id), zap.String("outcome", string(outcome)))
	}
	return outcome, nil
}
