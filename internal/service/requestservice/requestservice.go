// Package requestservice drives withdrawal and refund requests from creation
// to a terminal status. Each transition runs in one transaction holding the
// request row lock, so concurrent ballots on the same request serialize.
package requestservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
	"github.com/GlebRadaev/groupvault/internal/tally"
	"github.com/GlebRadaev/groupvault/pkg/metrics"
	"github.com/GlebRadaev/groupvault/pkg/money"
	"github.com/GlebRadaev/groupvault/pkg/notify"
)

//go:generate mockgen -source=requestservice.go -destination=mock_requestservice.go -package=requestservice

type RequestRepo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.WithdrawalRequest, error)
	SaveBallot(ctx context.Context, requestID uuid.UUID, ballot domain.Ballot) error
	UpdateStatus(ctx context.Context, req *domain.WithdrawalRequest) error
	ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
}

type GroupRepo interface {
	GetGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error)
	ListContributorIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

type Ledger interface {
	DebitGroupCreditUser(ctx context.Context, groupID, userID uuid.UUID, amount int64, reason string) error
	RefundContributors(ctx context.Context, groupID uuid.UUID, percentage int, reason string) ([]domain.RefundShare, error)
	PreviewRefund(ctx context.Context, groupID uuid.UUID, percentage int) ([]domain.RefundShare, int64, error)
}

type Config struct {
	Policies           tally.Policies
	WithdrawalWindow   time.Duration
	RefundWindow       time.Duration
	RefundReasonMinLen int
}

func DefaultConfig() Config {
	return Config{
		Policies:           tally.DefaultPolicies(),
		WithdrawalWindow:   24 * time.Hour,
		RefundWindow:       7 * 24 * time.Hour,
		RefundReasonMinLen: 20,
	}
}

type Service struct {
	requests  RequestRepo
	groups    GroupRepo
	ledger    Ledger
	notifier  notify.Notifier
	txManager pg.TXManager
	cfg       Config
	now       func() time.Time
}

func New(requests RequestRepo, groups GroupRepo, ledger Ledger, notifier notify.Notifier, txManager pg.TXManager, cfg Config) *Service {
	return &Service{
		requests:  requests,
		groups:    groups,
		ledger:    ledger,
		notifier:  notifier,
		txManager: txManager,
		cfg:       cfg,
		now:       time.Now,
	}
}

// View is a request together with its tally as of now.
type View struct {
	Request *domain.WithdrawalRequest
	Tally   tally.Result
}

type CreateInput struct {
	GroupID     uuid.UUID
	RequesterID uuid.UUID
	Kind        domain.RequestKind
	Amount      int64
	Percentage  int
	Purpose     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*View, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	group, err := s.groups.GetGroup(ctx, in.GroupID)
	if err != nil {
		return nil, internal(err)
	}
	if group == nil {
		return nil, fmt.Errorf("group %s: %w", in.GroupID, domain.ErrNotFound)
	}

	voters, err := s.groups.ListContributorIDs(ctx, in.GroupID)
	if err != nil {
		return nil, internal(err)
	}

	if in.Kind == domain.KindWithdrawal {
		if in.RequesterID != group.AdminID {
			return nil, fmt.Errorf("%w: only the group admin can request a withdrawal", domain.ErrUnauthorized)
		}
		if in.Amount > group.CurrentAmount {
			return nil, domain.ErrInsufficientFunds
		}
	} else {
		if !contains(voters, in.RequesterID) {
			return nil, fmt.Errorf("%w: only contributors can request a refund", domain.ErrUnauthorized)
		}
		_, total, err := s.ledger.PreviewRefund(ctx, in.GroupID, in.Percentage)
		if err != nil {
			return nil, err
		}
		if total > group.CurrentAmount {
			return nil, domain.ErrInsufficientFunds
		}
		in.Amount = total
	}

	now := s.now()
	req := &domain.WithdrawalRequest{
		ID:             uuid.New(),
		GroupID:        in.GroupID,
		RequesterID:    in.RequesterID,
		Kind:           in.Kind,
		Amount:         in.Amount,
		Percentage:     in.Percentage,
		Purpose:        in.Purpose,
		Status:         domain.StatusPending,
		EligibleVoters: voters,
		Deadline:       now.Add(s.window(in.Kind)),
		CreatedAt:      now,
		Version:        1,
		Ballots:        map[uuid.UUID]domain.Ballot{},
	}

	immediate := in.Kind == domain.KindWithdrawal && !group.VotingEnabled
	if !immediate && len(voters) == 0 {
		req.Status = domain.StatusRejected
		req.ResolvedAt = &now
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.requests.Create(ctx, req); err != nil {
			return internal(err)
		}
		if immediate {
			return s.execute(ctx, req, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RequestsCreated.WithLabelValues(string(req.Kind)).Inc()
	zap.L().Info("request created",
		zap.Stringer("request_id", req.ID),
		zap.Stringer("group_id", req.GroupID),
		zap.String("kind", string(req.Kind)),
		zap.String("status", string(req.Status)),
	)

	view := s.view(req)
	if req.Status.Terminal() {
		s.resolved(ctx, req)
	} else {
		s.notify(ctx, notify.Notification{
			Kind:       notify.KindRequestCreated,
			RequestID:  req.ID,
			GroupID:    req.GroupID,
			Recipients: without(req.EligibleVoters, req.RequesterID),
			Message:    fmt.Sprintf("%s needs your vote before %s", describe(req), req.Deadline.Format(time.RFC1123)),
		})
	}
	if req.Status == domain.StatusFailed {
		return view, domain.ErrInsufficientFunds
	}
	return view, nil
}

func (s *Service) validate(in *CreateInput) error {
	if !in.Kind.Valid() {
		return fmt.Errorf("%w: unknown request kind %q", domain.ErrInvalidInput, in.Kind)
	}
	in.Purpose = strings.TrimSpace(in.Purpose)

	switch in.Kind {
	case domain.KindWithdrawal:
		if in.Amount <= 0 {
			return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
		}
		if in.Purpose == "" {
			return fmt.Errorf("%w: purpose is required", domain.ErrInvalidInput)
		}
		in.Percentage = 0
	case domain.KindRefundFull:
		in.Percentage = 100
	case domain.KindRefundPartial:
		if in.Percentage <= 0 || in.Percentage > 100 {
			return fmt.Errorf("%w: percentage must be in (0, 100]", domain.ErrInvalidInput)
		}
	}

	if in.Kind.IsRefund() && utf8.RuneCountInString(in.Purpose) < s.cfg.RefundReasonMinLen {
		return fmt.Errorf("%w: reason must be at least %d characters", domain.ErrInvalidInput, s.cfg.RefundReasonMinLen)
	}
	return nil
}

// CastBallot records or replaces voterID's ballot and executes the request
// as soon as the tally approves it.
func (s *Service) CastBallot(ctx context.Context, requestID, voterID uuid.UUID, vote domain.Vote) (*View, error) {
	if !vote.Valid() {
		return nil, fmt.Errorf("%w: vote must be approve or reject", domain.ErrInvalidInput)
	}

	var req *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.lock(ctx, requestID)
		if err != nil {
			return err
		}
		if !req.IsEligible(voterID) {
			return domain.ErrNotEligible
		}
		now := s.now()
		if req.Status.Terminal() || !now.Before(req.Deadline) {
			return domain.ErrAlreadyResolved
		}

		ballot := domain.Ballot{VoterID: voterID, Vote: vote, CastAt: now}
		if err := s.requests.SaveBallot(ctx, req.ID, ballot); err != nil {
			return internal(err)
		}
		if req.Ballots == nil {
			req.Ballots = map[uuid.UUID]domain.Ballot{}
		}
		req.Ballots[voterID] = ballot

		res := tally.Tally(req.Votes(), len(req.EligibleVoters), s.cfg.Policies.For(req.Kind))
		if res.Verdict == tally.VerdictApproved {
			return s.execute(ctx, req, now)
		}
		return s.update(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	metrics.BallotsCast.WithLabelValues(string(vote)).Inc()
	if req.Status.Terminal() {
		s.resolved(ctx, req)
	}
	view := s.view(req)
	if req.Status == domain.StatusFailed {
		return view, domain.ErrInsufficientFunds
	}
	return view, nil
}

// DueBatch caps how many expired requests one resolution pass picks up.
const DueBatch = 1000

// ResolveExpired settles pending requests whose deadline has passed and
// returns how many changed status.
func (s *Service) ResolveExpired(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.ListDue(ctx, now, DueBatch)
	if err != nil {
		return 0, err
	}

	var resolved int
	var errs []error
	for _, id := range ids {
		req, err := s.ResolveOne(ctx, id, now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if req != nil {
			resolved++
		}
	}
	return resolved, errors.Join(errs...)
}

// ListDue returns pending requests with a deadline at or before now.
func (s *Service) ListDue(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := s.requests.ListDue(ctx, now, limit)
	if err != nil {
		return nil, internal(err)
	}
	return ids, nil
}

// ResolveOne applies the final tally to a single expired request. It returns
// nil when the request was already terminal or is not due yet.
func (s *Service) ResolveOne(ctx context.Context, requestID uuid.UUID, now time.Time) (*domain.WithdrawalRequest, error) {
	var req *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.lock(ctx, requestID)
		if err != nil {
			return err
		}
		if locked.Status.Terminal() || now.Before(locked.Deadline) {
			return nil
		}
		req = locked

		res := tally.Final(req.Votes(), len(req.EligibleVoters), s.cfg.Policies.For(req.Kind))
		switch {
		case res.Verdict == tally.VerdictApproved:
			return s.execute(ctx, req, now)
		case res.Cast() == 0:
			req.Status = domain.StatusExpired
		default:
			req.Status = domain.StatusRejected
		}
		req.ResolvedAt = &now
		return s.update(ctx, req)
	})
	if err != nil {
		zap.L().Error("failed to resolve request", zap.Error(err), zap.Stringer("request_id", requestID))
		return nil, err
	}
	if req != nil {
		s.resolved(ctx, req)
	}
	return req, nil
}

// PingReminder nudges eligible members who have not voted yet.
func (s *Service) PingReminder(ctx context.Context, requestID, callerID uuid.UUID) error {
	req, err := s.get(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status.Terminal() {
		return domain.ErrAlreadyResolved
	}
	if !req.IsEligible(callerID) {
		return nil
	}

	var pending []uuid.UUID
	for _, id := range req.EligibleVoters {
		if _, voted := req.Ballots[id]; !voted && id != callerID {
			pending = append(pending, id)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	s.notify(ctx, notify.Notification{
		Kind:       notify.KindReminder,
		RequestID:  req.ID,
		GroupID:    req.GroupID,
		Recipients: pending,
		Message:    fmt.Sprintf("Reminder: %s is waiting for your vote", describe(req)),
	})
	return nil
}

func (s *Service) Get(ctx context.Context, requestID uuid.UUID) (*View, error) {
	req, err := s.get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return s.view(req), nil
}

func (s *Service) List(ctx context.Context, groupID uuid.UUID) ([]View, error) {
	reqs, err := s.requests.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, internal(err)
	}
	views := make([]View, 0, len(reqs))
	for i := range reqs {
		views = append(views, *s.view(&reqs[i]))
	}
	return views, nil
}

// execute moves the money for an approved request and records the outcome.
// Insufficient funds is a terminal outcome, not an error.
func (s *Service) execute(ctx context.Context, req *domain.WithdrawalRequest, now time.Time) error {
	reason := fmt.Sprintf("%s:%s", req.Kind, req.ID)

	var err error
	if req.Kind == domain.KindWithdrawal {
		err = s.ledger.DebitGroupCreditUser(ctx, req.GroupID, req.RequesterID, req.Amount, reason)
	} else {
		_, err = s.ledger.RefundContributors(ctx, req.GroupID, req.Percentage, reason)
	}

	switch {
	case err == nil:
		req.Status = domain.StatusExecuted
	case errors.Is(err, domain.ErrInsufficientFunds):
		req.Status = domain.StatusFailed
		req.FailureReason = domain.FailureInsufficientFunds
	default:
		return err
	}
	req.ResolvedAt = &now
	return s.update(ctx, req)
}

func (s *Service) update(ctx context.Context, req *domain.WithdrawalRequest) error {
	if err := s.requests.UpdateStatus(ctx, req); err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			return err
		}
		return internal(err)
	}
	return nil
}

func (s *Service) lock(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	req, err := s.requests.GetForUpdate(ctx, requestID)
	if err != nil {
		return nil, internal(err)
	}
	if req == nil {
		return nil, fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
	}
	return req, nil
}

func (s *Service) get(ctx context.Context, requestID uuid.UUID) (*domain.WithdrawalRequest, error) {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, internal(err)
	}
	if req == nil {
		return nil, fmt.Errorf("request %s: %w", requestID, domain.ErrNotFound)
	}
	return req, nil
}

// view reports the final verdict once no more ballots can change it: the
// request is terminal or its deadline has passed.
func (s *Service) view(req *domain.WithdrawalRequest) *View {
	count := tally.Tally
	if req.Status.Terminal() || !s.now().Before(req.Deadline) {
		count = tally.Final
	}
	return &View{
		Request: req,
		Tally:   count(req.Votes(), len(req.EligibleVoters), s.cfg.Policies.For(req.Kind)),
	}
}

func (s *Service) window(kind domain.RequestKind) time.Duration {
	if kind.IsRefund() {
		return s.cfg.RefundWindow
	}
	return s.cfg.WithdrawalWindow
}

func (s *Service) resolved(ctx context.Context, req *domain.WithdrawalRequest) {
	metrics.RequestsResolved.WithLabelValues(string(req.Kind), string(req.Status)).Inc()
	zap.L().Info("request resolved",
		zap.Stringer("request_id", req.ID),
		zap.String("status", string(req.Status)),
		zap.String("failure_reason", req.FailureReason),
	)
	s.notify(ctx, notify.Notification{
		Kind:       notify.KindRequestResolved,
		RequestID:  req.ID,
		GroupID:    req.GroupID,
		Recipients: []uuid.UUID{req.RequesterID},
		Status:     string(req.Status),
		Message:    fmt.Sprintf("%s is now %s", describe(req), req.Status),
	})
}

func (s *Service) notify(ctx context.Context, n notify.Notification) {
	if len(n.Recipients) == 0 {
		return
	}
	n.SentAt = s.now()
	if err := s.notifier.Notify(ctx, n); err != nil {
		zap.L().Warn("failed to deliver notification", zap.Error(err), zap.Stringer("request_id", n.RequestID))
	}
}

func describe(req *domain.WithdrawalRequest) string {
	switch req.Kind {
	case domain.KindWithdrawal:
		return fmt.Sprintf("Withdrawal of %s for %q", money.Format(req.Amount), req.Purpose)
	case domain.KindRefundFull:
		return fmt.Sprintf("Full refund of %s", money.Format(req.Amount))
	default:
		return fmt.Sprintf("Refund of %d%% (%s)", req.Percentage, money.Format(req.Amount))
	}
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	res := make([]uuid.UUID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			res = append(res, v)
		}
	}
	return res
}

func internal(err error) error {
	if errors.Is(err, domain.ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrInternal, err)
}
