package requestservice

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
)

// memStore is an in-memory stand-in for the request, group and ledger
// repositories, used to run the state machine against the real ledger.
type memStore struct {
	mu            sync.Mutex
	requests      map[uuid.UUID]*domain.WithdrawalRequest
	groups        map[uuid.UUID]*domain.Group
	wallets       map[uuid.UUID]int64
	contributions map[uuid.UUID]map[uuid.UUID]int64
	entries       []domain.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{
		requests:      map[uuid.UUID]*domain.WithdrawalRequest{},
		groups:        map[uuid.UUID]*domain.Group{},
		wallets:       map[uuid.UUID]int64{},
		contributions: map[uuid.UUID]map[uuid.UUID]int64{},
	}
}

func clone(req *domain.WithdrawalRequest) *domain.WithdrawalRequest {
	c := *req
	c.EligibleVoters = append([]uuid.UUID(nil), req.EligibleVoters...)
	c.Ballots = make(map[uuid.UUID]domain.Ballot, len(req.Ballots))
	for k, v := range req.Ballots {
		c.Ballots[k] = v
	}
	if req.ResolvedAt != nil {
		t := *req.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}

func (m *memStore) Create(_ context.Context, req *domain.WithdrawalRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[req.ID] = clone(req)
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.requests[id]
	if !ok {
		return nil, nil
	}
	return clone(req), nil
}

func (m *memStore) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	return m.GetByID(ctx, id)
}

func (m *memStore) ListByGroup(_ context.Context, groupID uuid.UUID) ([]domain.WithdrawalRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.WithdrawalRequest
	for _, req := range m.requests {
		if req.GroupID == groupID {
			res = append(res, *clone(req))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (m *memStore) SaveBallot(_ context.Context, requestID uuid.UUID, ballot domain.Ballot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[requestID].Ballots[ballot.VoterID] = ballot
	return nil
}

func (m *memStore) UpdateStatus(_ context.Context, req *domain.WithdrawalRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := m.requests[req.ID]
	if stored.Version != req.Version {
		return domain.ErrConcurrentModification
	}
	stored.Status = req.Status
	stored.FailureReason = req.FailureReason
	stored.ResolvedAt = req.ResolvedAt
	stored.Version++
	req.Version++
	return nil
}

func (m *memStore) ListDue(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for id, req := range m.requests {
		if req.Status == domain.StatusPending && !req.Deadline.After(now) && len(ids) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) GetGroup(_ context.Context, groupID uuid.UUID) (*domain.Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[groupID]
	if !ok {
		return nil, nil
	}
	c := *g
	return &c, nil
}

func (m *memStore) ListContributorIDs(_ context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uuid.UUID
	for id, total := range m.contributions[groupID] {
		if total > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memStore) LockGroup(ctx context.Context, groupID uuid.UUID) (*domain.Group, error) {
	return m.GetGroup(ctx, groupID)
}

func (m *memStore) SetGroupAmount(_ context.Context, groupID uuid.UUID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[groupID].CurrentAmount = amount
	return nil
}

func (m *memStore) LockWallets(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make(map[uuid.UUID]int64, len(userIDs))
	for _, id := range userIDs {
		res[id] = m.wallets[id]
	}
	return res, nil
}

func (m *memStore) SetWalletBalance(_ context.Context, userID uuid.UUID, balance int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[userID] = balance
	return nil
}

func (m *memStore) GetWallet(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &domain.Wallet{UserID: userID, Balance: m.wallets[userID]}, nil
}

func (m *memStore) Contributions(_ context.Context, groupID uuid.UUID) ([]domain.Contribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.Contribution
	for id, total := range m.contributions[groupID] {
		if total > 0 {
			res = append(res, domain.Contribution{GroupID: groupID, UserID: id, TotalContributed: total})
		}
	}
	return res, nil
}

func (m *memStore) LockContributions(ctx context.Context, groupID uuid.UUID) ([]domain.Contribution, error) {
	return m.Contributions(ctx, groupID)
}

// AddContribution and ReduceContribution keep the contributions CHECK
// (total_contributed >= 0) the schema enforces.
func (m *memStore) AddContribution(_ context.Context, groupID, userID uuid.UUID, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if delta <= 0 {
		return domain.ErrInvariantViolation
	}
	if m.contributions[groupID] == nil {
		m.contributions[groupID] = map[uuid.UUID]int64{}
	}
	m.contributions[groupID][userID] += delta
	return nil
}

func (m *memStore) ReduceContribution(_ context.Context, groupID, userID uuid.UUID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	total, ok := m.contributions[groupID][userID]
	if !ok || total < amount {
		return domain.ErrInvariantViolation
	}
	m.contributions[groupID][userID] = total - amount
	return nil
}

func (m *memStore) InsertEntries(_ context.Context, entries []domain.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *memStore) balance(groupID uuid.UUID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.groups[groupID].CurrentAmount
}

func (m *memStore) wallet(userID uuid.UUID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wallets[userID]
}

// serialTx runs one transaction at a time, which is what the row locks
// guarantee for transactions touching the same group.
type serialTx struct {
	mu sync.Mutex
}

type inTxKey struct{}

func (s *serialTx) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(context.WithValue(ctx, inTxKey{}, true))
}
