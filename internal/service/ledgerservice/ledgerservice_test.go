package ledgerservice

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/pg"
)

// memRepo keeps balances in maps so whole operations can be checked end to end.
type memRepo struct {
	groups        map[uuid.UUID]int64
	wallets       map[uuid.UUID]int64
	contributions map[uuid.UUID]map[uuid.UUID]int64
	entries       []domain.LedgerEntry
}

func newMemRepo() *memRepo {
	return &memRepo{
		groups:        map[uuid.UUID]int64{},
		wallets:       map[uuid.UUID]int64{},
		contributions: map[uuid.UUID]map[uuid.UUID]int64{},
	}
}

func (r *memRepo) LockGroup(_ context.Context, groupID uuid.UUID) (*domain.Group, error) {
	amount, ok := r.groups[groupID]
	if !ok {
		return nil, nil
	}
	return &domain.Group{ID: groupID, CurrentAmount: amount}, nil
}

func (r *memRepo) SetGroupAmount(_ context.Context, groupID uuid.UUID, amount int64) error {
	r.groups[groupID] = amount
	return nil
}

func (r *memRepo) LockWallets(_ context.Context, userIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	res := make(map[uuid.UUID]int64, len(userIDs))
	for _, id := range userIDs {
		res[id] = r.wallets[id]
	}
	return res, nil
}

func (r *memRepo) SetWalletBalance(_ context.Context, userID uuid.UUID, balance int64) error {
	r.wallets[userID] = balance
	return nil
}

func (r *memRepo) GetWallet(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	balance, ok := r.wallets[userID]
	if !ok {
		return nil, nil
	}
	return &domain.Wallet{UserID: userID, Balance: balance}, nil
}

func (r *memRepo) Contributions(_ context.Context, groupID uuid.UUID) ([]domain.Contribution, error) {
	var res []domain.Contribution
	for userID, total := range r.contributions[groupID] {
		if total > 0 {
			res = append(res, domain.Contribution{GroupID: groupID, UserID: userID, TotalContributed: total})
		}
	}
	return res, nil
}

func (r *memRepo) LockContributions(ctx context.Context, groupID uuid.UUID) ([]domain.Contribution, error) {
	return r.Contributions(ctx, groupID)
}

func (r *memRepo) AddContribution(_ context.Context, groupID, userID uuid.UUID, delta int64) error {
	if delta <= 0 {
		return domain.ErrInvariantViolation
	}
	if r.contributions[groupID] == nil {
		r.contributions[groupID] = map[uuid.UUID]int64{}
	}
	r.contributions[groupID][userID] += delta
	return nil
}

func (r *memRepo) ReduceContribution(_ context.Context, groupID, userID uuid.UUID, amount int64) error {
	total, ok := r.contributions[groupID][userID]
	if !ok || total < amount {
		return domain.ErrInvariantViolation
	}
	r.contributions[groupID][userID] = total - amount
	return nil
}

func (r *memRepo) InsertEntries(_ context.Context, entries []domain.LedgerEntry) error {
	r.entries = append(r.entries, entries...)
	return nil
}

func (r *memRepo) total() int64 {
	var sum int64
	for _, v := range r.groups {
		sum += v
	}
	for _, v := range r.wallets {
		sum += v
	}
	return sum
}

func (r *memRepo) fees() int64 {
	var sum int64
	for _, e := range r.entries {
		if e.AccountType == domain.AccountFee {
			sum -= e.Delta
		}
	}
	return sum
}

type inlineTx struct{}

func (inlineTx) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func NewMock(t *testing.T, opts Options) (*Service, *MockRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	return New(repo, txManager, opts), repo, txManager
}

func runInline(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRefundContributors_PartialRefund(t *testing.T) {
	repo := newMemRepo()
	service := New(repo, inlineTx{}, Options{})

	groupID, a, b := uuid.New(), uuid.New(), uuid.New()
	repo.groups[groupID] = 1_500_000
	repo.contributions[groupID] = map[uuid.UUID]int64{a: 1_000_000, b: 500_000}

	shares, err := service.RefundContributors(context.Background(), groupID, 50, "refund")
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.RefundShare{{UserID: a, Amount: 500_000}, {UserID: b, Amount: 250_000}}, shares)
	assert.Equal(t, int64(500_000), repo.wallets[a])
	assert.Equal(t, int64(250_000), repo.wallets[b])
	assert.Equal(t, int64(750_000), repo.groups[groupID])
	assert.Equal(t, int64(500_000), repo.contributions[groupID][a])
	assert.Equal(t, int64(250_000), repo.contributions[groupID][b])

	var sum int64
	for _, e := range repo.entries {
		sum += e.Delta
		assert.Equal(t, repo.entries[0].OperationID, e.OperationID)
	}
	assert.Zero(t, sum)
	assert.Len(t, repo.entries, 3)
}

func TestRefundContributors_InsufficientPool(t *testing.T) {
	repo := newMemRepo()
	service := New(repo, inlineTx{}, Options{})

	groupID, a := uuid.New(), uuid.New()
	repo.groups[groupID] = 400_000
	repo.contributions[groupID] = map[uuid.UUID]int64{a: 1_000_000}

	_, err := service.RefundContributors(context.Background(), groupID, 50, "refund")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(400_000), repo.groups[groupID])
	assert.Empty(t, repo.wallets)
	assert.Empty(t, repo.entries)
}

func TestRefundContributors_InvalidPercentage(t *testing.T) {
	service, _, _ := NewMock(t, Options{})
	for _, pct := range []int{0, -5, 101} {
		_, err := service.RefundContributors(context.Background(), uuid.New(), pct, "refund")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, pct)
	}
}

func TestRefundContributors_FailureAbortsAll(t *testing.T) {
	service, repo, txManager := NewMock(t, Options{})
	groupID, a, b := uuid.New(), uuid.New(), uuid.New()
	runInline(txManager)

	repo.EXPECT().LockGroup(gomock.Any(), groupID).Return(&domain.Group{ID: groupID, CurrentAmount: 2_000}, nil)
	repo.EXPECT().LockContributions(gomock.Any(), groupID).Return([]domain.Contribution{
		{GroupID: groupID, UserID: a, TotalContributed: 1_000},
		{GroupID: groupID, UserID: b, TotalContributed: 1_000},
	}, nil)
	repo.EXPECT().LockWallets(gomock.Any(), gomock.Any()).Return(map[uuid.UUID]int64{a: 0, b: 0}, nil)
	repo.EXPECT().SetWalletBalance(gomock.Any(), gomock.Any(), int64(1_000)).Return(nil)
	repo.EXPECT().ReduceContribution(gomock.Any(), groupID, gomock.Any(), int64(1_000)).Return(nil)
	repo.EXPECT().SetWalletBalance(gomock.Any(), gomock.Any(), int64(1_000)).Return(errors.New("db error"))

	_, err := service.RefundContributors(context.Background(), groupID, 100, "refund")
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestDebitGroupCreditUser(t *testing.T) {
	groupID, userID := uuid.New(), uuid.New()

	tests := []struct {
		name        string
		fee         int64
		pool        int64
		amount      int64
		expectedErr error
		wallet      int64
		poolAfter   int64
	}{
		{"Pays out without fee", 0, 4_500_000, 2_500_000, nil, 2_500_000, 2_000_000},
		{"Keeps declared fee", 10_000, 4_500_000, 2_500_000, nil, 2_490_000, 2_000_000},
		{"Drains pool exactly", 0, 100, 100, nil, 100, 0},
		{"Insufficient pool", 0, 100, 101, domain.ErrInsufficientFunds, 0, 100},
		{"Non-positive amount", 0, 100, 0, domain.ErrInvalidInput, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo()
			service := New(repo, inlineTx{}, Options{WithdrawalFee: tt.fee})
			repo.groups[groupID] = tt.pool
			before := repo.total()

			err := service.DebitGroupCreditUser(context.Background(), groupID, userID, tt.amount, "withdrawal")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, repo.entries)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wallet, repo.wallets[userID])
			assert.Equal(t, tt.poolAfter, repo.groups[groupID])
			assert.Equal(t, before-repo.fees(), repo.total())
		})
	}
}

func TestDebitGroupCreditUser_MissingGroup(t *testing.T) {
	service, repo, txManager := NewMock(t, Options{})
	groupID := uuid.New()
	runInline(txManager)
	repo.EXPECT().LockGroup(gomock.Any(), groupID).Return(nil, nil)

	err := service.DebitGroupCreditUser(context.Background(), groupID, uuid.New(), 100, "withdrawal")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDebitWalletCreditGroup(t *testing.T) {
	repo := newMemRepo()
	service := New(repo, inlineTx{}, Options{})
	groupID, userID := uuid.New(), uuid.New()
	repo.groups[groupID] = 0
	repo.wallets[userID] = 1_000_000

	require.NoError(t, service.DebitWalletCreditGroup(context.Background(), userID, groupID, 600_000, "contribution"))
	assert.Equal(t, int64(400_000), repo.wallets[userID])
	assert.Equal(t, int64(600_000), repo.groups[groupID])
	assert.Equal(t, int64(600_000), repo.contributions[groupID][userID])

	err := service.DebitWalletCreditGroup(context.Background(), userID, groupID, 600_000, "contribution")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, int64(400_000), repo.wallets[userID])
	assert.Equal(t, int64(600_000), repo.groups[groupID])
}

func TestConservation(t *testing.T) {
	repo := newMemRepo()
	service := New(repo, inlineTx{}, Options{WithdrawalFee: 50})
	rnd := rand.New(rand.NewSource(42))

	groups := []uuid.UUID{uuid.New(), uuid.New()}
	users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, g := range groups {
		repo.groups[g] = 0
	}
	for _, u := range users {
		repo.wallets[u] = 1_000_000
	}
	initial := repo.total()

	ctx := context.Background()
	for i := 0; i < 300; i++ {
		g := groups[rnd.Intn(len(groups))]
		u := users[rnd.Intn(len(users))]
		amount := int64(rnd.Intn(200_000) + 1)
		var err error
		switch rnd.Intn(3) {
		case 0:
			err = service.DebitWalletCreditGroup(ctx, u, g, amount, "contribution")
		case 1:
			err = service.DebitGroupCreditUser(ctx, g, u, amount, "withdrawal")
		case 2:
			_, err = service.RefundContributors(ctx, g, rnd.Intn(100)+1, "refund")
		}
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientFunds)
		}

		require.Equal(t, initial-repo.fees(), repo.total(), "step %d", i)
		for _, v := range repo.wallets {
			require.GreaterOrEqual(t, v, int64(0))
		}
		for _, v := range repo.groups {
			require.GreaterOrEqual(t, v, int64(0))
		}
	}
}

func TestShares(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	shares, total := Shares([]domain.Contribution{
		{UserID: a, TotalContributed: 1_001},
		{UserID: b, TotalContributed: 2},
		{UserID: c, TotalContributed: 300},
	}, 33)

	assert.ElementsMatch(t, []domain.RefundShare{{UserID: a, Amount: 330}, {UserID: c, Amount: 99}}, shares)
	assert.Equal(t, int64(429), total)
}

func TestGuard(t *testing.T) {
	strict := New(nil, nil, Options{Strict: true})
	lenient := New(nil, nil, Options{})

	assert.NoError(t, lenient.guard(0, 10))
	err := lenient.guard(5, -1)
	assert.ErrorIs(t, err, domain.ErrInvariantViolation)
	assert.ErrorIs(t, err, domain.ErrInternal)
	assert.Panics(t, func() { _ = strict.guard(-1) })
}

func TestGetWallet(t *testing.T) {
	service, repo, _ := NewMock(t, Options{})
	userID := uuid.New()

	repo.EXPECT().GetWallet(gomock.Any(), userID).Return(nil, nil)
	wallet, err := service.GetWallet(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Wallet{UserID: userID}, wallet)

	repo.EXPECT().GetWallet(gomock.Any(), userID).Return(nil, errors.New("db error"))
	_, err = service.GetWallet(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestPreviewRefund(t *testing.T) {
	service, repo, _ := NewMock(t, Options{})
	groupID, a := uuid.New(), uuid.New()

	repo.EXPECT().Contributions(gomock.Any(), groupID).Return([]domain.Contribution{{UserID: a, TotalContributed: 10_000}}, nil)
	shares, total, err := service.PreviewRefund(context.Background(), groupID, 25)
	assert.NoError(t, err)
	assert.Equal(t, []domain.RefundShare{{UserID: a, Amount: 2_500}}, shares)
	assert.Equal(t, int64(2_500), total)
}
