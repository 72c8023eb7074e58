package requestrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/groupvault/internal/domain"
)

var columns = []string{
	"id", "group_id", "requester_id", "kind", "amount", "percentage", "purpose", "status",
	"failure_reason", "eligible_voters", "deadline", "created_at", "resolved_at", "version",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func requestRow(req domain.WithdrawalRequest) []any {
	return []any{
		req.ID, req.GroupID, req.RequesterID, req.Kind, req.Amount, req.Percentage, req.Purpose, req.Status,
		req.FailureReason, req.EligibleVoters, req.Deadline, req.CreatedAt, req.ResolvedAt, req.Version,
	}
}

func fixture() domain.WithdrawalRequest {
	now := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	return domain.WithdrawalRequest{
		ID:             uuid.New(),
		GroupID:        uuid.New(),
		RequesterID:    uuid.New(),
		Kind:           domain.KindWithdrawal,
		Amount:         2_000_000,
		Purpose:        "school fees",
		Status:         domain.StatusPending,
		EligibleVoters: []uuid.UUID{uuid.New(), uuid.New()},
		Deadline:       now.Add(24 * time.Hour),
		CreatedAt:      now,
		Version:        1,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	req := fixture()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves request",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
					WithArgs(requestRow(req)...).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
					WithArgs(requestRow(req)...).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), &req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	req := fixture()
	voter := req.EligibleVoters[0]
	castAt := req.CreatedAt.Add(time.Hour)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Loads request with ballots",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + requestColumns + ` FROM withdrawal_requests WHERE id = $1 FOR UPDATE`)).
					WithArgs(req.ID).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(requestRow(req)...))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT request_id, voter_id, vote, cast_at FROM ballots WHERE request_id = ANY($1)`)).
					WithArgs([]uuid.UUID{req.ID}).
					WillReturnRows(pgxmock.NewRows([]string{"request_id", "voter_id", "vote", "cast_at"}).
						AddRow(req.ID, voter, domain.VoteApprove, castAt))
			},
		},
		{
			name: "Missing request returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE id = $1 FOR UPDATE`)).
					WithArgs(req.ID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE id = $1 FOR UPDATE`)).
					WithArgs(req.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			got, err := repo.GetForUpdate(context.Background(), req.ID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, req.ID, got.ID)
				assert.Equal(t, req.EligibleVoters, got.EligibleVoters)
				assert.Equal(t, domain.Ballot{VoterID: voter, Vote: domain.VoteApprove, CastAt: castAt}, got.Ballots[voter])
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByGroup(t *testing.T) {
	repo, mock := NewMock(t)
	first, second := fixture(), fixture()
	second.GroupID = first.GroupID
	voter := second.EligibleVoters[1]

	mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawal_requests WHERE group_id = $1 ORDER BY created_at DESC`)).
		WithArgs(first.GroupID).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(requestRow(first)...).AddRow(requestRow(second)...))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM ballots WHERE request_id = ANY($1)`)).
		WithArgs([]uuid.UUID{first.ID, second.ID}).
		WillReturnRows(pgxmock.NewRows([]string{"request_id", "voter_id", "vote", "cast_at"}).
			AddRow(second.ID, voter, domain.VoteReject, second.CreatedAt))

	got, err := repo.ListByGroup(context.Background(), first.GroupID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Ballots)
	assert.Equal(t, domain.VoteReject, got[1].Ballots[voter].Vote)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveBallot(t *testing.T) {
	repo, mock := NewMock(t)
	requestID := uuid.New()
	ballot := domain.Ballot{VoterID: uuid.New(), Vote: domain.VoteApprove, CastAt: time.Now()}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ballots (request_id, voter_id, vote, cast_at) VALUES ($1, $2, $3, $4) ON CONFLICT (request_id, voter_id) DO UPDATE`)).
		WithArgs(requestID, ballot.VoterID, ballot.Vote, ballot.CastAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.SaveBallot(context.Background(), requestID, ballot))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	resolvedAt := time.Now()

	tests := []struct {
		name            string
		rowsAffected    int64
		dbErr           error
		expectedErr     error
		expectedVersion int
	}{
		{name: "Updates and bumps version", rowsAffected: 1, expectedVersion: 4},
		{name: "Stale version", rowsAffected: 0, expectedErr: domain.ErrConcurrentModification, expectedVersion: 3},
		{name: "Database error", dbErr: errors.New("database error"), expectedVersion: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := fixture()
			req.Version = 3
			req.Status = domain.StatusExecuted
			req.ResolvedAt = &resolvedAt

			exp := mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests SET status = $1, failure_reason = $2, resolved_at = $3, version = version + 1 WHERE id = $4 AND version = $5`)).
				WithArgs(req.Status, req.FailureReason, req.ResolvedAt, req.ID, 3)
			if tt.dbErr != nil {
				exp.WillReturnError(tt.dbErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tt.rowsAffected))
			}

			err := repo.UpdateStatus(context.Background(), &req)
			switch {
			case tt.dbErr != nil:
				assert.Error(t, err)
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedVersion, req.Version)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListDue(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM withdrawal_requests WHERE status = 'pending' AND deadline <= $1 ORDER BY deadline ASC LIMIT $2`)).
		WithArgs(now, 100).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(a).AddRow(b))

	ids, err := repo.ListDue(context.Background(), now, 100)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
