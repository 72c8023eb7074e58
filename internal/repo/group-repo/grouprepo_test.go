package grouprepo

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

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetGroup(t *testing.T) {
	repo, mock := NewMock(t)
	groupID, adminID := uuid.New(), uuid.New()
	created := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT id, admin_id, name, current_amount, voting_enabled, created_at FROM groups WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Group
	}{
		{
			name: "Existing group",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "admin_id", "name", "current_amount", "voting_enabled", "created_at"}).
					AddRow(groupID, adminID, "Esusu", int64(4_500_000), false, created)
				mock.ExpectQuery(query).WithArgs(groupID).WillReturnRows(rows)
			},
			result: &domain.Group{ID: groupID, AdminID: adminID, Name: "Esusu", CurrentAmount: 4_500_000, CreatedAt: created},
		},
		{
			name: "Missing group returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(groupID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(groupID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			group, err := repo.GetGroup(context.Background(), groupID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, group)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListContributorIDs(t *testing.T) {
	repo, mock := NewMock(t)
	groupID := uuid.New()
	a, b := uuid.New(), uuid.New()
	query := regexp.QuoteMeta(`SELECT user_id FROM contributions WHERE group_id = $1 AND total_contributed > 0`)

	mock.ExpectQuery(query).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(a).AddRow(b))
	mock.ExpectQuery(query).
		WithArgs(groupID).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}))
	mock.ExpectQuery(query).
		WithArgs(groupID).
		WillReturnError(errors.New("database error"))

	ids, err := repo.ListContributorIDs(context.Background(), groupID)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)

	ids, err = repo.ListContributorIDs(context.Background(), groupID)
	assert.NoError(t, err)
	assert.Empty(t, ids)

	_, err = repo.ListContributorIDs(context.Background(), groupID)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
