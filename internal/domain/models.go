package domain

import (
	"time"

	"github.com/google/uuid"
)

type RequestKind string

const (
	KindWithdrawal    RequestKind = "withdrawal"
	KindRefundFull    RequestKind = "refund_full"
	KindRefundPartial RequestKind = "refund_partial"
)

func (k RequestKind) Valid() bool {
	switch k {
	case KindWithdrawal, KindRefundFull, KindRefundPartial:
		return true
	}
	return false
}

func (k RequestKind) IsRefund() bool {
	return k == KindRefundFull || k == KindRefundPartial
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusExpired  RequestStatus = "expired"
	StatusExecuted RequestStatus = "executed"
	// StatusFailed is reached when an approved request cannot be executed
	// because the group balance no longer covers it.
	StatusFailed RequestStatus = "failed"
)

func (s RequestStatus) Terminal() bool {
	return s != StatusPending
}

const FailureInsufficientFunds = "insufficient_funds"

type Vote string

const (
	VoteApprove Vote = "approve"
	VoteReject  Vote = "reject"
)

func (v Vote) Valid() bool {
	return v == VoteApprove || v == VoteReject
}

type Ballot struct {
	VoterID uuid.UUID `db:"voter_id"`
	Vote    Vote      `db:"vote"`
	CastAt  time.Time `db:"cast_at"`
}

type WithdrawalRequest struct {
	ID             uuid.UUID     `db:"id"`
	GroupID        uuid.UUID     `db:"group_id"`
	RequesterID    uuid.UUID     `db:"requester_id"`
	Kind           RequestKind   `db:"kind"`
	Amount         int64         `db:"amount"`
	Percentage     int           `db:"percentage"`
	Purpose        string        `db:"purpose"`
	Status         RequestStatus `db:"status"`
	FailureReason  string        `db:"failure_reason"`
	EligibleVoters []uuid.UUID   `db:"eligible_voters"`
	Deadline       time.Time     `db:"deadline"`
	CreatedAt      time.Time     `db:"created_at"`
	ResolvedAt     *time.Time    `db:"resolved_at"`
	Version        int           `db:"version"`

	Ballots map[uuid.UUID]Ballot `db:"-"`
}

// IsEligible reports whether userID is part of the voter snapshot taken at creation.
func (r *WithdrawalRequest) IsEligible(userID uuid.UUID) bool {
	for _, id := range r.EligibleVoters {
		if id == userID {
			return true
		}
	}
	return false
}

func (r *WithdrawalRequest) Votes() []Vote {
	votes := make([]Vote, 0, len(r.Ballots))
	for _, b := range r.Ballots {
		votes = append(votes, b.Vote)
	}
	return votes
}

type Group struct {
	ID            uuid.UUID `db:"id"`
	AdminID       uuid.UUID `db:"admin_id"`
	Name          string    `db:"name"`
	CurrentAmount int64     `db:"current_amount"`
	VotingEnabled bool      `db:"voting_enabled"`
	CreatedAt     time.Time `db:"created_at"`
}

type Contribution struct {
	GroupID          uuid.UUID `db:"group_id"`
	UserID           uuid.UUID `db:"user_id"`
	TotalContributed int64     `db:"total_contributed"`
}

type Wallet struct {
	UserID    uuid.UUID `db:"user_id"`
	Balance   int64     `db:"balance"`
	UpdatedAt time.Time `db:"updated_at"`
}

type AccountType string

const (
	AccountGroup  AccountType = "group"
	AccountWallet AccountType = "wallet"
	AccountFee    AccountType = "fee"
)

type LedgerEntry struct {
	ID          int64       `db:"id"`
	OperationID uuid.UUID   `db:"operation_id"`
	AccountType AccountType `db:"account_type"`
	AccountID   uuid.UUID   `db:"account_id"`
	Delta       int64       `db:"delta"`
	Reason      string      `db:"reason"`
	CreatedAt   time.Time   `db:"created_at"`
}

// RefundShare is one contributor's part of an executed refund.
type RefundShare struct {
	UserID uuid.UUID
	Amount int64
}

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Next returns the run following t.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	default:
		return t.AddDate(0, 1, 0)
	}
}

type ScheduledContribution struct {
	ID           uuid.UUID  `db:"id"`
	GroupID      uuid.UUID  `db:"group_id"`
	UserID       uuid.UUID  `db:"user_id"`
	Amount       int64      `db:"amount"`
	Frequency    Frequency  `db:"frequency"`
	NextRunAt    time.Time  `db:"next_run_at"`
	Active       bool       `db:"active"`
	FailureCount int        `db:"failure_count"`
	LastRunAt    *time.Time `db:"last_run_at"`
}
