// Package tally computes participation, approval and the resulting verdict
// for a set of ballots. It performs no I/O.
package tally

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/groupvault/internal/domain"
)

type Verdict string

const (
	VerdictPending  Verdict = "pending"
	VerdictApproved Verdict = "approved"
	VerdictRejected Verdict = "rejected"
)

var hundred = decimal.NewFromInt(100)

// Policy holds inclusive thresholds, in percent.
type Policy struct {
	ApprovalPct      decimal.Decimal
	ParticipationPct decimal.Decimal
}

func NewPolicy(approvalPct, participationPct float64) Policy {
	return Policy{
		ApprovalPct:      decimal.NewFromFloat(approvalPct),
		ParticipationPct: decimal.NewFromFloat(participationPct),
	}
}

// Policies selects a Policy by request kind.
type Policies struct {
	Withdrawal Policy
	Refund     Policy
}

func DefaultPolicies() Policies {
	return Policies{
		Withdrawal: NewPolicy(51, 0),
		Refund:     NewPolicy(60, 70),
	}
}

func (p Policies) For(kind domain.RequestKind) Policy {
	if kind.IsRefund() {
		return p.Refund
	}
	return p.Withdrawal
}

type Result struct {
	Eligible          int             `json:"eligible"`
	Approvals         int             `json:"approvals"`
	Rejections        int             `json:"rejections"`
	ParticipationRate decimal.Decimal `json:"participation_rate"`
	ApprovalRate      decimal.Decimal `json:"approval_rate"`
	Verdict           Verdict         `json:"verdict"`
}

func (r Result) Cast() int {
	return r.Approvals + r.Rejections
}

// Tally evaluates votes cast so far against eligible voters.
// Verdict is approved when both thresholds are met, rejected when nobody is
// eligible, and pending otherwise.
func Tally(votes []domain.Vote, eligible int, policy Policy) Result {
	res := Result{Eligible: eligible}
	for _, v := range votes {
		switch v {
		case domain.VoteApprove:
			res.Approvals++
		case domain.VoteReject:
			res.Rejections++
		}
	}
	cast := res.Cast()

	res.ParticipationRate = rate(cast, eligible)
	res.ApprovalRate = rate(res.Approvals, cast)

	switch {
	case eligible <= 0:
		res.Verdict = VerdictRejected
	case cast > 0 && meets(cast, eligible, policy.ParticipationPct) && meets(res.Approvals, cast, policy.ApprovalPct):
		res.Verdict = VerdictApproved
	default:
		res.Verdict = VerdictPending
	}
	return res
}

// Final is Tally evaluated after the deadline: anything short of approval is rejected.
func Final(votes []domain.Vote, eligible int, policy Policy) Result {
	res := Tally(votes, eligible, policy)
	if res.Verdict == VerdictPending {
		res.Verdict = VerdictRejected
	}
	return res
}

// meets compares part/whole*100 >= threshold without dividing, so boundaries are exact.
func meets(part, whole int, threshold decimal.Decimal) bool {
	if whole <= 0 {
		return false
	}
	lhs := decimal.NewFromInt(int64(part)).Mul(hundred)
	rhs := threshold.Mul(decimal.NewFromInt(int64(whole)))
	return lhs.GreaterThanOrEqual(rhs)
}

func rate(part, whole int) decimal.Decimal {
	if whole <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).DivRound(decimal.NewFromInt(int64(whole)), 2)
}
