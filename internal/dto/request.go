package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestDTO struct {
	Kind       string `json:"kind" example:"withdrawal" enums:"withdrawal,refund_full,refund_partial"`
	Amount     int64  `json:"amount" example:"4500000"`
	Percentage int    `json:"percentage,omitempty" example:"50"`
	Purpose    string `json:"purpose" example:"School fees for the second term"`
}

type TallyDTO struct {
	Eligible          int    `json:"eligible" example:"3"`
	Approvals         int    `json:"approvals" example:"2"`
	Rejections        int    `json:"rejections" example:"1"`
	ParticipationRate string `json:"participation_rate" example:"100"`
	ApprovalRate      string `json:"approval_rate" example:"66.67"`
	Verdict           string `json:"verdict" example:"approved"`
}

type BallotDTO struct {
	VoterID uuid.UUID `json:"voter_id" example:"9b2f6f0e-2f1c-4d55-9a3b-62c1f9a0c9de"`
	Vote    string    `json:"vote" example:"approve"`
	CastAt  time.Time `json:"cast_at" example:"2024-03-09T16:09:57+01:00"`
}

type RequestResponseDTO struct {
	ID            uuid.UUID   `json:"id" example:"1f0c8a9e-5b7d-4c1e-a8a1-0e6f0e1d2c3b"`
	GroupID       uuid.UUID   `json:"group_id" example:"7d4a1c2b-3e5f-4a6b-8c9d-0e1f2a3b4c5d"`
	RequesterID   uuid.UUID   `json:"requester_id" example:"9b2f6f0e-2f1c-4d55-9a3b-62c1f9a0c9de"`
	Kind          string      `json:"kind" example:"withdrawal"`
	Amount        int64       `json:"amount" example:"4500000"`
	AmountDisplay string      `json:"amount_display" example:"₦45,000.00"`
	Percentage    int         `json:"percentage,omitempty" example:"100"`
	Purpose       string      `json:"purpose" example:"School fees for the second term"`
	Status        string      `json:"status" example:"pending"`
	FailureReason string      `json:"failure_reason,omitempty" example:"insufficient_funds"`
	Deadline      time.Time   `json:"deadline" example:"2024-03-10T16:09:57+01:00"`
	CreatedAt     time.Time   `json:"created_at" example:"2024-03-09T16:09:57+01:00"`
	ResolvedAt    *time.Time  `json:"resolved_at,omitempty"`
	Ballots       []BallotDTO `json:"ballots"`
	Tally         TallyDTO    `json:"tally"`
}

type CastBallotRequestDTO struct {
	Vote string `json:"vote" example:"approve" enums:"approve,reject"`
}

type CastBallotResponseDTO struct {
	Status string   `json:"status" example:"executed"`
	Tally  TallyDTO `json:"tally"`
}
