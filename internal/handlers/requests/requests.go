package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/dto"
	"github.com/GlebRadaev/groupvault/internal/service/requestservice"
	"github.com/GlebRadaev/groupvault/pkg/auth"
	"github.com/GlebRadaev/groupvault/pkg/money"
	"github.com/GlebRadaev/groupvault/pkg/utils"
)

//go:generate mockgen -source=requests.go -destination=mock_requests.go -package=requests

type Service interface {
	Create(ctx context.Context, in requestservice.CreateInput) (*requestservice.View, error)
	List(ctx context.Context, groupID uuid.UUID) ([]requestservice.View, error)
	Get(ctx context.Context, requestID uuid.UUID) (*requestservice.View, error)
	CastBallot(ctx context.Context, requestID, voterID uuid.UUID, vote domain.Vote) (*requestservice.View, error)
	PingReminder(ctx context.Context, requestID, callerID uuid.UUID) error
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// CreateRequest godoc
//
//	@Summary		Open a withdrawal or refund request
//	@Description	Withdrawals are opened by the group admin, refunds by any contributor. Eligible voters are fixed at creation.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path		string					true	"Group ID"
//	@Param			request	body		dto.CreateRequestDTO	true	"Request payload"
//	@Success		201		{object}	dto.RequestResponseDTO	"Request created"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Group balance too low"
//	@Failure		403		{object}	utils.Response			"Caller may not open this request"
//	@Failure		404		{object}	utils.Response			"Group not found"
//	@Failure		422		{object}	utils.Response			"Invalid amount, percentage or purpose"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/groups/{groupID}/requests [post]
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req dto.CreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.requestService.Create(r.Context(), requestservice.CreateInput{
		GroupID:     groupID,
		RequesterID: userID,
		Kind:        domain.RequestKind(req.Kind),
		Amount:      req.Amount,
		Percentage:  req.Percentage,
		Purpose:     req.Purpose,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(view))
}

// ListRequests godoc
//
//	@Summary		List group requests
//	@Description	All requests of the group, newest first, each with its live tally.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			groupID	path		string					true	"Group ID"
//	@Success		200		{array}		dto.RequestResponseDTO	"Requests"
//	@Success		204		{object}	utils.Response			"No requests"
//	@Failure		400		{object}	utils.Response			"Invalid group id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/groups/{groupID}/requests [get]
func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	views, err := h.requestService.List(r.Context(), groupID)
	if err != nil {
		respondError(w, err)
		return
	}
	if len(views) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.RequestResponseDTO, len(views))
	for i := range views {
		response[i] = toResponse(&views[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRequest godoc
//
//	@Summary	Get a request
//	@Tags		Requests
//	@Security	BearerAuth
//	@Produce	json
//	@Param		requestID	path		string					true	"Request ID"
//	@Success	200			{object}	dto.RequestResponseDTO	"Request with live tally"
//	@Failure	400			{object}	utils.Response			"Invalid request id"
//	@Failure	401			{object}	utils.Response			"User not authorized"
//	@Failure	404			{object}	utils.Response			"Request not found"
//	@Failure	500			{object}	utils.Response			"Internal server error"
//	@Router		/api/requests/{requestID} [get]
func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	view, err := h.requestService.Get(r.Context(), requestID)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(view))
}

// CastBallot godoc
//
//	@Summary		Vote on a request
//	@Description	Records the caller's ballot, replacing any earlier one. The request executes as soon as it is approved.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			requestID	path		string						true	"Request ID"
//	@Param			request		body		dto.CastBallotRequestDTO	true	"Ballot"
//	@Success		200			{object}	dto.CastBallotResponseDTO	"Status and tally after the ballot"
//	@Failure		400			{object}	utils.Response				"Invalid request body"
//	@Failure		401			{object}	utils.Response				"User not authorized"
//	@Failure		402			{object}	utils.Response				"Approved but the group balance no longer covers it"
//	@Failure		403			{object}	utils.Response				"Caller is not an eligible voter"
//	@Failure		404			{object}	utils.Response				"Request not found"
//	@Failure		409			{object}	utils.Response				"Request already resolved"
//	@Failure		422			{object}	utils.Response				"Invalid vote"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/requests/{requestID}/ballots [post]
func (h *RequestHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.CastBallotRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.requestService.CastBallot(r.Context(), requestID, userID, domain.Vote(req.Vote))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CastBallotResponseDTO{
		Status: string(view.Request.Status),
		Tally:  toTally(view),
	})
}

// Remind godoc
//
//	@Summary		Remind pending voters
//	@Description	Notifies eligible voters who have not voted yet.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			requestID	path	string	true	"Request ID"
//	@Success		202			"Reminder queued"
//	@Failure		400			{object}	utils.Response	"Invalid request id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Request not found"
//	@Failure		409			{object}	utils.Response	"Request already resolved"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{requestID}/remind [post]
func (h *RequestHandler) Remind(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.requestService.PingReminder(r.Context(), requestID, userID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrNotEligible):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrAlreadyResolved), errors.Is(err, domain.ErrConcurrentModification):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		zap.L().Error("request handler failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(view *requestservice.View) dto.RequestResponseDTO {
	req := view.Request
	ballots := make([]dto.BallotDTO, 0, len(req.Ballots))
	for _, b := range req.Ballots {
		ballots = append(ballots, dto.BallotDTO{
			VoterID: b.VoterID,
			Vote:    string(b.Vote),
			CastAt:  b.CastAt,
		})
	}
	sort.Slice(ballots, func(i, j int) bool { return ballots[i].CastAt.Before(ballots[j].CastAt) })
	return dto.RequestResponseDTO{
		ID:            req.ID,
		GroupID:       req.GroupID,
		RequesterID:   req.RequesterID,
		Kind:          string(req.Kind),
		Amount:        req.Amount,
		AmountDisplay: money.Format(req.Amount),
		Percentage:    req.Percentage,
		Purpose:       req.Purpose,
		Status:        string(req.Status),
		FailureReason: req.FailureReason,
		Deadline:      req.Deadline,
		CreatedAt:     req.CreatedAt,
		ResolvedAt:    req.ResolvedAt,
		Ballots:       ballots,
		Tally:         toTally(view),
	}
}

func toTally(view *requestservice.View) dto.TallyDTO {
	return dto.TallyDTO{
		Eligible:          view.Tally.Eligible,
		Approvals:         view.Tally.Approvals,
		Rejections:        view.Tally.Rejections,
		ParticipationRate: view.Tally.ParticipationRate.String(),
		ApprovalRate:      view.Tally.ApprovalRate.String(),
		Verdict:           string(view.Tally.Verdict),
	}
}
