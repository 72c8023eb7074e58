package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/domain"
	"github.com/GlebRadaev/groupvault/internal/dto"
	"github.com/GlebRadaev/groupvault/pkg/auth"
	"github.com/GlebRadaev/groupvault/pkg/money"
	"github.com/GlebRadaev/groupvault/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

type WalletService interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type ContributionService interface {
	Contribute(ctx context.Context, userID, groupID uuid.UUID, amount int64) error
}

type WalletHandler struct {
	walletService       WalletService
	contributionService ContributionService
}

func New(walletService WalletService, contributionService ContributionService) *WalletHandler {
	return &WalletHandler{
		walletService:       walletService,
		contributionService: contributionService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Personal wallet balance in kobo. Withdrawals and refunds are credited here.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Stringer("user_id", userID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance: wallet.Balance,
		Display: money.Format(wallet.Balance),
	})
}

// Contribute godoc
//
//	@Summary		Contribute to a group
//	@Description	Moves the amount from the caller's wallet into the group pool.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path		string						true	"Group ID"
//	@Param			request	body		dto.ContributionRequestDTO	true	"Contribution"
//	@Success		200		{string}	string						"Contribution successful"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient wallet balance"
//	@Failure		404		{object}	utils.Response				"Group not found"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/groups/{groupID}/contributions [post]
func (h *WalletHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	groupID, err := uuid.Parse(chi.URLParam(r, "groupID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid group id")
		return
	}

	var req dto.ContributionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.contributionService.Contribute(r.Context(), userID, groupID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "contribution successful")
}
