package scheduler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/groupvault/internal/dto"
	"github.com/GlebRadaev/groupvault/internal/scheduler"
	"github.com/GlebRadaev/groupvault/pkg/utils"
)

//go:generate mockgen -source=scheduler.go -destination=mock_scheduler.go -package=scheduler

const TokenHeader = "X-Scheduler-Token"

type Service interface {
	Run(ctx context.Context, opts scheduler.RunOptions) (scheduler.Report, error)
}

type SchedulerHandler struct {
	gateway Service
	token   string
}

// New returns the trigger handler. An empty token leaves the endpoint open.
func New(gateway Service, token string) *SchedulerHandler {
	return &SchedulerHandler{
		gateway: gateway,
		token:   token,
	}
}

// Run godoc
//
//	@Summary		Run due scheduler work
//	@Description	Resolves expired requests and runs due scheduled contributions. Safe to call repeatedly.
//	@Tags			Scheduler
//	@Accept			json
//	@Produce		json
//	@Param			X-Scheduler-Token	header		string						false	"Shared trigger token"
//	@Param			request				body		dto.SchedulerRunRequestDTO	false	"Run options"
//	@Success		200					{object}	dto.SchedulerRunResponseDTO	"Run report"
//	@Failure		400					{object}	utils.Response				"Invalid request body"
//	@Failure		401					{object}	utils.Response				"Invalid trigger token"
//	@Failure		500					{object}	utils.Response				"Internal server error"
//	@Router			/api/internal/scheduler/run [post]
func (h *SchedulerHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.token != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(TokenHeader)), []byte(h.token)) != 1 {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SchedulerRunRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.gateway.Run(r.Context(), scheduler.RunOptions{DeadlinesOnly: req.DeadlinesOnly})
	if err != nil {
		zap.L().Error("scheduler run failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SchedulerRunResponseDTO{
		Resolved:             report.Resolved,
		ResolveErrors:        report.ResolveErrors,
		Contributions:        report.Contributions,
		ContributionFailures: report.ContributionFailures,
		ContributionErrors:   report.ContributionErrors,
		Deactivated:          report.Deactivated,
	})
}
