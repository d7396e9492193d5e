package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/flexwork-hq/payroll-engine-go/internal/domain/worktime"
	"github.com/flexwork-hq/payroll-engine-go/internal/handler/http/response"
)

type WorktimeHandler interface {
	CalculateBiweekly(w http.ResponseWriter, r *http.Request)
	CalculatePayroll(w http.ResponseWriter, r *http.Request)
	GetRules(w http.ResponseWriter, r *http.Request)
}

type worktimeHandlerImpl struct {
	worktimeService worktime.WorktimeService
}

func NewWorktimeHandler(worktimeService worktime.WorktimeService) WorktimeHandler {
	return &worktimeHandlerImpl{
		worktimeService: worktimeService,
	}
}

// CalculateBiweekly implements WorktimeHandler.
func (h *worktimeHandlerImpl) CalculateBiweekly(w http.ResponseWriter, r *http.Request) {
	var req worktime.BiweeklyCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode biweekly calculation request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.worktimeService.CalculateBiweekly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CalculatePayroll implements WorktimeHandler.
func (h *worktimeHandlerImpl) CalculatePayroll(w http.ResponseWriter, r *http.Request) {
	var req worktime.PayrollCalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode payroll calculation request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.worktimeService.CalculatePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRules implements WorktimeHandler.
func (h *worktimeHandlerImpl) GetRules(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.worktimeService.GetRules(r.Context()))
}
