package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/bonus"
	"github.com/glowpoint/salon-backend-go/internal/handler/http/response"
	bonussvc "github.com/glowpoint/salon-backend-go/internal/service/bonus"
)

type BonusHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CheckDiscrepancies(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	AuditLogs(w http.ResponseWriter, r *http.Request)
}

type BonusHandlerImpl struct {
	bonusService *bonussvc.BonusServiceImpl
}

func NewBonusHandler(bonusService *bonussvc.BonusServiceImpl) BonusHandler {
	return &BonusHandlerImpl{bonusService: bonusService}
}

// Compute implements BonusHandler.
func (h *BonusHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req bonus.ComputeWeeklyBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	wb, err := h.bonusService.ComputeWeeklyBonus(r.Context(), req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly bonus computed", wb)
}

// Get implements BonusHandler.
func (h *BonusHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	wb, err := h.bonusService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, wb)
}

// List implements BonusHandler.
func (h *BonusHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := bonus.ListFilter{}

	q := r.URL.Query()
	if v := q.Get("branch_id"); v != "" {
		filter.BranchID = &v
	}
	if v := q.Get("year"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			filter.Year = &year
		}
	}
	if v := q.Get("month"); v != "" {
		if month, err := strconv.Atoi(v); err == nil {
			filter.Month = &month
		}
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Page, _ = strconv.Atoi(q.Get("page"))

	list, err := h.bonusService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Data, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
		TotalPages: int((list.TotalCount + int64(list.Limit) - 1) / int64(list.Limit)),
	})
}

// Delete implements BonusHandler.
func (h *BonusHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.bonusService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekly bonus deleted", nil)
}

// CheckDiscrepancies implements BonusHandler.
func (h *BonusHandlerImpl) CheckDiscrepancies(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.bonusService.DetectBonusDiscrepancies(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bonussvc.ToDiscrepancyReportResponse(report))
}

// Transition implements BonusHandler. The action is part of the path:
// POST /bonuses/{id}/request|approve|reject|pay.
func (h *BonusHandlerImpl) Transition(w http.ResponseWriter, r *http.Request) {
	var req bonus.TransitionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.Action = chi.URLParam(r, "action")

	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	wb, err := h.bonusService.Transition(r.Context(), chi.URLParam(r, "id"), req, userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Status updated", wb)
}

// AuditLogs implements BonusHandler.
func (h *BonusHandlerImpl) AuditLogs(w http.ResponseWriter, r *http.Request) {
	filter := bonus.AuditLogFilter{}

	q := r.URL.Query()
	if v := q.Get("branch_id"); v != "" {
		filter.BranchID = &v
	}
	if v := q.Get("weekly_bonus_id"); v != "" {
		filter.WeeklyBonusID = &v
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	list, err := h.bonusService.AuditLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list.Data, &response.Meta{
		Limit:      list.Limit,
		TotalItems: list.TotalCount,
	})
}
