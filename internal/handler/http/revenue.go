package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/revenue"
	"github.com/glowpoint/salon-backend-go/internal/handler/http/response"
	revenuesvc "github.com/glowpoint/salon-backend-go/internal/service/revenue"
)

type RevenueHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RevenueHandlerImpl struct {
	revenueService *revenuesvc.RevenueServiceImpl
}

func NewRevenueHandler(revenueService *revenuesvc.RevenueServiceImpl) RevenueHandler {
	return &RevenueHandlerImpl{revenueService: revenueService}
}

// Record implements RevenueHandler.
func (h *RevenueHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req revenue.RecordDailyRevenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rev, err := h.revenueService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily revenue recorded", rev)
}

// Get implements RevenueHandler.
func (h *RevenueHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	rev, err := h.revenueService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rev)
}

// List implements RevenueHandler.
func (h *RevenueHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := revenue.ListRevenueFilter{}

	q := r.URL.Query()
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("branch_id"); v != "" {
		filter.BranchID = &v
	}
	if v := q.Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := q.Get("date_to"); v != "" {
		filter.DateTo = &v
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Page, _ = strconv.Atoi(q.Get("page"))

	revenues, totalCount, err := h.revenueService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	response.SuccessWithMeta(w, revenues, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: totalCount,
		TotalPages: int((totalCount + int64(limit) - 1) / int64(limit)),
	})
}

// Delete implements RevenueHandler.
func (h *RevenueHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.revenueService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily revenue deleted", nil)
}
