package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/handler/http/response"
	mastersvc "github.com/glowpoint/salon-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateBranch(w http.ResponseWriter, r *http.Request)
	GetBranch(w http.ResponseWriter, r *http.Request)
	ListBranches(w http.ResponseWriter, r *http.Request)
	UpdateBranch(w http.ResponseWriter, r *http.Request)
	DeactivateBranch(w http.ResponseWriter, r *http.Request)

	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	ResignEmployee(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService *mastersvc.MasterServiceImpl
}

func NewMasterHandler(masterService *mastersvc.MasterServiceImpl) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ========== BRANCHES ==========

// CreateBranch implements MasterHandler.
func (h *MasterHandlerImpl) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	b, err := h.masterService.CreateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Branch created successfully", b)
}

// GetBranch implements MasterHandler.
func (h *MasterHandlerImpl) GetBranch(w http.ResponseWriter, r *http.Request) {
	b, err := h.masterService.GetBranch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, b)
}

// ListBranches implements MasterHandler.
func (h *MasterHandlerImpl) ListBranches(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	branches, err := h.masterService.ListBranches(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branches)
}

// UpdateBranch implements MasterHandler.
func (h *MasterHandlerImpl) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	var req branch.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	b, err := h.masterService.UpdateBranch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch updated successfully", b)
}

// DeactivateBranch implements MasterHandler.
func (h *MasterHandlerImpl) DeactivateBranch(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeactivateBranch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Branch deactivated", nil)
}

// ========== EMPLOYEES ==========

// CreateEmployee implements MasterHandler.
func (h *MasterHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.masterService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp)
}

// GetEmployee implements MasterHandler.
func (h *MasterHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.masterService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// ListEmployees implements MasterHandler.
func (h *MasterHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var branchID *string
	if v := r.URL.Query().Get("branch_id"); v != "" {
		branchID = &v
	}
	activeOnly := r.URL.Query().Get("active") == "true"

	employees, err := h.masterService.ListEmployees(r.Context(), branchID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// UpdateEmployee implements MasterHandler.
func (h *MasterHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	emp, err := h.masterService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// ResignEmployee implements MasterHandler.
func (h *MasterHandlerImpl) ResignEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResignationDate string `json:"resignation_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.masterService.ResignEmployee(r.Context(), chi.URLParam(r, "id"), req.ResignationDate); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee resigned", nil)
}
