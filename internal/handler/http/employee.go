package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/printview"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetFilters(w http.ResponseWriter, r *http.Request)
	SetFilters(w http.ResponseWriter, r *http.Request)
	ClearFilters(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	PrintEmployee(w http.ResponseWriter, r *http.Request)
	PrintEmployees(w http.ResponseWriter, r *http.Request)
	GetReferenceData(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	reference       employee.ReferenceData
	renderer        printview.Renderer
	now             func() time.Time
}

func NewEmployeeHandler(employeeService employee.EmployeeService, reference employee.ReferenceData, renderer printview.Renderer) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		reference:       reference,
		renderer:        renderer,
		now:             time.Now,
	}
}

func (h *employeeHandlerImpl) listResponse() employee.ListEmployeeResponse {
	return employee.ListEmployeeResponse{
		Employees: h.employeeService.FilteredEmployees(),
		Filters:   h.employeeService.Filters(),
		Stats:     h.employeeService.Stats(),
	}
}

// filterPatchFromQuery reads the search, gender and status query parameters.
// Parameters that are absent leave the matching filter unchanged.
func filterPatchFromQuery(r *http.Request) (employee.FilterPatch, bool) {
	query := r.URL.Query()
	var patch employee.FilterPatch
	present := false

	for key, field := range map[string]**string{
		"search": &patch.Search,
		"gender": &patch.Gender,
		"status": &patch.Status,
	} {
		if query.Has(key) {
			value := query.Get(key)
			*field = &value
			present = true
		}
	}
	return patch, present
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	if patch, ok := filterPatchFromQuery(r); ok {
		patch.Normalize()
		if err := patch.Validate(h.reference); err != nil {
			response.HandleError(w, err)
			return
		}
		h.employeeService.SetFilters(patch)
	}

	response.Success(w, h.listResponse())
}

// GetStats implements EmployeeHandler
func (h *employeeHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.employeeService.Stats())
}

// GetFilters implements EmployeeHandler
func (h *employeeHandlerImpl) GetFilters(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.employeeService.Filters())
}

// SetFilters implements EmployeeHandler
func (h *employeeHandlerImpl) SetFilters(w http.ResponseWriter, r *http.Request) {
	var patch employee.FilterPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		slog.Error("SetFilters decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	patch.Normalize()
	if err := patch.Validate(h.reference); err != nil {
		response.HandleError(w, err)
		return
	}

	h.employeeService.SetFilters(patch)
	response.Success(w, h.listResponse())
}

// ClearFilters implements EmployeeHandler
func (h *employeeHandlerImpl) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.employeeService.ClearFilters()
	response.Success(w, h.listResponse())
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, ok := h.employeeService.GetByID(id)
	if !ok {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	response.Success(w, emp)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.EmployeeFormData
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(h.reference, h.now()); err != nil {
		response.HandleError(w, err)
		return
	}

	emp, err := h.employeeService.Add(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added successfully", emp)
}

// UpdateEmployee implements EmployeeHandler. An unknown id is not an error.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.EmployeeFormData
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(h.reference, h.now()); err != nil {
		response.HandleError(w, err)
		return
	}

	h.employeeService.Update(r.Context(), id, req)

	emp, ok := h.employeeService.GetByID(id)
	if !ok {
		response.SuccessWithMessage(w, "Employee updated successfully", nil)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// ToggleStatus implements EmployeeHandler
func (h *employeeHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.employeeService.ToggleStatus(r.Context(), id)

	emp, ok := h.employeeService.GetByID(id)
	if !ok {
		response.SuccessWithMessage(w, "Employee status updated", nil)
		return
	}
	response.SuccessWithMessage(w, "Employee status updated", emp)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.employeeService.Delete(r.Context(), id)
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// PrintEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) PrintEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, ok := h.employeeService.GetByID(id)
	if !ok {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	var page bytes.Buffer
	if err := h.renderer.EmployeeSheet(&page, emp); err != nil {
		slog.Error("PrintEmployee render error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.HTML(w, page.Bytes())
}

// PrintEmployees implements EmployeeHandler. It prints the filtered view.
func (h *employeeHandlerImpl) PrintEmployees(w http.ResponseWriter, r *http.Request) {
	var page bytes.Buffer
	if err := h.renderer.EmployeeTable(&page, h.employeeService.FilteredEmployees(), h.employeeService.Stats()); err != nil {
		slog.Error("PrintEmployees render error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.HTML(w, page.Bytes())
}

// GetReferenceData implements EmployeeHandler
func (h *employeeHandlerImpl) GetReferenceData(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.reference)
}
