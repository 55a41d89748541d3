/*
handlers.go - HTTP API handlers for the HR system

PURPOSE:
  Exposes the HR service via REST. Handles HTTP request/response, JSON
  serialization, and delegates to the service for all domain logic.

REQUEST FLOW:
  1. Parse HTTP request
  2. Call service operation
  3. Serialize response
  4. Map domain errors to HTTP status

ERROR HANDLING:
  - 400: Validation errors (hours range, unknown leave type)
  - 404: Referenced record not found
  - 409: Uniqueness conflicts, already-decided PTO requests
  - 500: Everything else

SECURITY NOTE:
  No authentication or authorization; all endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - demo.go: Demonstration dataset loader
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/blackroad/hr-system/hr"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *hr.Service
}

// NewHandler creates a handler over the given service.
func NewHandler(svc *hr.Service) *Handler {
	return &Handler{Service: svc}
}

// =============================================================================
// DEPARTMENT HANDLERS
// =============================================================================

// ListDepartments returns all departments.
// GET /api/departments
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	dtos := make([]DepartmentDTO, len(departments))
	for i, d := range departments {
		dtos[i] = toDepartmentDTO(d)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreateDepartment creates a department.
// POST /api/departments
func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	dept, err := h.Service.CreateDepartment(r.Context(), req.Name, decimal.NewFromFloat(req.Budget))
	if err != nil {
		writeDomainError(w, "Failed to create department", err)
		return
	}
	writeJSON(w, http.StatusCreated, toDepartmentDTO(*dept))
}

// GetDepartment returns a single department by name.
// GET /api/departments/{name}
func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	dept, err := h.Service.GetDepartment(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get department", err)
		return
	}
	if dept == nil {
		writeError(w, http.StatusNotFound, "Department not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toDepartmentDTO(*dept))
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns employees, optionally filtered by department,
// status, or looked up by email.
// GET /api/employees?department=&status=&email=
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if email := q.Get("email"); email != "" {
		emp, err := h.Service.GetEmployeeByEmail(r.Context(), email)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to look up employee", err)
			return
		}
		if emp == nil {
			writeJSON(w, http.StatusOK, []EmployeeDTO{})
			return
		}
		writeJSON(w, http.StatusOK, []EmployeeDTO{toEmployeeDTO(*emp)})
		return
	}

	employees, err := h.Service.ListEmployees(r.Context(), hr.EmployeeFilter{
		Department: q.Get("department"),
		Status:     hr.EmployeeStatus(q.Get("status")),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Hire onboards an employee.
// POST /api/employees
func (h *Handler) Hire(w http.ResponseWriter, r *http.Request) {
	var req HireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Department == "" {
		writeError(w, http.StatusBadRequest, "name, email and department are required", nil)
		return
	}

	emp, err := h.Service.Hire(r.Context(), hr.HireInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Title:      req.Title,
		Salary:     decimal.NewFromFloat(req.Salary),
		ManagerID:  req.ManagerID,
		Phone:      req.Phone,
		HireDate:   req.HireDate,
	})
	if err != nil {
		writeDomainError(w, "Failed to hire employee", err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(*emp))
}

// GetEmployee returns a single employee.
// GET /api/employees/{id}
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get employee", err)
		return
	}
	if emp == nil {
		writeError(w, http.StatusNotFound, "Employee not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// Transfer moves an employee to a new department and title.
// POST /api/employees/{id}/transfer
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Department == "" {
		writeError(w, http.StatusBadRequest, "department is required", nil)
		return
	}

	emp, err := h.Service.Transfer(r.Context(), id, req.Department, req.Title)
	if err != nil {
		writeDomainError(w, "Failed to transfer employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// Terminate soft-deletes an employee.
// POST /api/employees/{id}/terminate
func (h *Handler) Terminate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TerminateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Service.Terminate(r.Context(), id, req.Reason)
	if err != nil {
		writeDomainError(w, "Failed to terminate employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// UpdateSalary overwrites an employee's salary.
// POST /api/employees/{id}/salary
func (h *Handler) UpdateSalary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req SalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Service.UpdateSalary(r.Context(), id, decimal.NewFromFloat(req.Salary))
	if err != nil {
		writeDomainError(w, "Failed to update salary", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// SetOnLeave marks an employee as on leave.
// POST /api/employees/{id}/leave
func (h *Handler) SetOnLeave(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, (*hr.Service).SetOnLeave, "Failed to set on leave")
}

// ReturnFromLeave marks an employee as active.
// POST /api/employees/{id}/return
func (h *Handler) ReturnFromLeave(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, (*hr.Service).ReturnFromLeave, "Failed to return from leave")
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request,
	op func(*hr.Service, context.Context, string) (*hr.Employee, error), msg string) {
	id := chi.URLParam(r, "id")

	emp, err := op(h.Service, r.Context(), id)
	if err != nil {
		writeDomainError(w, msg, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(*emp))
}

// =============================================================================
// TIME TRACKING HANDLERS
// =============================================================================

// LogTime records worked hours for an employee.
// POST /api/employees/{id}/time
func (h *Handler) LogTime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req LogTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entry, err := h.Service.LogTime(r.Context(), hr.TimeEntryInput{
		EmployeeID: id,
		Hours:      decimal.NewFromFloat(req.Hours),
		Project:    req.Project,
		Date:       req.Date,
		Notes:      req.Notes,
	})
	if err != nil {
		writeDomainError(w, "Failed to log time", err)
		return
	}
	writeJSON(w, http.StatusCreated, toTimeEntryDTO(*entry))
}

// GetTimeEntries returns an employee's time entries, newest first.
// GET /api/employees/{id}/time?start_date=&end_date=
func (h *Handler) GetTimeEntries(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	entries, err := h.Service.GetTimeEntries(r.Context(), id, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get time entries", err)
		return
	}

	dtos := make([]TimeEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toTimeEntryDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// HoursByProject returns an employee's summed hours per project.
// GET /api/employees/{id}/time/by-project
func (h *Handler) HoursByProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	totals, err := h.Service.HoursByProject(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to sum hours", err)
		return
	}

	out := make(map[string]float64, len(totals))
	for project, hours := range totals {
		out[project] = hours.InexactFloat64()
	}
	writeJSON(w, http.StatusOK, out)
}

// =============================================================================
// PTO HANDLERS
// =============================================================================

// RequestPTO files a leave request for an employee.
// POST /api/employees/{id}/pto
func (h *Handler) RequestPTO(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RequestPTORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	pto, err := h.Service.RequestPTO(r.Context(), hr.PTOInput{
		EmployeeID: id,
		Type:       hr.PTOType(req.Type),
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
	})
	if err != nil {
		writeDomainError(w, "Failed to request pto", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPTORequestDTO(*pto))
}

// ListPTORequests returns leave requests matching the query filters.
// GET /api/pto?employee_id=&status=
func (h *Handler) ListPTORequests(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	requests, err := h.Service.ListPTORequests(r.Context(), hr.PTOFilter{
		EmployeeID: q.Get("employee_id"),
		Status:     hr.PTOStatus(q.Get("status")),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list pto requests", err)
		return
	}

	dtos := make([]PTORequestDTO, len(requests))
	for i, p := range requests {
		dtos[i] = toPTORequestDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetPTORequest returns a single leave request.
// GET /api/pto/{id}
func (h *Handler) GetPTORequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pto, err := h.Service.GetPTORequest(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get pto request", err)
		return
	}
	if pto == nil {
		writeError(w, http.StatusNotFound, "PTO request not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toPTORequestDTO(*pto))
}

// ApprovePTO approves a pending leave request.
// POST /api/pto/{id}/approve
func (h *Handler) ApprovePTO(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ApprovePTORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	pto, err := h.Service.ApprovePTO(r.Context(), id, req.ApproverID)
	if err != nil {
		writeDomainError(w, "Failed to approve pto", err)
		return
	}
	writeJSON(w, http.StatusOK, toPTORequestDTO(*pto))
}

// DenyPTO denies a pending leave request.
// POST /api/pto/{id}/deny
func (h *Handler) DenyPTO(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pto, err := h.Service.DenyPTO(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to deny pto", err)
		return
	}
	writeJSON(w, http.StatusOK, toPTORequestDTO(*pto))
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// PayrollSummary returns the payroll breakdown by department.
// GET /api/reports/payroll?month=
func (h *Handler) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.PayrollSummary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build payroll summary", err)
		return
	}
	writeJSON(w, http.StatusOK, toPayrollDTO(report))
}

// OrgChart returns the manager/report forest of active employees.
// GET /api/reports/org-chart
func (h *Handler) OrgChart(w http.ResponseWriter, r *http.Request) {
	roots, err := h.Service.OrgChart(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build org chart", err)
		return
	}
	if roots == nil {
		roots = []*hr.OrgNode{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"org": roots})
}

// HeadcountByDepartment returns active headcounts per department.
// GET /api/reports/headcount
func (h *Handler) HeadcountByDepartment(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.HeadcountByDepartment(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count headcount", err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// TenureReport returns active employees longest-tenured first.
// GET /api/reports/tenure
func (h *Handler) TenureReport(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.TenureReport(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build tenure report", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps domain errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case hr.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case hr.IsConflict(err):
		writeError(w, http.StatusConflict, message, err)
	case hr.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
