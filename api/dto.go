/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for API communication, decoupling the domain model from
  the external contract. Monetary amounts and hours cross the wire as JSON
  numbers and are converted to decimals at the handler boundary.

NAMING CONVENTION:
  - *DTO:     Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in the service, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/blackroad/hr-system/hr"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DepartmentDTO represents a department in API responses.
type DepartmentDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	HeadID    string  `json:"head_id,omitempty"`
	Budget    float64 `json:"budget"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// CreateDepartmentRequest is the request to create a department.
type CreateDepartmentRequest struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Department        string  `json:"department"`
	Title             string  `json:"title"`
	ManagerID         string  `json:"manager_id,omitempty"`
	Salary            float64 `json:"salary"`
	HireDate          string  `json:"hire_date"`
	Status            string  `json:"status"`
	Phone             string  `json:"phone,omitempty"`
	TerminationReason string  `json:"termination_reason,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
}

// HireRequest is the request to onboard an employee.
type HireRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Title      string  `json:"title"`
	Salary     float64 `json:"salary"`
	ManagerID  string  `json:"manager_id,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	HireDate   string  `json:"hire_date,omitempty"`
}

// TransferRequest is the request to move an employee.
type TransferRequest struct {
	Department string `json:"department"`
	Title      string `json:"title"`
}

// TerminateRequest is the request to terminate an employee.
type TerminateRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SalaryRequest is the request to overwrite a salary.
type SalaryRequest struct {
	Salary float64 `json:"salary"`
}

// TimeEntryDTO represents a time entry in API responses.
type TimeEntryDTO struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Project    string  `json:"project"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
}

// LogTimeRequest is the request to record worked hours.
type LogTimeRequest struct {
	Hours   float64 `json:"hours"`
	Project string  `json:"project"`
	Date    string  `json:"date,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

// PTORequestDTO represents a leave request in API responses.
type PTORequestDTO struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Reason     string `json:"reason,omitempty"`
	ApprovedBy string `json:"approved_by,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// RequestPTORequest is the request to file for leave.
type RequestPTORequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

// ApprovePTORequest is the request to approve a leave request.
type ApprovePTORequest struct {
	ApproverID string `json:"approver_id,omitempty"`
}

// DepartmentPayrollDTO is one department's slice of the payroll report.
type DepartmentPayrollDTO struct {
	Headcount      int     `json:"headcount"`
	AnnualSalary   float64 `json:"annual_salary"`
	MonthlyPayroll float64 `json:"monthly_payroll"`
}

// PayrollDTO is the payroll report.
type PayrollDTO struct {
	Month               string                          `json:"month"`
	TotalHeadcount      int                             `json:"total_headcount"`
	TotalMonthlyPayroll float64                         `json:"total_monthly_payroll"`
	ByDepartment        map[string]DepartmentPayrollDTO `json:"by_department"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toDepartmentDTO(d hr.Department) DepartmentDTO {
	return DepartmentDTO{
		ID:        d.ID,
		Name:      d.Name,
		HeadID:    d.HeadID,
		Budget:    d.Budget.InexactFloat64(),
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

func toEmployeeDTO(e hr.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                e.ID,
		Name:              e.Name,
		Email:             e.Email,
		Department:        e.Department,
		Title:             e.Title,
		ManagerID:         e.ManagerID,
		Salary:            e.Salary.InexactFloat64(),
		HireDate:          e.HireDate,
		Status:            string(e.Status),
		Phone:             e.Phone,
		TerminationReason: e.TerminationReason,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
	}
}

func toTimeEntryDTO(e hr.TimeEntry) TimeEntryDTO {
	return TimeEntryDTO{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date,
		Hours:      e.Hours.InexactFloat64(),
		Project:    e.Project,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

func toPTORequestDTO(r hr.PTORequest) PTORequestDTO {
	return PTORequestDTO{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Type:       string(r.Type),
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Status:     string(r.Status),
		Reason:     r.Reason,
		ApprovedBy: r.ApprovedBy,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func toPayrollDTO(p *hr.PayrollReport) PayrollDTO {
	dto := PayrollDTO{
		Month:               p.Month,
		TotalHeadcount:      p.TotalHeadcount,
		TotalMonthlyPayroll: p.TotalMonthlyPayroll.InexactFloat64(),
		ByDepartment:        make(map[string]DepartmentPayrollDTO, len(p.ByDepartment)),
	}
	for dept, d := range p.ByDepartment {
		dto.ByDepartment[dept] = DepartmentPayrollDTO{
			Headcount:      d.Headcount,
			AnnualSalary:   d.AnnualSalary.InexactFloat64(),
			MonthlyPayroll: d.MonthlyPayroll.InexactFloat64(),
		}
	}
	return dto
}
