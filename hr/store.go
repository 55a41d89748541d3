/*
store.go - Persistence interfaces for the HR domain

PURPOSE:
  Defines what the service needs from storage, split by record kind so
  implementations and tests can satisfy the pieces independently. The
  sqlite package provides the production implementation.

CONVENTIONS:
  - Point lookups return (nil, nil) when no record matches.
  - Mutations of a single record return ErrEmployeeNotFound /
    ErrPTORequestNotFound when the id matches nothing.
  - Inserts translate uniqueness violations into ErrDuplicateEmail /
    ErrDuplicateDepartment.

SEE ALSO:
  - store/sqlite/sqlite.go: SQLite implementation
  - service.go: The façade built on these interfaces
*/
package hr

import (
	"context"

	"github.com/shopspring/decimal"
)

// EmployeeFilter narrows ListEmployees. Zero-value fields are ignored;
// set fields combine with AND.
type EmployeeFilter struct {
	Department string
	Status     EmployeeStatus
}

// PTOFilter narrows ListPTORequests. Zero-value fields are ignored;
// set fields combine with AND.
type PTOFilter struct {
	EmployeeID string
	Status     PTOStatus
}

// DepartmentStore persists departments.
type DepartmentStore interface {
	InsertDepartment(ctx context.Context, d Department) error
	GetDepartment(ctx context.Context, name string) (*Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
}

// EmployeeStore persists employees.
type EmployeeStore interface {
	InsertEmployee(ctx context.Context, e Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error)
	ListEmployees(ctx context.Context, f EmployeeFilter) ([]Employee, error)
	UpdateEmployeePosition(ctx context.Context, id, department, title string) error
	UpdateEmployeeSalary(ctx context.Context, id string, salary decimal.Decimal) error
	UpdateEmployeeStatus(ctx context.Context, id string, status EmployeeStatus) error
	TerminateEmployee(ctx context.Context, id, reason string) error
}

// TimeEntryStore persists time entries. Entries are append-only.
type TimeEntryStore interface {
	InsertTimeEntry(ctx context.Context, e TimeEntry) error
	// ListTimeEntries returns entries for an employee, newest date first.
	// startDate/endDate are inclusive DateLayout bounds; empty means open.
	ListTimeEntries(ctx context.Context, employeeID, startDate, endDate string) ([]TimeEntry, error)
}

// PTOStore persists leave requests.
type PTOStore interface {
	InsertPTORequest(ctx context.Context, r PTORequest) error
	GetPTORequest(ctx context.Context, id string) (*PTORequest, error)
	ListPTORequests(ctx context.Context, f PTOFilter) ([]PTORequest, error)
	UpdatePTOStatus(ctx context.Context, id string, status PTOStatus, approvedBy string) error
}

// ReportStore answers aggregate queries that stay in SQL.
type ReportStore interface {
	// HeadcountByDepartment counts active employees per department.
	HeadcountByDepartment(ctx context.Context) (map[string]int, error)
}

// Store is everything the service needs from persistence.
type Store interface {
	DepartmentStore
	EmployeeStore
	TimeEntryStore
	PTOStore
	ReportStore

	Close() error
}
