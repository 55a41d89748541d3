package hr

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format for calendar dates.
// Lexicographic comparison of two dates in this layout matches
// chronological order, which the range queries rely on.
const DateLayout = "2006-01-02"

// EmployeeStatus is the lifecycle state of an employee record.
// Terminated is a soft delete: records are never physically removed.
type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "active"
	StatusOnLeave    EmployeeStatus = "onleave"
	StatusTerminated EmployeeStatus = "terminated"
)

// Valid reports whether s is one of the known statuses.
func (s EmployeeStatus) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

// PTOType is the category of a leave request.
type PTOType string

const (
	PTOVacation PTOType = "vacation"
	PTOSick     PTOType = "sick"
	PTOPersonal PTOType = "personal"
)

// Valid reports whether t is one of the known leave types.
func (t PTOType) Valid() bool {
	switch t {
	case PTOVacation, PTOSick, PTOPersonal:
		return true
	}
	return false
}

// PTOStatus is the approval state of a leave request.
// pending is the only non-terminal state.
type PTOStatus string

const (
	PTOPending  PTOStatus = "pending"
	PTOApproved PTOStatus = "approved"
	PTODenied   PTOStatus = "denied"
)

// Valid reports whether s is one of the known request states.
func (s PTOStatus) Valid() bool {
	switch s {
	case PTOPending, PTOApproved, PTODenied:
		return true
	}
	return false
}

// Department is an organizational unit. Departments are created explicitly
// or implicitly (zero budget) when an employee references an unknown name.
// They are never deleted.
type Department struct {
	ID        string
	Name      string
	HeadID    string // employee reference, unvalidated; empty when unset
	Budget    decimal.Decimal
	CreatedAt time.Time
}

// Employee is a personnel record. The department reference is denormalized
// by name, not by id.
type Employee struct {
	ID                string
	Name              string
	Email             string
	Department        string
	Title             string
	ManagerID         string // self-reference, unvalidated; empty when unset
	Salary            decimal.Decimal
	HireDate          string // DateLayout
	Status            EmployeeStatus
	Phone             string
	TerminationReason string
	CreatedAt         time.Time
}

// TimeEntry is a single day's worked hours on a project.
// Entries are immutable once created; same-day entries never merge.
type TimeEntry struct {
	ID         string
	EmployeeID string
	Date       string // DateLayout
	Hours      decimal.Decimal
	Project    string
	Notes      string
	CreatedAt  time.Time
}

// PTORequest is a leave request. Status moves pending -> approved|denied
// exactly once.
type PTORequest struct {
	ID         string
	EmployeeID string
	Type       PTOType
	StartDate  string // DateLayout
	EndDate    string // DateLayout
	Status     PTOStatus
	Reason     string
	ApprovedBy string // employee reference, unvalidated; empty when unset
	CreatedAt  time.Time
}
