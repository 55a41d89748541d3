package hr

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HireInput is the data needed to onboard an employee. ManagerID, Phone and
// HireDate are optional; HireDate defaults to today.
type HireInput struct {
	Name       string
	Email      string
	Department string
	Title      string
	Salary     decimal.Decimal
	ManagerID  string
	Phone      string
	HireDate   string // DateLayout; empty means today
}

// Hire onboards a new employee with status active. The named department is
// auto-created with zero budget when absent. Returns ErrDuplicateEmail if
// the email is already taken.
func (s *Service) Hire(ctx context.Context, in HireInput) (*Employee, error) {
	if err := s.ensureDepartment(ctx, in.Department); err != nil {
		return nil, err
	}

	hireDate := in.HireDate
	if hireDate == "" {
		hireDate = s.today()
	}

	emp := Employee{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Department: in.Department,
		Title:      in.Title,
		ManagerID:  in.ManagerID,
		Salary:     in.Salary,
		HireDate:   hireDate,
		Status:     StatusActive,
		Phone:      in.Phone,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.InsertEmployee(ctx, emp); err != nil {
		return nil, fmt.Errorf("hire %q: %w", in.Email, err)
	}
	return &emp, nil
}

// GetEmployee returns the employee with the given id, or nil if none exists.
func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	return s.store.GetEmployee(ctx, id)
}

// GetEmployeeByEmail returns the employee with the given email, or nil if
// none exists.
func (s *Service) GetEmployeeByEmail(ctx context.Context, email string) (*Employee, error) {
	return s.store.GetEmployeeByEmail(ctx, email)
}

// ListEmployees returns employees matching the filter. Zero-value filter
// fields are ignored.
func (s *Service) ListEmployees(ctx context.Context, f EmployeeFilter) ([]Employee, error) {
	return s.store.ListEmployees(ctx, f)
}

// Transfer moves an employee to a new department and title. The target
// department is auto-created when absent. Returns ErrEmployeeNotFound if the
// id matches nothing; in that case no department is created.
func (s *Service) Transfer(ctx context.Context, id, newDepartment, newTitle string) (*Employee, error) {
	emp, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("transfer %s: %w", id, ErrEmployeeNotFound)
	}
	if err := s.ensureDepartment(ctx, newDepartment); err != nil {
		return nil, err
	}
	if err := s.store.UpdateEmployeePosition(ctx, id, newDepartment, newTitle); err != nil {
		return nil, err
	}
	return s.store.GetEmployee(ctx, id)
}

// Terminate soft-deletes an employee, recording the reason. Idempotent:
// terminating a terminated employee succeeds and refreshes the reason.
// Returns ErrEmployeeNotFound if the id matches nothing.
func (s *Service) Terminate(ctx context.Context, id, reason string) (*Employee, error) {
	if err := s.store.TerminateEmployee(ctx, id, reason); err != nil {
		return nil, err
	}
	return s.store.GetEmployee(ctx, id)
}

// UpdateSalary overwrites the employee's salary. No floor or ceiling is
// enforced. Returns ErrEmployeeNotFound if the id matches nothing.
func (s *Service) UpdateSalary(ctx context.Context, id string, newSalary decimal.Decimal) (*Employee, error) {
	if err := s.store.UpdateEmployeeSalary(ctx, id, newSalary); err != nil {
		return nil, err
	}
	return s.store.GetEmployee(ctx, id)
}

// SetOnLeave marks an employee as on leave. The current status is not
// checked. Returns ErrEmployeeNotFound if the id matches nothing.
func (s *Service) SetOnLeave(ctx context.Context, id string) (*Employee, error) {
	return s.setStatus(ctx, id, StatusOnLeave)
}

// ReturnFromLeave marks an employee as active. The current status is not
// checked: this will also reactivate a terminated employee.
// Returns ErrEmployeeNotFound if the id matches nothing.
func (s *Service) ReturnFromLeave(ctx context.Context, id string) (*Employee, error) {
	return s.setStatus(ctx, id, StatusActive)
}

func (s *Service) setStatus(ctx context.Context, id string, status EmployeeStatus) (*Employee, error) {
	if err := s.store.UpdateEmployeeStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.store.GetEmployee(ctx, id)
}
