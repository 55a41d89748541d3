/*
service.go - HR service façade and department operations

PURPOSE:
  Service is the single entry point for all HR operations: departments,
  employees, time tracking, PTO, and reports. It owns no state beyond the
  store handle; every method is a synchronous request/response call that
  issues one or a short sequence of store calls.

RESOURCE LIFECYCLE:
  The store is acquired at construction and released via Close(). There is
  no ambient/global connection state.

SEE ALSO:
  - employees.go:    Employee lifecycle operations
  - timetracking.go: Time entry operations
  - pto.go:          Leave request operations
  - analytics.go:    Aggregate reports
*/
package hr

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes all HR operations over a Store.
type Service struct {
	store Store

	// now is swappable so tests can pin "today".
	now func() time.Time
}

// NewService creates a service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Close releases the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}

// SetClock overrides the service clock. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Service) today() string {
	return s.now().Format(DateLayout)
}

// =============================================================================
// DEPARTMENT OPERATIONS
// =============================================================================

// CreateDepartment creates a department with the given budget.
// Returns ErrDuplicateDepartment if the name is already taken.
func (s *Service) CreateDepartment(ctx context.Context, name string, budget decimal.Decimal) (*Department, error) {
	dept := Department{
		ID:        uuid.NewString(),
		Name:      name,
		Budget:    budget,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.InsertDepartment(ctx, dept); err != nil {
		return nil, fmt.Errorf("create department %q: %w", name, err)
	}
	return &dept, nil
}

// GetDepartment returns the department with the given name, or nil if none
// exists.
func (s *Service) GetDepartment(ctx context.Context, name string) (*Department, error) {
	return s.store.GetDepartment(ctx, name)
}

// ListDepartments returns all departments ordered by name.
func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

// ensureDepartment creates the named department with zero budget unless it
// already exists. Used by Hire and Transfer for referential auto-creation.
func (s *Service) ensureDepartment(ctx context.Context, name string) error {
	dept, err := s.store.GetDepartment(ctx, name)
	if err != nil {
		return err
	}
	if dept != nil {
		return nil
	}
	_, err = s.CreateDepartment(ctx, name, decimal.Zero)
	return err
}
