package hr

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxHours = decimal.NewFromInt(24)

// TimeEntryInput is the data for a new time entry. Date defaults to today;
// Notes is optional.
type TimeEntryInput struct {
	EmployeeID string
	Hours      decimal.Decimal
	Project    string
	Date       string // DateLayout; empty means today
	Notes      string
}

// LogTime records worked hours. The employee must exist and hours must be
// greater than 0 and at most 24. Every call creates an independent entry;
// same-day, same-project entries are not merged.
func (s *Service) LogTime(ctx context.Context, in TimeEntryInput) (*TimeEntry, error) {
	emp, err := s.store.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("log time for %s: %w", in.EmployeeID, ErrEmployeeNotFound)
	}
	if !in.Hours.IsPositive() || in.Hours.GreaterThan(maxHours) {
		return nil, &InvalidHoursError{Hours: in.Hours}
	}

	date := in.Date
	if date == "" {
		date = s.today()
	}

	entry := TimeEntry{
		ID:         uuid.NewString(),
		EmployeeID: in.EmployeeID,
		Date:       date,
		Hours:      in.Hours,
		Project:    in.Project,
		Notes:      in.Notes,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.InsertTimeEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("log time for %s: %w", in.EmployeeID, err)
	}
	return &entry, nil
}

// GetTimeEntries returns an employee's entries, newest date first.
// startDate and endDate are inclusive bounds; empty means unbounded.
func (s *Service) GetTimeEntries(ctx context.Context, employeeID, startDate, endDate string) ([]TimeEntry, error) {
	return s.store.ListTimeEntries(ctx, employeeID, startDate, endDate)
}

// HoursByProject sums an employee's hours grouped by project label.
// Map iteration order is undefined.
func (s *Service) HoursByProject(ctx context.Context, employeeID string) (map[string]decimal.Decimal, error) {
	entries, err := s.store.ListTimeEntries(ctx, employeeID, "", "")
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range entries {
		totals[e.Project] = totals[e.Project].Add(e.Hours)
	}
	return totals, nil
}
