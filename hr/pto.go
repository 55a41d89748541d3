package hr

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PTOInput is the data for a new leave request. Reason is optional.
// Start and end dates are taken as given: there is no start<=end check and
// no overlap detection against existing approved leave.
type PTOInput struct {
	EmployeeID string
	Type       PTOType
	StartDate  string // DateLayout
	EndDate    string // DateLayout
	Reason     string
}

// RequestPTO files a leave request in the pending state. The employee must
// exist.
func (s *Service) RequestPTO(ctx context.Context, in PTOInput) (*PTORequest, error) {
	emp, err := s.store.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("request pto for %s: %w", in.EmployeeID, ErrEmployeeNotFound)
	}
	if !in.Type.Valid() {
		return nil, fmt.Errorf("request pto: %q: %w", in.Type, ErrInvalidPTOType)
	}

	req := PTORequest{
		ID:         uuid.NewString(),
		EmployeeID: in.EmployeeID,
		Type:       in.Type,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     PTOPending,
		Reason:     in.Reason,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.InsertPTORequest(ctx, req); err != nil {
		return nil, fmt.Errorf("request pto for %s: %w", in.EmployeeID, err)
	}
	return &req, nil
}

// ApprovePTO moves a pending request to approved, recording the optional
// approver. Returns ErrPTORequestNotFound for an unknown id and a
// PTOStateError when the request has already been decided.
func (s *Service) ApprovePTO(ctx context.Context, id, approverID string) (*PTORequest, error) {
	return s.decidePTO(ctx, id, PTOApproved, approverID)
}

// DenyPTO moves a pending request to denied. Returns ErrPTORequestNotFound
// for an unknown id and a PTOStateError when the request has already been
// decided.
func (s *Service) DenyPTO(ctx context.Context, id string) (*PTORequest, error) {
	return s.decidePTO(ctx, id, PTODenied, "")
}

func (s *Service) decidePTO(ctx context.Context, id string, status PTOStatus, approverID string) (*PTORequest, error) {
	req, err := s.store.GetPTORequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("decide pto %s: %w", id, ErrPTORequestNotFound)
	}
	if req.Status != PTOPending {
		return nil, &PTOStateError{RequestID: id, Status: req.Status}
	}
	if err := s.store.UpdatePTOStatus(ctx, id, status, approverID); err != nil {
		return nil, err
	}
	return s.store.GetPTORequest(ctx, id)
}

// GetPTORequest returns the request with the given id, or nil if none exists.
func (s *Service) GetPTORequest(ctx context.Context, id string) (*PTORequest, error) {
	return s.store.GetPTORequest(ctx, id)
}

// ListPTORequests returns requests matching the filter. Zero-value filter
// fields are ignored.
func (s *Service) ListPTORequests(ctx context.Context, f PTOFilter) ([]PTORequest, error) {
	return s.store.ListPTORequests(ctx, f)
}
