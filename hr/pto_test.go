package hr_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad/hr-system/hr"
)

func requestVacation(t *testing.T, svc *hr.Service, employeeID string) *hr.PTORequest {
	t.Helper()

	req, err := svc.RequestPTO(context.Background(), hr.PTOInput{
		EmployeeID: employeeID,
		Type:       hr.PTOVacation,
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-07",
		Reason:     "Summer break",
	})
	require.NoError(t, err)
	return req
}

func TestRequestPTO_StartsPending(t *testing.T) {
	svc := newTestService(t)

	emp := hireBasic(t, svc, "Bob", "bob@co.com", "Engineering", 120_000)
	req := requestVacation(t, svc, emp.ID)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, hr.PTOPending, req.Status)
	assert.Empty(t, req.ApprovedBy)

	got, err := svc.GetPTORequest(context.Background(), req.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, hr.PTOPending, got.Status)
}

func TestRequestPTO_UnknownEmployee(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.RequestPTO(context.Background(), hr.PTOInput{
		EmployeeID: "no-such-id",
		Type:       hr.PTOVacation,
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-07",
	})
	assert.ErrorIs(t, err, hr.ErrEmployeeNotFound)
}

func TestRequestPTO_InvalidType(t *testing.T) {
	svc := newTestService(t)

	emp := hireBasic(t, svc, "Bob", "bob@co.com", "Engineering", 120_000)

	_, err := svc.RequestPTO(context.Background(), hr.PTOInput{
		EmployeeID: emp.ID,
		Type:       hr.PTOType("sabbatical"),
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-07",
	})
	assert.ErrorIs(t, err, hr.ErrInvalidPTOType)
	assert.True(t, hr.IsClientError(err))
}

func TestApprovePTO(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	manager := hireBasic(t, svc, "Alice", "alice@co.com", "Engineering", 140_000)
	emp := hireBasic(t, svc, "Bob", "bob@co.com", "Engineering", 120_000)
	req := requestVacation(t, svc, emp.ID)

	approved, err := svc.ApprovePTO(ctx, req.ID, manager.ID)
	require.NoError(t, err)
	assert.Equal(t, hr.PTOApproved, approved.Status)
	assert.Equal(t, manager.ID, approved.ApprovedBy)
}

func TestDenyPTO(t *testing.T) {
	svc := newTestService(t)

	emp := hireBasic(t, svc, "Bob", "bob@co.com", "Engineering", 120_000)
	req := requestVacation(t, svc, emp.ID)

	denied, err := svc.DenyPTO(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, hr.PTODenied, denied.Status)
	assert.Empty(t, denied.ApprovedBy)
}

func TestDecidePTO_UnknownRequest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ApprovePTO(ctx, "no-such-id", "")
	assert.ErrorIs(t, err, hr.ErrPTORequestNotFound)

	_, err = svc.DenyPTO(ctx, "no-such-id")
	assert.ErrorIs(t, err, hr.ErrPTORequestNotFound)
}

func TestDecidePTO_OnlyPendingRequestsMove(t *testing.T) {
	// GIVEN: An already approved request
	svc := newTestService(t)
	ctx := context.Background()

	emp := hireBasic(t, svc, "Bob", "bob@co.com", "Engineering", 120_000)
	req := requestVacation(t, svc, emp.ID)
	_, err := svc.ApprovePTO(ctx, req.ID, "")
	require.NoError(t, err)

	// WHEN/THEN: Neither re-approval nor denial is allowed
	_, err = svc.ApprovePTO(ctx, req.ID, "")
	assert.ErrorIs(t, err, hr.ErrPTONotPending)

	_, err = svc.DenyPTO(ctx, req.ID)
	assert.ErrorIs(t, err, hr.ErrPTONotPending)

	var state *hr.PTOStateError
	require.ErrorAs(t, err, &state)
	assert.Equal(t, req.ID, state.RequestID)
	assert.Equal(t, hr.PTOApproved, state.Status)

	// AND: The stored request is untouched
	got, err := svc.GetPTORequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, hr.PTOApproved, got.Status)
}

func TestListPTORequests_Filters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	alice := hireBasic(t, svc, "Alice", "alice@co.com", "Engineering", 140_000)
	bob := hireBasic(t, svc, "Bob", "bob@co.com", "Engineering", 120_000)

	aliceReq := requestVacation(t, svc, alice.ID)
	requestVacation(t, svc, bob.ID)
	bobSick, err := svc.RequestPTO(ctx, hr.PTOInput{
		EmployeeID: bob.ID, Type: hr.PTOSick,
		StartDate: "2026-08-01", EndDate: "2026-08-02",
	})
	require.NoError(t, err)
	_, err = svc.DenyPTO(ctx, bobSick.ID)
	require.NoError(t, err)

	// Employee filter
	requests, err := svc.ListPTORequests(ctx, hr.PTOFilter{EmployeeID: alice.ID})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, aliceReq.ID, requests[0].ID)

	// Status filter
	requests, err = svc.ListPTORequests(ctx, hr.PTOFilter{Status: hr.PTOPending})
	require.NoError(t, err)
	assert.Len(t, requests, 2)

	// Combined
	requests, err = svc.ListPTORequests(ctx, hr.PTOFilter{
		EmployeeID: bob.ID, Status: hr.PTODenied,
	})
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, bobSick.ID, requests[0].ID)

	// Unfiltered
	requests, err = svc.ListPTORequests(ctx, hr.PTOFilter{})
	require.NoError(t, err)
	assert.Len(t, requests, 3)
}
