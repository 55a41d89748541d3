package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad/hr-system/api"
	"github.com/blackroad/hr-system/hr"
	"github.com/blackroad/hr-system/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)

	svc := hr.NewService(store)
	t.Cleanup(func() { svc.Close() })

	router := api.NewRouter(api.NewHandler(svc), []string{"*"})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func hireOverHTTP(t *testing.T, server *httptest.Server, name, email, dept string, salary float64) api.EmployeeDTO {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees", api.HireRequest{
		Name: name, Email: email, Department: dept,
		Title: "Engineer", Salary: salary,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var emp api.EmployeeDTO
	decodeBody(t, resp, &emp)
	return emp
}

// =============================================================================
// EMPLOYEE ENDPOINTS
// =============================================================================

func TestHireAndGetEmployee(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Alice Chen", "alice@co.com", "Engineering", 140_000)
	assert.NotEmpty(t, emp.ID)
	assert.Equal(t, "active", emp.Status)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/employees/"+emp.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.EmployeeDTO
	decodeBody(t, resp, &got)
	assert.Equal(t, emp.ID, got.ID)
	assert.Equal(t, 140_000.0, got.Salary)
}

func TestHire_MissingFields(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees", api.HireRequest{
		Name: "Nameless",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHire_DuplicateEmailConflicts(t *testing.T) {
	server := newTestServer(t)

	hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees", api.HireRequest{
		Name: "Imposter", Email: "alice@co.com", Department: "Sales",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body api.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Failed to hire employee", body.Error)
}

func TestGetEmployee_NotFound(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/employees/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListEmployees_EmailLookup(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/employees?email=alice@co.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var found []api.EmployeeDTO
	decodeBody(t, resp, &found)
	require.Len(t, found, 1)
	assert.Equal(t, emp.ID, found[0].ID)

	// Unknown email yields an empty list, not a 404
	resp = doJSON(t, http.MethodGet, server.URL+"/api/employees?email=nobody@co.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &found)
	assert.Empty(t, found)
}

func TestTerminateEndpoint(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Bob", "bob@co.com", "Engineering", 120_000)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/"+emp.ID+"/terminate",
		api.TerminateRequest{Reason: "restructuring"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got api.EmployeeDTO
	decodeBody(t, resp, &got)
	assert.Equal(t, "terminated", got.Status)
	assert.Equal(t, "restructuring", got.TerminationReason)
}

func TestTransferEndpoint_UnknownEmployee(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/no-such-id/transfer",
		api.TransferRequest{Department: "Sales", Title: "AE"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// TIME TRACKING ENDPOINTS
// =============================================================================

func TestLogTimeEndpoint(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/"+emp.ID+"/time",
		api.LogTimeRequest{Hours: 7.5, Project: "Platform", Date: "2026-08-10"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry api.TimeEntryDTO
	decodeBody(t, resp, &entry)
	assert.Equal(t, 7.5, entry.Hours)
	assert.Equal(t, "Platform", entry.Project)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/employees/"+emp.ID+"/time", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []api.TimeEntryDTO
	decodeBody(t, resp, &entries)
	assert.Len(t, entries, 1)
}

func TestLogTimeEndpoint_InvalidHours(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)

	for _, hours := range []float64{0, -1, 25} {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/"+emp.ID+"/time",
			api.LogTimeRequest{Hours: hours, Project: "Platform"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "hours=%v", hours)
	}
}

func TestHoursByProjectEndpoint(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)
	for _, req := range []api.LogTimeRequest{
		{Hours: 8, Project: "Platform"},
		{Hours: 6.5, Project: "Platform"},
		{Hours: 3, Project: "API-Refactor"},
	} {
		resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/"+emp.ID+"/time", req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, http.MethodGet, server.URL+"/api/employees/"+emp.ID+"/time/by-project", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var totals map[string]float64
	decodeBody(t, resp, &totals)
	assert.Equal(t, map[string]float64{"Platform": 14.5, "API-Refactor": 3}, totals)
}

// =============================================================================
// PTO ENDPOINTS
// =============================================================================

func TestPTOLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)

	manager := hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)
	emp := hireOverHTTP(t, server, "Bob", "bob@co.com", "Engineering", 120_000)

	// File
	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/"+emp.ID+"/pto",
		api.RequestPTORequest{Type: "vacation", StartDate: "2026-07-01", EndDate: "2026-07-07"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var pto api.PTORequestDTO
	decodeBody(t, resp, &pto)
	assert.Equal(t, "pending", pto.Status)

	// Approve
	resp = doJSON(t, http.MethodPost, server.URL+"/api/pto/"+pto.ID+"/approve",
		api.ApprovePTORequest{ApproverID: manager.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &pto)
	assert.Equal(t, "approved", pto.Status)
	assert.Equal(t, manager.ID, pto.ApprovedBy)

	// Denying a decided request conflicts
	resp = doJSON(t, http.MethodPost, server.URL+"/api/pto/"+pto.ID+"/deny", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestApprovePTO_UnknownRequest(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/pto/no-such-id/approve",
		api.ApprovePTORequest{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestPTO_InvalidType(t *testing.T) {
	server := newTestServer(t)

	emp := hireOverHTTP(t, server, "Bob", "bob@co.com", "Engineering", 120_000)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees/"+emp.ID+"/pto",
		api.RequestPTORequest{Type: "sabbatical", StartDate: "2026-07-01", EndDate: "2026-07-07"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// REPORT ENDPOINTS
// =============================================================================

func TestPayrollEndpoint(t *testing.T) {
	server := newTestServer(t)

	hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 200_000)
	hireOverHTTP(t, server, "Bob", "bob@co.com", "Engineering", 80_000)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/reports/payroll?month=2026-08", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report api.PayrollDTO
	decodeBody(t, resp, &report)
	assert.Equal(t, "2026-08", report.Month)
	assert.Equal(t, 2, report.TotalHeadcount)
	assert.InDelta(t, 23333.33, report.TotalMonthlyPayroll, 0.001)
	require.Contains(t, report.ByDepartment, "Engineering")
	assert.Equal(t, 2, report.ByDepartment["Engineering"].Headcount)
}

func TestOrgChartEndpoint(t *testing.T) {
	server := newTestServer(t)

	alice := hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)
	resp := doJSON(t, http.MethodPost, server.URL+"/api/employees", api.HireRequest{
		Name: "Bob", Email: "bob@co.com", Department: "Engineering",
		Title: "Engineer", Salary: 120_000, ManagerID: alice.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/reports/org-chart", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chart struct {
		Org []*hr.OrgNode `json:"org"`
	}
	decodeBody(t, resp, &chart)
	require.Len(t, chart.Org, 1)
	assert.Equal(t, "Alice", chart.Org[0].Name)
	require.Len(t, chart.Org[0].Reports, 1)
	assert.Equal(t, "Bob", chart.Org[0].Reports[0].Name)
}

func TestHeadcountEndpoint(t *testing.T) {
	server := newTestServer(t)

	hireOverHTTP(t, server, "Alice", "alice@co.com", "Engineering", 140_000)
	hireOverHTTP(t, server, "Carol", "carol@co.com", "Sales", 90_000)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/reports/headcount", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var counts map[string]int
	decodeBody(t, resp, &counts)
	assert.Equal(t, map[string]int{"Engineering": 1, "Sales": 1}, counts)
}

// =============================================================================
// DEMO LOADER
// =============================================================================

func TestDemoLoad_OnceOnly(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/demo/load", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var counts map[string]int
	decodeBody(t, resp, &counts)
	assert.Equal(t, 3, counts["employees"])
	assert.Equal(t, 2, counts["departments"])

	resp = doJSON(t, http.MethodPost, server.URL+"/api/demo/load", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// The seeded data is queryable
	resp = doJSON(t, http.MethodGet,
		fmt.Sprintf("%s/api/employees?department=%s", server.URL, "Engineering"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var employees []api.EmployeeDTO
	decodeBody(t, resp, &employees)
	assert.Len(t, employees, 2)
}
