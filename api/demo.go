/*
demo.go - Demonstration dataset loader

PURPOSE:
  Seeds a small end-to-end dataset so the API can be explored without any
  setup: two departments, three employees, logged time, and an approved
  PTO request. Development convenience only, not a supported interface.
*/
package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/blackroad/hr-system/hr"
)

// LoadDemo seeds the demonstration dataset. Refuses to run twice against
// the same database.
// POST /api/demo/load
func (h *Handler) LoadDemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	existing, err := h.Service.GetEmployeeByEmail(ctx, "alice@blackroad.io")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check demo data", err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "Demo data already loaded", nil)
		return
	}

	if _, err := h.Service.CreateDepartment(ctx, "Engineering", decimal.NewFromInt(1_200_000)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed departments", err)
		return
	}
	if _, err := h.Service.CreateDepartment(ctx, "Sales", decimal.NewFromInt(800_000)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed departments", err)
		return
	}

	alice, err := h.Service.Hire(ctx, hr.HireInput{
		Name: "Alice Chen", Email: "alice@blackroad.io",
		Department: "Engineering", Title: "Senior Engineer",
		Salary: decimal.NewFromInt(140_000),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed employees", err)
		return
	}
	bob, err := h.Service.Hire(ctx, hr.HireInput{
		Name: "Bob Martinez", Email: "bob@blackroad.io",
		Department: "Engineering", Title: "Engineer",
		Salary: decimal.NewFromInt(120_000), ManagerID: alice.ID,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed employees", err)
		return
	}
	carol, err := h.Service.Hire(ctx, hr.HireInput{
		Name: "Carol Lee", Email: "carol@blackroad.io",
		Department: "Sales", Title: "Account Executive",
		Salary: decimal.NewFromInt(90_000),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed employees", err)
		return
	}

	if _, err := h.Service.Transfer(ctx, carol.ID, "Sales", "Senior Account Executive"); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed transfer", err)
		return
	}

	for _, entry := range []hr.TimeEntryInput{
		{EmployeeID: alice.ID, Hours: decimal.NewFromInt(8), Project: "Platform", Notes: "Core module"},
		{EmployeeID: alice.ID, Hours: decimal.NewFromInt(6), Project: "Platform"},
		{EmployeeID: bob.ID, Hours: decimal.NewFromInt(8), Project: "API-Refactor"},
	} {
		if _, err := h.Service.LogTime(ctx, entry); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to seed time entries", err)
			return
		}
	}

	pto, err := h.Service.RequestPTO(ctx, hr.PTOInput{
		EmployeeID: bob.ID, Type: hr.PTOVacation,
		StartDate: "2026-07-01", EndDate: "2026-07-07",
		Reason: "Summer break",
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed pto", err)
		return
	}
	if _, err := h.Service.ApprovePTO(ctx, pto.ID, alice.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed pto approval", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"departments": 2,
		"employees":   3,
		"time_entries": 3,
		"pto_requests": 1,
	})
}
