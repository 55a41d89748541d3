/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

ROUTE GROUPS:
  /api/departments/*  Department management
  /api/employees/*    Employee lifecycle, time tracking, PTO filing
  /api/pto/*          Leave request approval workflow
  /api/reports/*      Aggregate reports
  /api/demo/*         Demonstration dataset (dev only)

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.ListDepartments)
			r.Post("/", h.CreateDepartment)
			r.Get("/{name}", h.GetDepartment)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.Hire)
			r.Get("/{id}", h.GetEmployee)
			r.Post("/{id}/transfer", h.Transfer)
			r.Post("/{id}/terminate", h.Terminate)
			r.Post("/{id}/salary", h.UpdateSalary)
			r.Post("/{id}/leave", h.SetOnLeave)
			r.Post("/{id}/return", h.ReturnFromLeave)
			r.Get("/{id}/time", h.GetTimeEntries)
			r.Post("/{id}/time", h.LogTime)
			r.Get("/{id}/time/by-project", h.HoursByProject)
			r.Post("/{id}/pto", h.RequestPTO)
		})

		r.Route("/pto", func(r chi.Router) {
			r.Get("/", h.ListPTORequests)
			r.Get("/{id}", h.GetPTORequest)
			r.Post("/{id}/approve", h.ApprovePTO)
			r.Post("/{id}/deny", h.DenyPTO)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/payroll", h.PayrollSummary)
			r.Get("/org-chart", h.OrgChart)
			r.Get("/headcount", h.HeadcountByDepartment)
			r.Get("/tenure", h.TenureReport)
		})

		r.Route("/demo", func(r chi.Router) {
			r.Post("/load", h.LoadDemo)
		})
	})

	return r
}
