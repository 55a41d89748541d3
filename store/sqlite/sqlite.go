/*
Package sqlite provides the SQLite-backed implementation of the HR storage
interfaces.

PURPOSE:
  Implements hr.Store over a single-file SQLite database. The same patterns
  would apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  departments:  Organizational units, unique by name
  employees:    Personnel records; terminated is a soft-delete status
  time_entries: Immutable worked-hours log
  pto_requests: Leave requests with a pending/approved/denied status

INDEXES:
  idx_employees_department:   Department-filtered employee lists
  idx_time_entries_employee:  Per-employee time queries
  idx_pto_requests_employee:  Per-employee PTO queries

DATA ENCODING:
  Monetary amounts and hours are stored as decimal text to avoid float
  drift. Calendar dates are stored as YYYY-MM-DD text, so lexicographic
  range comparisons match chronological order. Timestamps are RFC3339.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. SQLite is opened with WAL so
  readers don't block each other.

USAGE:
  store, err := sqlite.New("./hr.db") // or ":memory:"
  if err != nil { ... }
  defer store.Close()
  svc := hr.NewService(store)

MIGRATION:
  Schema setup is idempotent and runs on New(). For production, use a
  versioned migration tool instead.

SEE ALSO:
  - hr/store.go: Interface definitions
  - hr/service.go: The service built on this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/blackroad/hr-system/hr"
)

// DefaultPath is the database file used when no location is configured.
const DefaultPath = "hr.db"

// Store implements hr.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ hr.Store = (*Store)(nil)

// New opens (creating if needed) the database at dbPath and ensures the
// schema exists. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema. Idempotent.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS departments (
		id          TEXT PRIMARY KEY,
		name        TEXT UNIQUE NOT NULL,
		head_id     TEXT,
		budget      TEXT NOT NULL DEFAULT '0',
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS employees (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		email              TEXT UNIQUE NOT NULL,
		department         TEXT NOT NULL,
		title              TEXT NOT NULL,
		manager_id         TEXT,
		salary             TEXT NOT NULL DEFAULT '0',
		hire_date          TEXT NOT NULL,
		status             TEXT NOT NULL DEFAULT 'active',
		phone              TEXT NOT NULL DEFAULT '',
		termination_reason TEXT NOT NULL DEFAULT '',
		created_at         TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS time_entries (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		date        TEXT NOT NULL,
		hours       TEXT NOT NULL,
		project     TEXT NOT NULL,
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS pto_requests (
		id          TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		type        TEXT NOT NULL,
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending',
		reason      TEXT NOT NULL DEFAULT '',
		approved_by TEXT,
		created_at  TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_employees_department
		ON employees(department);
	CREATE INDEX IF NOT EXISTS idx_time_entries_employee
		ON time_entries(employee_id);
	CREATE INDEX IF NOT EXISTS idx_pto_requests_employee
		ON pto_requests(employee_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// DEPARTMENT STORE
// =============================================================================

// InsertDepartment adds a department. A taken name yields
// hr.ErrDuplicateDepartment.
func (s *Store) InsertDepartment(ctx context.Context, d hr.Department) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO departments (id, name, head_id, budget, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Name, nullString(d.HeadID), d.Budget.String(),
		d.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return hr.ErrDuplicateDepartment
		}
		return fmt.Errorf("failed to insert department: %w", err)
	}
	return nil
}

// GetDepartment returns the department with the given name, or nil.
func (s *Store) GetDepartment(ctx context.Context, name string) (*hr.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, head_id, budget, created_at FROM departments WHERE name = ?",
		name,
	)
	d, err := scanDepartment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDepartments returns all departments ordered by name.
func (s *Store) ListDepartments(ctx context.Context) ([]hr.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, head_id, budget, created_at FROM departments ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []hr.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

func scanDepartment(row scanner) (*hr.Department, error) {
	var d hr.Department
	var headID sql.NullString
	var budget, createdAt string

	if err := row.Scan(&d.ID, &d.Name, &headID, &budget, &createdAt); err != nil {
		return nil, err
	}
	d.HeadID = headID.String
	d.Budget = mustDecimal(budget)
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &d, nil
}

// =============================================================================
// EMPLOYEE STORE
// =============================================================================

const employeeColumns = `id, name, email, department, title, manager_id,
	salary, hire_date, status, phone, termination_reason, created_at`

// InsertEmployee adds an employee. A taken email yields hr.ErrDuplicateEmail.
func (s *Store) InsertEmployee(ctx context.Context, e hr.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO employees
		 (id, name, email, department, title, manager_id, salary,
		  hire_date, status, phone, termination_reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, e.Department, e.Title, nullString(e.ManagerID),
		e.Salary.String(), e.HireDate, string(e.Status), e.Phone,
		e.TerminationReason, e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return hr.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// GetEmployee returns the employee with the given id, or nil.
func (s *Store) GetEmployee(ctx context.Context, id string) (*hr.Employee, error) {
	return s.getEmployeeWhere(ctx, "id = ?", id)
}

// GetEmployeeByEmail returns the employee with the given email, or nil.
func (s *Store) GetEmployeeByEmail(ctx context.Context, email string) (*hr.Employee, error) {
	return s.getEmployeeWhere(ctx, "email = ?", email)
}

func (s *Store) getEmployeeWhere(ctx context.Context, where string, arg any) (*hr.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE "+where, arg,
	)
	e, err := scanEmployee(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEmployees returns employees matching the filter; set filter fields
// combine with AND.
func (s *Store) ListEmployees(ctx context.Context, f hr.EmployeeFilter) ([]hr.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT " + employeeColumns + " FROM employees WHERE 1=1"
	var args []any
	if f.Department != "" {
		query += " AND department = ?"
		args = append(args, f.Department)
	}
	if f.Status != "" {
		query += " AND status = ?"
		args = append(args, string(f.Status))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []hr.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

// UpdateEmployeePosition sets department and title.
func (s *Store) UpdateEmployeePosition(ctx context.Context, id, department, title string) error {
	return s.updateEmployee(ctx,
		"UPDATE employees SET department = ?, title = ? WHERE id = ?",
		department, title, id)
}

// UpdateEmployeeSalary overwrites the salary.
func (s *Store) UpdateEmployeeSalary(ctx context.Context, id string, salary decimal.Decimal) error {
	return s.updateEmployee(ctx,
		"UPDATE employees SET salary = ? WHERE id = ?",
		salary.String(), id)
}

// UpdateEmployeeStatus overwrites the status.
func (s *Store) UpdateEmployeeStatus(ctx context.Context, id string, status hr.EmployeeStatus) error {
	return s.updateEmployee(ctx,
		"UPDATE employees SET status = ? WHERE id = ?",
		string(status), id)
}

// TerminateEmployee soft-deletes the employee and records the reason.
func (s *Store) TerminateEmployee(ctx context.Context, id, reason string) error {
	return s.updateEmployee(ctx,
		"UPDATE employees SET status = ?, termination_reason = ? WHERE id = ?",
		string(hr.StatusTerminated), reason, id)
}

// updateEmployee runs a single-row employee update and reports
// hr.ErrEmployeeNotFound when nothing matched.
func (s *Store) updateEmployee(ctx context.Context, query string, args ...any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return hr.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row scanner) (*hr.Employee, error) {
	var e hr.Employee
	var managerID sql.NullString
	var salary, status, createdAt string

	if err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Title,
		&managerID, &salary, &e.HireDate, &status, &e.Phone,
		&e.TerminationReason, &createdAt); err != nil {
		return nil, err
	}
	e.ManagerID = managerID.String
	e.Salary = mustDecimal(salary)
	e.Status = hr.EmployeeStatus(status)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}

// =============================================================================
// TIME ENTRY STORE
// =============================================================================

// InsertTimeEntry appends a time entry. Entries are never updated or
// deleted.
func (s *Store) InsertTimeEntry(ctx context.Context, e hr.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO time_entries (id, employee_id, date, hours, project, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.EmployeeID, e.Date, e.Hours.String(), e.Project, e.Notes,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert time entry: %w", err)
	}
	return nil
}

// ListTimeEntries returns an employee's entries, newest date first. The
// date bounds are inclusive; comparison is textual, which is correct for
// ISO dates.
func (s *Store) ListTimeEntries(ctx context.Context, employeeID, startDate, endDate string) ([]hr.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, employee_id, date, hours, project, notes, created_at
		FROM time_entries WHERE employee_id = ?`
	args := []any{employeeID}
	if startDate != "" {
		query += " AND date >= ?"
		args = append(args, startDate)
	}
	if endDate != "" {
		query += " AND date <= ?"
		args = append(args, endDate)
	}
	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []hr.TimeEntry
	for rows.Next() {
		var e hr.TimeEntry
		var hours, createdAt string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &hours,
			&e.Project, &e.Notes, &createdAt); err != nil {
			return nil, err
		}
		e.Hours = mustDecimal(hours)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// =============================================================================
// PTO STORE
// =============================================================================

const ptoColumns = "id, employee_id, type, start_date, end_date, status, reason, approved_by, created_at"

// InsertPTORequest adds a leave request.
func (s *Store) InsertPTORequest(ctx context.Context, r hr.PTORequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pto_requests
		 (id, employee_id, type, start_date, end_date, status, reason, approved_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.EmployeeID, string(r.Type), r.StartDate, r.EndDate,
		string(r.Status), r.Reason, nullString(r.ApprovedBy),
		r.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert pto request: %w", err)
	}
	return nil
}

// GetPTORequest returns the request with the given id, or nil.
func (s *Store) GetPTORequest(ctx context.Context, id string) (*hr.PTORequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT "+ptoColumns+" FROM pto_requests WHERE id = ?", id,
	)
	r, err := scanPTORequest(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListPTORequests returns requests matching the filter; set filter fields
// combine with AND.
func (s *Store) ListPTORequests(ctx context.Context, f hr.PTOFilter) ([]hr.PTORequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT " + ptoColumns + " FROM pto_requests WHERE 1=1"
	var args []any
	if f.EmployeeID != "" {
		query += " AND employee_id = ?"
		args = append(args, f.EmployeeID)
	}
	if f.Status != "" {
		query += " AND status = ?"
		args = append(args, string(f.Status))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []hr.PTORequest
	for rows.Next() {
		r, err := scanPTORequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *r)
	}
	return requests, rows.Err()
}

// UpdatePTOStatus sets the request's status and approver. Reports
// hr.ErrPTORequestNotFound when the id matches nothing.
func (s *Store) UpdatePTOStatus(ctx context.Context, id string, status hr.PTOStatus, approvedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"UPDATE pto_requests SET status = ?, approved_by = ? WHERE id = ?",
		string(status), nullString(approvedBy), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update pto request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return hr.ErrPTORequestNotFound
	}
	return nil
}

func scanPTORequest(row scanner) (*hr.PTORequest, error) {
	var r hr.PTORequest
	var approvedBy sql.NullString
	var ptoType, status, createdAt string

	if err := row.Scan(&r.ID, &r.EmployeeID, &ptoType, &r.StartDate,
		&r.EndDate, &status, &r.Reason, &approvedBy, &createdAt); err != nil {
		return nil, err
	}
	r.Type = hr.PTOType(ptoType)
	r.Status = hr.PTOStatus(status)
	r.ApprovedBy = approvedBy.String
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &r, nil
}

// =============================================================================
// REPORT STORE
// =============================================================================

// HeadcountByDepartment counts active employees per department.
func (s *Store) HeadcountByDepartment(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT department, COUNT(*) FROM employees WHERE status = 'active' GROUP BY department",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dept string
		var count int
		if err := rows.Scan(&dept, &count); err != nil {
			return nil, err
		}
		counts[dept] = count
	}
	return counts, rows.Err()
}

// =============================================================================
// HELPERS
// =============================================================================

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
