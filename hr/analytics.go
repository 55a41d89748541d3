/*
analytics.go - Aggregate reports over the employee table

PURPOSE:
  Read-only reports: payroll summary, org chart, headcount, tenure. All of
  them consider active employees only. Monetary math uses decimal.Decimal;
  nothing here mutates state.
*/
package hr

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// DepartmentPayroll is one department's slice of the payroll summary.
type DepartmentPayroll struct {
	Headcount      int
	AnnualSalary   decimal.Decimal
	MonthlyPayroll decimal.Decimal
}

// PayrollReport is the monthly payroll breakdown by department.
type PayrollReport struct {
	Month               string
	TotalHeadcount      int
	TotalMonthlyPayroll decimal.Decimal
	ByDepartment        map[string]DepartmentPayroll
}

// PayrollSummary computes the payroll breakdown across active employees.
// The monthly figure is annual/12 with no proration for mid-year hires or
// terminations. month is used purely as a label on the report, defaulting
// to the current year-month; it does not filter the underlying data.
func (s *Service) PayrollSummary(ctx context.Context, month string) (*PayrollReport, error) {
	employees, err := s.store.ListEmployees(ctx, EmployeeFilter{Status: StatusActive})
	if err != nil {
		return nil, err
	}

	if month == "" {
		month = s.now().Format("2006-01")
	}

	annualByDept := make(map[string]decimal.Decimal)
	countByDept := make(map[string]int)
	for _, e := range employees {
		annualByDept[e.Department] = annualByDept[e.Department].Add(e.Salary)
		countByDept[e.Department]++
	}

	report := &PayrollReport{
		Month:        month,
		ByDepartment: make(map[string]DepartmentPayroll, len(annualByDept)),
	}
	total := decimal.Zero
	for dept, annual := range annualByDept {
		monthly := annual.Div(monthsPerYear)
		report.ByDepartment[dept] = DepartmentPayroll{
			Headcount:      countByDept[dept],
			AnnualSalary:   annual.Round(2),
			MonthlyPayroll: monthly.Round(2),
		}
		// Accumulate unrounded and round once at the end, so the total
		// matches sum(annual)/12 to the cent.
		total = total.Add(monthly)
		report.TotalHeadcount += countByDept[dept]
	}
	report.TotalMonthlyPayroll = total.Round(2)
	return report, nil
}

// OrgNode is one employee in the org chart with their direct reports.
type OrgNode struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Title      string     `json:"title"`
	Department string     `json:"department"`
	Reports    []*OrgNode `json:"reports"`
}

// OrgChart builds the manager/report forest from active employees. An
// employee whose manager is unset, unknown, or not among the active
// employees becomes a root; a terminated or on-leave manager therefore
// orphans their reports into the root set.
func (s *Service) OrgChart(ctx context.Context) ([]*OrgNode, error) {
	employees, err := s.store.ListEmployees(ctx, EmployeeFilter{Status: StatusActive})
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*OrgNode, len(employees))
	for _, e := range employees {
		nodes[e.ID] = &OrgNode{
			ID:         e.ID,
			Name:       e.Name,
			Title:      e.Title,
			Department: e.Department,
			Reports:    []*OrgNode{},
		}
	}

	var roots []*OrgNode
	for _, e := range employees {
		if mgr, ok := nodes[e.ManagerID]; ok && e.ManagerID != "" {
			mgr.Reports = append(mgr.Reports, nodes[e.ID])
		} else {
			roots = append(roots, nodes[e.ID])
		}
	}
	return roots, nil
}

// HeadcountByDepartment counts active employees per department.
func (s *Service) HeadcountByDepartment(ctx context.Context) (map[string]int, error) {
	return s.store.HeadcountByDepartment(ctx)
}

// TenureEntry is one active employee's tenure.
type TenureEntry struct {
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Title       string  `json:"title"`
	HireDate    string  `json:"hire_date"`
	TenureYears float64 `json:"tenure_years"`
}

// TenureReport lists active employees longest-tenured first. Tenure is
// elapsed days since hire divided by 365.25, rounded to one decimal. An
// unparsable hire date yields zero tenure rather than failing the report.
func (s *Service) TenureReport(ctx context.Context) ([]TenureEntry, error) {
	employees, err := s.store.ListEmployees(ctx, EmployeeFilter{Status: StatusActive})
	if err != nil {
		return nil, err
	}

	sort.Slice(employees, func(i, j int) bool {
		return employees[i].HireDate < employees[j].HireDate
	})

	today := s.now()
	entries := make([]TenureEntry, 0, len(employees))
	for _, e := range employees {
		var years float64
		if hired, err := time.Parse(DateLayout, e.HireDate); err == nil {
			days := today.Sub(hired).Hours() / 24
			years = math.Round(days/365.25*10) / 10
		}
		entries = append(entries, TenureEntry{
			Name:        e.Name,
			Department:  e.Department,
			Title:       e.Title,
			HireDate:    e.HireDate,
			TenureYears: years,
		})
	}
	return entries, nil
}
