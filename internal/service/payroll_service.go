package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// Statutory payroll parameters for Planilla contracts.
var (
	// legalBonus is the fixed monthly incentive bonus, always added for
	// Planilla contracts regardless of the insurance flag.
	legalBonus = decimal.NewFromInt(250)
	// employerInsuranceRate is the employer social-insurance surcharge on
	// base salary.
	employerInsuranceRate = decimal.NewFromFloat(0.1267)
)

// payrollNamespace seeds the deterministic expense IDs emitted by a payroll
// commit. Fixed so regenerating the same (org, employee, year, month)
// always produces the same expense row.
var payrollNamespace = uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

// EmployerCost computes the statutory monthly employer cost for one
// employee. Pure and side-effect-free.
func EmployerCost(e *domain.Employee) *domain.EmployeeCost {
	cost := &domain.EmployeeCost{
		EmployeeID:     e.ID,
		FullName:       e.FullName,
		ContractType:   e.ContractType,
		BaseSalary:     e.BaseSalary,
		OtherInsurance: e.OtherInsurance,
	}

	if e.ContractType == domain.ContractPlanilla {
		cost.LegalBonus = legalBonus
		if e.PaysEmployerInsurance {
			cost.EmployerInsurance = e.BaseSalary.Mul(employerInsuranceRate)
		}
	}

	cost.TotalCost = cost.BaseSalary.
		Add(cost.LegalBonus).
		Add(cost.EmployerInsurance).
		Add(cost.OtherInsurance)
	return cost
}

// PayrollExpenseID derives the deterministic expense ID for one employee's
// payroll line in a given month.
func PayrollExpenseID(organizationID, employeeID int32, period domain.Period) uuid.UUID {
	key := fmt.Sprintf("%d:%d:%d:%d", organizationID, employeeID, period.Year, int(period.Month))
	return uuid.NewSHA1(payrollNamespace, []byte(key))
}

// PayrollService projects monthly employer cost and materializes it as
// expense records on commit.
type PayrollService struct {
	employeeRepo domain.EmployeeRepository
	expenseRepo  domain.ExpenseRepository
}

// NewPayrollService creates a new PayrollService
func NewPayrollService(employeeRepo domain.EmployeeRepository, expenseRepo domain.ExpenseRepository) *PayrollService {
	return &PayrollService{
		employeeRepo: employeeRepo,
		expenseRepo:  expenseRepo,
	}
}

// ProjectMonth computes the projected payroll cost for a month across all
// active employees. Read-only; nothing is persisted.
func (s *PayrollService) ProjectMonth(organizationID int32, period domain.Period) (*domain.PayrollProjection, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.GetActiveByOrganization(organizationID)
	if err != nil {
		return nil, err
	}

	projection := &domain.PayrollProjection{
		Period:    period,
		Employees: make([]*domain.EmployeeCost, 0, len(employees)),
		TotalCost: decimal.Zero,
	}
	for _, e := range employees {
		cost := EmployerCost(e)
		projection.Employees = append(projection.Employees, cost)
		projection.TotalCost = projection.TotalCost.Add(cost.TotalCost)
	}
	return projection, nil
}

// CommitMonth materializes the month's projection as one expense per active
// employee under the reserved payroll category. Expense IDs are derived
// from (organization, employee, year, month), so committing the same month
// again rewrites the same rows instead of duplicating them.
func (s *PayrollService) CommitMonth(organizationID int32, period domain.Period) (*domain.PayrollProjection, error) {
	projection, err := s.ProjectMonth(organizationID, period)
	if err != nil {
		return nil, err
	}

	expenses := make([]*domain.Expense, 0, len(projection.Employees))
	for _, cost := range projection.Employees {
		expenses = append(expenses, &domain.Expense{
			ID:             PayrollExpenseID(organizationID, cost.EmployeeID, period),
			OrganizationID: organizationID,
			Description:    fmt.Sprintf("Planilla %04d-%02d: %s", period.Year, int(period.Month), cost.FullName),
			Amount:         cost.TotalCost,
			Date:           period.Start(),
			Category:       domain.ExpenseCategoryPayroll,
		})
	}

	if err := s.expenseRepo.UpsertBatch(expenses); err != nil {
		return nil, err
	}
	return projection, nil
}
