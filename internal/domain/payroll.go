package domain

import (
	"github.com/shopspring/decimal"
)

// EmployeeCost is the statutory employer cost breakdown for one employee.
// Line items that do not apply to the contract type stay zero.
type EmployeeCost struct {
	EmployeeID        int32           `json:"employeeId"`
	FullName          string          `json:"fullName"`
	ContractType      ContractType    `json:"contractType"`
	BaseSalary        decimal.Decimal `json:"baseSalary"`
	LegalBonus        decimal.Decimal `json:"legalBonus"`
	EmployerInsurance decimal.Decimal `json:"employerInsurance"`
	OtherInsurance    decimal.Decimal `json:"otherInsurance"`
	TotalCost         decimal.Decimal `json:"totalCost"`
}

// PayrollProjection is the projected employer cost for a month across all
// active employees.
type PayrollProjection struct {
	Period    Period          `json:"period"`
	Employees []*EmployeeCost `json:"employees"`
	TotalCost decimal.Decimal `json:"totalCost"`
}
