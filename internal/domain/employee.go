package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractType string

const (
	// ContractPlanilla is a payroll contract: legal bonus and the employer
	// social-insurance surcharge apply.
	ContractPlanilla ContractType = "Planilla"
	// ContractServiciosProfesionales is invoice-based: base salary plus any
	// private insurance only.
	ContractServiciosProfesionales ContractType = "ServiciosProfesionales"
)

type Employee struct {
	ID                    int32           `json:"id"`
	OrganizationID        int32           `json:"organizationId"`
	FullName              string          `json:"fullName"`
	ContractType          ContractType    `json:"contractType"`
	BaseSalary            decimal.Decimal `json:"baseSalary"`
	PaysEmployerInsurance bool            `json:"paysEmployerInsurance"`
	OtherInsurance        decimal.Decimal `json:"otherInsurance"`
	Active                bool            `json:"active"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

type EmployeeRepository interface {
	GetAllByOrganization(organizationID int32) ([]*Employee, error)
	GetActiveByOrganization(organizationID int32) ([]*Employee, error)
}
