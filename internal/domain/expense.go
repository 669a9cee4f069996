package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategoryPayroll is reserved for expenses materialized by a payroll
// commit. Payroll regeneration reuses deterministic expense IDs, so a month
// never carries more than one expense line per employee in this category.
const ExpenseCategoryPayroll = "Salarios y Planilla"

// Expense is an operating expense. Amount is gross.
type Expense struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID int32           `json:"organizationId"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Category       string          `json:"category"`
	ProjectID      *int32          `json:"projectId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type ExpenseRepository interface {
	GetAllByOrganization(organizationID int32) ([]*Expense, error)
	// UpsertBatch inserts the expenses, replacing any existing row with the
	// same ID. Used by the payroll commit path for idempotent regeneration.
	UpsertBatch(expenses []*Expense) error
}
