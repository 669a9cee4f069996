package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is the tenant scope for every record and computation.
// InitialBalance is the opening cash balance used by the cash position.
type Organization struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type OrganizationRepository interface {
	GetByID(id int32) (*Organization, error)
}
