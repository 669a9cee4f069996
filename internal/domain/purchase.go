package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is an equipment purchase. Amount is gross. Purchases are capital
// outflow: they count toward the VAT credit and the cash position but never
// toward the operating-expense line of the income statement.
type Purchase struct {
	ID             int32           `json:"id"`
	OrganizationID int32           `json:"organizationId"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type PurchaseRepository interface {
	GetAllByOrganization(organizationID int32) ([]*Purchase, error)
}
