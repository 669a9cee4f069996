package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DealItemType string

const (
	DealItemProduct DealItemType = "product"
	DealItemService DealItemType = "service"
)

// Deal is a won sales opportunity. Amount is gross (VAT inclusive) and is
// recognized as revenue at close time.
type Deal struct {
	ID             int32           `json:"id"`
	OrganizationID int32           `json:"organizationId"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	Quantity       int32           `json:"quantity"`
	UnitCost       decimal.Decimal `json:"unitCost"`
	ItemType       DealItemType    `json:"itemType"`
	ClosedAt       time.Time       `json:"closedAt"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type DealRepository interface {
	GetAllByOrganization(organizationID int32) ([]*Deal, error)
}
