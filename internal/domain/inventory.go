package domain

import (
	"github.com/shopspring/decimal"
)

type InventoryCategory string

const (
	InventoryInsumos         InventoryCategory = "Insumos"
	InventoryEquipoDeOficina InventoryCategory = "EquipoDeOficina"
	InventoryHerramientas    InventoryCategory = "Herramientas"
)

// InventoryItem is non-sellable stock valued at recorded unit cost.
type InventoryItem struct {
	ID             int32             `json:"id"`
	OrganizationID int32             `json:"organizationId"`
	Name           string            `json:"name"`
	Category       InventoryCategory `json:"category"`
	Quantity       int32             `json:"quantity"`
	UnitCost       decimal.Decimal   `json:"unitCost"`
}

// Product is sellable stock.
type Product struct {
	ID             int32           `json:"id"`
	OrganizationID int32           `json:"organizationId"`
	Name           string          `json:"name"`
	Stock          int32           `json:"stock"`
	Cost           decimal.Decimal `json:"cost"`
}

type InventoryItemRepository interface {
	GetAllByOrganization(organizationID int32) ([]*InventoryItem, error)
}

type ProductRepository interface {
	GetAllByOrganization(organizationID int32) ([]*Product, error)
}
