package service

import (
	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// ValuateInventory values the current stock snapshot at recorded unit cost.
// Office equipment is carried at book value; no depreciation schedule is
// applied. Herramientas items are tracked but not part of the valuation
// total.
func ValuateInventory(items []*domain.InventoryItem, products []*domain.Product) *domain.InventoryValuation {
	insumos := decimal.Zero
	officeEquipment := decimal.Zero
	for _, item := range items {
		value := item.UnitCost.Mul(decimal.NewFromInt32(item.Quantity))
		switch item.Category {
		case domain.InventoryInsumos:
			insumos = insumos.Add(value)
		case domain.InventoryEquipoDeOficina:
			officeEquipment = officeEquipment.Add(value)
		}
	}

	productsValue := decimal.Zero
	for _, p := range products {
		productsValue = productsValue.Add(p.Cost.Mul(decimal.NewFromInt32(p.Stock)))
	}

	return &domain.InventoryValuation{
		InsumosValue:         insumos,
		OfficeEquipmentValue: officeEquipment,
		ProductsValue:        productsValue,
		TotalValue:           insumos.Add(officeEquipment).Add(productsValue),
	}
}

// InventoryService values on-hand stock over the record feed.
type InventoryService struct {
	itemRepo    domain.InventoryItemRepository
	productRepo domain.ProductRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(itemRepo domain.InventoryItemRepository, productRepo domain.ProductRepository) *InventoryService {
	return &InventoryService{
		itemRepo:    itemRepo,
		productRepo: productRepo,
	}
}

// GetValuation values the current inventory snapshot for an organization.
func (s *InventoryService) GetValuation(organizationID int32) (*domain.InventoryValuation, error) {
	items, err := s.itemRepo.GetAllByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAllByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	return ValuateInventory(items, products), nil
}
