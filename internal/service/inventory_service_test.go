package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/testutil"
)

func TestGetValuation_ByCategory(t *testing.T) {
	itemRepo := testutil.NewMockInventoryItemRepository()
	productRepo := testutil.NewMockProductRepository()
	svc := NewInventoryService(itemRepo, productRepo)

	organizationID := int32(1)

	itemRepo.AddItem(&domain.InventoryItem{
		ID:             1,
		OrganizationID: organizationID,
		Name:           "Cable UTP",
		Category:       domain.InventoryInsumos,
		Quantity:       10,
		UnitCost:       decimal.NewFromFloat(25.50),
	})
	itemRepo.AddItem(&domain.InventoryItem{
		ID:             2,
		OrganizationID: organizationID,
		Name:           "Escritorio",
		Category:       domain.InventoryEquipoDeOficina,
		Quantity:       2,
		UnitCost:       decimal.NewFromInt(800),
	})
	productRepo.AddProduct(&domain.Product{
		ID:             1,
		OrganizationID: organizationID,
		Name:           "Router",
		Stock:          5,
		Cost:           decimal.NewFromInt(400),
	})

	valuation, err := svc.GetValuation(organizationID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if valuation.InsumosValue.StringFixed(2) != "255.00" {
		t.Errorf("Expected insumos 255.00, got %s", valuation.InsumosValue.StringFixed(2))
	}
	if valuation.OfficeEquipmentValue.StringFixed(2) != "1600.00" {
		t.Errorf("Expected office equipment 1600.00, got %s", valuation.OfficeEquipmentValue.StringFixed(2))
	}
	if valuation.ProductsValue.StringFixed(2) != "2000.00" {
		t.Errorf("Expected products 2000.00, got %s", valuation.ProductsValue.StringFixed(2))
	}
	if valuation.TotalValue.StringFixed(2) != "3855.00" {
		t.Errorf("Expected total 3855.00, got %s", valuation.TotalValue.StringFixed(2))
	}
}

func TestValuateInventory_HerramientasNotValued(t *testing.T) {
	items := []*domain.InventoryItem{
		{Category: domain.InventoryInsumos, Quantity: 1, UnitCost: decimal.NewFromInt(100)},
		{Category: domain.InventoryHerramientas, Quantity: 50, UnitCost: decimal.NewFromInt(999)},
	}

	valuation := ValuateInventory(items, nil)

	if valuation.TotalValue.StringFixed(2) != "100.00" {
		t.Errorf("Herramientas must not enter the valuation, got total %s", valuation.TotalValue.StringFixed(2))
	}
}

func TestValuateInventory_EmptySnapshot(t *testing.T) {
	valuation := ValuateInventory(nil, nil)

	if !valuation.TotalValue.IsZero() {
		t.Errorf("Expected zero total, got %s", valuation.TotalValue.String())
	}
}

func TestGetValuation_OrganizationIsolation(t *testing.T) {
	itemRepo := testutil.NewMockInventoryItemRepository()
	productRepo := testutil.NewMockProductRepository()
	svc := NewInventoryService(itemRepo, productRepo)

	itemRepo.AddItem(&domain.InventoryItem{
		ID:             1,
		OrganizationID: 1,
		Category:       domain.InventoryInsumos,
		Quantity:       1,
		UnitCost:       decimal.NewFromInt(10),
	})
	itemRepo.AddItem(&domain.InventoryItem{
		ID:             2,
		OrganizationID: 2,
		Category:       domain.InventoryInsumos,
		Quantity:       1,
		UnitCost:       decimal.NewFromInt(9999),
	})

	valuation, err := svc.GetValuation(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if valuation.TotalValue.StringFixed(2) != "10.00" {
		t.Errorf("Expected only organization 1 stock, got %s", valuation.TotalValue.StringFixed(2))
	}
}
