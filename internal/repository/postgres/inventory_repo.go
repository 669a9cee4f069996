package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// InventoryItemRepository implements domain.InventoryItemRepository using PostgreSQL
type InventoryItemRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryItemRepository creates a new InventoryItemRepository
func NewInventoryItemRepository(pool *pgxpool.Pool) *InventoryItemRepository {
	return &InventoryItemRepository{pool: pool}
}

const getInventoryItemsByOrganization = `
SELECT id, organization_id, name, category, quantity, unit_cost
FROM inventory_items
WHERE organization_id = $1
ORDER BY name, id
`

// GetAllByOrganization retrieves all inventory items for an organization
func (r *InventoryItemRepository) GetAllByOrganization(organizationID int32) ([]*domain.InventoryItem, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, getInventoryItemsByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*domain.InventoryItem{}
	for rows.Next() {
		var (
			item     domain.InventoryItem
			category string
			unitCost pgtype.Numeric
		)
		if err := rows.Scan(&item.ID, &item.OrganizationID, &item.Name,
			&category, &item.Quantity, &unitCost); err != nil {
			return nil, err
		}
		item.Category = domain.InventoryCategory(category)
		item.UnitCost = pgNumericToDecimal(unitCost)
		items = append(items, &item)
	}
	return items, rows.Err()
}

// ProductRepository implements domain.ProductRepository using PostgreSQL
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const getProductsByOrganization = `
SELECT id, organization_id, name, stock, cost
FROM products
WHERE organization_id = $1
ORDER BY name, id
`

// GetAllByOrganization retrieves all products for an organization
func (r *ProductRepository) GetAllByOrganization(organizationID int32) ([]*domain.Product, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, getProductsByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		var (
			product domain.Product
			cost    pgtype.Numeric
		)
		if err := rows.Scan(&product.ID, &product.OrganizationID, &product.Name,
			&product.Stock, &cost); err != nil {
			return nil, err
		}
		product.Cost = pgNumericToDecimal(cost)
		products = append(products, &product)
	}
	return products, rows.Err()
}
