package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// DealRepository implements domain.DealRepository using PostgreSQL
type DealRepository struct {
	pool *pgxpool.Pool
}

// NewDealRepository creates a new DealRepository
func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

const getDealsByOrganization = `
SELECT id, organization_id, name, amount, quantity, unit_cost, item_type, closed_at, created_at, updated_at
FROM deals
WHERE organization_id = $1 AND status = 'won'
ORDER BY closed_at DESC, id DESC
`

// GetAllByOrganization retrieves all won deals for an organization
func (r *DealRepository) GetAllByOrganization(organizationID int32) ([]*domain.Deal, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, getDealsByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deals := []*domain.Deal{}
	for rows.Next() {
		var (
			deal      domain.Deal
			amount    pgtype.Numeric
			unitCost  pgtype.Numeric
			itemType  string
			closedAt  pgtype.Date
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&deal.ID, &deal.OrganizationID, &deal.Name, &amount,
			&deal.Quantity, &unitCost, &itemType, &closedAt, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		deal.Amount = pgNumericToDecimal(amount)
		deal.UnitCost = pgNumericToDecimal(unitCost)
		deal.ItemType = domain.DealItemType(itemType)
		deal.ClosedAt = closedAt.Time
		deal.CreatedAt = createdAt.Time
		deal.UpdatedAt = updatedAt.Time
		deals = append(deals, &deal)
	}
	return deals, rows.Err()
}
