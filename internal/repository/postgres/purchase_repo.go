package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// PurchaseRepository implements domain.PurchaseRepository using PostgreSQL
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

const getPurchasesByOrganization = `
SELECT id, organization_id, description, amount, date, created_at, updated_at
FROM purchases
WHERE organization_id = $1
ORDER BY date DESC, id DESC
`

// GetAllByOrganization retrieves all equipment purchases for an organization
func (r *PurchaseRepository) GetAllByOrganization(organizationID int32) ([]*domain.Purchase, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, getPurchasesByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := []*domain.Purchase{}
	for rows.Next() {
		var (
			purchase  domain.Purchase
			amount    pgtype.Numeric
			date      pgtype.Date
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&purchase.ID, &purchase.OrganizationID, &purchase.Description,
			&amount, &date, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		purchase.Amount = pgNumericToDecimal(amount)
		purchase.Date = date.Time
		purchase.CreatedAt = createdAt.Time
		purchase.UpdatedAt = updatedAt.Time
		purchases = append(purchases, &purchase)
	}
	return purchases, rows.Err()
}
