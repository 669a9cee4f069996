package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// OrganizationRepository implements domain.OrganizationRepository using PostgreSQL
type OrganizationRepository struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{pool: pool}
}

const getOrganizationByID = `
SELECT id, name, initial_balance, created_at, updated_at
FROM organizations
WHERE id = $1
`

// GetByID retrieves an organization by its ID
func (r *OrganizationRepository) GetByID(id int32) (*domain.Organization, error) {
	ctx := context.Background()

	var (
		org            domain.Organization
		initialBalance pgtype.Numeric
		createdAt      pgtype.Timestamptz
		updatedAt      pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, getOrganizationByID, id).
		Scan(&org.ID, &org.Name, &initialBalance, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, err
	}

	org.InitialBalance = pgNumericToDecimal(initialBalance)
	org.CreatedAt = createdAt.Time
	org.UpdatedAt = updatedAt.Time
	return &org, nil
}

// Helper functions shared by the repositories in this package.

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
