package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// InvoiceRepository implements domain.InvoiceRepository using PostgreSQL
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const getInvoicesByOrganization = `
SELECT id, organization_id, number, amount, status, issued_at, created_at, updated_at
FROM invoices
WHERE organization_id = $1
ORDER BY issued_at DESC, id DESC
`

// GetAllByOrganization retrieves all invoices for an organization, voided
// ones included. Callers that aggregate are responsible for skipping voided
// invoices.
func (r *InvoiceRepository) GetAllByOrganization(organizationID int32) ([]*domain.Invoice, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, getInvoicesByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []*domain.Invoice{}
	for rows.Next() {
		var (
			invoice   domain.Invoice
			amount    pgtype.Numeric
			status    string
			issuedAt  pgtype.Date
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&invoice.ID, &invoice.OrganizationID, &invoice.Number,
			&amount, &status, &issuedAt, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		invoice.Amount = pgNumericToDecimal(amount)
		invoice.Status = domain.InvoiceStatus(status)
		invoice.IssuedAt = issuedAt.Time
		invoice.CreatedAt = createdAt.Time
		invoice.UpdatedAt = updatedAt.Time
		invoices = append(invoices, &invoice)
	}
	return invoices, rows.Err()
}
