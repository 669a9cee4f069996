package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const getExpensesByOrganization = `
SELECT id, organization_id, description, amount, date, category, project_id, created_at, updated_at
FROM expenses
WHERE organization_id = $1
ORDER BY date DESC, id DESC
`

// GetAllByOrganization retrieves all expenses for an organization
func (r *ExpenseRepository) GetAllByOrganization(organizationID int32) ([]*domain.Expense, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, getExpensesByOrganization, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*domain.Expense{}
	for rows.Next() {
		var (
			expense   domain.Expense
			id        pgtype.UUID
			amount    pgtype.Numeric
			date      pgtype.Date
			projectID pgtype.Int4
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &expense.OrganizationID, &expense.Description,
			&amount, &date, &expense.Category, &projectID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		expense.ID = id.Bytes
		expense.Amount = pgNumericToDecimal(amount)
		expense.Date = date.Time
		if projectID.Valid {
			expense.ProjectID = &projectID.Int32
		}
		expense.CreatedAt = createdAt.Time
		expense.UpdatedAt = updatedAt.Time
		expenses = append(expenses, &expense)
	}
	return expenses, rows.Err()
}

const upsertExpense = `
INSERT INTO expenses (id, organization_id, description, amount, date, category, project_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	description = EXCLUDED.description,
	amount = EXCLUDED.amount,
	date = EXCLUDED.date,
	category = EXCLUDED.category,
	project_id = EXCLUDED.project_id,
	updated_at = now()
`

// UpsertBatch writes the expenses atomically, replacing any existing row
// with the same ID. The payroll commit path relies on this to regenerate a
// month without duplicating lines.
func (r *ExpenseRepository) UpsertBatch(expenses []*domain.Expense) error {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, expense := range expenses {
		amount, err := decimalToPgNumeric(expense.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		var id pgtype.UUID
		id.Bytes = expense.ID
		id.Valid = true

		var date pgtype.Date
		date.Time = expense.Date
		date.Valid = true

		var projectID pgtype.Int4
		if expense.ProjectID != nil {
			projectID.Int32 = *expense.ProjectID
			projectID.Valid = true
		}

		if _, err := tx.Exec(ctx, upsertExpense, id, expense.OrganizationID,
			expense.Description, amount, date, expense.Category, projectID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
