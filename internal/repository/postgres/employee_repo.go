package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// EmployeeRepository implements domain.EmployeeRepository using PostgreSQL
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const getEmployeesByOrganization = `
SELECT id, organization_id, full_name, contract_type, base_salary, pays_employer_insurance, other_insurance, active, created_at, updated_at
FROM employees
WHERE organization_id = $1
ORDER BY full_name, id
`

const getActiveEmployeesByOrganization = `
SELECT id, organization_id, full_name, contract_type, base_salary, pays_employer_insurance, other_insurance, active, created_at, updated_at
FROM employees
WHERE organization_id = $1 AND active
ORDER BY full_name, id
`

// GetAllByOrganization retrieves all employees for an organization
func (r *EmployeeRepository) GetAllByOrganization(organizationID int32) ([]*domain.Employee, error) {
	return r.query(getEmployeesByOrganization, organizationID)
}

// GetActiveByOrganization retrieves active employees for an organization
func (r *EmployeeRepository) GetActiveByOrganization(organizationID int32) ([]*domain.Employee, error) {
	return r.query(getActiveEmployeesByOrganization, organizationID)
}

func (r *EmployeeRepository) query(sql string, organizationID int32) ([]*domain.Employee, error) {
	ctx := context.Background()

	rows, err := r.pool.Query(ctx, sql, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*domain.Employee{}
	for rows.Next() {
		var (
			employee       domain.Employee
			contractType   string
			baseSalary     pgtype.Numeric
			otherInsurance pgtype.Numeric
			createdAt      pgtype.Timestamptz
			updatedAt      pgtype.Timestamptz
		)
		if err := rows.Scan(&employee.ID, &employee.OrganizationID, &employee.FullName,
			&contractType, &baseSalary, &employee.PaysEmployerInsurance,
			&otherInsurance, &employee.Active, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		employee.ContractType = domain.ContractType(contractType)
		employee.BaseSalary = pgNumericToDecimal(baseSalary)
		employee.OtherInsurance = pgNumericToDecimal(otherInsurance)
		employee.CreatedAt = createdAt.Time
		employee.UpdatedAt = updatedAt.Time
		employees = append(employees, &employee)
	}
	return employees, rows.Err()
}
