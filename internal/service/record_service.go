package service

import (
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// RecordService exposes the raw record feeds the engine consumes. Reads
// only: source records are mutated by the surrounding application, never
// by the engine.
type RecordService struct {
	organizationRepo domain.OrganizationRepository
	dealRepo         domain.DealRepository
	invoiceRepo      domain.InvoiceRepository
	expenseRepo      domain.ExpenseRepository
	purchaseRepo     domain.PurchaseRepository
	employeeRepo     domain.EmployeeRepository
}

// NewRecordService creates a new RecordService
func NewRecordService(
	organizationRepo domain.OrganizationRepository,
	dealRepo domain.DealRepository,
	invoiceRepo domain.InvoiceRepository,
	expenseRepo domain.ExpenseRepository,
	purchaseRepo domain.PurchaseRepository,
	employeeRepo domain.EmployeeRepository,
) *RecordService {
	return &RecordService{
		organizationRepo: organizationRepo,
		dealRepo:         dealRepo,
		invoiceRepo:      invoiceRepo,
		expenseRepo:      expenseRepo,
		purchaseRepo:     purchaseRepo,
		employeeRepo:     employeeRepo,
	}
}

// GetOrganization returns the organization profile, including the opening
// cash balance.
func (s *RecordService) GetOrganization(organizationID int32) (*domain.Organization, error) {
	return s.organizationRepo.GetByID(organizationID)
}

// ListDeals returns all won deals for an organization.
func (s *RecordService) ListDeals(organizationID int32) ([]*domain.Deal, error) {
	return s.dealRepo.GetAllByOrganization(organizationID)
}

// ListInvoices returns all issued invoices for an organization, voided ones
// included; aggregation excludes them downstream.
func (s *RecordService) ListInvoices(organizationID int32) ([]*domain.Invoice, error) {
	return s.invoiceRepo.GetAllByOrganization(organizationID)
}

// ListExpenses returns all operating expenses for an organization.
func (s *RecordService) ListExpenses(organizationID int32) ([]*domain.Expense, error) {
	return s.expenseRepo.GetAllByOrganization(organizationID)
}

// ListPurchases returns all equipment purchases for an organization.
func (s *RecordService) ListPurchases(organizationID int32) ([]*domain.Purchase, error) {
	return s.purchaseRepo.GetAllByOrganization(organizationID)
}

// ListEmployees returns all employees for an organization, inactive ones
// included.
func (s *RecordService) ListEmployees(organizationID int32) ([]*domain.Employee, error) {
	return s.employeeRepo.GetAllByOrganization(organizationID)
}
