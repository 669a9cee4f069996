package testutil

import (
	"github.com/google/uuid"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// MockDealRepository is a mock implementation of domain.DealRepository
type MockDealRepository struct {
	ByOrganization map[int32][]*domain.Deal
	GetAllFn       func(organizationID int32) ([]*domain.Deal, error)
}

// NewMockDealRepository creates a new MockDealRepository
func NewMockDealRepository() *MockDealRepository {
	return &MockDealRepository{
		ByOrganization: make(map[int32][]*domain.Deal),
	}
}

// GetAllByOrganization retrieves all deals for an organization
func (m *MockDealRepository) GetAllByOrganization(organizationID int32) ([]*domain.Deal, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	deals := m.ByOrganization[organizationID]
	if deals == nil {
		return []*domain.Deal{}, nil
	}
	return deals, nil
}

// AddDeal adds a deal to the mock repository (helper for tests)
func (m *MockDealRepository) AddDeal(deal *domain.Deal) {
	m.ByOrganization[deal.OrganizationID] = append(m.ByOrganization[deal.OrganizationID], deal)
}

// MockInvoiceRepository is a mock implementation of domain.InvoiceRepository
type MockInvoiceRepository struct {
	ByOrganization map[int32][]*domain.Invoice
	GetAllFn       func(organizationID int32) ([]*domain.Invoice, error)
}

// NewMockInvoiceRepository creates a new MockInvoiceRepository
func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		ByOrganization: make(map[int32][]*domain.Invoice),
	}
}

// GetAllByOrganization retrieves all invoices for an organization
func (m *MockInvoiceRepository) GetAllByOrganization(organizationID int32) ([]*domain.Invoice, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	invoices := m.ByOrganization[organizationID]
	if invoices == nil {
		return []*domain.Invoice{}, nil
	}
	return invoices, nil
}

// AddInvoice adds an invoice to the mock repository (helper for tests)
func (m *MockInvoiceRepository) AddInvoice(invoice *domain.Invoice) {
	m.ByOrganization[invoice.OrganizationID] = append(m.ByOrganization[invoice.OrganizationID], invoice)
}

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository.
// Expenses are stored by ID so upserts replace rows the way the real
// ON CONFLICT write does.
type MockExpenseRepository struct {
	Expenses      map[uuid.UUID]*domain.Expense
	GetAllFn      func(organizationID int32) ([]*domain.Expense, error)
	UpsertBatchFn func(expenses []*domain.Expense) error
	UpsertCalls   int
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[uuid.UUID]*domain.Expense),
	}
}

// GetAllByOrganization retrieves all expenses for an organization
func (m *MockExpenseRepository) GetAllByOrganization(organizationID int32) ([]*domain.Expense, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	expenses := []*domain.Expense{}
	for _, e := range m.Expenses {
		if e.OrganizationID == organizationID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

// UpsertBatch inserts or replaces expenses by ID
func (m *MockExpenseRepository) UpsertBatch(expenses []*domain.Expense) error {
	m.UpsertCalls++
	if m.UpsertBatchFn != nil {
		return m.UpsertBatchFn(expenses)
	}
	for _, e := range expenses {
		m.Expenses[e.ID] = e
	}
	return nil
}

// AddExpense adds an expense to the mock repository (helper for tests)
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	m.Expenses[expense.ID] = expense
}

// MockPurchaseRepository is a mock implementation of domain.PurchaseRepository
type MockPurchaseRepository struct {
	ByOrganization map[int32][]*domain.Purchase
	GetAllFn       func(organizationID int32) ([]*domain.Purchase, error)
}

// NewMockPurchaseRepository creates a new MockPurchaseRepository
func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{
		ByOrganization: make(map[int32][]*domain.Purchase),
	}
}

// GetAllByOrganization retrieves all purchases for an organization
func (m *MockPurchaseRepository) GetAllByOrganization(organizationID int32) ([]*domain.Purchase, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	purchases := m.ByOrganization[organizationID]
	if purchases == nil {
		return []*domain.Purchase{}, nil
	}
	return purchases, nil
}

// AddPurchase adds a purchase to the mock repository (helper for tests)
func (m *MockPurchaseRepository) AddPurchase(purchase *domain.Purchase) {
	m.ByOrganization[purchase.OrganizationID] = append(m.ByOrganization[purchase.OrganizationID], purchase)
}

// MockInventoryItemRepository is a mock implementation of domain.InventoryItemRepository
type MockInventoryItemRepository struct {
	ByOrganization map[int32][]*domain.InventoryItem
	GetAllFn       func(organizationID int32) ([]*domain.InventoryItem, error)
}

// NewMockInventoryItemRepository creates a new MockInventoryItemRepository
func NewMockInventoryItemRepository() *MockInventoryItemRepository {
	return &MockInventoryItemRepository{
		ByOrganization: make(map[int32][]*domain.InventoryItem),
	}
}

// GetAllByOrganization retrieves all inventory items for an organization
func (m *MockInventoryItemRepository) GetAllByOrganization(organizationID int32) ([]*domain.InventoryItem, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	items := m.ByOrganization[organizationID]
	if items == nil {
		return []*domain.InventoryItem{}, nil
	}
	return items, nil
}

// AddItem adds an inventory item to the mock repository (helper for tests)
func (m *MockInventoryItemRepository) AddItem(item *domain.InventoryItem) {
	m.ByOrganization[item.OrganizationID] = append(m.ByOrganization[item.OrganizationID], item)
}

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	ByOrganization map[int32][]*domain.Product
	GetAllFn       func(organizationID int32) ([]*domain.Product, error)
}

// NewMockProductRepository creates a new MockProductRepository
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		ByOrganization: make(map[int32][]*domain.Product),
	}
}

// GetAllByOrganization retrieves all products for an organization
func (m *MockProductRepository) GetAllByOrganization(organizationID int32) ([]*domain.Product, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	products := m.ByOrganization[organizationID]
	if products == nil {
		return []*domain.Product{}, nil
	}
	return products, nil
}

// AddProduct adds a product to the mock repository (helper for tests)
func (m *MockProductRepository) AddProduct(product *domain.Product) {
	m.ByOrganization[product.OrganizationID] = append(m.ByOrganization[product.OrganizationID], product)
}

// MockEmployeeRepository is a mock implementation of domain.EmployeeRepository
type MockEmployeeRepository struct {
	ByOrganization map[int32][]*domain.Employee
	GetAllFn       func(organizationID int32) ([]*domain.Employee, error)
	GetActiveFn    func(organizationID int32) ([]*domain.Employee, error)
}

// NewMockEmployeeRepository creates a new MockEmployeeRepository
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		ByOrganization: make(map[int32][]*domain.Employee),
	}
}

// GetAllByOrganization retrieves all employees for an organization
func (m *MockEmployeeRepository) GetAllByOrganization(organizationID int32) ([]*domain.Employee, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(organizationID)
	}
	employees := m.ByOrganization[organizationID]
	if employees == nil {
		return []*domain.Employee{}, nil
	}
	return employees, nil
}

// GetActiveByOrganization retrieves active employees for an organization
func (m *MockEmployeeRepository) GetActiveByOrganization(organizationID int32) ([]*domain.Employee, error) {
	if m.GetActiveFn != nil {
		return m.GetActiveFn(organizationID)
	}
	active := []*domain.Employee{}
	for _, e := range m.ByOrganization[organizationID] {
		if e.Active {
			active = append(active, e)
		}
	}
	return active, nil
}

// AddEmployee adds an employee to the mock repository (helper for tests)
func (m *MockEmployeeRepository) AddEmployee(employee *domain.Employee) {
	m.ByOrganization[employee.OrganizationID] = append(m.ByOrganization[employee.OrganizationID], employee)
}

// MockOrganizationRepository is a mock implementation of domain.OrganizationRepository
type MockOrganizationRepository struct {
	Organizations map[int32]*domain.Organization
	GetByIDFn     func(id int32) (*domain.Organization, error)
}

// NewMockOrganizationRepository creates a new MockOrganizationRepository
func NewMockOrganizationRepository() *MockOrganizationRepository {
	return &MockOrganizationRepository{
		Organizations: make(map[int32]*domain.Organization),
	}
}

// GetByID retrieves an organization by ID
func (m *MockOrganizationRepository) GetByID(id int32) (*domain.Organization, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	if org, ok := m.Organizations[id]; ok {
		return org, nil
	}
	return nil, domain.ErrOrganizationNotFound
}

// AddOrganization adds an organization to the mock repository (helper for tests)
func (m *MockOrganizationRepository) AddOrganization(org *domain.Organization) {
	m.Organizations[org.ID] = org
}
