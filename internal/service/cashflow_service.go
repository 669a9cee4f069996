package service

import (
	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// ComputeCashPosition folds the lifetime record history into the current
// cash position: opening balance plus all-time deal income minus all-time
// expenses and purchases. Deliberately unscoped by reporting period; this
// answers "what is the cash position today", not "what happened this month".
func ComputeCashPosition(
	initialBalance decimal.Decimal,
	deals []*domain.Deal,
	expenses []*domain.Expense,
	purchases []*domain.Purchase,
) *domain.CashPosition {
	income := decimal.Zero
	for _, d := range deals {
		income = income.Add(d.Amount)
	}

	outflow := decimal.Zero
	for _, e := range expenses {
		outflow = outflow.Add(e.Amount)
	}
	for _, p := range purchases {
		outflow = outflow.Add(p.Amount)
	}

	return &domain.CashPosition{
		InitialBalance: initialBalance,
		TotalIncome:    income,
		TotalOutflow:   outflow,
		CurrentBalance: initialBalance.Add(income).Sub(outflow),
	}
}

// CashFlowService computes the lifetime cash position over the record feed.
type CashFlowService struct {
	organizationRepo domain.OrganizationRepository
	dealRepo         domain.DealRepository
	expenseRepo      domain.ExpenseRepository
	purchaseRepo     domain.PurchaseRepository
}

// NewCashFlowService creates a new CashFlowService
func NewCashFlowService(
	organizationRepo domain.OrganizationRepository,
	dealRepo domain.DealRepository,
	expenseRepo domain.ExpenseRepository,
	purchaseRepo domain.PurchaseRepository,
) *CashFlowService {
	return &CashFlowService{
		organizationRepo: organizationRepo,
		dealRepo:         dealRepo,
		expenseRepo:      expenseRepo,
		purchaseRepo:     purchaseRepo,
	}
}

// GetPosition computes the lifetime cash position for an organization.
// There is intentionally no period parameter.
func (s *CashFlowService) GetPosition(organizationID int32) (*domain.CashPosition, error) {
	org, err := s.organizationRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	deals, err := s.dealRepo.GetAllByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetAllByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.GetAllByOrganization(organizationID)
	if err != nil {
		return nil, err
	}

	return ComputeCashPosition(org.InitialBalance, deals, expenses, purchases), nil
}
