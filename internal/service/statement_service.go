package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/util"
)

// BuildIncomeStatement derives the full period statement from already
// period-filtered records. Pure: inputs are never mutated and the same
// snapshot always yields the same statement.
//
// Equipment purchases enter the VAT credit and the outflow totals but not
// the operating-expense line: they are capital outflow, not period expense.
func BuildIncomeStatement(
	cfg *TaxConfig,
	regime domain.TaxRegime,
	period domain.Period,
	deals []*domain.Deal,
	invoices []*domain.Invoice,
	expenses []*domain.Expense,
	purchases []*domain.Purchase,
) (*domain.IncomeStatement, error) {
	reconciliation := ReconcileRevenue(deals, invoices)

	// Revenue side. The statement is the management view, built from CRM
	// revenue; invoiced revenue stays a reconciliation signal only.
	revenueGross := reconciliation.RevenueCRM
	revenueNet := cfg.NetFromGross(revenueGross)
	debitVAT := revenueGross.Sub(revenueNet)

	costOfSales := decimal.Zero
	for _, d := range deals {
		qty := d.Quantity
		if qty == 0 {
			qty = 1
		}
		costOfSales = costOfSales.Add(d.UnitCost.Mul(decimal.NewFromInt32(qty)))
	}
	grossProfit := revenueNet.Sub(costOfSales)

	// Outflow side.
	expensesGross := decimal.Zero
	for _, e := range expenses {
		expensesGross = expensesGross.Add(e.Amount)
	}
	purchasesGross := decimal.Zero
	for _, p := range purchases {
		purchasesGross = purchasesGross.Add(p.Amount)
	}

	totalOutflowGross := expensesGross.Add(purchasesGross)
	totalOutflowNet := cfg.NetFromGross(totalOutflowGross)
	creditVAT := totalOutflowGross.Sub(totalOutflowNet)

	operatingExpensesNet := cfg.NetFromGross(expensesGross)
	operatingIncome := grossProfit.Sub(operatingExpensesNet)

	incomeTax, err := ComputeIncomeTax(regime, revenueNet, operatingIncome)
	if err != nil {
		return nil, err
	}
	netIncome := operatingIncome.Sub(incomeTax)

	vatNet := debitVAT.Sub(creditVAT)
	vat := domain.VATPosition{
		DebitVAT:  debitVAT,
		CreditVAT: creditVAT,
		Amount:    vatNet.Abs(),
	}
	switch {
	case vatNet.IsPositive():
		vat.Status = domain.VATPayable
	case vatNet.IsNegative():
		vat.Status = domain.VATInFavor
	default:
		vat.Status = domain.VATBalanced
	}

	return &domain.IncomeStatement{
		Period:               period,
		Regime:               regime,
		RevenueGross:         revenueGross,
		RevenueNet:           revenueNet,
		CostOfSales:          costOfSales,
		GrossProfit:          grossProfit,
		TotalOutflowGross:    totalOutflowGross,
		TotalOutflowNet:      totalOutflowNet,
		OperatingExpensesNet: operatingExpensesNet,
		OperatingIncome:      operatingIncome,
		IncomeTax:            incomeTax,
		NetIncome:            netIncome,
		VAT:                  vat,
		Reconciliation:       reconciliation,
	}, nil
}

// StatementService builds period income statements over the record feed.
type StatementService struct {
	dealRepo     domain.DealRepository
	invoiceRepo  domain.InvoiceRepository
	expenseRepo  domain.ExpenseRepository
	purchaseRepo domain.PurchaseRepository
	taxConfig    *TaxConfig
}

// NewStatementService creates a new StatementService
func NewStatementService(
	dealRepo domain.DealRepository,
	invoiceRepo domain.InvoiceRepository,
	expenseRepo domain.ExpenseRepository,
	purchaseRepo domain.PurchaseRepository,
	taxConfig *TaxConfig,
) *StatementService {
	return &StatementService{
		dealRepo:     dealRepo,
		invoiceRepo:  invoiceRepo,
		expenseRepo:  expenseRepo,
		purchaseRepo: purchaseRepo,
		taxConfig:    taxConfig,
	}
}

// GetIncomeStatement computes the income statement for an organization,
// period and tax regime.
func (s *StatementService) GetIncomeStatement(organizationID int32, period domain.Period, regime domain.TaxRegime) (*domain.IncomeStatement, error) {
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	deals, err := s.dealRepo.GetAllByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.GetAllByOrganization(organizationID)
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

	deals = util.FilterByPeriod(deals, func(d *domain.Deal) time.Time { return d.ClosedAt }, period.Year, period.Month)
	invoices = util.FilterByPeriod(invoices, func(i *domain.Invoice) time.Time { return i.IssuedAt }, period.Year, period.Month)
	expenses = util.FilterByPeriod(expenses, func(e *domain.Expense) time.Time { return e.Date }, period.Year, period.Month)
	purchases = util.FilterByPeriod(purchases, func(p *domain.Purchase) time.Time { return p.Date }, period.Year, period.Month)

	return BuildIncomeStatement(s.taxConfig, regime, period, deals, invoices, expenses, purchases)
}
