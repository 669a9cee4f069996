package service

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/util"
)

// reconciliationThreshold is the materiality threshold above which a
// CRM/invoiced divergence is flagged for reconciliation.
var reconciliationThreshold = decimal.NewFromInt(100)

// ReconcileRevenue computes the two independent revenue views for a set of
// period records. Purely additive: record order never affects the result.
func ReconcileRevenue(deals []*domain.Deal, invoices []*domain.Invoice) *domain.RevenueReconciliation {
	crm := decimal.Zero
	for _, d := range deals {
		crm = crm.Add(d.Amount)
	}

	invoiced := decimal.Zero
	for _, inv := range invoices {
		if inv.IsVoided() {
			continue
		}
		invoiced = invoiced.Add(inv.Amount)
	}

	divergence := crm.Sub(invoiced)
	return &domain.RevenueReconciliation{
		RevenueCRM:          crm,
		RevenueInvoiced:     invoiced,
		Divergence:          divergence,
		NeedsReconciliation: divergence.Abs().GreaterThan(reconciliationThreshold),
	}
}

// RevenueService exposes the period revenue reconciliation over the record
// feed.
type RevenueService struct {
	dealRepo    domain.DealRepository
	invoiceRepo domain.InvoiceRepository
}

// NewRevenueService creates a new RevenueService
func NewRevenueService(dealRepo domain.DealRepository, invoiceRepo domain.InvoiceRepository) *RevenueService {
	return &RevenueService{
		dealRepo:    dealRepo,
		invoiceRepo: invoiceRepo,
	}
}

// GetReconciliation computes the revenue reconciliation for a period.
func (s *RevenueService) GetReconciliation(organizationID int32, period domain.Period) (*domain.RevenueReconciliation, error) {
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

	deals = util.FilterByPeriod(deals, func(d *domain.Deal) time.Time { return d.ClosedAt }, period.Year, period.Month)
	invoices = util.FilterByPeriod(invoices, func(i *domain.Invoice) time.Time { return i.IssuedAt }, period.Year, period.Month)

	return ReconcileRevenue(deals, invoices), nil
}
