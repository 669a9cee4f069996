package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/testutil"
)

func TestReconcileRevenue_MatchingViews(t *testing.T) {
	deals := []*domain.Deal{
		{Amount: decimal.NewFromInt(5000)},
		{Amount: decimal.NewFromInt(3000)},
	}
	invoices := []*domain.Invoice{
		{Amount: decimal.NewFromInt(8000), Status: domain.InvoiceStatusPagada},
	}

	rec := ReconcileRevenue(deals, invoices)

	if !rec.Divergence.IsZero() {
		t.Errorf("Expected zero divergence, got %s", rec.Divergence.String())
	}
	if rec.NeedsReconciliation {
		t.Error("Matching views should not need reconciliation")
	}
}

func TestReconcileRevenue_Antisymmetry(t *testing.T) {
	deals := []*domain.Deal{{Amount: decimal.NewFromInt(9000)}}
	invoices := []*domain.Invoice{{Amount: decimal.NewFromInt(7000), Status: domain.InvoiceStatusPendiente}}

	forward := ReconcileRevenue(deals, invoices)

	// Swapping the views negates the divergence.
	swappedDeals := []*domain.Deal{{Amount: decimal.NewFromInt(7000)}}
	swappedInvoices := []*domain.Invoice{{Amount: decimal.NewFromInt(9000), Status: domain.InvoiceStatusPendiente}}
	backward := ReconcileRevenue(swappedDeals, swappedInvoices)

	if !forward.Divergence.Equal(backward.Divergence.Neg()) {
		t.Errorf("Expected antisymmetric divergence: %s vs %s", forward.Divergence.String(), backward.Divergence.String())
	}
}

func TestReconcileRevenue_VoidedInvoicesExcluded(t *testing.T) {
	invoices := []*domain.Invoice{
		{Amount: decimal.NewFromInt(1000), Status: domain.InvoiceStatusPagada},
		{Amount: decimal.NewFromInt(999999), Status: domain.InvoiceStatusAnulada},
		{Amount: decimal.NewFromInt(500), Status: domain.InvoiceStatusPendiente},
	}

	rec := ReconcileRevenue(nil, invoices)

	if rec.RevenueInvoiced.StringFixed(2) != "1500.00" {
		t.Errorf("Expected 1500.00 invoiced, got %s", rec.RevenueInvoiced.StringFixed(2))
	}
}

func TestReconcileRevenue_MaterialityThreshold(t *testing.T) {
	// Exactly 100 of divergence stays below the flag; above 100 trips it.
	rec := ReconcileRevenue(
		[]*domain.Deal{{Amount: decimal.NewFromInt(1100)}},
		[]*domain.Invoice{{Amount: decimal.NewFromInt(1000), Status: domain.InvoiceStatusPagada}},
	)
	if rec.NeedsReconciliation {
		t.Error("Divergence of exactly 100 should not be flagged")
	}

	rec = ReconcileRevenue(
		[]*domain.Deal{{Amount: decimal.NewFromFloat(1100.01)}},
		[]*domain.Invoice{{Amount: decimal.NewFromInt(1000), Status: domain.InvoiceStatusPagada}},
	)
	if !rec.NeedsReconciliation {
		t.Error("Divergence above 100 should be flagged")
	}

	// The flag responds to magnitude, not sign.
	rec = ReconcileRevenue(
		[]*domain.Deal{{Amount: decimal.NewFromInt(1000)}},
		[]*domain.Invoice{{Amount: decimal.NewFromInt(1200), Status: domain.InvoiceStatusPagada}},
	)
	if !rec.NeedsReconciliation {
		t.Error("Negative divergence beyond the threshold should be flagged")
	}
}

func TestGetReconciliation_PeriodScoped(t *testing.T) {
	dealRepo := testutil.NewMockDealRepository()
	invoiceRepo := testutil.NewMockInvoiceRepository()
	svc := NewRevenueService(dealRepo, invoiceRepo)

	organizationID := int32(1)

	dealRepo.AddDeal(&domain.Deal{
		ID:             1,
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(2000),
		ClosedAt:       time.Date(2024, time.August, 5, 0, 0, 0, 0, time.UTC),
	})
	dealRepo.AddDeal(&domain.Deal{
		ID:             2,
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(7000),
		ClosedAt:       time.Date(2024, time.September, 5, 0, 0, 0, 0, time.UTC),
	})
	invoiceRepo.AddInvoice(&domain.Invoice{
		ID:             1,
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(1950),
		Status:         domain.InvoiceStatusPagada,
		IssuedAt:       time.Date(2024, time.August, 20, 0, 0, 0, 0, time.UTC),
	})

	rec, err := svc.GetReconciliation(organizationID, domain.Period{Year: 2024, Month: time.August})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.RevenueCRM.StringFixed(2) != "2000.00" {
		t.Errorf("Expected CRM revenue 2000.00, got %s", rec.RevenueCRM.StringFixed(2))
	}
	if rec.RevenueInvoiced.StringFixed(2) != "1950.00" {
		t.Errorf("Expected invoiced revenue 1950.00, got %s", rec.RevenueInvoiced.StringFixed(2))
	}
	if rec.Divergence.StringFixed(2) != "50.00" {
		t.Errorf("Expected divergence 50.00, got %s", rec.Divergence.StringFixed(2))
	}
	if rec.NeedsReconciliation {
		t.Error("Divergence of 50 should not be flagged")
	}
}
