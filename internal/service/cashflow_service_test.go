package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/testutil"
)

func TestGetPosition_LifetimeBalance(t *testing.T) {
	organizationRepo := testutil.NewMockOrganizationRepository()
	dealRepo := testutil.NewMockDealRepository()
	expenseRepo := testutil.NewMockExpenseRepository()
	purchaseRepo := testutil.NewMockPurchaseRepository()
	svc := NewCashFlowService(organizationRepo, dealRepo, expenseRepo, purchaseRepo)

	organizationID := int32(1)

	organizationRepo.AddOrganization(&domain.Organization{
		ID:             organizationID,
		Name:           "GTech Servicios",
		InitialBalance: decimal.NewFromInt(10000),
	})

	// Records spread across years: all of them count.
	dealRepo.AddDeal(&domain.Deal{
		ID:             1,
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(5000),
		ClosedAt:       time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	dealRepo.AddDeal(&domain.Deal{
		ID:             2,
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(3000),
		ClosedAt:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	expenseRepo.AddExpense(&domain.Expense{
		ID:             uuid.New(),
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(2000),
		Date:           time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		Category:       "Alquiler",
	})
	purchaseRepo.AddPurchase(&domain.Purchase{
		ID:             1,
		OrganizationID: organizationID,
		Amount:         decimal.NewFromInt(1500),
		Date:           time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	})

	position, err := svc.GetPosition(organizationID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 10000 + (5000+3000) - (2000+1500) = 14500
	if position.CurrentBalance.StringFixed(2) != "14500.00" {
		t.Errorf("Expected balance 14500.00, got %s", position.CurrentBalance.StringFixed(2))
	}
	if position.TotalIncome.StringFixed(2) != "8000.00" {
		t.Errorf("Expected income 8000.00, got %s", position.TotalIncome.StringFixed(2))
	}
	if position.TotalOutflow.StringFixed(2) != "3500.00" {
		t.Errorf("Expected outflow 3500.00, got %s", position.TotalOutflow.StringFixed(2))
	}
}

func TestGetPosition_NoRecords(t *testing.T) {
	organizationRepo := testutil.NewMockOrganizationRepository()
	dealRepo := testutil.NewMockDealRepository()
	expenseRepo := testutil.NewMockExpenseRepository()
	purchaseRepo := testutil.NewMockPurchaseRepository()
	svc := NewCashFlowService(organizationRepo, dealRepo, expenseRepo, purchaseRepo)

	organizationRepo.AddOrganization(&domain.Organization{
		ID:             1,
		InitialBalance: decimal.NewFromInt(750),
	})

	position, err := svc.GetPosition(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if position.CurrentBalance.StringFixed(2) != "750.00" {
		t.Errorf("Expected opening balance 750.00, got %s", position.CurrentBalance.StringFixed(2))
	}
}

func TestGetPosition_UnknownOrganization(t *testing.T) {
	svc := NewCashFlowService(
		testutil.NewMockOrganizationRepository(),
		testutil.NewMockDealRepository(),
		testutil.NewMockExpenseRepository(),
		testutil.NewMockPurchaseRepository(),
	)

	_, err := svc.GetPosition(42)
	if err != domain.ErrOrganizationNotFound {
		t.Errorf("Expected ErrOrganizationNotFound, got %v", err)
	}
}

// The cash position is a lifetime figure. Whatever reporting period the
// statement side is looking at, the balance must not move.
func TestCashPosition_IndependentOfReportingPeriod(t *testing.T) {
	deals := []*domain.Deal{
		{Amount: decimal.NewFromInt(1000), ClosedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: decimal.NewFromInt(2000), ClosedAt: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []*domain.Expense{
		{Amount: decimal.NewFromInt(500), Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	reference := ComputeCashPosition(decimal.NewFromInt(100), deals, expenses, nil)

	// Recomputing "for" any period is the same computation over the same
	// lifetime records.
	for month := time.January; month <= time.December; month++ {
		got := ComputeCashPosition(decimal.NewFromInt(100), deals, expenses, nil)
		if !got.CurrentBalance.Equal(reference.CurrentBalance) {
			t.Fatalf("Balance changed for month %s: %s vs %s", month, got.CurrentBalance, reference.CurrentBalance)
		}
	}

	if reference.CurrentBalance.StringFixed(2) != "2600.00" {
		t.Errorf("Expected 2600.00, got %s", reference.CurrentBalance.StringFixed(2))
	}
}

func TestComputeCashPosition_NegativeBalancePropagates(t *testing.T) {
	expenses := []*domain.Expense{{Amount: decimal.NewFromInt(5000)}}

	position := ComputeCashPosition(decimal.NewFromInt(1000), nil, expenses, nil)

	if position.CurrentBalance.StringFixed(2) != "-4000.00" {
		t.Errorf("Expected -4000.00, got %s", position.CurrentBalance.StringFixed(2))
	}
}
