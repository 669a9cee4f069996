package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/middleware"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/service"
)

// ReportHandler handles financial report HTTP requests
type ReportHandler struct {
	statementService *service.StatementService
	revenueService   *service.RevenueService
	cashFlowService  *service.CashFlowService
	inventoryService *service.InventoryService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	statementService *service.StatementService,
	revenueService *service.RevenueService,
	cashFlowService *service.CashFlowService,
	inventoryService *service.InventoryService,
) *ReportHandler {
	return &ReportHandler{
		statementService: statementService,
		revenueService:   revenueService,
		cashFlowService:  cashFlowService,
		inventoryService: inventoryService,
	}
}

// VATPositionResponse represents the period VAT determination in API responses
type VATPositionResponse struct {
	DebitVAT  string `json:"debitVat"`
	CreditVAT string `json:"creditVat"`
	Amount    string `json:"amount"`
	Status    string `json:"status"`
}

// ReconciliationResponse represents a revenue reconciliation in API responses
type ReconciliationResponse struct {
	RevenueCRM          string `json:"revenueCrm"`
	RevenueInvoiced     string `json:"revenueInvoiced"`
	Divergence          string `json:"divergence"`
	NeedsReconciliation bool   `json:"needsReconciliation"`
}

// IncomeStatementResponse represents an income statement in API responses
type IncomeStatementResponse struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Regime string `json:"regime"`

	RevenueGross string `json:"revenueGross"`
	RevenueNet   string `json:"revenueNet"`
	CostOfSales  string `json:"costOfSales"`
	GrossProfit  string `json:"grossProfit"`

	TotalOutflowGross    string `json:"totalOutflowGross"`
	TotalOutflowNet      string `json:"totalOutflowNet"`
	OperatingExpensesNet string `json:"operatingExpensesNet"`
	OperatingIncome      string `json:"operatingIncome"`

	IncomeTax string `json:"incomeTax"`
	NetIncome string `json:"netIncome"`

	VAT            VATPositionResponse     `json:"vat"`
	Reconciliation *ReconciliationResponse `json:"reconciliation,omitempty"`
}

// CashPositionResponse represents the lifetime cash position in API responses
type CashPositionResponse struct {
	InitialBalance string `json:"initialBalance"`
	TotalIncome    string `json:"totalIncome"`
	TotalOutflow   string `json:"totalOutflow"`
	CurrentBalance string `json:"currentBalance"`
}

// InventoryValuationResponse represents an inventory valuation in API responses
type InventoryValuationResponse struct {
	InsumosValue         string `json:"insumosValue"`
	OfficeEquipmentValue string `json:"officeEquipmentValue"`
	ProductsValue        string `json:"productsValue"`
	TotalValue           string `json:"totalValue"`
}

// periodFromQuery parses the year/month query parameters, defaulting to the
// current calendar month when absent.
func periodFromQuery(c echo.Context) (domain.Period, error) {
	now := time.Now()
	period := domain.Period{Year: now.Year(), Month: now.Month()}

	if y := c.QueryParam("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 2000 || year > 2100 {
			return domain.Period{}, errors.New("year must be between 2000 and 2100")
		}
		period.Year = year
	}
	if m := c.QueryParam("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return domain.Period{}, errors.New("month must be between 1 and 12")
		}
		period.Month = time.Month(month)
	}
	return period, nil
}

// GetIncomeStatement handles GET /api/v1/organizations/:orgId/reports/income-statement
func (h *ReportHandler) GetIncomeStatement(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	period, err := periodFromQuery(c)
	if err != nil {
		return NewValidationError(c, "Invalid reporting period", []ValidationError{
			{Field: "period", Message: err.Error()},
		})
	}

	regime := domain.TaxRegime(c.QueryParam("regime"))
	if regime == "" {
		return NewValidationError(c, "Tax regime is required", []ValidationError{
			{Field: "regime", Message: "Must be 'simplified' or 'profit'"},
		})
	}

	statement, err := h.statementService.GetIncomeStatement(organizationID, period, regime)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTaxRegime) {
			return NewValidationError(c, "Invalid tax regime", []ValidationError{
				{Field: "regime", Message: "Must be 'simplified' or 'profit'"},
			})
		}
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Invalid reporting period", nil)
		}
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to compute income statement")
		return NewInternalError(c, "Failed to compute income statement")
	}

	return c.JSON(http.StatusOK, toIncomeStatementResponse(statement))
}

// GetRevenueReconciliation handles GET /api/v1/organizations/:orgId/reports/revenue-reconciliation
func (h *ReportHandler) GetRevenueReconciliation(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	period, err := periodFromQuery(c)
	if err != nil {
		return NewValidationError(c, "Invalid reporting period", []ValidationError{
			{Field: "period", Message: err.Error()},
		})
	}

	reconciliation, err := h.revenueService.GetReconciliation(organizationID, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Invalid reporting period", nil)
		}
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to compute revenue reconciliation")
		return NewInternalError(c, "Failed to compute revenue reconciliation")
	}

	return c.JSON(http.StatusOK, toReconciliationResponse(reconciliation))
}

// GetCashPosition handles GET /api/v1/organizations/:orgId/reports/cash-position
func (h *ReportHandler) GetCashPosition(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	position, err := h.cashFlowService.GetPosition(organizationID)
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return NewNotFoundError(c, "Organization not found")
		}
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to compute cash position")
		return NewInternalError(c, "Failed to compute cash position")
	}

	return c.JSON(http.StatusOK, CashPositionResponse{
		InitialBalance: position.InitialBalance.StringFixed(2),
		TotalIncome:    position.TotalIncome.StringFixed(2),
		TotalOutflow:   position.TotalOutflow.StringFixed(2),
		CurrentBalance: position.CurrentBalance.StringFixed(2),
	})
}

// GetInventoryValuation handles GET /api/v1/organizations/:orgId/reports/inventory-valuation
func (h *ReportHandler) GetInventoryValuation(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	valuation, err := h.inventoryService.GetValuation(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to compute inventory valuation")
		return NewInternalError(c, "Failed to compute inventory valuation")
	}

	return c.JSON(http.StatusOK, InventoryValuationResponse{
		InsumosValue:         valuation.InsumosValue.StringFixed(2),
		OfficeEquipmentValue: valuation.OfficeEquipmentValue.StringFixed(2),
		ProductsValue:        valuation.ProductsValue.StringFixed(2),
		TotalValue:           valuation.TotalValue.StringFixed(2),
	})
}

func toIncomeStatementResponse(s *domain.IncomeStatement) IncomeStatementResponse {
	response := IncomeStatementResponse{
		Year:   s.Period.Year,
		Month:  int(s.Period.Month),
		Regime: string(s.Regime),

		RevenueGross: s.RevenueGross.StringFixed(2),
		RevenueNet:   s.RevenueNet.StringFixed(2),
		CostOfSales:  s.CostOfSales.StringFixed(2),
		GrossProfit:  s.GrossProfit.StringFixed(2),

		TotalOutflowGross:    s.TotalOutflowGross.StringFixed(2),
		TotalOutflowNet:      s.TotalOutflowNet.StringFixed(2),
		OperatingExpensesNet: s.OperatingExpensesNet.StringFixed(2),
		OperatingIncome:      s.OperatingIncome.StringFixed(2),

		IncomeTax: s.IncomeTax.StringFixed(2),
		NetIncome: s.NetIncome.StringFixed(2),

		VAT: VATPositionResponse{
			DebitVAT:  s.VAT.DebitVAT.StringFixed(2),
			CreditVAT: s.VAT.CreditVAT.StringFixed(2),
			Amount:    s.VAT.Amount.StringFixed(2),
			Status:    string(s.VAT.Status),
		},
	}
	if s.Reconciliation != nil {
		r := toReconciliationResponse(s.Reconciliation)
		response.Reconciliation = &r
	}
	return response
}

func toReconciliationResponse(r *domain.RevenueReconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		RevenueCRM:          r.RevenueCRM.StringFixed(2),
		RevenueInvoiced:     r.RevenueInvoiced.StringFixed(2),
		Divergence:          r.Divergence.StringFixed(2),
		NeedsReconciliation: r.NeedsReconciliation,
	}
}
