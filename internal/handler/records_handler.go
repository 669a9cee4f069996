package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/middleware"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/service"
)

// RecordsHandler handles read access to the raw financial records
type RecordsHandler struct {
	recordService *service.RecordService
}

// NewRecordsHandler creates a new RecordsHandler
func NewRecordsHandler(recordService *service.RecordService) *RecordsHandler {
	return &RecordsHandler{
		recordService: recordService,
	}
}

// OrganizationResponse represents an organization profile in API responses
type OrganizationResponse struct {
	ID             int32  `json:"id"`
	Name           string `json:"name"`
	InitialBalance string `json:"initialBalance"`
}

// DealResponse represents a deal in API responses
type DealResponse struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Quantity int32  `json:"quantity"`
	UnitCost string `json:"unitCost"`
	ItemType string `json:"itemType"`
	ClosedAt string `json:"closedAt"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID       int32  `json:"id"`
	Number   string `json:"number"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	IssuedAt string `json:"issuedAt"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	ProjectID   *int32 `json:"projectId,omitempty"`
}

// PurchaseResponse represents an equipment purchase in API responses
type PurchaseResponse struct {
	ID          int32  `json:"id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
}

// EmployeeResponse represents an employee in API responses
type EmployeeResponse struct {
	ID                    int32  `json:"id"`
	FullName              string `json:"fullName"`
	ContractType          string `json:"contractType"`
	BaseSalary            string `json:"baseSalary"`
	PaysEmployerInsurance bool   `json:"paysEmployerInsurance"`
	OtherInsurance        string `json:"otherInsurance"`
	Active                bool   `json:"active"`
}

// GetOrganization handles GET /api/v1/organizations/:orgId
func (h *RecordsHandler) GetOrganization(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	org, err := h.recordService.GetOrganization(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to get organization")
		return NewInternalError(c, "Failed to get organization")
	}

	return c.JSON(http.StatusOK, OrganizationResponse{
		ID:             org.ID,
		Name:           org.Name,
		InitialBalance: org.InitialBalance.StringFixed(2),
	})
}

// GetDeals handles GET /api/v1/organizations/:orgId/deals
func (h *RecordsHandler) GetDeals(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	deals, err := h.recordService.ListDeals(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to list deals")
		return NewInternalError(c, "Failed to list deals")
	}

	response := make([]DealResponse, len(deals))
	for i, deal := range deals {
		response[i] = DealResponse{
			ID:       deal.ID,
			Name:     deal.Name,
			Amount:   deal.Amount.StringFixed(2),
			Quantity: deal.Quantity,
			UnitCost: deal.UnitCost.StringFixed(2),
			ItemType: string(deal.ItemType),
			ClosedAt: deal.ClosedAt.Format("2006-01-02"),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetInvoices handles GET /api/v1/organizations/:orgId/invoices
func (h *RecordsHandler) GetInvoices(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	invoices, err := h.recordService.ListInvoices(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to list invoices")
		return NewInternalError(c, "Failed to list invoices")
	}

	response := make([]InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		response[i] = InvoiceResponse{
			ID:       invoice.ID,
			Number:   invoice.Number,
			Amount:   invoice.Amount.StringFixed(2),
			Status:   string(invoice.Status),
			IssuedAt: invoice.IssuedAt.Format("2006-01-02"),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetExpenses handles GET /api/v1/organizations/:orgId/expenses
func (h *RecordsHandler) GetExpenses(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	expenses, err := h.recordService.ListExpenses(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to list expenses")
		return NewInternalError(c, "Failed to list expenses")
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = ExpenseResponse{
			ID:          expense.ID.String(),
			Description: expense.Description,
			Amount:      expense.Amount.StringFixed(2),
			Date:        expense.Date.Format("2006-01-02"),
			Category:    expense.Category,
			ProjectID:   expense.ProjectID,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetPurchases handles GET /api/v1/organizations/:orgId/purchases
func (h *RecordsHandler) GetPurchases(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	purchases, err := h.recordService.ListPurchases(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to list purchases")
		return NewInternalError(c, "Failed to list purchases")
	}

	response := make([]PurchaseResponse, len(purchases))
	for i, purchase := range purchases {
		response[i] = PurchaseResponse{
			ID:          purchase.ID,
			Description: purchase.Description,
			Amount:      purchase.Amount.StringFixed(2),
			Date:        purchase.Date.Format("2006-01-02"),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetEmployees handles GET /api/v1/organizations/:orgId/employees
func (h *RecordsHandler) GetEmployees(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	employees, err := h.recordService.ListEmployees(organizationID)
	if err != nil {
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to list employees")
		return NewInternalError(c, "Failed to list employees")
	}

	response := make([]EmployeeResponse, len(employees))
	for i, employee := range employees {
		response[i] = EmployeeResponse{
			ID:                    employee.ID,
			FullName:              employee.FullName,
			ContractType:          string(employee.ContractType),
			BaseSalary:            employee.BaseSalary.StringFixed(2),
			PaysEmployerInsurance: employee.PaysEmployerInsurance,
			OtherInsurance:        employee.OtherInsurance.StringFixed(2),
			Active:                employee.Active,
		}
	}
	return c.JSON(http.StatusOK, response)
}
