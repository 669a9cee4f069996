package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/middleware"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/service"
)

// PayrollHandler handles payroll HTTP requests
type PayrollHandler struct {
	payrollService *service.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(payrollService *service.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// EmployeeCostResponse represents one employee's cost line in API responses
type EmployeeCostResponse struct {
	EmployeeID        int32  `json:"employeeId"`
	FullName          string `json:"fullName"`
	ContractType      string `json:"contractType"`
	BaseSalary        string `json:"baseSalary"`
	LegalBonus        string `json:"legalBonus"`
	EmployerInsurance string `json:"employerInsurance"`
	OtherInsurance    string `json:"otherInsurance"`
	TotalCost         string `json:"totalCost"`
}

// PayrollProjectionResponse represents a payroll projection in API responses
type PayrollProjectionResponse struct {
	Year      int                    `json:"year"`
	Month     int                    `json:"month"`
	Employees []EmployeeCostResponse `json:"employees"`
	TotalCost string                 `json:"totalCost"`
}

// CommitPayrollRequest is the body for committing a payroll month
type CommitPayrollRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// GetProjection handles GET /api/v1/organizations/:orgId/payroll/projection
func (h *PayrollHandler) GetProjection(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	period, err := periodFromQuery(c)
	if err != nil {
		return NewValidationError(c, "Invalid payroll period", []ValidationError{
			{Field: "period", Message: err.Error()},
		})
	}

	projection, err := h.payrollService.ProjectMonth(organizationID, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Invalid payroll period", nil)
		}
		log.Error().Err(err).Int32("organization_id", organizationID).Msg("Failed to project payroll")
		return NewInternalError(c, "Failed to project payroll")
	}

	return c.JSON(http.StatusOK, toPayrollProjectionResponse(projection))
}

// CommitMonth handles POST /api/v1/organizations/:orgId/payroll/commits
func (h *PayrollHandler) CommitMonth(c echo.Context) error {
	organizationID := middleware.GetOrganizationID(c)

	var req CommitPayrollRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	period := domain.Period{Year: req.Year, Month: time.Month(req.Month)}
	if !period.Valid() {
		return NewValidationError(c, "Invalid payroll period", []ValidationError{
			{Field: "year", Message: "Year must be positive"},
			{Field: "month", Message: "Month must be between 1 and 12"},
		})
	}

	projection, err := h.payrollService.CommitMonth(organizationID, period)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Invalid payroll period", nil)
		}
		log.Error().Err(err).
			Int32("organization_id", organizationID).
			Int("year", period.Year).
			Int("month", int(period.Month)).
			Msg("Failed to commit payroll")
		return NewInternalError(c, "Failed to commit payroll")
	}

	log.Info().
		Int32("organization_id", organizationID).
		Int("year", period.Year).
		Int("month", int(period.Month)).
		Str("total_cost", projection.TotalCost.StringFixed(2)).
		Msg("Payroll committed")

	return c.JSON(http.StatusOK, toPayrollProjectionResponse(projection))
}

func toPayrollProjectionResponse(p *domain.PayrollProjection) PayrollProjectionResponse {
	employees := make([]EmployeeCostResponse, len(p.Employees))
	for i, cost := range p.Employees {
		employees[i] = EmployeeCostResponse{
			EmployeeID:        cost.EmployeeID,
			FullName:          cost.FullName,
			ContractType:      string(cost.ContractType),
			BaseSalary:        cost.BaseSalary.StringFixed(2),
			LegalBonus:        cost.LegalBonus.StringFixed(2),
			EmployerInsurance: cost.EmployerInsurance.StringFixed(2),
			OtherInsurance:    cost.OtherInsurance.StringFixed(2),
			TotalCost:         cost.TotalCost.StringFixed(2),
		}
	}
	return PayrollProjectionResponse{
		Year:      p.Period.Year,
		Month:     int(p.Period.Month),
		Employees: employees,
		TotalCost: p.TotalCost.StringFixed(2),
	}
}
