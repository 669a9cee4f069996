package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, orgScope echo.MiddlewareFunc, payrollGuard echo.MiddlewareFunc, reportHandler *ReportHandler, payrollHandler *PayrollHandler, recordsHandler *RecordsHandler) {
	// API version 1, everything scoped to one organization
	api := e.Group("/api/v1")
	org := api.Group("/organizations/:orgId")
	org.Use(orgScope)

	// Report routes
	reports := org.Group("/reports")
	reports.GET("/income-statement", reportHandler.GetIncomeStatement)
	reports.GET("/revenue-reconciliation", reportHandler.GetRevenueReconciliation)
	reports.GET("/cash-position", reportHandler.GetCashPosition)
	reports.GET("/inventory-valuation", reportHandler.GetInventoryValuation)

	// Payroll routes
	payroll := org.Group("/payroll")
	payroll.GET("/projection", payrollHandler.GetProjection)
	payroll.POST("/commits", payrollHandler.CommitMonth, payrollGuard)

	// Organization profile and record feeds
	org.GET("", recordsHandler.GetOrganization)
	org.GET("/deals", recordsHandler.GetDeals)
	org.GET("/invoices", recordsHandler.GetInvoices)
	org.GET("/expenses", recordsHandler.GetExpenses)
	org.GET("/purchases", recordsHandler.GetPurchases)
	org.GET("/employees", recordsHandler.GetEmployees)
}
