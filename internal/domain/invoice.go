package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus values keep the fiscal-document wording used on printed
// invoices in the jurisdiction.
type InvoiceStatus string

const (
	InvoiceStatusPagada    InvoiceStatus = "Pagada"
	InvoiceStatusPendiente InvoiceStatus = "Pendiente"
	InvoiceStatusAnulada   InvoiceStatus = "Anulada"
)

// Invoice is a formally issued fiscal invoice. Amount is gross.
// A voided (Anulada) invoice contributes zero to every aggregate.
type Invoice struct {
	ID             int32           `json:"id"`
	OrganizationID int32           `json:"organizationId"`
	Number         string          `json:"number"`
	Amount         decimal.Decimal `json:"amount"`
	Status         InvoiceStatus   `json:"status"`
	IssuedAt       time.Time       `json:"issuedAt"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// IsVoided reports whether the invoice has been voided.
func (i *Invoice) IsVoided() bool {
	return i.Status == InvoiceStatusAnulada
}

type InvoiceRepository interface {
	GetAllByOrganization(organizationID int32) ([]*Invoice, error)
}
