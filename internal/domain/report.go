package domain

import (
	"github.com/shopspring/decimal"
)

// TaxRegime selects the income-tax schedule for a statement. It is a
// reporting parameter, not a stored attribute, and is never inferred.
type TaxRegime string

const (
	// TaxRegimeSimplified is the revenue-based progressive schedule.
	TaxRegimeSimplified TaxRegime = "simplified"
	// TaxRegimeProfit is the flat schedule on positive operating income.
	TaxRegimeProfit TaxRegime = "profit"
)

// VATBalanceStatus labels the sign of the net VAT position.
type VATBalanceStatus string

const (
	VATPayable  VATBalanceStatus = "payable"
	VATInFavor  VATBalanceStatus = "favor"
	VATBalanced VATBalanceStatus = "balanced"
)

// VATPosition is the period VAT determination. Amount is always the
// absolute net position; Status carries the sign.
type VATPosition struct {
	DebitVAT  decimal.Decimal  `json:"debitVat"`
	CreditVAT decimal.Decimal  `json:"creditVat"`
	Amount    decimal.Decimal  `json:"amount"`
	Status    VATBalanceStatus `json:"status"`
}

// RevenueReconciliation compares the two independent revenue views for a
// period. Statement math uses RevenueCRM only; RevenueInvoiced is a signal.
type RevenueReconciliation struct {
	RevenueCRM          decimal.Decimal `json:"revenueCrm"`
	RevenueInvoiced     decimal.Decimal `json:"revenueInvoiced"`
	Divergence          decimal.Decimal `json:"divergence"`
	NeedsReconciliation bool            `json:"needsReconciliation"`
}

// IncomeStatement is the computed period statement.
type IncomeStatement struct {
	Period Period    `json:"period"`
	Regime TaxRegime `json:"regime"`

	RevenueGross decimal.Decimal `json:"revenueGross"`
	RevenueNet   decimal.Decimal `json:"revenueNet"`
	CostOfSales  decimal.Decimal `json:"costOfSales"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`

	TotalOutflowGross    decimal.Decimal `json:"totalOutflowGross"`
	TotalOutflowNet      decimal.Decimal `json:"totalOutflowNet"`
	OperatingExpensesNet decimal.Decimal `json:"operatingExpensesNet"`
	OperatingIncome      decimal.Decimal `json:"operatingIncome"`

	IncomeTax decimal.Decimal `json:"incomeTax"`
	NetIncome decimal.Decimal `json:"netIncome"`

	VAT            VATPosition            `json:"vat"`
	Reconciliation *RevenueReconciliation `json:"reconciliation"`
}

// CashPosition is the lifetime cash figure: opening balance plus all-time
// income minus all-time outflow. Not scoped by reporting period.
type CashPosition struct {
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalOutflow   decimal.Decimal `json:"totalOutflow"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

// InventoryValuation is a snapshot of on-hand stock value.
type InventoryValuation struct {
	InsumosValue         decimal.Decimal `json:"insumosValue"`
	OfficeEquipmentValue decimal.Decimal `json:"officeEquipmentValue"`
	ProductsValue        decimal.Decimal `json:"productsValue"`
	TotalValue           decimal.Decimal `json:"totalValue"`
}
