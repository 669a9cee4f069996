package service

import (
	"github.com/shopspring/decimal"
	"github.com/sitesgtech-app/crm-gtech-sub001/internal/domain"
)

// Statutory tax parameters. VATRate backs the derived gross factor so the
// 1.12 divisor is never a loose literal and can be swapped per jurisdiction.
var (
	// VATRate is the value-added tax rate applied to every gross amount.
	VATRate = decimal.NewFromFloat(0.12)

	// Simplified regime: two-bracket progressive schedule on net revenue.
	// The bracket ceiling belongs to the lower tier.
	simplifiedBracketCeiling = decimal.NewFromInt(30000)
	simplifiedLowerRate      = decimal.NewFromFloat(0.05)
	simplifiedUpperRate      = decimal.NewFromFloat(0.07)
	simplifiedBaseTax        = decimal.NewFromInt(1500)

	// Profit regime: flat rate on positive operating income.
	profitRate = decimal.NewFromFloat(0.25)
)

// TaxConfig holds the VAT rate and its derived gross factor.
type TaxConfig struct {
	rate   decimal.Decimal
	factor decimal.Decimal
}

// NewTaxConfig creates a TaxConfig for the given VAT rate. A zero or
// negative rate is rejected so gross/net back-calculation can never divide
// by zero.
func NewTaxConfig(vatRate decimal.Decimal) (*TaxConfig, error) {
	if !vatRate.IsPositive() {
		return nil, domain.ErrInvalidVATRate
	}
	return &TaxConfig{
		rate:   vatRate,
		factor: decimal.NewFromInt(1).Add(vatRate),
	}, nil
}

// DefaultTaxConfig returns the TaxConfig for the statutory VAT rate.
func DefaultTaxConfig() *TaxConfig {
	cfg, err := NewTaxConfig(VATRate)
	if err != nil {
		panic(err)
	}
	return cfg
}

// NetFromGross back-calculates the VAT-exclusive amount from a gross amount.
func (c *TaxConfig) NetFromGross(gross decimal.Decimal) decimal.Decimal {
	return gross.Div(c.factor)
}

// VATFromGross returns the VAT portion of a gross amount.
func (c *TaxConfig) VATFromGross(gross decimal.Decimal) decimal.Decimal {
	return gross.Sub(c.NetFromGross(gross))
}

// ComputeIncomeTax computes the income-tax liability under the given regime.
// The simplified regime taxes net revenue on a two-bracket schedule; the
// profit regime taxes positive operating income flat and owes nothing on a
// loss. An unknown regime is an error, never a default.
func ComputeIncomeTax(regime domain.TaxRegime, revenueNet, operatingIncome decimal.Decimal) (decimal.Decimal, error) {
	switch regime {
	case domain.TaxRegimeSimplified:
		if revenueNet.LessThanOrEqual(simplifiedBracketCeiling) {
			return revenueNet.Mul(simplifiedLowerRate), nil
		}
		excess := revenueNet.Sub(simplifiedBracketCeiling)
		return simplifiedBaseTax.Add(excess.Mul(simplifiedUpperRate)), nil
	case domain.TaxRegimeProfit:
		if operatingIncome.IsPositive() {
			return operatingIncome.Mul(profitRate), nil
		}
		return decimal.Zero, nil
	default:
		return decimal.Zero, domain.ErrInvalidTaxRegime
	}
}
