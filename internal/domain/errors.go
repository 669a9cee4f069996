package domain

import "errors"

// Domain errors
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrInvalidTaxRegime     = errors.New("invalid tax regime")
	ErrInvalidVATRate       = errors.New("vat rate must be positive")
	ErrInvalidPeriod        = errors.New("invalid reporting period")
)
