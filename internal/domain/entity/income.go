// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultIncomeSource is used when an income record is saved without a source.
const DefaultIncomeSource = "Salary"

// Income represents the income recorded for one calendar month.
// At most one Income exists per (Month, Year).
type Income struct {
	ID        uuid.UUID
	Month     int
	Year      int
	Amount    decimal.Decimal
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(month, year int, amount decimal.Decimal, source string) *Income {
	now := time.Now().UTC()
	if source == "" {
		source = DefaultIncomeSource
	}

	return &Income{
		ID:        uuid.New(),
		Month:     month,
		Year:      year,
		Amount:    amount,
		Source:    source,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
