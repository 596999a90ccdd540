// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// IncomeRepository defines the interface for monthly income persistence operations.
type IncomeRepository interface {
	// FindByPeriod retrieves the income for a month. Returns nil, nil when none is recorded.
	FindByPeriod(ctx context.Context, month, year int) (*entity.Income, error)

	// Upsert creates the income for (Month, Year) or overwrites the existing one.
	Upsert(ctx context.Context, income *entity.Income) error
}
