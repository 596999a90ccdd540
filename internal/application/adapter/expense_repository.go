// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense and its category by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseWithCategory, error)

	// FindByDateRange retrieves expenses with start <= date < end, newest first.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.ExpenseWithCategory, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
