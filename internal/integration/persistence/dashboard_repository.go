// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	"github.com/finance-tracker/expense-tracker/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.RecordFetcher interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new record fetcher backed by the database.
func NewDashboardRepository(db *gorm.DB) dashboard.RecordFetcher {
	return &dashboardRepository{
		db: db,
	}
}

// FetchExpenses returns the expenses dated within [start, end] joined with their categories.
// Expenses whose category row is gone come back with nil category fields.
func (r *dashboardRepository) FetchExpenses(ctx context.Context, start, end time.Time) ([]dashboard.ExpenseRecord, error) {
	var results []struct {
		ID            uuid.UUID       `gorm:"column:id"`
		Amount        decimal.Decimal `gorm:"column:amount"`
		Date          time.Time       `gorm:"column:date"`
		Description   *string         `gorm:"column:description"`
		CategoryID    *uuid.UUID      `gorm:"column:category_id"`
		CategoryName  *string         `gorm:"column:category_name"`
		CategoryColor *string         `gorm:"column:category_color"`
		CategoryIcon  *string         `gorm:"column:category_icon"`
	}

	// Half-open range on the day after end keeps the last day whole
	err := r.db.WithContext(ctx).
		Table("expenses e").
		Select(`
			e.id,
			e.amount,
			e.date,
			e.description,
			e.category_id,
			c.name as category_name,
			c.color as category_color,
			c.icon as category_icon
		`).
		Joins("LEFT JOIN categories c ON e.category_id = c.id").
		Where("e.date >= ?", entity.CalendarDay(start)).
		Where("e.date < ?", entity.CalendarDay(end).AddDate(0, 0, 1)).
		Order("e.date ASC, e.created_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	records := make([]dashboard.ExpenseRecord, len(results))
	for i, res := range results {
		records[i] = dashboard.ExpenseRecord{
			ID:            res.ID,
			Amount:        res.Amount,
			Date:          entity.CalendarDay(res.Date),
			Description:   res.Description,
			CategoryID:    res.CategoryID,
			CategoryName:  res.CategoryName,
			CategoryColor: res.CategoryColor,
			CategoryIcon:  res.CategoryIcon,
		}
	}

	return records, nil
}

// FetchIncome returns the income for a month, or nil when none is recorded.
func (r *dashboardRepository) FetchIncome(ctx context.Context, month, year int) (*dashboard.IncomeRecord, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get income: %w", result.Error)
	}

	return &dashboard.IncomeRecord{
		Month:  incomeModel.Month,
		Year:   incomeModel.Year,
		Amount: incomeModel.Amount,
		Source: incomeModel.Source,
	}, nil
}
