// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-tracker/expense-tracker/internal/application/adapter"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
	"github.com/finance-tracker/expense-tracker/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// FindByPeriod retrieves the income for a month. Returns nil, nil when none is recorded.
func (r *incomeRepository) FindByPeriod(ctx context.Context, month, year int) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// Upsert inserts the income or, on a (month, year) conflict, overwrites amount and source.
func (r *incomeRepository) Upsert(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "source", "updated_at"}),
		}).
		Create(incomeModel).Error
}
