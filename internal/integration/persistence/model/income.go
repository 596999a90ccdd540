// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Month     int             `gorm:"not null;uniqueIndex:idx_income_period"`
	Year      int             `gorm:"not null;uniqueIndex:idx_income_period"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Source    string          `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:        m.ID,
		Month:     m.Month,
		Year:      m.Year,
		Amount:    m.Amount,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:        income.ID,
		Month:     income.Month,
		Year:      income.Year,
		Amount:    income.Amount,
		Source:    income.Source,
		CreatedAt: income.CreatedAt,
		UpdatedAt: income.UpdatedAt,
	}
}
