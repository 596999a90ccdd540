// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the color assigned when none is provided, and the
// color of the Unknown bucket in aggregated views.
const DefaultCategoryColor = "#3B82F6"

// UnknownCategoryName labels expenses whose category cannot be resolved.
const UnknownCategoryName = "Unknown"

// Category represents an expense category in the Expense Tracker system.
type Category struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Icon      *string
	IsCustom  bool // false for the predefined set seeded on first use
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(name, color string, icon *string, isCustom bool) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		Icon:      icon,
		IsCustom:  isCustom,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PredefinedCategory describes one of the categories seeded into an empty store.
type PredefinedCategory struct {
	Name  string
	Color string
	Icon  string
}

// PredefinedCategories is the default category set, in seeding order.
var PredefinedCategories = []PredefinedCategory{
	{Name: "Groceries", Color: "#10B981", Icon: "🛒"},
	{Name: "Food", Color: "#F59E0B", Icon: "🍔"},
	{Name: "Restaurants", Color: "#EF4444", Icon: "🍽️"},
	{Name: "Transportation", Color: "#3B82F6", Icon: "🚗"},
	{Name: "Utilities", Color: "#8B5CF6", Icon: "💡"},
	{Name: "Entertainment", Color: "#EC4899", Icon: "🎬"},
	{Name: "Healthcare", Color: "#06B6D4", Icon: "⚕️"},
	{Name: "Shopping", Color: "#F97316", Icon: "🛍️"},
	{Name: "Bills", Color: "#6366F1", Icon: "📄"},
	{Name: "Other", Color: "#64748B", Icon: "📦"},
}

// NewPredefinedCategories builds Category entities for the predefined set.
func NewPredefinedCategories() []*Category {
	categories := make([]*Category, 0, len(PredefinedCategories))
	for _, p := range PredefinedCategories {
		icon := p.Icon
		categories = append(categories, NewCategory(p.Name, p.Color, &icon, false))
	}
	return categories
}
