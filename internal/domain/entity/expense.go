// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the fixed set of categories an expense can have.
type ExpenseCategory string

const (
	CategoryFoodAndDining  ExpenseCategory = "Food & Dining"
	CategoryTransportation ExpenseCategory = "Transportation"
	CategoryOfficeSupplies ExpenseCategory = "Office Supplies"
	CategoryTravel         ExpenseCategory = "Travel"
	CategoryEntertainment  ExpenseCategory = "Entertainment"
	CategoryHealthcare     ExpenseCategory = "Healthcare"
	CategoryUtilities      ExpenseCategory = "Utilities"
	CategoryTraining       ExpenseCategory = "Training"
	CategoryOther          ExpenseCategory = "Other"
)

// ExpenseCategories lists every valid expense category.
var ExpenseCategories = []ExpenseCategory{
	CategoryFoodAndDining,
	CategoryTransportation,
	CategoryOfficeSupplies,
	CategoryTravel,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryUtilities,
	CategoryTraining,
	CategoryOther,
}

// IsValidExpenseCategory reports whether the category belongs to the fixed set.
func IsValidExpenseCategory(category ExpenseCategory) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Expense represents a single expense record owned by a user.
// ID and OwnerID are assigned at creation and never change afterwards.
type Expense struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category ExpenseCategory
	Date     time.Time // calendar date the expense occurred, not the record timestamp

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity owned by the given user.
func NewExpense(
	ownerID uuid.UUID,
	title string,
	amount decimal.Decimal,
	category ExpenseCategory,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExpenseSummary represents the aggregated total of a user's expenses.
type ExpenseSummary struct {
	Total decimal.Decimal
	Count int
}
