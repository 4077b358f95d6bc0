// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
// Each call durably persists the resulting state before returning.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByOwner retrieves all expenses owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// SumByOwner returns the total amount of all expenses owned by the given user.
	SumByOwner(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)

	// CountByOwner returns the number of expenses owned by the given user.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
