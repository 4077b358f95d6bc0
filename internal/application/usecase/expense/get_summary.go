// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// GetSummaryInput represents the input for the expense summary.
type GetSummaryInput struct {
	OwnerID uuid.UUID
}

// GetSummaryOutput represents the aggregated total of the caller's expenses.
type GetSummaryOutput struct {
	Total decimal.Decimal
	Count int64
}

// GetSummaryUseCase computes the total of a user's expenses.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(expenseRepo adapter.ExpenseRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns the sum and count of the caller's expenses.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	total, err := uc.expenseRepo.SumByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	count, err := uc.expenseRepo.CountByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}

	return &GetSummaryOutput{
		Total: total,
		Count: count,
	}, nil
}
