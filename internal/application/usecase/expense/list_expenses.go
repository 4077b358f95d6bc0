// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseOutput represents a single expense in use case outputs.
type ExpenseOutput struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  entity.ExpenseCategory
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toExpenseOutput converts an expense entity to its use case output form.
func toExpenseOutput(expense *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:        expense.ID,
		OwnerID:   expense.OwnerID,
		Title:     expense.Title,
		Amount:    expense.Amount,
		Category:  expense.Category,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	OwnerID uuid.UUID
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles listing a user's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns all expenses owned by the caller, in repository order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	outputs := make([]*ExpenseOutput, len(expenses))
	for i, e := range expenses {
		outputs[i] = toExpenseOutput(e)
	}

	return &ListExpensesOutput{
		Expenses: outputs,
	}, nil
}
