// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// EditExpenseInput represents the input for expense update.
// The mutable fields are replaced as a whole; ID and OwnerID never change.
type EditExpenseInput struct {
	ExpenseID uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  entity.ExpenseCategory
	Date      time.Time
}

// EditExpenseOutput represents the output of expense update.
type EditExpenseOutput struct {
	Expense *ExpenseOutput
}

// EditExpenseUseCase handles expense update logic.
type EditExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewEditExpenseUseCase creates a new EditExpenseUseCase instance.
func NewEditExpenseUseCase(expenseRepo adapter.ExpenseRepository) *EditExpenseUseCase {
	return &EditExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *EditExpenseUseCase) Execute(ctx context.Context, input EditExpenseInput) (*EditExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	// The record is visible and mutable only by its owner.
	if expense.OwnerID != input.OwnerID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to update this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	title := strings.TrimSpace(input.Title)
	if err := validateExpenseFields(title, input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	expense.Title = title
	expense.Amount = input.Amount
	expense.Category = input.Category
	expense.Date = input.Date
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &EditExpenseOutput{
		Expense: toExpenseOutput(expense),
	}, nil
}
