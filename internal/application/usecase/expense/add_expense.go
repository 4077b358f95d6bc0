// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxTitleLength is the maximum allowed length for expense titles.
	MaxTitleLength = 255
)

// AddExpenseInput represents the input for expense creation.
// OwnerID is always the authenticated caller's identity, never client input.
type AddExpenseInput struct {
	OwnerID  uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Category entity.ExpenseCategory
	Date     time.Time
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *ExpenseOutput
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateExpenseFields(title, input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.OwnerID,
		title,
		input.Amount,
		input.Category,
		input.Date,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &AddExpenseOutput{
		Expense: toExpenseOutput(expense),
	}, nil
}

// validateExpenseFields checks the mutable expense fields shared by add and edit.
func validateExpenseFields(
	title string,
	amount decimal.Decimal,
	category entity.ExpenseCategory,
	date time.Time,
) error {
	if title == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseTitle,
			"title must not be empty",
			domainerror.ErrMissingExpenseTitle,
		)
	}

	if len(title) > MaxTitleLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseTitle,
			fmt.Sprintf("title must not exceed %d characters", MaxTitleLength),
			domainerror.ErrMissingExpenseTitle,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if !entity.IsValidExpenseCategory(category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category is not a recognized expense category",
			domainerror.ErrInvalidExpenseCategory,
		)
	}

	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

	return nil
}
