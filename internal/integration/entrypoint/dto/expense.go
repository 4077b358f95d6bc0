// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
// OwnerID is deliberately absent: ownership is always bound server-side.
type CreateExpenseRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Updates replace all mutable fields; id and owner are never accepted.
type UpdateExpenseRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=255"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateExpenseResponse represents the response for expense update.
type UpdateExpenseResponse struct {
	Message string          `json:"message"`
	Expense ExpenseResponse `json:"expense"`
}

// ExpenseSummaryResponse represents the response for the expense summary.
type ExpenseSummaryResponse struct {
	Total string `json:"total"`
	Count int64  `json:"count"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID.String(),
		OwnerID:   e.OwnerID.String(),
		Title:     e.Title,
		Amount:    e.Amount.String(),
		Category:  string(e.Category),
		Date:      e.Date.Format("2006-01-02"),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to a slice of ExpenseResponse.
func ToExpenseListResponse(output *expense.ListExpensesOutput) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}
