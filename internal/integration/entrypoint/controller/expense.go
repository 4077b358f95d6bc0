// Package controller handles HTTP requests and responses for the API.
package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense record endpoints.
type ExpenseController struct {
	addExpenseUseCase    *expense.AddExpenseUseCase
	listExpensesUseCase  *expense.ListExpensesUseCase
	editExpenseUseCase   *expense.EditExpenseUseCase
	deleteExpenseUseCase *expense.DeleteExpenseUseCase
	getSummaryUseCase    *expense.GetSummaryUseCase
}

// NewExpenseController creates a new expense controller.
func NewExpenseController(
	addExpenseUseCase *expense.AddExpenseUseCase,
	listExpensesUseCase *expense.ListExpensesUseCase,
	editExpenseUseCase *expense.EditExpenseUseCase,
	deleteExpenseUseCase *expense.DeleteExpenseUseCase,
	getSummaryUseCase *expense.GetSummaryUseCase,
) *ExpenseController {
	return &ExpenseController{
		addExpenseUseCase:    addExpenseUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		editExpenseUseCase:   editExpenseUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		getSummaryUseCase:    getSummaryUseCase,
	}
}

// List handles GET /api/v1/expenses.
func (ctrl *ExpenseController) List(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	output, err := ctrl.listExpensesUseCase.Execute(c.Request.Context(), expense.ListExpensesInput{
		OwnerID: userID,
	})
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /api/v1/expenses.
func (ctrl *ExpenseController) Create(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := ctrl.addExpenseUseCase.Execute(c.Request.Context(), expense.AddExpenseInput{
		OwnerID:  userID,
		Title:    req.Title,
		Amount:   decimal.NewFromFloat(req.Amount),
		Category: entity.ExpenseCategory(req.Category),
		Date:     date,
	})
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /api/v1/expenses/:id.
func (ctrl *ExpenseController) Update(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	output, err := ctrl.editExpenseUseCase.Execute(c.Request.Context(), expense.EditExpenseInput{
		ExpenseID: expenseID,
		OwnerID:   userID,
		Title:     req.Title,
		Amount:    decimal.NewFromFloat(req.Amount),
		Category:  entity.ExpenseCategory(req.Category),
		Date:      date,
	})
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UpdateExpenseResponse{
		Message: "Expense updated successfully",
		Expense: dto.ToExpenseResponse(output.Expense),
	})
}

// Delete handles DELETE /api/v1/expenses/:id.
func (ctrl *ExpenseController) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	_, err = ctrl.deleteExpenseUseCase.Execute(c.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		OwnerID:   userID,
	})
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}

// Summary handles GET /api/v1/expenses/summary.
func (ctrl *ExpenseController) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	output, err := ctrl.getSummaryUseCase.Execute(c.Request.Context(), expense.GetSummaryInput{
		OwnerID: userID,
	})
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExpenseSummaryResponse{
		Total: output.Total.StringFixed(2),
		Count: output.Count,
	})
}

func (ctrl *ExpenseController) handleError(c *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		c.JSON(getStatusCodeForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	slog.Error("unexpected error handling expense request", "error", err)
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}

func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingExpenseTitle,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseCategory,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
