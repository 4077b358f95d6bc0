// Package expenseapi provides an HTTP client for the Expense Tracker API.
package expenseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single expense record as returned by the API.
type Expense struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ExpenseInput is the payload for creating or replacing an expense.
type ExpenseInput struct {
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// TokenProvider supplies the bearer token for authenticated requests.
type TokenProvider func() string

// Client is an HTTP client for the expense endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenProvider
}

// NewClient creates a new API client. The token provider is called per
// request so callers can rotate tokens without rebuilding the client.
func NewClient(baseURL string, token TokenProvider) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token: token,
	}
}

type updateResponse struct {
	Message string  `json:"message"`
	Expense Expense `json:"expense"`
}

// ListExpenses fetches all expenses owned by the authenticated user.
func (c *Client) ListExpenses(ctx context.Context) ([]Expense, error) {
	var expenses []Expense
	if err := c.do(ctx, http.MethodGet, "/api/v1/expenses", nil, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// CreateExpense creates a new expense and returns the server's record,
// including the server-assigned ID and owner.
func (c *Client) CreateExpense(ctx context.Context, input ExpenseInput) (*Expense, error) {
	var created Expense
	if err := c.do(ctx, http.MethodPost, "/api/v1/expenses", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExpense replaces the mutable fields of an expense and returns
// the updated record.
func (c *Client) UpdateExpense(ctx context.Context, id string, input ExpenseInput) (*Expense, error) {
	var resp updateResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/expenses/"+id, input, &resp); err != nil {
		return nil, err
	}
	return &resp.Expense, nil
}

// DeleteExpense deletes an expense by ID.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/expenses/"+id, nil, nil)
}

// GetSummary fetches the total and count of the user's expenses.
func (c *Client) GetSummary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := c.do(ctx, http.MethodGet, "/api/v1/expenses/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Summary is the aggregate view of the user's expenses.
type Summary struct {
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindInternal, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{
			Kind:       KindInternal,
			StatusCode: resp.StatusCode,
			Message:    "failed to decode response: " + err.Error(),
		}
	}
	return nil
}
