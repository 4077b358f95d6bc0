package expenseapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestClient_ListExpenses(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/expenses" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"e1","owner_id":"u1","title":"Lunch","amount":"12.50","category":"Food & Dining","date":"2026-03-15"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, func() string { return "test-token" })

	expenses, err := client.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].Title != "Lunch" {
		t.Errorf("expected title %q, got %q", "Lunch", expenses[0].Title)
	}
	if !expenses[0].Amount.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expected amount 12.50, got %s", expenses[0].Amount)
	}
}

func TestClient_CreateExpense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/expenses" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["title"] != "Lunch" {
			t.Errorf("expected title %q in request, got %v", "Lunch", body["title"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"e1","owner_id":"u1","title":"Lunch","amount":"12.50","category":"Food & Dining","date":"2026-03-15"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, func() string { return "test-token" })

	created, err := client.CreateExpense(context.Background(), ExpenseInput{
		Title:    "Lunch",
		Amount:   decimal.RequireFromString("12.50"),
		Category: "Food & Dining",
		Date:     "2026-03-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "e1" {
		t.Errorf("expected server-assigned ID %q, got %q", "e1", created.ID)
	}
}

func TestClient_UpdateExpenseUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/expenses/e1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Expense updated successfully","expense":{"id":"e1","title":"Dinner","amount":"30.00","category":"Food & Dining","date":"2026-03-15"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	updated, err := client.UpdateExpense(context.Background(), "e1", ExpenseInput{
		Title:    "Dinner",
		Amount:   decimal.RequireFromString("30.00"),
		Category: "Food & Dining",
		Date:     "2026-03-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Dinner" {
		t.Errorf("expected title %q, got %q", "Dinner", updated.Title)
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantMsg  string
		wantCode string
	}{
		{
			name:     "maps 400 to validation",
			status:   http.StatusBadRequest,
			body:     `{"error":"expense title is required","code":"EXP-010001"}`,
			wantKind: KindValidation,
			wantMsg:  "expense title is required",
			wantCode: "EXP-010001",
		},
		{
			name:     "maps 401 to authentication",
			status:   http.StatusUnauthorized,
			body:     `{"error":"Invalid or expired token","code":"AUTH-030001"}`,
			wantKind: KindAuthentication,
			wantMsg:  "Invalid or expired token",
			wantCode: "AUTH-030001",
		},
		{
			name:     "maps 403 to authorization",
			status:   http.StatusForbidden,
			body:     `{"error":"not authorized to update this expense","code":"EXP-020002"}`,
			wantKind: KindAuthorization,
			wantMsg:  "not authorized to update this expense",
			wantCode: "EXP-020002",
		},
		{
			name:     "maps 404 to not found",
			status:   http.StatusNotFound,
			body:     `{"error":"expense not found","code":"EXP-020001"}`,
			wantKind: KindNotFound,
			wantMsg:  "expense not found",
			wantCode: "EXP-020001",
		},
		{
			name:     "maps 429 to rate limited",
			status:   http.StatusTooManyRequests,
			body:     `{"error":"Too many requests, please try again later","code":"AUTH-020002"}`,
			wantKind: KindRateLimited,
			wantMsg:  "Too many requests, please try again later",
			wantCode: "AUTH-020002",
		},
		{
			name:     "maps 500 to internal",
			status:   http.StatusInternalServerError,
			body:     `{"error":"Internal server error"}`,
			wantKind: KindInternal,
			wantMsg:  "Internal server error",
		},
		{
			name:     "survives a non-JSON error body",
			status:   http.StatusBadGateway,
			body:     `upstream exploded`,
			wantKind: KindInternal,
			wantMsg:  http.StatusText(http.StatusBadGateway),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)
			_, err := client.ListExpenses(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}

			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.Kind != tt.wantKind {
				t.Errorf("expected kind %s, got %s", tt.wantKind, apiErr.Kind)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, apiErr.Message)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, apiErr.Code)
			}
			if !IsKind(err, tt.wantKind) {
				t.Errorf("IsKind(%s) should be true", tt.wantKind)
			}
		})
	}
}

func TestClient_DeleteExpense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/expenses/e1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Expense deleted successfully"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	if err := client.DeleteExpense(context.Background(), "e1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
