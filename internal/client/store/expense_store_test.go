package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/client/expenseapi"
)

// fakeGateway simulates the server, with switchable failures per method.
type fakeGateway struct {
	expenses  map[string]expenseapi.Expense
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{expenses: make(map[string]expenseapi.Expense)}
}

func (g *fakeGateway) ListExpenses(ctx context.Context) ([]expenseapi.Expense, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	var result []expenseapi.Expense
	for _, e := range g.expenses {
		result = append(result, e)
	}
	return result, nil
}

func (g *fakeGateway) CreateExpense(ctx context.Context, input expenseapi.ExpenseInput) (*expenseapi.Expense, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	created := expenseapi.Expense{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
	}
	g.expenses[created.ID] = created
	return &created, nil
}

func (g *fakeGateway) UpdateExpense(ctx context.Context, id string, input expenseapi.ExpenseInput) (*expenseapi.Expense, error) {
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	existing, ok := g.expenses[id]
	if !ok {
		return nil, &expenseapi.APIError{Kind: expenseapi.KindNotFound, Message: "expense not found"}
	}
	existing.Title = input.Title
	existing.Amount = input.Amount
	existing.Category = input.Category
	existing.Date = input.Date
	g.expenses[id] = existing
	return &existing, nil
}

func (g *fakeGateway) DeleteExpense(ctx context.Context, id string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	delete(g.expenses, id)
	return nil
}

func seedStore(t *testing.T, s *ExpenseStore, titles ...string) []expenseapi.Expense {
	t.Helper()
	ctx := context.Background()

	var created []expenseapi.Expense
	for _, title := range titles {
		e, err := s.AddExpense(ctx, expenseapi.ExpenseInput{
			Title:    title,
			Amount:   decimal.RequireFromString("10.00"),
			Category: "Other",
			Date:     "2026-03-15",
		})
		if err != nil {
			t.Fatalf("failed to seed expense %q: %v", title, err)
		}
		created = append(created, *e)
	}
	return created
}

func findByID(expenses []expenseapi.Expense, id string) *expenseapi.Expense {
	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i]
		}
	}
	return nil
}

func TestExpenseStore_FetchExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the cache with the server list", func(t *testing.T) {
		gateway := newFakeGateway()
		gateway.expenses["e1"] = expenseapi.Expense{ID: "e1", Title: "Server copy"}
		s := NewExpenseStore(gateway)

		if err := s.FetchExpenses(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 1 || snap.Expenses[0].ID != "e1" {
			t.Errorf("cache does not mirror the server: %+v", snap.Expenses)
		}
		if snap.IsExpensesLoading {
			t.Error("loading flag still set after fetch")
		}
	})

	t.Run("keeps the cache and clears the flag on failure", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)
		seedStore(t, s, "Existing")

		gateway.listErr = errors.New("network down")
		if err := s.FetchExpenses(ctx); err == nil {
			t.Fatal("expected an error")
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 1 || snap.Expenses[0].Title != "Existing" {
			t.Errorf("failed fetch mutated the cache: %+v", snap.Expenses)
		}
		if snap.IsExpensesLoading {
			t.Error("loading flag was not cleared after failure")
		}
	})
}

func TestExpenseStore_AddExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("appends the confirmed record", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)

		created, err := s.AddExpense(ctx, expenseapi.ExpenseInput{
			Title:    "Lunch",
			Amount:   decimal.RequireFromString("12.50"),
			Category: "Food & Dining",
			Date:     "2026-03-15",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 1 {
			t.Fatalf("expected 1 cached expense, got %d", len(snap.Expenses))
		}
		if snap.Expenses[0].ID != created.ID {
			t.Error("cache holds a record the server did not confirm")
		}
		if snap.IsSubmitting {
			t.Error("submitting flag still set after add")
		}
	})

	t.Run("does not touch the cache on failure", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)
		seedStore(t, s, "Existing")

		gateway.createErr = &expenseapi.APIError{Kind: expenseapi.KindValidation, Message: "bad amount"}
		_, err := s.AddExpense(ctx, expenseapi.ExpenseInput{Title: "Broken"})
		if err == nil {
			t.Fatal("expected an error")
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 1 {
			t.Errorf("failed add mutated the cache: %+v", snap.Expenses)
		}
		if snap.IsSubmitting {
			t.Error("submitting flag was not cleared after failure")
		}
	})
}

func TestExpenseStore_EditExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the matching entry in place", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)
		created := seedStore(t, s, "First", "Second")

		updated, err := s.EditExpense(ctx, created[0].ID, expenseapi.ExpenseInput{
			Title:    "First, revised",
			Amount:   decimal.RequireFromString("99.00"),
			Category: "Travel",
			Date:     "2026-04-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 2 {
			t.Fatalf("edit changed the number of entries: got %d", len(snap.Expenses))
		}

		edited := findByID(snap.Expenses, created[0].ID)
		if edited == nil {
			t.Fatal("edited entry vanished from the cache")
		}
		if edited.Title != "First, revised" {
			t.Errorf("entry was not replaced: %+v", edited)
		}
		if edited.ID != updated.ID {
			t.Errorf("cache entry ID %q does not match server record %q", edited.ID, updated.ID)
		}

		untouched := findByID(snap.Expenses, created[1].ID)
		if untouched == nil || untouched.Title != "Second" {
			t.Errorf("edit modified an unrelated entry: %+v", untouched)
		}
	})

	t.Run("leaves the cache intact when the server rejects the edit", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)
		created := seedStore(t, s, "Original")

		gateway.updateErr = &expenseapi.APIError{Kind: expenseapi.KindAuthorization, Message: "not yours"}
		_, err := s.EditExpense(ctx, created[0].ID, expenseapi.ExpenseInput{Title: "Hijacked"})
		if err == nil {
			t.Fatal("expected an error")
		}

		snap := s.Snapshot()
		if snap.Expenses[0].Title != "Original" {
			t.Errorf("rejected edit mutated the cache: %+v", snap.Expenses[0])
		}
		if snap.IsSubmitting {
			t.Error("submitting flag was not cleared after failure")
		}
	})
}

func TestExpenseStore_DeleteExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the matching entry", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)
		created := seedStore(t, s, "Keep", "Remove")

		if err := s.DeleteExpense(ctx, created[1].ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 1 {
			t.Fatalf("expected 1 entry after delete, got %d", len(snap.Expenses))
		}
		if snap.Expenses[0].ID != created[0].ID {
			t.Errorf("delete removed the wrong entry: %+v", snap.Expenses[0])
		}
	})

	t.Run("keeps the entry when the server rejects the delete", func(t *testing.T) {
		gateway := newFakeGateway()
		s := NewExpenseStore(gateway)
		created := seedStore(t, s, "Survivor")

		gateway.deleteErr = &expenseapi.APIError{Kind: expenseapi.KindAuthorization, Message: "not yours"}
		if err := s.DeleteExpense(ctx, created[0].ID); err == nil {
			t.Fatal("expected an error")
		}

		snap := s.Snapshot()
		if len(snap.Expenses) != 1 {
			t.Errorf("rejected delete mutated the cache: %+v", snap.Expenses)
		}
		if snap.IsSubmitting {
			t.Error("submitting flag was not cleared after failure")
		}
	})
}

func TestExpenseStore_SnapshotIsImmutable(t *testing.T) {
	gateway := newFakeGateway()
	s := NewExpenseStore(gateway)
	seedStore(t, s, "Stable")

	snap := s.Snapshot()
	snap.Expenses[0].Title = "Mutated copy"

	if s.Snapshot().Expenses[0].Title != "Stable" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestExpenseStore_Subscribe(t *testing.T) {
	ctx := context.Background()
	gateway := newFakeGateway()
	s := NewExpenseStore(gateway)

	events, cancel := s.Subscribe()
	defer cancel()

	created, err := s.AddExpense(ctx, expenseapi.ExpenseInput{
		Title:    "Watched",
		Amount:   decimal.RequireFromString("5.00"),
		Category: "Other",
		Date:     "2026-03-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-events:
		if event.Type != EventAdded {
			t.Errorf("expected %s event, got %s", EventAdded, event.Type)
		}
		if event.ExpenseID != created.ID {
			t.Errorf("expected event for %s, got %s", created.ID, event.ExpenseID)
		}
	default:
		t.Fatal("no event was delivered")
	}

	cancel()
	if _, open := <-events; open {
		t.Error("channel should be closed after cancel")
	}
}
