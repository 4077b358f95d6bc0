// Package store maintains a client-side cache of the user's expenses.
//
// The cache mutates only after the server confirms an operation: a
// failed request leaves the cached list exactly as it was, and the busy
// flags are cleared no matter how the request ends.
package store

import (
	"context"
	"sync"

	"github.com/expense-tracker/backend/internal/client/expenseapi"
)

// Gateway is the server API surface the store depends on.
type Gateway interface {
	ListExpenses(ctx context.Context) ([]expenseapi.Expense, error)
	CreateExpense(ctx context.Context, input expenseapi.ExpenseInput) (*expenseapi.Expense, error)
	UpdateExpense(ctx context.Context, id string, input expenseapi.ExpenseInput) (*expenseapi.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

// EventType identifies what changed in the store.
type EventType string

const (
	EventFetched EventType = "fetched"
	EventAdded   EventType = "added"
	EventEdited  EventType = "edited"
	EventDeleted EventType = "deleted"
)

// Event is a change notification delivered to subscribers.
type Event struct {
	Type      EventType
	ExpenseID string
}

// Snapshot is an immutable view of the store's state. The expense slice
// is a copy; callers may hold it across store mutations.
type Snapshot struct {
	Expenses          []expenseapi.Expense
	IsExpensesLoading bool
	IsSubmitting      bool
}

// ExpenseStore caches the authenticated user's expenses.
type ExpenseStore struct {
	mu          sync.RWMutex
	gateway     Gateway
	expenses    []expenseapi.Expense
	loading     bool
	submitting  bool
	subscribers map[int]chan Event
	nextSubID   int
}

// NewExpenseStore creates an empty store backed by the given gateway.
func NewExpenseStore(gateway Gateway) *ExpenseStore {
	return &ExpenseStore{
		gateway:     gateway,
		expenses:    []expenseapi.Expense{},
		subscribers: make(map[int]chan Event),
	}
}

// Snapshot returns a copy of the current state.
func (s *ExpenseStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expenses := make([]expenseapi.Expense, len(s.expenses))
	copy(expenses, s.expenses)

	return Snapshot{
		Expenses:          expenses,
		IsExpensesLoading: s.loading,
		IsSubmitting:      s.submitting,
	}
}

// Subscribe registers for change events. The returned cancel function
// must be called to release the subscription. Events are dropped for
// subscribers that fall behind rather than blocking the store.
func (s *ExpenseStore) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Event, 16)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// FetchExpenses replaces the cached list with the server's.
func (s *ExpenseStore) FetchExpenses(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	expenses, err := s.gateway.ListExpenses(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.expenses = expenses
	s.mu.Unlock()

	s.notify(Event{Type: EventFetched})
	return nil
}

// AddExpense creates an expense on the server and, once confirmed,
// appends the server's record to the cache.
func (s *ExpenseStore) AddExpense(ctx context.Context, input expenseapi.ExpenseInput) (*expenseapi.Expense, error) {
	s.setSubmitting(true)
	defer s.setSubmitting(false)

	created, err := s.gateway.CreateExpense(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, *created)
	s.mu.Unlock()

	s.notify(Event{Type: EventAdded, ExpenseID: created.ID})
	return created, nil
}

// EditExpense updates an expense on the server and, once confirmed,
// replaces the matching cache entry in place. The cached entry for any
// other ID is untouched.
func (s *ExpenseStore) EditExpense(ctx context.Context, id string, input expenseapi.ExpenseInput) (*expenseapi.Expense, error) {
	s.setSubmitting(true)
	defer s.setSubmitting(false)

	updated, err := s.gateway.UpdateExpense(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == updated.ID {
			s.expenses[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventEdited, ExpenseID: updated.ID})
	return updated, nil
}

// DeleteExpense deletes an expense on the server and, once confirmed,
// removes the matching cache entry.
func (s *ExpenseStore) DeleteExpense(ctx context.Context, id string) error {
	s.setSubmitting(true)
	defer s.setSubmitting(false)

	if err := s.gateway.DeleteExpense(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify(Event{Type: EventDeleted, ExpenseID: id})
	return nil
}

func (s *ExpenseStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *ExpenseStore) setSubmitting(v bool) {
	s.mu.Lock()
	s.submitting = v
	s.mu.Unlock()
}

func (s *ExpenseStore) notify(event Event) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
