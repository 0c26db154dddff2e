// Package memory implements the expense ports against an in-process
// slice. It backs DATA_BACKEND=memory for offline demo runs and serves
// as the test double for the screen.
package memory

import (
	"context"
	"fmt"
	"sync"

	"spend/internal/core"
)

type Store struct {
	mu    sync.Mutex
	next  int
	items []core.Expense
}

func New() *Store {
	return &Store{}
}

// NewSeeded returns a store preloaded with the given expenses, assigning
// ids to any record that lacks one.
func NewSeeded(seed []core.Expense) *Store {
	s := New()
	for _, e := range seed {
		if e.ID == "" {
			s.next++
			e.ID = fmt.Sprintf("mem:%d", s.next)
		}
		s.items = append(s.items, e)
	}
	return s
}

// ListExpenses returns a copy of the collection in insertion order.
func (s *Store) ListExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...), nil
}

// CreateExpense stores the expense under a synthetic id and returns the
// stored record, mirroring what the remote endpoint does.
func (s *Store) CreateExpense(_ context.Context, e core.Expense) (core.Expense, error) {
	if err := e.Amount.Validate(); err != nil {
		return core.Expense{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	e.ID = fmt.Sprintf("mem:%d", s.next)
	s.items = append(s.items, e)
	return e, nil
}

// DeleteExpense removes the record with the given id.
func (s *Store) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("expense %s not found", id)
}
