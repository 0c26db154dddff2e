package expenses

import (
	"context"

	"spend/internal/core"
)

// Ports for the remote expense collection.
type (
	// ExpenseLister returns the full collection, in server order.
	ExpenseLister interface {
		ListExpenses(ctx context.Context) ([]core.Expense, error)
	}

	// ExpenseCreator stores a new expense and returns the created
	// record carrying the server-assigned id.
	ExpenseCreator interface {
		CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error)
	}

	// ExpenseDeleter removes one expense by id.
	ExpenseDeleter interface {
		DeleteExpense(ctx context.Context, id string) error
	}

	// Service is the full collection contract the screen depends on.
	Service interface {
		ExpenseLister
		ExpenseCreator
		ExpenseDeleter
	}
)
