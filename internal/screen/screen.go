// Package screen holds the expense-list view-model. It owns the only
// mutable client state and mediates every user action through the
// expense ports; rendering is decoupled via a notify callback fired
// after every state mutation.
package screen

import (
	"context"
	"errors"
	"time"

	"spend/internal/core"
	"spend/internal/expenses"
	applog "spend/internal/log"
)

// ErrBusy is returned when an action is ignored because another remote
// call is still in flight. The triggering control is effectively
// disabled while loading.
var ErrBusy = errors.New("request already in flight")

// ExpenseList is the single-screen view-model: the list, the pending
// add-form inputs, the active filter, and the transient flags that gate
// the loading indicator and the delete confirmation.
type ExpenseList struct {
	service expenses.Service
	logger  *applog.Logger
	now     func() time.Time
	notify  func()

	items    []core.Expense
	filter   core.Filter
	loading  bool
	alertMsg string

	dialogOpen  bool
	amount      string
	description string
	category    core.Category

	pendingDelete string
}

// Option configures an ExpenseList.
type Option func(*ExpenseList)

// WithClock overrides the submission timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *ExpenseList) { l.now = now }
}

// WithLogger sets the structured logger.
func WithLogger(logger *applog.Logger) Option {
	return func(l *ExpenseList) { l.logger = logger.WithComponent(applog.ComponentScreen) }
}

// New builds the view-model. notify is invoked after every state
// mutation; pass nil to opt out (tests that only inspect state).
func New(service expenses.Service, notify func(), opts ...Option) *ExpenseList {
	l := &ExpenseList{
		service:  service,
		notify:   notify,
		now:      time.Now,
		logger:   applog.New(applog.DefaultConfig()).WithComponent(applog.ComponentScreen),
		filter:   core.FilterAll,
		category: core.CategoryFood,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ExpenseList) changed() {
	if l.notify != nil {
		l.notify()
	}
}

// Load replaces the whole list with the remote collection. On failure
// the prior list is kept and an alert is raised. A call arriving while
// another request is in flight is a no-op.
func (l *ExpenseList) Load(ctx context.Context) error {
	if l.loading {
		return ErrBusy
	}
	l.loading = true
	l.alertMsg = ""
	l.changed()

	items, err := l.service.ListExpenses(ctx)

	l.loading = false
	if err != nil {
		l.logger.ErrorContext(ctx, "Load failed",
			applog.FieldOperation, applog.OpList, applog.FieldError, err)
		l.alertMsg = "Failed to load expenses"
		l.changed()
		return err
	}
	l.items = items
	l.changed()
	return nil
}

// Submit validates the pending inputs and creates the expense. On
// validation failure no network call happens and the inputs stay put.
// On success the server's record is prepended, the inputs reset, and
// the dialog closes.
func (l *ExpenseList) Submit(ctx context.Context) error {
	if l.loading {
		return ErrBusy
	}

	pending := core.NewExpense{
		Amount:      l.amount,
		Description: l.description,
		Category:    l.category,
	}
	e, err := pending.Normalized(l.now())
	if err != nil {
		l.logger.WarnContext(ctx, "Submission rejected",
			applog.FieldOperation, applog.OpValidate, applog.FieldError, err)
		l.alertMsg = "Please enter a valid amount and description"
		l.changed()
		return err
	}

	l.loading = true
	l.alertMsg = ""
	l.changed()

	created, err := l.service.CreateExpense(ctx, e)

	l.loading = false
	if err != nil {
		l.logger.ErrorContext(ctx, "Create failed",
			applog.FieldOperation, applog.OpCreate, applog.FieldError, err)
		l.alertMsg = "Failed to add expense"
		l.changed()
		return err
	}

	// Client-added records go to the front; the server decides the
	// order of everything fetched by Load.
	l.items = append([]core.Expense{created}, l.items...)
	l.amount = ""
	l.description = ""
	l.category = core.CategoryFood
	l.dialogOpen = false
	l.changed()
	return nil
}

// RequestDelete arms the two-step delete for the given id. Nothing is
// sent until ConfirmDelete.
func (l *ExpenseList) RequestDelete(id string) {
	l.pendingDelete = id
	l.changed()
}

// CancelDelete disarms a pending delete.
func (l *ExpenseList) CancelDelete() {
	l.pendingDelete = ""
	l.changed()
}

// ConfirmDelete issues the delete for the armed id and, on success,
// removes exactly the matching record. On failure the list is left
// untouched.
func (l *ExpenseList) ConfirmDelete(ctx context.Context) error {
	if l.pendingDelete == "" {
		return nil
	}
	if l.loading {
		return ErrBusy
	}
	id := l.pendingDelete

	l.loading = true
	l.alertMsg = ""
	l.changed()

	err := l.service.DeleteExpense(ctx, id)

	l.loading = false
	l.pendingDelete = ""
	if err != nil {
		l.logger.ErrorContext(ctx, "Delete failed",
			applog.FieldOperation, applog.OpDelete, applog.FieldExpenseID, id, applog.FieldError, err)
		l.alertMsg = "Failed to delete expense"
		l.changed()
		return err
	}

	kept := make([]core.Expense, 0, len(l.items))
	for _, e := range l.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.items = kept
	l.changed()
	return nil
}

// SetFilter switches the active category filter.
func (l *ExpenseList) SetFilter(f core.Filter) {
	l.filter = f
	l.changed()
}

// OpenDialog shows the add form.
func (l *ExpenseList) OpenDialog() {
	l.dialogOpen = true
	l.alertMsg = ""
	l.changed()
}

// CloseDialog hides the add form, keeping any typed input.
func (l *ExpenseList) CloseDialog() {
	l.dialogOpen = false
	l.changed()
}

// SetAmount records the pending amount text.
func (l *ExpenseList) SetAmount(s string) {
	l.amount = s
	l.changed()
}

// SetDescription records the pending description text.
func (l *ExpenseList) SetDescription(s string) {
	l.description = s
	l.changed()
}

// SetCategory records the pending category selection.
func (l *ExpenseList) SetCategory(c core.Category) {
	l.category = c
	l.changed()
}

// ClearAlert dismisses the current alert.
func (l *ExpenseList) ClearAlert() {
	l.alertMsg = ""
	l.changed()
}

// Visible is the filtered view of the list under the active filter.
func (l *ExpenseList) Visible() []core.Expense {
	return core.Filtered(l.items, l.filter)
}

// Total sums the amounts of the visible records.
func (l *ExpenseList) Total() core.Money {
	return core.Total(l.items, l.filter)
}

// Filter returns the active filter.
func (l *ExpenseList) Filter() core.Filter { return l.filter }

// Loading reports whether a remote call is in flight.
func (l *ExpenseList) Loading() bool { return l.loading }

// Alert returns the current alert message, empty when none.
func (l *ExpenseList) Alert() string { return l.alertMsg }

// DialogOpen reports whether the add form is showing.
func (l *ExpenseList) DialogOpen() bool { return l.dialogOpen }

// PendingDelete returns the id armed for deletion, empty when none.
func (l *ExpenseList) PendingDelete() string { return l.pendingDelete }

// Amount returns the pending amount text.
func (l *ExpenseList) Amount() string { return l.amount }

// Description returns the pending description text.
func (l *ExpenseList) Description() string { return l.description }

// Category returns the pending category selection.
func (l *ExpenseList) Category() core.Category { return l.category }
