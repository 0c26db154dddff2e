package term

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"spend/internal/core"
	"spend/internal/expenses/memory"
	applog "spend/internal/log"
	"spend/internal/screen"
)

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func newSession(t *testing.T, seed []core.Expense) (*Session, *screen.ExpenseList, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	renderer := NewRenderer(out)
	s := screen.New(memory.NewSeeded(seed), renderer.Render, screen.WithLogger(quietLogger()))
	renderer.Bind(s)
	return NewSession(s, out), s, out
}

func run(t *testing.T, sess *Session, lines ...string) {
	t.Helper()
	for _, line := range lines {
		if _, err := sess.HandleLine(context.Background(), line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
}

func TestAddFlow(t *testing.T) {
	sess, s, _ := newSession(t, nil)
	run(t, sess,
		"add",
		"amount 12.50",
		"desc Lunch at the corner place",
		"cat food",
		"save",
	)
	view := s.Visible()
	if len(view) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(view))
	}
	if view[0].Description != "Lunch at the corner place" || view[0].Amount.Cents != 1250 {
		t.Fatalf("unexpected record %+v", view[0])
	}
	if s.DialogOpen() {
		t.Fatalf("dialog should close after save")
	}
}

func TestDeleteFlowConfirmAndCancel(t *testing.T) {
	seed := []core.Expense{
		{ID: "a", Amount: core.Money{Cents: 100}, Description: "one", Category: core.CategoryFood},
		{ID: "b", Amount: core.Money{Cents: 200}, Description: "two", Category: core.CategoryBills},
	}
	sess, s, _ := newSession(t, seed)
	run(t, sess, "reload")

	run(t, sess, "rm a", "n")
	if len(s.Visible()) != 2 {
		t.Fatalf("cancel must not delete")
	}

	run(t, sess, "rm a", "y")
	view := s.Visible()
	if len(view) != 1 || view[0].ID != "b" {
		t.Fatalf("expected only b, got %v", view)
	}
}

func TestFilterCommand(t *testing.T) {
	sess, s, _ := newSession(t, []core.Expense{
		{ID: "a", Amount: core.Money{Cents: 1250}, Category: core.CategoryFood},
		{ID: "b", Amount: core.Money{Cents: 4000}, Category: core.CategoryBills},
	})
	run(t, sess, "reload", "filter food")
	if len(s.Visible()) != 1 {
		t.Fatalf("expected 1 visible, got %d", len(s.Visible()))
	}
	run(t, sess, "filter all")
	if len(s.Visible()) != 2 {
		t.Fatalf("expected 2 visible, got %d", len(s.Visible()))
	}

	if _, err := sess.HandleLine(context.Background(), "filter snacks"); err == nil {
		t.Fatalf("expected error for unknown filter")
	}
}

func TestUnknownCommand(t *testing.T) {
	sess, _, _ := newSession(t, nil)
	if _, err := sess.HandleLine(context.Background(), "frobnicate"); err == nil {
		t.Fatalf("expected error")
	}
	if quit, err := sess.HandleLine(context.Background(), ""); quit || err != nil {
		t.Fatalf("blank line must be a no-op")
	}
	if quit, _ := sess.HandleLine(context.Background(), "quit"); !quit {
		t.Fatalf("quit not honored")
	}
}

func TestRenderShowsListTotalAndFilterBar(t *testing.T) {
	sess, _, out := newSession(t, []core.Expense{
		{ID: "a", Amount: core.Money{Cents: 1250}, Description: "Lunch", Category: core.CategoryFood},
	})
	run(t, sess, "reload")

	got := out.String()
	for _, want := range []string{"[All]", "Lunch", "12.50", "Total (All): 12.50", core.IconFor(core.CategoryFood)} {
		if !strings.Contains(got, want) {
			t.Fatalf("render missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderShowsDeletePrompt(t *testing.T) {
	sess, _, out := newSession(t, []core.Expense{
		{ID: "a", Amount: core.Money{Cents: 100}, Description: "one", Category: core.CategoryFood},
	})
	run(t, sess, "reload", "rm a")
	if !strings.Contains(out.String(), "Delete expense [a]? (y/n)") {
		t.Fatalf("missing delete prompt in:\n%s", out.String())
	}
}
