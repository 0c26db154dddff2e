package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"spend/internal/core"
	applog "spend/internal/log"
)

func quietLogger() *applog.Logger {
	return applog.New(applog.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func newClient(t *testing.T, url string) *Client {
	t.Helper()
	c, err := New(url, 5*time.Second, quietLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, bad := range []string{"ftp://example.com", "not a url at all\x00"} {
		if _, err := New(bad, 0, quietLogger()); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestListExpenses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/expenses" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `[
			{"id":"1","amount":12.5,"description":"Lunch","category":"Food","date":"2025-06-01T12:00:00Z"},
			{"id":"2","amount":40,"description":"Electricity","category":"Bills","date":"2025-06-02T09:00:00Z"}
		]`)
	}))
	defer srv.Close()

	items, err := newClient(t, srv.URL).ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(items))
	}
	if items[0].ID != "1" || items[0].Amount.Cents != 1250 || items[0].Category != core.CategoryFood {
		t.Fatalf("first record decoded wrong: %+v", items[0])
	}
	if items[1].Amount.Cents != 4000 {
		t.Fatalf("expected 4000 cents, got %d", items[1].Amount.Cents)
	}
}

func TestListExpensesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).ListExpenses(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", statusErr.StatusCode)
	}
}

func TestCreateExpenseBodyShape(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/expenses" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"srv-7","amount":20,"description":"Coffee","category":"Food","date":"2025-06-01T12:00:00Z"}`)
	}))
	defer srv.Close()

	sent := core.Expense{
		Amount:      core.Money{Cents: 2000},
		Description: "Coffee",
		Category:    core.CategoryFood,
		Date:        core.NewDate(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	created, err := newClient(t, srv.URL).CreateExpense(context.Background(), sent)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "srv-7" {
		t.Fatalf("expected server id, got %q", created.ID)
	}

	// amount must be a bare JSON number, not a string
	if !strings.Contains(string(body), `"amount":20`) {
		t.Fatalf("amount not sent as number: %s", body)
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("body not valid JSON: %v", err)
	}
	if _, hasID := payload["id"]; hasID {
		t.Fatalf("client must not send an id: %s", body)
	}
	if payload["description"] != "Coffee" || payload["category"] != "Food" {
		t.Fatalf("unexpected body: %s", body)
	}
	if _, err := time.Parse(time.RFC3339, payload["date"].(string)); err != nil {
		t.Fatalf("date not RFC 3339: %v", err)
	}
}

func TestCreateExpenseStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newClient(t, srv.URL).CreateExpense(context.Background(), core.Expense{
		Amount: core.Money{Cents: 100}, Description: "x", Category: core.CategoryOther,
	})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
}

func TestDeleteExpense(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newClient(t, srv.URL).DeleteExpense(context.Background(), "42"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/expenses/42" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestDeleteExpenseStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	err := newClient(t, srv.URL).DeleteExpense(context.Background(), "42")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c := newClient(t, srv.URL)
	if _, err := c.ListExpenses(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
	var statusErr *StatusError
	if _, err := c.ListExpenses(context.Background()); errors.As(err, &statusErr) {
		t.Fatalf("transport failure must not be a StatusError")
	}
}

func TestConcurrentListCollapsed(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.ListExpenses(context.Background())
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
}
