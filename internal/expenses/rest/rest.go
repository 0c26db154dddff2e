// Package rest implements the expense ports against the remote REST
// collection endpoint:
//
//	GET    /expenses      -> full collection
//	POST   /expenses      -> created record with server-assigned id
//	DELETE /expenses/{id} -> status only
//
// Any non-2xx status is treated uniformly as failure; response bodies of
// failed calls are not inspected for structured detail.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"spend/internal/core"
	applog "spend/internal/log"
)

// StatusError reports a non-2xx response. All callers treat it the same
// as a transport failure; the type exists so logs can tell them apart.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  *applog.Logger

	// group collapses concurrent duplicate list calls, so a double-tap
	// refresh issues one GET instead of two.
	group singleflight.Group
}

// New builds a client for the given base URL. A zero timeout means no
// timeout on outstanding requests.
func New(baseURL string, timeout time.Duration, logger *applog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.WithComponent(applog.ComponentREST),
	}, nil
}

// ListExpenses fetches the full collection in server order.
func (c *Client) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	v, err, shared := c.group.Do("list", func() (any, error) {
		return c.listExpenses(ctx)
	})
	if shared {
		c.logger.DebugContext(ctx, "Duplicate list call collapsed", applog.FieldOperation, applog.OpList)
	}
	if err != nil {
		return nil, err
	}
	return v.([]core.Expense), nil
}

func (c *Client) listExpenses(ctx context.Context) ([]core.Expense, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/expenses", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", applog.OpList, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "List request failed",
			applog.FieldOperation, applog.OpList, applog.FieldError, err)
		return nil, fmt.Errorf("%s: %w", applog.OpList, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.ErrorContext(ctx, "List returned non-success status",
			applog.FieldOperation, applog.OpList, applog.FieldStatusCode, resp.StatusCode)
		return nil, &StatusError{Op: applog.OpList, StatusCode: resp.StatusCode}
	}

	var items []core.Expense
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", applog.OpList, err)
	}

	c.logger.InfoContext(ctx, "Listed expenses",
		applog.FieldOperation, applog.OpList,
		applog.FieldCount, len(items),
		applog.FieldDuration, time.Since(start).Milliseconds())
	return items, nil
}

// CreateExpense posts the expense and returns the record the server
// stored, id included. The submitted id field is always empty.
func (c *Client) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	body, err := json.Marshal(createRequest{
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
	})
	if err != nil {
		return core.Expense{}, fmt.Errorf("%s: encode request: %w", applog.OpCreate, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/expenses", bytes.NewReader(body))
	if err != nil {
		return core.Expense{}, fmt.Errorf("%s: %w", applog.OpCreate, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Create request failed",
			applog.FieldOperation, applog.OpCreate, applog.FieldError, err)
		return core.Expense{}, fmt.Errorf("%s: %w", applog.OpCreate, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.ErrorContext(ctx, "Create returned non-success status",
			applog.FieldOperation, applog.OpCreate, applog.FieldStatusCode, resp.StatusCode)
		return core.Expense{}, &StatusError{Op: applog.OpCreate, StatusCode: resp.StatusCode}
	}

	var created core.Expense
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return core.Expense{}, fmt.Errorf("%s: decode response: %w", applog.OpCreate, err)
	}

	c.logger.InfoContext(ctx, "Created expense",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldExpenseID, created.ID,
		applog.FieldAmountCents, created.Amount.Cents,
		applog.FieldCategory, string(created.Category))
	return created, nil
}

// DeleteExpense removes one expense by id. Only the status matters; any
// response body is discarded.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/expenses/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", applog.OpDelete, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Delete request failed",
			applog.FieldOperation, applog.OpDelete, applog.FieldExpenseID, id, applog.FieldError, err)
		return fmt.Errorf("%s: %w", applog.OpDelete, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.ErrorContext(ctx, "Delete returned non-success status",
			applog.FieldOperation, applog.OpDelete, applog.FieldExpenseID, id,
			applog.FieldStatusCode, resp.StatusCode)
		return &StatusError{Op: applog.OpDelete, StatusCode: resp.StatusCode}
	}

	c.logger.InfoContext(ctx, "Deleted expense",
		applog.FieldOperation, applog.OpDelete, applog.FieldExpenseID, id)
	return nil
}

// createRequest is the POST body shape: id is omitted, the server
// assigns it.
type createRequest struct {
	Amount      core.Money    `json:"amount"`
	Description string        `json:"description"`
	Category    core.Category `json:"category"`
	Date        core.Date     `json:"date"`
}
