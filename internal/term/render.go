// Package term renders the expense screen to a terminal and parses the
// interactive command language that drives it.
package term

import (
	"fmt"
	"io"
	"strings"

	"spend/internal/core"
	"spend/internal/screen"
)

// Renderer writes the current screen state to w. It is registered as
// the screen's notify callback, so every state mutation repaints.
type Renderer struct {
	w io.Writer
	s *screen.ExpenseList
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Bind attaches the renderer to a screen. Needed because the screen is
// constructed with the notify callback already in hand.
func (r *Renderer) Bind(s *screen.ExpenseList) {
	r.s = s
}

// Render repaints the whole screen: filter bar, list, total, and any
// transient prompt or alert.
func (r *Renderer) Render() {
	if r.s == nil {
		return
	}
	var b strings.Builder

	b.WriteString(filterBar(r.s.Filter()))
	b.WriteByte('\n')

	if r.s.Loading() {
		b.WriteString("loading…\n")
	}

	visible := r.s.Visible()
	if len(visible) == 0 && !r.s.Loading() {
		b.WriteString("  (no expenses)\n")
	}
	for _, e := range visible {
		fmt.Fprintf(&b, "  %s  %-24s %8s  %-14s [%s]\n",
			core.IconFor(e.Category), e.Description, e.Amount, e.Category, e.ID)
	}

	fmt.Fprintf(&b, "Total (%s): %s\n", r.s.Filter(), r.s.Total())

	if r.s.DialogOpen() {
		fmt.Fprintf(&b, "New expense — amount: %q  desc: %q  category: %s\n",
			r.s.Amount(), r.s.Description(), r.s.Category())
		b.WriteString("  (amount <n> | desc <text> | cat <name> | save | cancel)\n")
	}

	if id := r.s.PendingDelete(); id != "" {
		fmt.Fprintf(&b, "Delete expense [%s]? (y/n)\n", id)
	}

	if msg := r.s.Alert(); msg != "" {
		fmt.Fprintf(&b, "!! %s\n", msg)
	}

	fmt.Fprintln(r.w, b.String())
}

func filterBar(active core.Filter) string {
	parts := make([]string, 0, 8)
	for _, f := range core.Filters() {
		if f == active {
			parts = append(parts, "["+string(f)+"]")
		} else {
			parts = append(parts, string(f))
		}
	}
	return strings.Join(parts, "  ")
}
