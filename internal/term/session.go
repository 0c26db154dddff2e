package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"spend/internal/core"
	"spend/internal/screen"
)

const helpText = `commands:
  filter <name|all>   show one category or everything
  add                 open the new-expense form
  amount <n>          set the pending amount
  desc <text>         set the pending description
  cat <name>          set the pending category
  save                submit the form
  cancel              close the form
  rm <id>             delete an expense (asks to confirm)
  y / n               answer the delete prompt
  reload              refetch the list from the server
  help                this text
  quit                exit`

// Session drives one interactive screen from a line-based input.
type Session struct {
	screen *screen.ExpenseList
	out    io.Writer
}

func NewSession(s *screen.ExpenseList, out io.Writer) *Session {
	return &Session{screen: s, out: out}
}

// Run reads commands until EOF or quit. The initial load happens before
// the first prompt, matching a screen that fetches on mount.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	// Errors are already surfaced on the screen as alerts.
	_ = s.screen.Load(ctx)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := s.HandleLine(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// HandleLine executes one command. The returned bool reports a quit
// request. Remote failures come back as errors and as screen alerts;
// unknown commands only as errors.
func (s *Session) HandleLine(ctx context.Context, line string) (bool, error) {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, helpText)
		return false, nil
	case "reload", "list":
		return false, s.screen.Load(ctx)
	case "filter":
		f, ok := core.ParseFilter(arg)
		if !ok {
			return false, fmt.Errorf("unknown filter %q", arg)
		}
		s.screen.SetFilter(f)
		return false, nil
	case "add":
		s.screen.OpenDialog()
		return false, nil
	case "amount":
		s.screen.SetAmount(arg)
		return false, nil
	case "desc":
		s.screen.SetDescription(arg)
		return false, nil
	case "cat":
		c, ok := core.ParseCategory(arg)
		if !ok {
			return false, fmt.Errorf("unknown category %q", arg)
		}
		s.screen.SetCategory(c)
		return false, nil
	case "save":
		return false, s.screen.Submit(ctx)
	case "cancel":
		s.screen.CloseDialog()
		return false, nil
	case "rm":
		if arg == "" {
			return false, fmt.Errorf("rm needs an id")
		}
		s.screen.RequestDelete(arg)
		return false, nil
	case "y", "yes":
		return false, s.screen.ConfirmDelete(ctx)
	case "n", "no":
		s.screen.CancelDelete()
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func splitCommand(line string) (cmd, arg string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}
