// ABOUTME: Confirmation prompts and success/failure notices for user-facing surfaces.
// ABOUTME: Terminal writes colored lines; Scripted answers from a queue for tests.
package notify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Notifier reports the outcome of an action.
type Notifier interface {
	Success(msg string)
	Failure(msg string, err error)
}

// Terminal prompts on in and prints to out.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	autoYes bool
	verbose bool
}

// NewTerminal builds a terminal notifier. With autoYes every confirmation
// passes without reading input. verbose appends the underlying error to failures.
func NewTerminal(in io.Reader, out io.Writer, autoYes, verbose bool) *Terminal {
	return &Terminal{
		in:      bufio.NewReader(in),
		out:     out,
		autoYes: autoYes,
		verbose: verbose,
	}
}

// Confirm prints prompt and accepts y or yes.
func (t *Terminal) Confirm(ctx context.Context, prompt string) (bool, error) {
	if t.autoYes {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, _ = fmt.Fprintf(t.out, "%s %s ", color.YellowString("?"), prompt)
	_, _ = fmt.Fprint(t.out, color.New(color.Faint).Sprint("[y/N] "))

	line, err := t.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Success prints a green check line.
func (t *Terminal) Success(msg string) {
	_, _ = fmt.Fprintln(t.out, color.GreenString("✓ %s", msg))
}

// Failure prints a red cross line.
func (t *Terminal) Failure(msg string, err error) {
	line := color.RedString("✗ %s", msg)
	if t.verbose && err != nil {
		line += color.New(color.Faint).Sprintf(" (%v)", err)
	}
	_, _ = fmt.Fprintln(t.out, line)
}

// Scripted answers confirmations from a fixed list and records notices.
type Scripted struct {
	mu        sync.Mutex
	answers   []bool
	Prompts   []string
	Successes []string
	Failures  []string
}

// NewScripted answers confirmations in order; once exhausted it declines.
func NewScripted(answers ...bool) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) Confirm(_ context.Context, prompt string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prompts = append(s.Prompts, prompt)
	if len(s.answers) == 0 {
		return false, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *Scripted) Success(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Successes = append(s.Successes, msg)
}

func (s *Scripted) Failure(msg string, _ error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failures = append(s.Failures, msg)
}

// Fixed is a Confirmer that always gives the same answer.
type Fixed bool

func (f Fixed) Confirm(context.Context, string) (bool, error) {
	return bool(f), nil
}

var (
	_ Confirmer = Fixed(false)
	_ Confirmer = (*Terminal)(nil)
	_ Notifier  = (*Terminal)(nil)
	_ Confirmer = (*Scripted)(nil)
	_ Notifier  = (*Scripted)(nil)
)
