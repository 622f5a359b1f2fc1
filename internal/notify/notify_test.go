// ABOUTME: Tests for terminal and scripted confirmation and notices.
// ABOUTME: Color output is disabled so assertions match plain text.
package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out, false, false)
			got, err := term.Confirm(context.Background(), "Delete record 3?")
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Delete record 3?") {
				t.Errorf("prompt not printed: %q", out.String())
			}
		})
	}
}

func TestTerminalAutoYes(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, true, false)
	ok, err := term.Confirm(context.Background(), "Delete?")
	if err != nil || !ok {
		t.Errorf("Confirm() = %v, %v, want true", ok, err)
	}
	if out.Len() != 0 {
		t.Errorf("auto-yes should not prompt, got %q", out.String())
	}
}

func TestTerminalConfirmCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	term := NewTerminal(strings.NewReader("y\n"), &bytes.Buffer{}, false, false)
	if _, err := term.Confirm(ctx, "Delete?"); !errors.Is(err, context.Canceled) {
		t.Errorf("Confirm() error = %v, want context.Canceled", err)
	}
}

func TestTerminalNotices(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader(""), &out, false, true)
	term.Success("Record saved")
	term.Failure("Failed to delete record", errors.New("500 Internal Server Error"))

	got := out.String()
	if !strings.Contains(got, "✓ Record saved") {
		t.Errorf("missing success line in %q", got)
	}
	if !strings.Contains(got, "✗ Failed to delete record (500 Internal Server Error)") {
		t.Errorf("missing failure line in %q", got)
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted(true, false)
	ctx := context.Background()
	for _, want := range []bool{true, false, false} {
		got, err := s.Confirm(ctx, "ok?")
		if err != nil || got != want {
			t.Errorf("Confirm() = %v, %v, want %v", got, err, want)
		}
	}
	if len(s.Prompts) != 3 {
		t.Errorf("Prompts = %v", s.Prompts)
	}
	s.Success("done")
	s.Failure("failed", nil)
	if len(s.Successes) != 1 || len(s.Failures) != 1 {
		t.Errorf("notices = %v / %v", s.Successes, s.Failures)
	}
}

func TestFixed(t *testing.T) {
	if ok, _ := Fixed(true).Confirm(context.Background(), "?"); !ok {
		t.Error("Fixed(true) declined")
	}
	if ok, _ := Fixed(false).Confirm(context.Background(), "?"); ok {
		t.Error("Fixed(false) accepted")
	}
}
