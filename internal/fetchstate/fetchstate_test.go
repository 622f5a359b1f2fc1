// ABOUTME: Tests for the generic fetch-state machine and its store.
// ABOUTME: Covers every transition, payload replacement, and the unknown-action panic.
package fetchstate

import (
	"context"
	"errors"
	"testing"
)

type bogus struct{}

func (bogus) isAction(int) {}

func TestReduceTransitions(t *testing.T) {
	boom := errors.New("boom")
	prior := State[int]{Items: []int{1, 2}, RequestState: Success}

	tests := []struct {
		name      string
		start     State[int]
		action    Action[int]
		wantState RequestState
		wantItems []int
		wantErr   error
	}{
		{"fetch from idle", State[int]{}, Fetch[int]{}, Loading, nil, nil},
		{"fetch keeps items", prior, Fetch[int]{}, Loading, []int{1, 2}, nil},
		{"success replaces items", prior, Succeed[int]{Payload: []int{9}}, Success, []int{9}, nil},
		{"success with empty payload", prior, Succeed[int]{Payload: []int{}}, Success, []int{}, nil},
		{"failure keeps items", prior, Fail[int]{Err: boom}, Error, []int{1, 2}, boom},
		{"success clears error", State[int]{RequestState: Error, Err: boom}, Succeed[int]{Payload: []int{3}}, Success, []int{3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.start, tt.action)
			if got.RequestState != tt.wantState {
				t.Errorf("RequestState = %v, want %v", got.RequestState, tt.wantState)
			}
			if len(got.Items) != len(tt.wantItems) {
				t.Fatalf("Items = %v, want %v", got.Items, tt.wantItems)
			}
			for i := range got.Items {
				if got.Items[i] != tt.wantItems[i] {
					t.Errorf("Items = %v, want %v", got.Items, tt.wantItems)
				}
			}
			if !errors.Is(got.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", got.Err, tt.wantErr)
			}
		})
	}
}

func TestReduceUnknownActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unknown action")
		}
	}()
	Reduce[int](State[int]{}, bogus{})
}

func TestStoreLoad(t *testing.T) {
	s := NewStore[string]()
	if s.Snapshot().RequestState != Idle {
		t.Fatalf("new store state = %v, want idle", s.Snapshot().RequestState)
	}

	var during RequestState
	got := s.Load(context.Background(), func(context.Context) ([]string, error) {
		during = s.Snapshot().RequestState
		return []string{"a", "b"}, nil
	})
	if during != Loading {
		t.Errorf("state during fetch = %v, want loading", during)
	}
	if got.RequestState != Success || len(got.Items) != 2 {
		t.Errorf("after load = %+v", got)
	}

	boom := errors.New("down")
	got = s.Load(context.Background(), func(context.Context) ([]string, error) {
		return nil, boom
	})
	if got.RequestState != Error || !errors.Is(got.Err, boom) {
		t.Errorf("after failed load = %+v", got)
	}
	if len(got.Items) != 2 {
		t.Errorf("failed load dropped prior items: %v", got.Items)
	}
}

func TestRequestStateString(t *testing.T) {
	if Success.String() != "success" || Idle.String() != "idle" {
		t.Errorf("unexpected names %q %q", Success, Idle)
	}
}
