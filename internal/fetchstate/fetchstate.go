// ABOUTME: Generic fetch-state machine shared by every list view.
// ABOUTME: Tracks idle/loading/success/error and the last successfully fetched list.
package fetchstate

import (
	"context"
	"fmt"
	"sync"
)

// RequestState is the lifecycle position of a list fetch.
type RequestState int

const (
	Idle RequestState = iota
	Loading
	Success
	Error
)

func (s RequestState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("RequestState(%d)", int(s))
	}
}

// State is a fetched list plus where its last request stands.
type State[T any] struct {
	Items        []T
	RequestState RequestState
	Err          error
}

// Action is one of Fetch, Succeed, or Fail.
type Action[T any] interface {
	isAction(T)
}

// Fetch marks a request as started.
type Fetch[T any] struct{}

// Succeed delivers a fresh payload.
type Succeed[T any] struct {
	Payload []T
}

// Fail records a failed request.
type Fail[T any] struct {
	Err error
}

func (Fetch[T]) isAction(T)   {}
func (Succeed[T]) isAction(T) {}
func (Fail[T]) isAction(T)    {}

// Reduce applies one action. Fetch keeps the current items, Succeed replaces
// them wholesale, and Fail keeps the prior items alongside the error.
// Any other action is a programming error and panics.
func Reduce[T any](s State[T], a Action[T]) State[T] {
	switch a := a.(type) {
	case Fetch[T]:
		s.RequestState = Loading
		return s
	case Succeed[T]:
		return State[T]{Items: a.Payload, RequestState: Success}
	case Fail[T]:
		s.RequestState = Error
		s.Err = a.Err
		return s
	default:
		panic(fmt.Sprintf("fetchstate: unknown action %T", a))
	}
}

// Store holds one State behind a mutex.
type Store[T any] struct {
	mu    sync.Mutex
	state State[T]
}

// NewStore returns an idle store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Dispatch reduces a into the store and returns the new state.
func (s *Store[T]) Dispatch(a Action[T]) State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// Snapshot returns the current state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Load runs fetch, dispatching Fetch before and Succeed or Fail after.
// Overlapping loads are not cancelled; whichever response lands last wins.
func (s *Store[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) State[T] {
	s.Dispatch(Fetch[T]{})
	items, err := fetch(ctx)
	if err != nil {
		return s.Dispatch(Fail[T]{Err: err})
	}
	return s.Dispatch(Succeed[T]{Payload: items})
}
