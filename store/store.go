// Package store provides Provider, the owner of one reducer and the
// state it produces. Views read the state and dispatch actions through
// it instead of touching the state directly.
package store

import (
	"errors"
	"sync"
)

type (
	// Reducer maps the current state and an action to the next state.
	// It must not mutate its input.
	Reducer[S, A any] func(state S, action A) (S, error)

	// Listener observes a completed transition.
	Listener[S, A any] func(action A, prev, next S) error

	Provider[S, A any] struct {
		mu        sync.Mutex
		state     S
		reducer   Reducer[S, A]
		listeners []Listener[S, A]
	}
)

func New[S, A any](reducer Reducer[S, A], initial S) *Provider[S, A] {
	return &Provider[S, A]{
		state:   initial,
		reducer: reducer,
	}
}

func (q *Provider[S, A]) State() S {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Subscribe registers l to run after every successful Dispatch.
func (q *Provider[S, A]) Subscribe(l Listener[S, A]) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, l)
}

// Dispatch applies action and swaps in the resulting state. A reducer
// error leaves the state untouched and is returned as is; listener
// errors are joined after the state has changed.
func (q *Provider[S, A]) Dispatch(action A) (S, error) {
	q.mu.Lock()
	prev := q.state
	next, err := q.reducer(prev, action)
	if err != nil {
		q.mu.Unlock()
		return prev, err
	}
	q.state = next
	listeners := make([]Listener[S, A], len(q.listeners))
	copy(listeners, q.listeners)
	q.mu.Unlock()
	var errs []error
	for _, listener := range listeners {
		if err := listener(action, prev, next); err != nil {
			errs = append(errs, err)
		}
	}
	return next, errors.Join(errs...)
}

// DispatchAll applies actions in order and stops at the first reducer
// error.
func (q *Provider[S, A]) DispatchAll(actions ...A) (S, error) {
	state := q.State()
	for _, action := range actions {
		var err error
		if state, err = q.Dispatch(action); err != nil {
			return state, err
		}
	}
	return state, nil
}
