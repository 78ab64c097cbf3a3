// Package system runs the simulation: a bounded queue of pickup
// requests, a stepper that advances the fleet every period, and a
// consumer that assigns requests to elevators, retrying until each one
// finds a ride. No request is ever dropped; a request nobody can serve
// yet waits for the fleet to change shape.
package system

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"elevatordispatch/dispatch"
	"elevatordispatch/elevator"
	"elevatordispatch/fleet"
)

// ErrOverloaded is returned by Submit when the request queue is full.
// Submit never blocks; callers decide whether to retry.
var ErrOverloaded = errors.New("system: request queue full")

// System ties the fleet store and the request queue together and owns
// the two long-running loops.
type System struct {
	store    *fleet.Store
	requests chan dispatch.Request
	pending  atomic.Int32
	logger   *log.Logger
}

// New builds a system with capacity idle elevators at floor 0 and a
// request queue bounded to the same capacity.
func New(capacity int) *System {
	return &System{
		store:    fleet.New(capacity),
		requests: make(chan dispatch.Request, capacity),
		logger:   log.New(os.Stderr, "[system] ", log.LstdFlags),
	}
}

// Query returns a consistent snapshot of the fleet. Safe to call from
// any goroutine at any time.
func (s *System) Query() []elevator.Elevator {
	return s.store.Snapshot()
}

// Submit enqueues a pickup request. When the queue is at capacity it
// returns ErrOverloaded instead of blocking.
func (s *System) Submit(req dispatch.Request) error {
	s.pending.Add(1)
	select {
	case s.requests <- req:
		return nil
	default:
		s.pending.Add(-1)
		return ErrOverloaded
	}
}

// Backlog returns the number of submitted requests not yet assigned to
// an elevator, including one the consumer may currently be holding.
func (s *System) Backlog() int {
	if n := int(s.pending.Load()); n > 0 {
		return n
	}
	return 0
}

// Quiescent reports whether the backlog is empty and every elevator is
// idle.
func (s *System) Quiescent() bool {
	if s.Backlog() != 0 {
		return false
	}
	for _, e := range s.Query() {
		if !e.Free() {
			return false
		}
	}
	return true
}

// Run starts the stepper and the assignment consumer and blocks until
// ctx is cancelled. Period is the simulated time unit: every period the
// whole fleet advances one step. Commits in flight at cancellation
// complete; Run returns once both loops have stopped.
func (s *System) Run(ctx context.Context, period time.Duration) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.stepper(ctx, period)
	}()
	go func() {
		defer wg.Done()
		s.consumer(ctx)
	}()
	wg.Wait()
}

func (s *System) stepper(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.store.Step()
		}
	}
}

func (s *System) consumer(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-s.requests:
			s.assign(ctx, req)
			s.pending.Add(-1)
		}
	}
}

// assign retries until some elevator can take the request, sleeping on
// the store's change signal between attempts instead of polling. The
// change channel is captured before each attempt so a commit landing
// between a failed attempt and the wait still wakes us.
func (s *System) assign(ctx context.Context, req dispatch.Request) {
	start := time.Now()
	attempts := 0
	for {
		changed := s.store.Changed()
		if _, ok := s.store.TryAssign(req); ok {
			if attempts > 0 {
				s.logger.Printf("request %v assigned after waiting %v",
					req, time.Since(start).Round(time.Millisecond))
			}
			return
		}
		attempts++
		if attempts == 1 {
			s.logger.Printf("no elevator on way for %v, waiting for the fleet to move", req)
		}
		select {
		case <-ctx.Done():
			return
		case <-changed:
		}
	}
}
