package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"coinloop/internal/observability"
)

// userGates serializes commands per user while letting different users
// proceed in parallel. Each user gets a weight-one semaphore that lives
// only while someone holds or waits for it.
type userGates struct {
	mu    sync.Mutex
	gates map[string]*userGate
}

type userGate struct {
	sem  *semaphore.Weighted
	refs int
}

func newUserGates() *userGates {
	return &userGates{gates: make(map[string]*userGate)}
}

// acquire blocks until the caller is the only command running for userID
// or ctx is done. The returned func must be called exactly once.
func (g *userGates) acquire(ctx context.Context, userID string) (func(), error) {
	g.mu.Lock()
	gt, ok := g.gates[userID]
	if !ok {
		gt = &userGate{sem: semaphore.NewWeighted(1)}
		g.gates[userID] = gt
		observability.ActiveUserGates.Inc()
	}
	gt.refs++
	g.mu.Unlock()

	if err := gt.sem.Acquire(ctx, 1); err != nil {
		g.drop(userID, gt)
		return nil, err
	}
	return func() {
		gt.sem.Release(1)
		g.drop(userID, gt)
	}, nil
}

func (g *userGates) drop(userID string, gt *userGate) {
	g.mu.Lock()
	defer g.mu.Unlock()
	gt.refs--
	if gt.refs == 0 {
		delete(g.gates, userID)
		observability.ActiveUserGates.Dec()
	}
}

// size reports how many users currently have a gate.
func (g *userGates) size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.gates)
}
