package flowstate

import (
	"errors"
	"sync"
	"time"
)

// stateTTL bounds how long an authorization redirect may stay in flight.
// Entries older than this are treated as unknown and pruned.
const stateTTL = 15 * time.Minute

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface.
type InMemoryRepo struct {
	mu     sync.RWMutex
	states map[string]*FlowState
}

// NewInMemoryRepo creates a new in-memory flow state repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		states: make(map[string]*FlowState),
	}
}

// Upsert stores or updates a flow state, pruning expired entries as it
// goes so abandoned logins do not accumulate.
func (r *InMemoryRepo) Upsert(state string, flowState *FlowState) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if flowState == nil {
		return errors.New("flowState cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for key, existing := range r.states {
		if time.Since(existing.CreatedAt) > stateTTL {
			delete(r.states, key)
		}
	}

	r.states[state] = &FlowState{CreatedAt: flowState.CreatedAt}
	return nil
}

// Get retrieves a flow state by state parameter. Expired states are not
// found.
func (r *InMemoryRepo) Get(state string) (*FlowState, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	flowState, exists := r.states[state]
	if !exists {
		return nil, errors.New("state not found")
	}
	if time.Since(flowState.CreatedAt) > stateTTL {
		return nil, errors.New("state expired")
	}

	return &FlowState{CreatedAt: flowState.CreatedAt}, nil
}

// Delete removes a flow state
func (r *InMemoryRepo) Delete(state string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, state)
	return nil
}
