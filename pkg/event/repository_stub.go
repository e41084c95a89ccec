package event

import (
	"context"
	"sync"
)

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	mu      sync.Mutex
	events  []Event
	loadErr error
	saveErr error
	saves   int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{events: []Event{}}
}

func (r *RepositoryStub) Load(ctx context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *RepositoryStub) Save(ctx context.Context, events []Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.events = make([]Event, len(events))
	copy(r.events, events)
	return nil
}

func (r *RepositoryStub) FailLoadWith(err error) { r.loadErr = err }
func (r *RepositoryStub) FailSaveWith(err error) { r.saveErr = err }

func (r *RepositoryStub) Stored() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *RepositoryStub) SaveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
