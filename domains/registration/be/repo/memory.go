package repo

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/orgsites/federation/domains/registration/be/service"
)

// MemoryRepository keeps form sessions in process memory. Sessions live
// only for the duration of a visit, so the store bridges the HTTP requests
// of a single form flow and nothing outlives the process.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]service.Session
}

// NewMemoryRepository constructs a MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[uuid.UUID]service.Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, s service.Session) (service.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[s.ID] = clone(s)
	return s, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (service.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return service.Session{}, service.ErrNotFound
	}
	return clone(s), nil
}

func (r *MemoryRepository) Update(ctx context.Context, s service.Session) (service.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return service.Session{}, service.ErrNotFound
	}
	r.byID[s.ID] = clone(s)
	return s, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return service.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// clone detaches the error map and snapshot so callers never alias stored
// state.
func clone(s service.Session) service.Session {
	s.Errors = maps.Clone(s.Errors)
	if s.Snapshot != nil {
		snap := *s.Snapshot
		s.Snapshot = &snap
	}
	return s
}

// Ensure interface compliance.
var _ service.Repository = (*MemoryRepository)(nil)
