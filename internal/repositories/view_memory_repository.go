package repositories

import (
	"fmt"
	"sync"
	"time"

	"catalogview/internal/models"

	"github.com/google/uuid"
)

// MemoryViewRepository is an in-memory implementation of ViewRepository.
type MemoryViewRepository struct {
	views map[string]models.View
	mu    sync.RWMutex
}

// NewMemoryViewRepository creates a new instance of MemoryViewRepository.
func NewMemoryViewRepository() *MemoryViewRepository {
	return &MemoryViewRepository{
		views: make(map[string]models.View),
	}
}

// Create stores a new view, assigning an ID when none is set.
func (r *MemoryViewRepository) Create(view *models.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if view.ID == "" {
		view.ID = uuid.New().String()
	}
	if _, ok := r.views[view.ID]; ok {
		return fmt.Errorf("view with ID %s already exists", view.ID)
	}
	now := time.Now()
	if view.CreatedAt.IsZero() {
		view.CreatedAt = now
	}
	view.LastSeenAt = now
	r.views[view.ID] = *view
	return nil
}

// GetByID returns a copy of the view.
func (r *MemoryViewRepository) GetByID(id string) (*models.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	view, ok := r.views[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	return &view, nil
}

// Update applies fn to the stored view and marks it as seen. If fn fails nothing is stored.
func (r *MemoryViewRepository) Update(id string, fn func(view *models.View) error) (*models.View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view, ok := r.views[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	if err := fn(&view); err != nil {
		return nil, err
	}
	view.LastSeenAt = time.Now()
	r.views[id] = view
	return &view, nil
}

// Delete removes a view by its ID.
func (r *MemoryViewRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.views[id]; !ok {
		return fmt.Errorf("%w: %s", ErrViewNotFound, id)
	}
	delete(r.views, id)
	return nil
}

// DeleteIdle removes every view last seen before cutoff.
func (r *MemoryViewRepository) DeleteIdle(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, view := range r.views {
		if view.LastSeenAt.Before(cutoff) {
			delete(r.views, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live views.
func (r *MemoryViewRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.views)
}
