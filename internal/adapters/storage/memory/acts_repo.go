package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"pet-activity-log/internal/domain/acts"
)

type actRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]acts.Act
}

func NewActRepo() acts.Repository {
	return &actRepo{
		byID: make(map[int64]acts.Act),
	}
}

func (r *actRepo) List(ctx context.Context, limit int) ([]acts.Act, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = acts.ListLimit
	}

	out := make([]acts.Act, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	// Orden por hora desc (más reciente primero); empate por id desc
	sort.Slice(out, func(i, j int) bool {
		if out[i].Time.Equal(out[j].Time) {
			return out[i].ID > out[j].ID
		}
		return out[i].Time.After(out[j].Time)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *actRepo) GetByID(ctx context.Context, id int64) (acts.Act, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return acts.Act{}, fmt.Errorf("act %d: %w", id, acts.ErrNotFound)
	}
	return a, nil
}

func (r *actRepo) Create(ctx context.Context, a acts.Act) (acts.Act, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *actRepo) Update(ctx context.Context, a acts.Act) (acts.Act, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[a.ID]; !ok {
		return acts.Act{}, fmt.Errorf("act %d: %w", a.ID, acts.ErrNotFound)
	}
	r.byID[a.ID] = a
	return a, nil
}

func (r *actRepo) Delete(ctx context.Context, id int64) (acts.Act, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return acts.Act{}, fmt.Errorf("act %d: %w", id, acts.ErrNotFound)
	}
	delete(r.byID, id)
	return a, nil
}
