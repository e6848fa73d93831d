package app_test

import (
	"context"
	"fmt"
	"sync"

	"trip_planner/internal/domain"
)

// ---- fakes ----

type miss struct {
	id     string
	status int
	reason string
}

type fakeRepo struct {
	mu       sync.Mutex
	places   []domain.Place
	upserted []domain.Place
	archived []string
	misses   []miss
	listErr  error
}

func (f *fakeRepo) UpsertPlace(ctx context.Context, p domain.Place) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, p)
	return nil
}
func (f *fakeRepo) ArchivePlace(ctx context.Context, id string) error {
	f.archived = append(f.archived, id)
	return nil
}
func (f *fakeRepo) LogMiss(ctx context.Context, id string, status int, reason string) error {
	f.misses = append(f.misses, miss{id, status, reason})
	return nil
}
func (f *fakeRepo) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	for _, p := range f.places {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Place{}, fmt.Errorf("place %s: %w", id, domain.ErrNotFound)
}
func (f *fakeRepo) ListActivePlaces(ctx context.Context) ([]domain.Place, error) {
	return f.places, f.listErr
}

type fakeCache struct {
	store map[string]any
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.ItineraryPlan:
		*d = v.(domain.ItineraryPlan)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	c.sets++
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeCatalog struct {
	payloads map[string]map[string]any
	errs     map[string]error
}

func (f *fakeCatalog) ListPlaceIDs(ctx context.Context) ([]string, error) {
	var ids []string
	for id := range f.payloads {
		ids = append(ids, id)
	}
	return ids, nil
}
func (f *fakeCatalog) GetPlace(ctx context.Context, id string) (map[string]any, error) {
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	return f.payloads[id], nil
}

func pf(f float64) *float64 { return &f }
