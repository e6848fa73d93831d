package domain

import "context"

type PlaceRepository interface {
	// Write paths
	UpsertPlace(ctx context.Context, p Place) error
	// ArchivePlace hides a place from ListActivePlaces without deleting it.
	ArchivePlace(ctx context.Context, id string) error
	LogMiss(ctx context.Context, id string, status int, reason string) error

	// Read paths
	GetPlace(ctx context.Context, id string) (Place, error)
	// ListActivePlaces returns non-archived places only.
	ListActivePlaces(ctx context.Context) ([]Place, error)
}

type CatalogClient interface {
	ListPlaceIDs(ctx context.Context) ([]string, error)
	GetPlace(ctx context.Context, id string) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// StoredPlan is a built itinerary as handed to the cache/persistence layer.
type StoredPlan struct {
	ID   string        `json:"id"`
	Plan ItineraryPlan `json:"plan"`
}
