package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
	"trip_planner/internal/itinerary"
	"trip_planner/internal/scoring"
)

// PlannerService loads places from the store and runs the engine over them.
// Built plans live in the cache under plan:{id}.
type PlannerService struct {
	repo     domain.PlaceRepository
	cache    domain.Cache
	builder  *itinerary.Builder
	workers  int
	cacheTTL time.Duration
	newID    func() string
}

func NewPlannerService(r domain.PlaceRepository, c domain.Cache, b *itinerary.Builder, workers int, ttl time.Duration) *PlannerService {
	if b == nil {
		b = itinerary.NewBuilder(nil, nil)
	}
	if workers < 1 {
		workers = 1
	}
	return &PlannerService{repo: r, cache: c, builder: b, workers: workers, cacheTTL: ttl, newID: newPlanID}
}

func planKey(id string) string { return "plan:" + id }

// Score scores a single stored place.
func (s *PlannerService) Score(ctx context.Context, placeID string, prefs domain.Preferences) (domain.ScoredPlace, error) {
	if err := ValidatePreferences(prefs); err != nil {
		return domain.ScoredPlace{}, err
	}
	p, err := s.repo.GetPlace(ctx, placeID)
	if err != nil {
		return domain.ScoredPlace{}, err
	}
	sp := s.builder.Scorer().Decorate(p, prefs)
	observability.ObserveScore(string(sp.Category), sp.Score)
	return sp, nil
}

// Explain returns the breakdown behind a stored place's score.
func (s *PlannerService) Explain(ctx context.Context, placeID string, prefs domain.Preferences) (scoring.Breakdown, error) {
	if err := ValidatePreferences(prefs); err != nil {
		return scoring.Breakdown{}, err
	}
	p, err := s.repo.GetPlace(ctx, placeID)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	return s.builder.Scorer().Explain(p, prefs), nil
}

// RankPlaces scores every active place and returns the per-category rankings.
func (s *PlannerService) RankPlaces(ctx context.Context, prefs domain.Preferences) (itinerary.Ranked, error) {
	if err := ValidatePreferences(prefs); err != nil {
		return itinerary.Ranked{}, err
	}
	scored, err := s.scoreActive(ctx, prefs)
	if err != nil {
		return itinerary.Ranked{}, err
	}
	return s.builder.Rank(scored, prefs), nil
}

// GetItinerary returns a previously built plan.
func (s *PlannerService) GetItinerary(ctx context.Context, id string) (domain.ItineraryPlan, error) {
	var plan domain.ItineraryPlan
	ok, err := s.cache.Get(ctx, planKey(id), &plan)
	if err != nil {
		return domain.ItineraryPlan{}, fmt.Errorf("load plan %s: %w", id, err)
	}
	if !ok {
		return domain.ItineraryPlan{}, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
	}
	return plan, nil
}

// scoreActive loads all non-archived places and scores them with at most
// s.workers goroutines. Output order matches the repository order.
func (s *PlannerService) scoreActive(ctx context.Context, prefs domain.Preferences) ([]domain.ScoredPlace, error) {
	places, err := s.repo.ListActivePlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}

	out := make([]domain.ScoredPlace, len(places))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	scorer := s.builder.Scorer()
	for i := range places {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = scorer.Decorate(places[i], prefs)
			observability.ObserveScore(string(out[i].Category), out[i].Score)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
