package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"trip_planner/internal/adapters/observability"
	"trip_planner/internal/domain"
	"trip_planner/internal/itinerary"
)

func newPlanID() string { return uuid.NewString() }

// BuildItinerary scores all active places, assembles a plan and caches it.
func (s *PlannerService) BuildItinerary(ctx context.Context, prefs domain.Preferences) (domain.StoredPlan, error) {
	start := time.Now()
	sp, err := s.buildItinerary(ctx, prefs)
	observability.ObserveItinerary("build", err, time.Since(start))
	return sp, err
}

func (s *PlannerService) buildItinerary(ctx context.Context, prefs domain.Preferences) (domain.StoredPlan, error) {
	if err := ValidatePreferences(prefs); err != nil {
		return domain.StoredPlan{}, err
	}
	scored, err := s.scoreActive(ctx, prefs)
	if err != nil {
		return domain.StoredPlan{}, err
	}
	plan := s.builder.Assemble(s.builder.Rank(scored, prefs), prefs)

	out := domain.StoredPlan{ID: s.newID(), Plan: plan}
	if err := s.cache.Set(ctx, planKey(out.ID), plan, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("plan_id", out.ID).Msg("plan not cached")
	}
	log.Info().
		Str("plan_id", out.ID).
		Int("places", len(scored)).
		Int("nights", plan.Meta.Nights).
		Float64("total_cost", plan.Costs.Total).
		Msg("itinerary built")
	return out, nil
}

// SelectAccommodation swaps the hotel of a cached plan and stores the recomputed plan.
func (s *PlannerService) SelectAccommodation(ctx context.Context, planID, placeID string) (domain.ItineraryPlan, error) {
	plan, err := s.GetItinerary(ctx, planID)
	if err == nil {
		var ok bool
		if plan, ok = itinerary.SelectAccommodation(plan, placeID); !ok {
			err = fmt.Errorf("hotel %s is not a candidate of plan %s: %w", placeID, planID, domain.ErrNotFound)
		}
	}
	observability.ObserveItinerary("swap", err, 0)
	if err != nil {
		return domain.ItineraryPlan{}, err
	}
	_ = s.cache.Set(ctx, planKey(planID), plan, int(s.cacheTTL.Seconds()))
	return plan, nil
}

/********** catalog ingestion **********/

type IngestionService struct {
	catalog domain.CatalogClient
	repo    domain.PlaceRepository
}

func NewIngestionService(c domain.CatalogClient, r domain.PlaceRepository) *IngestionService {
	return &IngestionService{catalog: c, repo: r}
}

// IngestPlace fetches one catalog record and upserts it. Missing or forbidden
// records are logged as misses and are not errors.
func (s *IngestionService) IngestPlace(ctx context.Context, id string) error {
	raw, err := s.catalog.GetPlace(ctx, id)
	if err != nil {
		if status, reason, ok := missStatus(err); ok {
			_ = s.repo.LogMiss(ctx, id, status, reason)
			return nil
		}
		// network/5xx/JSON: bubble up
		return err
	}

	p, err := mapPlace(id, raw)
	switch {
	case errors.Is(err, errArchived):
		if err := s.repo.ArchivePlace(ctx, id); err != nil {
			return fmt.Errorf("archive place %s: %w", id, err)
		}
		_ = s.repo.LogMiss(ctx, id, 410, "archived")
		return nil
	case err != nil:
		_ = s.repo.LogMiss(ctx, id, 422, err.Error())
		return nil
	}
	if err := s.repo.UpsertPlace(ctx, p); err != nil {
		return fmt.Errorf("upsert place %s: %w", id, err)
	}
	return nil
}

// missStatus classifies 404/401/403 style errors, by sentinel or by message.
func missStatus(err error) (int, string, bool) {
	if errors.Is(err, domain.ErrNotFound) {
		return 404, "not found", true
	}
	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "not found"):
		return 404, "not found", true
	case strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
		strings.Contains(low, "401") || strings.Contains(low, "unauthorized"):
		return 403, "inactive", true
	}
	return 0, "", false
}
