package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "trip_planner/internal/adapters/redis"
	"trip_planner/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_PlanRoundTripAndTTL(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	base := 2400.0
	sel := domain.ScoredPlace{
		Place:        domain.Place{ID: "h1", Name: "Shore Inn", Pricing: &domain.Pricing{Lodging: &domain.LodgingPricing{Base: &base}}},
		Category:     domain.CategoryHotel,
		Score:        0.81,
		NightlyPrice: 2400,
		TotalCost:    4800,
	}
	plan := domain.ItineraryPlan{
		Meta:          domain.PlanMeta{Nights: 2},
		Accommodation: domain.Accommodation{Nights: 2, Selected: &sel, Alternatives: domain.EmptyBucket()},
		Costs:         domain.CostSummary{Accommodation: 4800, Total: 4800},
	}
	if err := c.Set(ctx, "plan:abc", plan, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("trip:plan:abc") {
		t.Fatalf("expected namespaced key in redis, keys=%v", mr.Keys())
	}

	var got domain.ItineraryPlan
	ok, err := c.Get(ctx, "plan:abc", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Accommodation.Selected == nil || got.Accommodation.Selected.TotalCost != 4800 || got.Costs.Total != 4800 {
		t.Fatalf("unexpected plan: %+v", got)
	}
	if b, ok := got.Accommodation.Selected.LodgingBase(); !ok || b != 2400 {
		t.Fatalf("pricing lost in round trip")
	}

	mr.FastForward(61 * time.Second)
	ok, err = c.Get(ctx, "plan:abc", &got)
	if err != nil || ok {
		t.Fatalf("expected expiry miss, ok=%v err=%v", ok, err)
	}
}

func TestCache_Del(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "k", map[string]int{"a": 1}, 0)
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	var v map[string]int
	if ok, _ := c.Get(ctx, "k", &v); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestCache_CorruptValue(t *testing.T) {
	c, mr := newCache(t)
	_ = mr.Set("trip:bad", "{not json")
	var v map[string]any
	if _, err := c.Get(context.Background(), "bad", &v); err == nil {
		t.Fatalf("expected decode error")
	}
}
