// Package mysql is the MySQL-backed place repository.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"trip_planner/internal/domain"
)

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// valJSON stores nil/empty as SQL NULL.
func valJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return nil, nil
	}
	return string(b), nil
}

// jsonList marshals nil as [] for NOT NULL JSON columns.
func jsonList(xs []string) string {
	if xs == nil {
		return "[]"
	}
	b, _ := json.Marshal(xs)
	return string(b)
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertPlace(ctx context.Context, p domain.Place) error {
	var lat, lng *float64
	if p.Coordinates != nil {
		lat, lng = &p.Coordinates.Lat, &p.Coordinates.Lng
	}
	pricing, err := valJSON(p.Pricing)
	if err != nil {
		return fmt.Errorf("encode pricing: %w", err)
	}
	_, err = r.db.ExecContext(ctx, upsertPlaceSQL,
		p.ID,
		p.Name,
		p.Kind,
		valF64(lat),
		valF64(lng),
		jsonList(p.Tags),
		jsonList(p.Activities),
		pricing,
	)
	return err
}

func (r *Repo) ArchivePlace(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, archivePlaceSQL, id)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id string, status int, reason string) error {
	if len(reason) > 255 {
		reason = reason[:255]
	}
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) GetPlace(ctx context.Context, id string) (domain.Place, error) {
	p, err := scanPlace(r.db.QueryRowContext(ctx, getPlaceSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Place{}, fmt.Errorf("place %s: %w", id, domain.ErrNotFound)
	}
	return p, err
}

func (r *Repo) ListActivePlaces(ctx context.Context) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, listActivePlacesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(s rowScanner) (domain.Place, error) {
	var (
		p                      domain.Place
		lat, lng               sql.NullFloat64
		tags, acts, pricingRaw []byte
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Kind, &lat, &lng, &tags, &acts, &pricingRaw); err != nil {
		return domain.Place{}, err
	}
	if lat.Valid && lng.Valid {
		p.Coordinates = &domain.Coords{Lat: lat.Float64, Lng: lng.Float64}
	}
	if err := unmarshalIfSet(tags, &p.Tags); err != nil {
		return domain.Place{}, fmt.Errorf("place %s tags: %w", p.ID, err)
	}
	if err := unmarshalIfSet(acts, &p.Activities); err != nil {
		return domain.Place{}, fmt.Errorf("place %s activities: %w", p.ID, err)
	}
	if len(pricingRaw) > 0 && string(pricingRaw) != "null" {
		var pr domain.Pricing
		if err := json.Unmarshal(pricingRaw, &pr); err != nil {
			return domain.Place{}, fmt.Errorf("place %s pricing: %w", p.ID, err)
		}
		p.Pricing = &pr
	}
	return p, nil
}

func unmarshalIfSet(b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}
