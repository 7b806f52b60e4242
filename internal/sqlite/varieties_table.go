// This file implements variety persistence: row hydration and the
// CreateVariety/GetVariety/ListVarieties operations.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verdantlabs/trellis/pkg/types"
)

// dateLayout stores calendar dates without a time component; timestamps
// use RFC 3339.
const dateLayout = "2006-01-02"

// CreateVariety validates and persists a new variety. An empty VarietyID
// is replaced with a generated UUID v7.
func (s *Store) CreateVariety(ctx context.Context, v types.Variety) (types.Variety, error) {
	db, err := s.conn()
	if err != nil {
		return types.Variety{}, err
	}
	if err := v.Validate(); err != nil {
		return types.Variety{}, err
	}

	if v.VarietyID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return types.Variety{}, fmt.Errorf("generating UUID v7: %w", err)
		}
		v.VarietyID = id.String()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	lifespan := sql.NullInt64{}
	if v.ProductiveLifespan != nil {
		lifespan = sql.NullInt64{Int64: int64(*v.ProductiveLifespan), Valid: true}
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO varieties (variety_id, name, category,
		    germination_days, seedling_days, vegetative_days, maturation_days,
		    everbearing, productive_lifespan, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VarietyID, v.Name, v.Category,
		v.Timeline.Germination, v.Timeline.Seedling, v.Timeline.Vegetative, v.Timeline.Maturation,
		v.Everbearing, lifespan, v.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return types.Variety{}, fmt.Errorf("persisting variety %s: %w", v.Name, err)
	}
	return v, nil
}

// GetVariety retrieves a variety by ID.
func (s *Store) GetVariety(ctx context.Context, id string) (types.Variety, error) {
	db, err := s.conn()
	if err != nil {
		return types.Variety{}, err
	}
	if id == "" {
		return types.Variety{}, types.ErrInvalidID
	}

	row := db.QueryRowContext(ctx,
		`SELECT variety_id, name, category,
		    germination_days, seedling_days, vegetative_days, maturation_days,
		    everbearing, productive_lifespan, created_at
		 FROM varieties WHERE variety_id = ?`, id)

	v, err := hydrateVariety(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Variety{}, types.ErrNotFound
		}
		return types.Variety{}, fmt.Errorf("getting variety %s: %w", id, err)
	}
	return v, nil
}

// ListVarieties returns all varieties ordered by name.
func (s *Store) ListVarieties(ctx context.Context) ([]types.Variety, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT variety_id, name, category,
		    germination_days, seedling_days, vegetative_days, maturation_days,
		    everbearing, productive_lifespan, created_at
		 FROM varieties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing varieties: %w", err)
	}
	defer rows.Close()

	var out []types.Variety
	for rows.Next() {
		v, err := hydrateVariety(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating variety: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows for hydration helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateVariety(row rowScanner) (types.Variety, error) {
	var (
		v         types.Variety
		lifespan  sql.NullInt64
		createdAt string
	)
	err := row.Scan(&v.VarietyID, &v.Name, &v.Category,
		&v.Timeline.Germination, &v.Timeline.Seedling, &v.Timeline.Vegetative, &v.Timeline.Maturation,
		&v.Everbearing, &lifespan, &createdAt)
	if err != nil {
		return types.Variety{}, err
	}
	if lifespan.Valid {
		days := int(lifespan.Int64)
		v.ProductiveLifespan = &days
	}
	v.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return types.Variety{}, fmt.Errorf("parsing created_at: %w", err)
	}
	return v, nil
}
