// This file implements plant persistence: row hydration, creation
// defaults, the partial UpdatePlant write used by the growth feedback
// loop, and deletion.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/verdantlabs/trellis/pkg/types"
)

// CreatePlant persists a new plant. An empty PlantID is replaced with a
// generated UUID v7, a zero PlantedDate defaults to today, and a
// non-positive modifier defaults to 1.0.
func (s *Store) CreatePlant(ctx context.Context, p types.Plant) (types.Plant, error) {
	db, err := s.conn()
	if err != nil {
		return types.Plant{}, err
	}
	if p.Name == "" {
		return types.Plant{}, types.ErrInvalidName
	}
	if p.VarietyID == "" {
		return types.Plant{}, fmt.Errorf("plant %s has no variety: %w", p.Name, types.ErrInvalidData)
	}
	if _, err := s.GetVariety(ctx, p.VarietyID); err != nil {
		return types.Plant{}, fmt.Errorf("resolving variety %s: %w", p.VarietyID, err)
	}

	now := time.Now().UTC()
	if p.PlantID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return types.Plant{}, fmt.Errorf("generating UUID v7: %w", err)
		}
		p.PlantID = id.String()
	}
	if p.PlantedDate.IsZero() {
		p.PlantedDate = now
	}
	if p.GrowthRateModifier <= 0 {
		p.GrowthRateModifier = types.DefaultGrowthRateModifier
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	confirmedStage := sql.NullString{}
	if p.ConfirmedStage != nil {
		if !p.ConfirmedStage.Valid() {
			return types.Plant{}, fmt.Errorf("confirmed stage %q: %w", *p.ConfirmedStage, types.ErrInvalidStage)
		}
		confirmedStage = sql.NullString{String: string(*p.ConfirmedStage), Valid: true}
	}
	confirmedDate := sql.NullString{}
	if p.StageConfirmedDate != nil {
		confirmedDate = sql.NullString{String: p.StageConfirmedDate.UTC().Format(dateLayout), Valid: true}
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO plants (plant_id, variety_id, name, planted_date,
		    confirmed_stage, stage_confirmed_date, growth_rate_modifier,
		    created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PlantID, p.VarietyID, p.Name, p.PlantedDate.UTC().Format(dateLayout),
		confirmedStage, confirmedDate, p.GrowthRateModifier,
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return types.Plant{}, fmt.Errorf("persisting plant %s: %w", p.Name, err)
	}
	return p, nil
}

// GetPlant retrieves a plant by ID.
func (s *Store) GetPlant(ctx context.Context, id string) (types.Plant, error) {
	db, err := s.conn()
	if err != nil {
		return types.Plant{}, err
	}
	if id == "" {
		return types.Plant{}, types.ErrInvalidID
	}

	row := db.QueryRowContext(ctx,
		`SELECT plant_id, variety_id, name, planted_date,
		    confirmed_stage, stage_confirmed_date, growth_rate_modifier,
		    created_at, updated_at
		 FROM plants WHERE plant_id = ?`, id)

	p, err := hydratePlant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Plant{}, types.ErrNotFound
		}
		return types.Plant{}, fmt.Errorf("getting plant %s: %w", id, err)
	}
	return p, nil
}

// ListPlants returns all plants ordered by planted date, oldest first.
func (s *Store) ListPlants(ctx context.Context) ([]types.Plant, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		`SELECT plant_id, variety_id, name, planted_date,
		    confirmed_stage, stage_confirmed_date, growth_rate_modifier,
		    created_at, updated_at
		 FROM plants ORDER BY planted_date, plant_id`)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	defer rows.Close()

	var out []types.Plant
	for rows.Next() {
		p, err := hydratePlant(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating plant: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdatePlant applies a partial update: only non-nil fields are written.
// Returns ErrNotFound if no plant exists with that ID.
func (s *Store) UpdatePlant(ctx context.Context, id string, update types.PlantUpdate) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Format(time.RFC3339)}

	if update.ConfirmedStage != nil {
		if !update.ConfirmedStage.Valid() {
			return fmt.Errorf("confirmed stage %q: %w", *update.ConfirmedStage, types.ErrInvalidStage)
		}
		sets = append(sets, "confirmed_stage = ?")
		args = append(args, string(*update.ConfirmedStage))
	}
	if update.StageConfirmedDate != nil {
		sets = append(sets, "stage_confirmed_date = ?")
		args = append(args, update.StageConfirmedDate.UTC().Format(dateLayout))
	}
	if update.GrowthRateModifier != nil {
		if *update.GrowthRateModifier <= 0 {
			return fmt.Errorf("growth rate modifier %f: %w", *update.GrowthRateModifier, types.ErrInvalidData)
		}
		sets = append(sets, "growth_rate_modifier = ?")
		args = append(args, *update.GrowthRateModifier)
	}

	args = append(args, id)
	res, err := db.ExecContext(ctx,
		"UPDATE plants SET "+strings.Join(sets, ", ")+" WHERE plant_id = ?", args...)
	if err != nil {
		return fmt.Errorf("updating plant %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plant %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeletePlant removes a plant by ID.
func (s *Store) DeletePlant(ctx context.Context, id string) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := db.ExecContext(ctx, "DELETE FROM plants WHERE plant_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting plant %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plant %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

func hydratePlant(row rowScanner) (types.Plant, error) {
	var (
		p              types.Plant
		plantedDate    string
		confirmedStage sql.NullString
		confirmedDate  sql.NullString
		createdAt      string
		updatedAt      string
	)
	err := row.Scan(&p.PlantID, &p.VarietyID, &p.Name, &plantedDate,
		&confirmedStage, &confirmedDate, &p.GrowthRateModifier,
		&createdAt, &updatedAt)
	if err != nil {
		return types.Plant{}, err
	}

	if p.PlantedDate, err = time.Parse(dateLayout, plantedDate); err != nil {
		return types.Plant{}, fmt.Errorf("parsing planted_date: %w", err)
	}
	if confirmedStage.Valid {
		stage := types.GrowthStage(confirmedStage.String)
		p.ConfirmedStage = &stage
	}
	if confirmedDate.Valid {
		d, err := time.Parse(dateLayout, confirmedDate.String)
		if err != nil {
			return types.Plant{}, fmt.Errorf("parsing stage_confirmed_date: %w", err)
		}
		p.StageConfirmedDate = &d
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return types.Plant{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return types.Plant{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return p, nil
}
