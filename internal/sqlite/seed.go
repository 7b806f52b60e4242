// This file implements built-in variety catalog seeding on store attach.
package sqlite

import (
	"bytes"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/verdantlabs/trellis/pkg/types"
)

//go:embed varieties.yaml
var seedCatalogYAML []byte

// seedCatalog is the shape of the embedded varieties.yaml file.
type seedCatalog struct {
	Varieties []types.Variety `yaml:"varieties"`
}

// seedVarieties inserts the built-in catalog when the varieties table is
// empty. The YAML decode is strict: an unknown field in the catalog is a
// defect, not an inert extra (unrecognized stage durations must fail
// loudly instead of being silently ignored).
func seedVarieties(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM varieties").Scan(&count); err != nil {
		return fmt.Errorf("counting varieties: %w", err)
	}
	if count > 0 {
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(seedCatalogYAML))
	dec.KnownFields(true)
	var catalog seedCatalog
	if err := dec.Decode(&catalog); err != nil {
		return fmt.Errorf("decoding built-in catalog: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, v := range catalog.Varieties {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("built-in variety %s: %w", v.Name, err)
		}
		lifespan := sql.NullInt64{}
		if v.ProductiveLifespan != nil {
			lifespan = sql.NullInt64{Int64: int64(*v.ProductiveLifespan), Valid: true}
		}
		_, err := db.Exec(
			`INSERT INTO varieties (variety_id, name, category,
			    germination_days, seedling_days, vegetative_days, maturation_days,
			    everbearing, productive_lifespan, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			v.VarietyID, v.Name, v.Category,
			v.Timeline.Germination, v.Timeline.Seedling, v.Timeline.Vegetative, v.Timeline.Maturation,
			v.Everbearing, lifespan, now,
		)
		if err != nil {
			return fmt.Errorf("seeding variety %s: %w", v.Name, err)
		}
	}
	return nil
}
