package types

import (
	"context"
	"errors"
)

// PlantStore is the minimal persistence surface the growth feedback loop
// consumes: two reads and one partial write.
type PlantStore interface {
	// GetPlant retrieves a plant by ID. Returns ErrNotFound on a miss.
	GetPlant(ctx context.Context, id string) (Plant, error)

	// GetVariety retrieves a variety by ID. Returns ErrNotFound on a miss.
	GetVariety(ctx context.Context, id string) (Variety, error)

	// UpdatePlant applies a partial update to a stored plant.
	// Returns ErrNotFound if no plant exists with that ID.
	UpdatePlant(ctx context.Context, id string, update PlantUpdate) error
}

// Store is the full backend-agnostic storage interface. Callers attach to
// a backend, operate on plants and varieties, and detach when done.
type Store interface {
	PlantStore

	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist and seeds the built-in
	// variety catalog on first use. Returns ErrAlreadyAttached if
	// called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// CreateVariety persists a new variety. An empty VarietyID is
	// replaced with a generated UUID v7.
	CreateVariety(ctx context.Context, v Variety) (Variety, error)

	// ListVarieties returns all varieties ordered by name.
	ListVarieties(ctx context.Context) ([]Variety, error)

	// CreatePlant persists a new plant. An empty PlantID is replaced
	// with a generated UUID v7; a zero PlantedDate defaults to today.
	CreatePlant(ctx context.Context, p Plant) (Plant, error)

	// ListPlants returns all plants ordered by planted date.
	ListPlants(ctx context.Context) ([]Plant, error)

	// DeletePlant removes a plant. Returns ErrNotFound on a miss.
	DeletePlant(ctx context.Context, id string) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Entity and operation errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidID       = errors.New("invalid entity ID")
	ErrInvalidData     = errors.New("invalid entity data")
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidStage    = errors.New("invalid growth stage")
	ErrInvalidTimeline = errors.New("invalid growth timeline")
)
