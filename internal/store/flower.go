package store

import (
	"context"
	"database/sql"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/google/uuid"
)

// FlowerStore defines the interface for catalog persistence.
type FlowerStore interface {
	// Create saves a new flower to the store.
	// The catalog allows duplicate names and does not validate prices.
	Create(ctx context.Context, flower *domain.Flower) error

	// List returns all flowers in insertion order. No pagination.
	List(ctx context.Context) ([]*domain.Flower, error)

	// GetByIDs returns the flowers whose IDs appear in the given list,
	// in insertion order. IDs that match no flower are silently omitted;
	// the result may therefore be shorter than the input.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Flower, error)

	// WithTx returns a new FlowerStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) FlowerStore
}
