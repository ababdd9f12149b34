package store

import (
	"context"
	"database/sql"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/google/uuid"
)

// PurchaseStore defines the interface for purchase record persistence.
type PurchaseStore interface {
	// Create saves a new purchase row.
	// Returns ErrInvalidEntity if the user or flower reference does not exist
	// (foreign key violation).
	Create(ctx context.Context, purchase *domain.Purchase) error

	// ListByUser returns the purchased items for the given user in insertion
	// order, each resolved to its flower's name and price. Duplicate purchases
	// of the same flower appear as duplicate entries.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PurchasedItem, error)

	// WithTx returns a new PurchaseStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PurchaseStore
}
