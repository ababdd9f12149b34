package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/platform/logger"
	"github.com/floravend/bloom-api/internal/store"
	"github.com/google/uuid"
)

// PostgresPurchaseStore implements the store.PurchaseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPurchaseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPurchaseStore creates a new PostgreSQL implementation of the
// PurchaseStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPurchaseStore(db store.DBTX, logger *slog.Logger) *PostgresPurchaseStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPurchaseStore{
		db:     db,
		logger: logger.With(slog.String("component", "purchase_store")),
	}
}

// Ensure PostgresPurchaseStore implements store.PurchaseStore interface
var _ store.PurchaseStore = (*PostgresPurchaseStore)(nil)

// Create implements store.PurchaseStore.Create
// Returns store.ErrInvalidEntity if the user or flower reference does not
// exist (foreign key violation).
func (s *PostgresPurchaseStore) Create(ctx context.Context, purchase *domain.Purchase) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := purchase.Validate(); err != nil {
		log.Warn("purchase validation failed during create",
			slog.String("error", err.Error()),
			slog.String("purchase_id", purchase.ID.String()))
		return err
	}

	query := `
		INSERT INTO purchases (id, user_id, flower_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		purchase.ID,
		purchase.UserID,
		purchase.FlowerID,
		purchase.CreatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during purchase creation",
				slog.String("error", err.Error()),
				slog.String("user_id", purchase.UserID.String()),
				slog.String("flower_id", purchase.FlowerID.String()))
			return fmt.Errorf("%w: purchase references missing user or flower",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create purchase",
			slog.String("error", err.Error()),
			slog.String("purchase_id", purchase.ID.String()))
		return MapError(err)
	}

	log.Info("purchase created successfully",
		slog.String("purchase_id", purchase.ID.String()),
		slog.String("user_id", purchase.UserID.String()),
		slog.String("flower_id", purchase.FlowerID.String()))
	return nil
}

// ListByUser implements store.PurchaseStore.ListByUser
// Each purchase row is resolved to its flower's name and price; duplicate
// purchases of the same flower yield duplicate entries.
func (s *PostgresPurchaseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PurchasedItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT f.name, f.price
		FROM purchases p
		JOIN flowers f ON f.id = p.flower_id
		WHERE p.user_id = $1
		ORDER BY p.created_at, p.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list purchases",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []domain.PurchasedItem
	for rows.Next() {
		var item domain.PurchasedItem
		if err := rows.Scan(&item.Name, &item.Price); err != nil {
			log.Error("failed to scan purchase row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no purchases found
	if items == nil {
		items = []domain.PurchasedItem{}
	}

	log.Debug("listed purchases",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(items)))
	return items, nil
}

// WithTx implements store.PurchaseStore.WithTx
func (s *PostgresPurchaseStore) WithTx(tx *sql.Tx) store.PurchaseStore {
	return &PostgresPurchaseStore{
		db:     tx,
		logger: s.logger,
	}
}
