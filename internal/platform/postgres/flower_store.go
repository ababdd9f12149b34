package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/platform/logger"
	"github.com/floravend/bloom-api/internal/store"
	"github.com/google/uuid"
)

// PostgresFlowerStore implements the store.FlowerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFlowerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlowerStore creates a new PostgreSQL implementation of the
// FlowerStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresFlowerStore(db store.DBTX, logger *slog.Logger) *PostgresFlowerStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlowerStore{
		db:     db,
		logger: logger.With(slog.String("component", "flower_store")),
	}
}

// Ensure PostgresFlowerStore implements store.FlowerStore interface
var _ store.FlowerStore = (*PostgresFlowerStore)(nil)

// Create implements store.FlowerStore.Create
func (s *PostgresFlowerStore) Create(ctx context.Context, flower *domain.Flower) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := flower.Validate(); err != nil {
		log.Warn("flower validation failed during create",
			slog.String("error", err.Error()),
			slog.String("flower_id", flower.ID.String()))
		return err
	}

	query := `
		INSERT INTO flowers (id, name, price, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		flower.ID,
		flower.Name,
		flower.Price,
		flower.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create flower",
			slog.String("error", err.Error()),
			slog.String("flower_id", flower.ID.String()))
		return MapError(err)
	}

	log.Info("flower created successfully",
		slog.String("flower_id", flower.ID.String()),
		slog.String("name", flower.Name))
	return nil
}

// List implements store.FlowerStore.List
// It returns all flowers in insertion order.
func (s *PostgresFlowerStore) List(ctx context.Context) ([]*domain.Flower, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, price, created_at
		FROM flowers
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list flowers", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return s.collectFlowers(rows, log)
}

// GetByIDs implements store.FlowerStore.GetByIDs
// IDs that match no flower are silently omitted from the result.
func (s *PostgresFlowerStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Flower, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(ids) == 0 {
		return []*domain.Flower{}, nil
	}

	// Build the IN clause placeholders ($1, $2, ...) for the given IDs.
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, name, price, created_at
		FROM flowers
		WHERE id IN (%s)
		ORDER BY created_at, id
	`, strings.Join(placeholders, ", "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to get flowers by IDs",
			slog.String("error", err.Error()),
			slog.Int("id_count", len(ids)))
		return nil, MapError(err)
	}

	return s.collectFlowers(rows, log)
}

// WithTx implements store.FlowerStore.WithTx
func (s *PostgresFlowerStore) WithTx(tx *sql.Tx) store.FlowerStore {
	return &PostgresFlowerStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresFlowerStore) collectFlowers(rows *sql.Rows, log *slog.Logger) ([]*domain.Flower, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var flowers []*domain.Flower
	for rows.Next() {
		var flower domain.Flower
		err := rows.Scan(
			&flower.ID,
			&flower.Name,
			&flower.Price,
			&flower.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan flower row", slog.String("error", err.Error()))
			return nil, err
		}
		flowers = append(flowers, &flower)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no flowers found
	if flowers == nil {
		flowers = []*domain.Flower{}
	}

	return flowers, nil
}
