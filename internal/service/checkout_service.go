// Package service contains the application services that coordinate stores
// and domain logic.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/store"
	"github.com/google/uuid"
)

// CheckoutService converts a cart into persisted purchase records.
type CheckoutService interface {
	// Checkout writes one purchase row per flower in the cart for the given
	// user, all within a single transaction: a mid-batch failure leaves no
	// partial purchase set.
	//
	// The cart cookie is untrusted client input, so its IDs are resolved
	// against the catalog first; entries that are not valid UUIDs or match no
	// flower are skipped, mirroring how cart totals omit unknown IDs. Returns
	// the number of purchases recorded. An empty cart is a no-op.
	Checkout(ctx context.Context, userID uuid.UUID, cart domain.Cart) (int, error)
}

// checkoutServiceImpl implements the CheckoutService interface.
type checkoutServiceImpl struct {
	db            *sql.DB
	flowerStore   store.FlowerStore
	purchaseStore store.PurchaseStore
	logger        *slog.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	db *sql.DB,
	flowerStore store.FlowerStore,
	purchaseStore store.PurchaseStore,
	logger *slog.Logger,
) (CheckoutService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if flowerStore == nil {
		return nil, fmt.Errorf("flower store cannot be nil")
	}
	if purchaseStore == nil {
		return nil, fmt.Errorf("purchase store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &checkoutServiceImpl{
		db:            db,
		flowerStore:   flowerStore,
		purchaseStore: purchaseStore,
		logger:        logger.With(slog.String("component", "checkout_service")),
	}, nil
}

// Checkout implements CheckoutService.Checkout.
func (s *checkoutServiceImpl) Checkout(
	ctx context.Context,
	userID uuid.UUID,
	cart domain.Cart,
) (int, error) {
	if cart.IsEmpty() {
		return 0, nil
	}

	// Parse cart entries, dropping anything that is not a well-formed ID.
	var ids []uuid.UUID
	for _, raw := range cart.IDs() {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Warn("skipping malformed cart entry",
				slog.String("entry", raw),
				slog.String("user_id", userID.String()))
			continue
		}
		ids = append(ids, id)
	}

	// Resolve against the catalog; IDs with no matching flower are dropped.
	flowers, err := s.flowerStore.GetByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve cart against catalog: %w", err)
	}

	if len(flowers) == 0 {
		s.logger.Info("cart resolved to no purchasable flowers",
			slog.String("user_id", userID.String()),
			slog.Int("cart_size", len(cart.IDs())))
		return 0, nil
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.purchaseStore.WithTx(tx)
		for _, flower := range flowers {
			purchase, err := domain.NewPurchase(userID, flower.ID)
			if err != nil {
				return fmt.Errorf("failed to build purchase: %w", err)
			}
			if err := txStore.Create(ctx, purchase); err != nil {
				return fmt.Errorf("failed to record purchase of flower %s: %w", flower.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("checkout completed",
		slog.String("user_id", userID.String()),
		slog.Int("purchases", len(flowers)))
	return len(flowers), nil
}
