package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/store"
	"github.com/google/uuid"
)

// CartService computes cart contents on demand. Cart state itself lives in
// the client cookie; this service only resolves it against the catalog.
type CartService interface {
	// Items resolves the cart's flower IDs against the catalog and returns
	// the matching flowers with their price total. IDs that are malformed or
	// match no flower are silently omitted from both the list and the sum.
	// An empty cart yields an empty list and a zero total.
	Items(ctx context.Context, cart domain.Cart) ([]*domain.Flower, float64, error)
}

// cartServiceImpl implements the CartService interface.
type cartServiceImpl struct {
	flowerStore store.FlowerStore
	logger      *slog.Logger
}

// NewCartService creates a new CartService.
func NewCartService(flowerStore store.FlowerStore, logger *slog.Logger) (CartService, error) {
	if flowerStore == nil {
		return nil, fmt.Errorf("flower store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cartServiceImpl{
		flowerStore: flowerStore,
		logger:      logger.With(slog.String("component", "cart_service")),
	}, nil
}

// Items implements CartService.Items.
func (s *cartServiceImpl) Items(
	ctx context.Context,
	cart domain.Cart,
) ([]*domain.Flower, float64, error) {
	if cart.IsEmpty() {
		return []*domain.Flower{}, 0, nil
	}

	var ids []uuid.UUID
	for _, raw := range cart.IDs() {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.logger.Debug("skipping malformed cart entry", slog.String("entry", raw))
			continue
		}
		ids = append(ids, id)
	}

	flowers, err := s.flowerStore.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to resolve cart against catalog: %w", err)
	}

	var total float64
	for _, flower := range flowers {
		total += flower.Price
	}

	return flowers, total, nil
}
