package service

import (
	"context"
	"database/sql"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/store"
	"github.com/google/uuid"
)

// mockFlowerStore is an in-memory store.FlowerStore for service tests.
type mockFlowerStore struct {
	flowers []*domain.Flower
	listErr error
}

var _ store.FlowerStore = (*mockFlowerStore)(nil)

func (m *mockFlowerStore) Create(ctx context.Context, flower *domain.Flower) error {
	m.flowers = append(m.flowers, flower)
	return nil
}

func (m *mockFlowerStore) List(ctx context.Context) ([]*domain.Flower, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.flowers, nil
}

func (m *mockFlowerStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Flower, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*domain.Flower
	for _, flower := range m.flowers {
		if wanted[flower.ID] {
			out = append(out, flower)
		}
	}
	if out == nil {
		out = []*domain.Flower{}
	}
	return out, nil
}

func (m *mockFlowerStore) WithTx(tx *sql.Tx) store.FlowerStore {
	return m
}

// mockPurchaseStore records purchase creations for service tests.
type mockPurchaseStore struct {
	created   []*domain.Purchase
	createErr error
	failAfter int // fail on the Nth create when createErr is set (1-based)
}

var _ store.PurchaseStore = (*mockPurchaseStore)(nil)

func (m *mockPurchaseStore) Create(ctx context.Context, purchase *domain.Purchase) error {
	if m.createErr != nil && len(m.created)+1 >= m.failAfter {
		return m.createErr
	}
	m.created = append(m.created, purchase)
	return nil
}

func (m *mockPurchaseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PurchasedItem, error) {
	var items []domain.PurchasedItem
	for range m.created {
		items = append(items, domain.PurchasedItem{})
	}
	return items, nil
}

func (m *mockPurchaseStore) WithTx(tx *sql.Tx) store.PurchaseStore {
	return m
}
