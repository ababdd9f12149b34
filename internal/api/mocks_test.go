package api

import (
	"context"
	"database/sql"

	"github.com/floravend/bloom-api/internal/domain"
	"github.com/floravend/bloom-api/internal/store"
	"github.com/google/uuid"
)

// mockUserStore is an in-memory store.UserStore for handler tests.
type mockUserStore struct {
	users map[string]*domain.User // keyed by username
}

var _ store.UserStore = (*mockUserStore)(nil)

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*domain.User)}
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// mockFlowerStore is an in-memory store.FlowerStore for handler tests.
type mockFlowerStore struct {
	flowers []*domain.Flower
	err     error
}

var _ store.FlowerStore = (*mockFlowerStore)(nil)

func (m *mockFlowerStore) Create(ctx context.Context, flower *domain.Flower) error {
	if m.err != nil {
		return m.err
	}
	m.flowers = append(m.flowers, flower)
	return nil
}

func (m *mockFlowerStore) List(ctx context.Context) ([]*domain.Flower, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.flowers, nil
}

func (m *mockFlowerStore) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Flower, error) {
	if m.err != nil {
		return nil, m.err
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := []*domain.Flower{}
	for _, flower := range m.flowers {
		if wanted[flower.ID] {
			out = append(out, flower)
		}
	}
	return out, nil
}

func (m *mockFlowerStore) WithTx(tx *sql.Tx) store.FlowerStore {
	return m
}

// mockPurchaseStore is an in-memory store.PurchaseStore for handler tests.
type mockPurchaseStore struct {
	items map[uuid.UUID][]domain.PurchasedItem
	err   error
}

var _ store.PurchaseStore = (*mockPurchaseStore)(nil)

func (m *mockPurchaseStore) Create(ctx context.Context, purchase *domain.Purchase) error {
	return m.err
}

func (m *mockPurchaseStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PurchasedItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	items, ok := m.items[userID]
	if !ok {
		return []domain.PurchasedItem{}, nil
	}
	return items, nil
}

func (m *mockPurchaseStore) WithTx(tx *sql.Tx) store.PurchaseStore {
	return m
}

// mockCheckoutService records checkout calls for handler tests.
type mockCheckoutService struct {
	userID uuid.UUID
	cart   domain.Cart
	count  int
	err    error
	calls  int
}

func (m *mockCheckoutService) Checkout(
	ctx context.Context,
	userID uuid.UUID,
	cart domain.Cart,
) (int, error) {
	m.calls++
	m.userID = userID
	m.cart = cart
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}
