package domain

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records that a user bought one flower. A checkout writes one row
// per flower in the cart; buying the same flower twice yields two rows.
// Purchases are immutable and never deleted.
type Purchase struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FlowerID  uuid.UUID `json:"flower_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPurchase creates a new Purchase binding the given user and flower.
func NewPurchase(userID, flowerID uuid.UUID) (*Purchase, error) {
	purchase := &Purchase{
		ID:        uuid.New(),
		UserID:    userID,
		FlowerID:  flowerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	return purchase, nil
}

// Validate checks if the Purchase has valid data.
func (p *Purchase) Validate() error {
	if p.ID == uuid.Nil {
		return ErrInvalidID
	}

	if p.UserID == uuid.Nil {
		return ErrEmptyUserID
	}

	if p.FlowerID == uuid.Nil {
		return ErrEmptyFlowerID
	}

	return nil
}

// PurchasedItem is the public view of one purchase row, resolved to the
// flower's name and price. Duplicate purchases appear as duplicate items.
type PurchasedItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
