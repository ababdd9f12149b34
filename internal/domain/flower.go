package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flower is a catalog entry. Flowers are created once and never updated or
// deleted; catalog listings return them in insertion order.
type Flower struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFlower creates a new Flower with the given name and price.
// The price is stored as-is; the catalog intentionally performs no price
// validation, so zero and negative prices are accepted.
func NewFlower(name string, price float64) (*Flower, error) {
	flower := &Flower{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}

	if err := flower.Validate(); err != nil {
		return nil, err
	}

	return flower, nil
}

// Validate checks if the Flower has valid data.
func (f *Flower) Validate() error {
	if f.ID == uuid.Nil {
		return ErrEmptyFlowerID
	}

	if f.Name == "" {
		return ErrEmptyFlowerName
	}

	return nil
}
