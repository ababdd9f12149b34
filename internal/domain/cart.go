package domain

import "strings"

// Cart is the client-held list of selected flower IDs. It is never persisted:
// the full state lives in the "cart" cookie as a comma-joined string, and the
// server only transforms the value it is given. Cookie contents are untrusted
// client input; callers must resolve IDs against the catalog before use.
//
// The only invariant is that a cart holds no duplicate IDs, enforced by Add
// with a plain string comparison.
type Cart struct {
	ids []string
}

// ParseCart decodes the comma-joined cookie value into a Cart.
// An empty value yields an empty cart. Empty segments (stray commas) are
// dropped so a malformed cookie cannot produce blank IDs.
func ParseCart(value string) Cart {
	if value == "" {
		return Cart{}
	}

	var ids []string
	for _, id := range strings.Split(value, ",") {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return Cart{ids: ids}
}

// Add appends the given flower ID if it is not already present.
// Adding the same ID twice leaves the cart unchanged.
func (c *Cart) Add(flowerID string) {
	for _, id := range c.ids {
		if id == flowerID {
			return
		}
	}
	c.ids = append(c.ids, flowerID)
}

// IDs returns the flower IDs in insertion order.
func (c *Cart) IDs() []string {
	return c.ids
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.ids) == 0
}

// String serializes the cart back to its comma-joined cookie form.
func (c *Cart) String() string {
	return strings.Join(c.ids, ",")
}
