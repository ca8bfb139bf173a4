package domain

import "errors"

var ErrClientNotFound = errors.New("client not found")

// Client is a named order recipient holding a quantity per product.
type Client struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Order map[string]int `json:"order"` // product id → quantity, never negative
}

// NewClient builds a client with quantity 0 seeded for every catalog product.
func NewClient(id, name string, catalog Catalog) *Client {
	order := make(map[string]int, len(catalog))
	for _, p := range catalog {
		order[p.ID] = 0
	}
	return &Client{ID: id, Name: name, Order: order}
}

// Quantity returns the ordered quantity for a product, 0 when absent.
func (c *Client) Quantity(productID string) int {
	return c.Order[productID]
}

// AdjustQuantity adds delta to the quantity for productID, clamped at 0.
// Returns the resulting quantity. Decrementing at the floor is a no-op.
func (c *Client) AdjustQuantity(productID string, delta int) int {
	next := c.Order[productID] + delta
	if next < 0 {
		next = 0
	}
	c.Order[productID] = next
	return next
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (c *Client) Clone() *Client {
	order := make(map[string]int, len(c.Order))
	for id, qty := range c.Order {
		order[id] = qty
	}
	return &Client{ID: c.ID, Name: c.Name, Order: order}
}
