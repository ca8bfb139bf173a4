package domain

// Product is a single purchasable item from the catalog.
// Products are loaded once at startup and never mutated afterwards.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is the ordered, immutable product list for the session.
// Slice order is display order.
type Catalog []Product

// ByID returns the product with the given id, if present.
func (c Catalog) ByID(id string) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
