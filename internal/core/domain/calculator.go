package domain

// ClientTotal returns the order value of one client: Σ quantity · price over
// the catalog. Order entries for products no longer in the catalog count 0.
// Total function over any well-formed state.
func ClientTotal(c *Client, catalog Catalog) float64 {
	var sum float64
	for _, p := range catalog {
		sum += float64(c.Order[p.ID]) * p.Price
	}
	return sum
}

// GrandTotal returns the sum of ClientTotal over all clients.
func GrandTotal(clients []*Client, catalog Catalog) float64 {
	var sum float64
	for _, c := range clients {
		sum += ClientTotal(c, catalog)
	}
	return sum
}
