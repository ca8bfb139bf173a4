package handler

import (
	"github.com/orderboard/orderboard/internal/core/domain"
	"github.com/orderboard/orderboard/internal/core/ports"
)

// --- Service result → HTTP response ---

func toDetailResponse(d *ports.ClientDetail) clientDetailResponse {
	rows := make([]orderRowResponse, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = orderRowResponse{
			ProductID: r.ProductID,
			Name:      r.Name,
			Price:     r.Price,
			Quantity:  r.Quantity,
		}
	}
	return clientDetailResponse{
		ID:    d.ID,
		Name:  d.Name,
		Rows:  rows,
		Total: d.Total,
	}
}

func toBoardResponse(b *ports.BoardResult) boardResponse {
	clients := make([]clientSummaryResponse, len(b.Clients))
	for i, s := range b.Clients {
		lines := make([]orderLineResponse, len(s.Lines))
		for j, l := range s.Lines {
			lines[j] = orderLineResponse{Quantity: l.Quantity, Name: l.Name}
		}
		clients[i] = clientSummaryResponse{
			ID:    s.ID,
			Name:  s.Name,
			Lines: lines,
			Total: s.Total,
		}
	}
	return boardResponse{Clients: clients, GrandTotal: b.GrandTotal}
}

func toCatalogResponse(c domain.Catalog) catalogResponse {
	products := make([]productResponse, len(c))
	for i, p := range c {
		products[i] = productResponse{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	return catalogResponse{Products: products}
}
