package ports

import (
	"context"

	"github.com/orderboard/orderboard/internal/core/domain"
)

// OrderRow is one catalog product as seen from a single client's order:
// current quantity alongside the product details. Every catalog product
// has a row, including those at quantity 0.
type OrderRow struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// ClientDetail is the full single-client view used by the editor.
type ClientDetail struct {
	ID    string
	Name  string
	Rows  []OrderRow
	Total float64
}

// OrderLine is a compact "qty × name" entry; only quantities above 0 appear.
type OrderLine struct {
	Quantity int
	Name     string
}

// ClientSummary is the lightweight per-client view used on the board.
type ClientSummary struct {
	ID    string
	Name  string
	Lines []OrderLine
	Total float64
}

// BoardResult is the full board projection: one summary per client in
// display order plus the grand total.
type BoardResult struct {
	Clients    []ClientSummary
	GrandTotal float64
}

// ClientService defines the use-case operations over the roster.
type ClientService interface {
	// AddClient creates a client named "Client N" (N monotonic), seeded with
	// quantity 0 for every catalog product, and appends it to the roster.
	AddClient(ctx context.Context) (*ClientDetail, error)
	GetClient(ctx context.Context, id string) (*ClientDetail, error)
	Board(ctx context.Context) (*BoardResult, error)
	// Rename sets the client's name to the trimmed value. An empty or
	// whitespace-only name is ignored and the prior name is retained.
	Rename(ctx context.Context, id, name string) (*ClientDetail, error)
	// AdjustQuantity applies delta (±1) to one product's quantity, clamped at 0.
	// An unknown product id leaves state untouched and returns the current detail.
	AdjustQuantity(ctx context.Context, id, productID string, delta int) (*ClientDetail, error)
	RemoveClient(ctx context.Context, id string) error
	// Catalog returns the immutable session catalog.
	Catalog(ctx context.Context) domain.Catalog
}
