package ports

import (
	"context"

	"github.com/orderboard/orderboard/internal/core/domain"
)

// ClientRepository defines storage operations for the client roster.
// Implementations preserve insertion order and return defensive copies.
type ClientRepository interface {
	Insert(ctx context.Context, c *domain.Client) error
	// Get retrieves a client by id. Returns domain.ErrClientNotFound when absent.
	Get(ctx context.Context, id string) (*domain.Client, error)
	// List returns all clients in insertion order.
	List(ctx context.Context) ([]*domain.Client, error)
	// Update replaces the stored client with the same id.
	Update(ctx context.Context, c *domain.Client) error
	// Delete removes a client by id.
	Delete(ctx context.Context, id string) error
	// NextSeq returns the next value of the display-name counter.
	// The counter is monotonic and never reused, even after deletions.
	NextSeq(ctx context.Context) (int, error)
}
