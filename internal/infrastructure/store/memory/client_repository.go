// Package memory holds the in-memory client roster. State lives for the
// lifetime of the process; persistence across restarts is out of scope.
package memory

import (
	"context"
	"sync"

	"github.com/orderboard/orderboard/internal/core/domain"
)

// ClientRepository is a mutex-guarded ordered roster. Insertion order is
// display order. All methods hand out deep copies so callers never share
// state with the store.
type ClientRepository struct {
	mu      sync.Mutex
	clients []*domain.Client
	seq     int
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Insert(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, c.Clone())
	return nil
}

func (r *ClientRepository) Get(_ context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *ClientRepository) List(_ context.Context) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Client, len(r.clients))
	for i, c := range r.clients {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *ClientRepository) Update(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.clients {
		if stored.ID == c.ID {
			r.clients[i] = c.Clone()
			return nil
		}
	}
	return domain.ErrClientNotFound
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return nil
		}
	}
	return domain.ErrClientNotFound
}

// NextSeq increments and returns the display-name counter. Deletions do not
// wind it back, so names are never reused within a session.
func (r *ClientRepository) NextSeq(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}
