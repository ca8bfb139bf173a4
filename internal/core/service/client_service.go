package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/orderboard/orderboard/internal/core/domain"
	"github.com/orderboard/orderboard/internal/core/ports"
)

type ClientService struct {
	repo    ports.ClientRepository
	catalog domain.Catalog
	logger  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, catalog domain.Catalog, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, catalog: catalog, logger: logger}
}

// AddClient creates a new client seeded with quantity 0 for every catalog
// product and appends it to the roster. Display names use a monotonic
// counter that is never reused.
func (s *ClientService) AddClient(ctx context.Context) (*ports.ClientDetail, error) {
	seq, err := s.repo.NextSeq(ctx)
	if err != nil {
		return nil, err
	}

	client := domain.NewClient(uuid.NewString(), fmt.Sprintf("Client %d", seq), s.catalog)
	if err := s.repo.Insert(ctx, client); err != nil {
		s.logger.Error().Err(err).Msg("failed to add client")
		return nil, err
	}

	s.logger.Info().Str("client_id", client.ID).Str("name", client.Name).Msg("client added")
	return s.detail(client), nil
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*ports.ClientDetail, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(client), nil
}

// Board projects the roster into per-client summaries (quantity > 0 lines
// only, catalog order) plus the grand total.
func (s *ClientService) Board(ctx context.Context) (*ports.BoardResult, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.ClientSummary, 0, len(clients))
	for _, c := range clients {
		lines := make([]ports.OrderLine, 0)
		for _, p := range s.catalog {
			if qty := c.Quantity(p.ID); qty > 0 {
				lines = append(lines, ports.OrderLine{Quantity: qty, Name: p.Name})
			}
		}
		summaries = append(summaries, ports.ClientSummary{
			ID:    c.ID,
			Name:  c.Name,
			Lines: lines,
			Total: domain.ClientTotal(c, s.catalog),
		})
	}

	return &ports.BoardResult{
		Clients:    summaries,
		GrandTotal: domain.GrandTotal(clients, s.catalog),
	}, nil
}

// Rename sets the client's name to the trimmed value. Empty or
// whitespace-only names are ignored; the prior name is retained.
func (s *ClientService) Rename(ctx context.Context, id, name string) (*ports.ClientDetail, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		s.logger.Debug().Str("client_id", id).Msg("rename ignored: empty name")
		return s.detail(client), nil
	}

	client.Name = trimmed
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	s.logger.Info().Str("client_id", id).Str("name", trimmed).Msg("client renamed")
	return s.detail(client), nil
}

// AdjustQuantity applies delta to one product's quantity, clamped at 0.
// An unknown product id leaves state untouched and returns the current detail.
func (s *ClientService) AdjustQuantity(ctx context.Context, id, productID string, delta int) (*ports.ClientDetail, error) {
	client, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, ok := s.catalog.ByID(productID); !ok {
		s.logger.Debug().Str("client_id", id).Str("product_id", productID).Msg("quantity update ignored: unknown product")
		return s.detail(client), nil
	}

	client.AdjustQuantity(productID, delta)
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}

	return s.detail(client), nil
}

func (s *ClientService) RemoveClient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client removed")
	return nil
}

func (s *ClientService) Catalog(_ context.Context) domain.Catalog {
	return s.catalog
}

// detail builds the full single-client editor view: one row per catalog
// product, including those at quantity 0.
func (s *ClientService) detail(c *domain.Client) *ports.ClientDetail {
	rows := make([]ports.OrderRow, 0, len(s.catalog))
	for _, p := range s.catalog {
		rows = append(rows, ports.OrderRow{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  c.Quantity(p.ID),
		})
	}
	return &ports.ClientDetail{
		ID:    c.ID,
		Name:  c.Name,
		Rows:  rows,
		Total: domain.ClientTotal(c, s.catalog),
	}
}
