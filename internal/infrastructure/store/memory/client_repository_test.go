package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/orderboard/orderboard/internal/core/domain"
)

var testCatalog = domain.Catalog{
	{ID: "a", Name: "Widget", Price: 5},
	{ID: "b", Name: "Gadget", Price: 10},
}

func TestClientRepository_InsertPreservesOrder(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	for _, id := range []string{"one", "two", "three"} {
		if err := repo.Insert(ctx, domain.NewClient(id, "Client "+id, testCatalog)); err != nil {
			t.Fatalf("insert %q: %v", id, err)
		}
	}

	clients, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clients) != 3 {
		t.Fatalf("expected 3 clients, got %d", len(clients))
	}
	for i, want := range []string{"one", "two", "three"} {
		if clients[i].ID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, clients[i].ID)
		}
	}
}

func TestClientRepository_GetReturnsCopy(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	_ = repo.Insert(ctx, domain.NewClient("one", "Client 1", testCatalog))

	got, err := repo.Get(ctx, "one")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Name = "Mutated"
	got.Order["a"] = 99

	fresh, _ := repo.Get(ctx, "one")
	if fresh.Name != "Client 1" {
		t.Errorf("stored name must be isolated from callers, got %q", fresh.Name)
	}
	if fresh.Order["a"] != 0 {
		t.Errorf("stored order must be isolated from callers, got %d", fresh.Order["a"])
	}
}

func TestClientRepository_GetNotFound(t *testing.T) {
	repo := NewClientRepository()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_UpdateReplacesInPlace(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	_ = repo.Insert(ctx, domain.NewClient("one", "Client 1", testCatalog))
	_ = repo.Insert(ctx, domain.NewClient("two", "Client 2", testCatalog))

	updated := domain.NewClient("one", "Renamed", testCatalog)
	updated.Order["a"] = 4
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	clients, _ := repo.List(ctx)
	if clients[0].ID != "one" || clients[0].Name != "Renamed" || clients[0].Order["a"] != 4 {
		t.Errorf("update must replace in place, got %+v", clients[0])
	}
	if clients[1].ID != "two" {
		t.Errorf("unrelated clients must keep their position, got %q", clients[1].ID)
	}
}

func TestClientRepository_UpdateNotFound(t *testing.T) {
	repo := NewClientRepository()

	err := repo.Update(context.Background(), domain.NewClient("ghost", "X", testCatalog))
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_DeleteRemovesExactlyOne(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	for _, id := range []string{"one", "two", "three"} {
		_ = repo.Insert(ctx, domain.NewClient(id, id, testCatalog))
	}

	if err := repo.Delete(ctx, "two"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	clients, _ := repo.List(ctx)
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[0].ID != "one" || clients[1].ID != "three" {
		t.Errorf("remaining order wrong: %q, %q", clients[0].ID, clients[1].ID)
	}

	if err := repo.Delete(ctx, "two"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("deleting twice: expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_NextSeqMonotonic(t *testing.T) {
	repo := NewClientRepository()
	ctx := context.Background()

	first, _ := repo.NextSeq(ctx)
	second, _ := repo.NextSeq(ctx)
	if first != 1 || second != 2 {
		t.Errorf("expected 1 then 2, got %d then %d", first, second)
	}

	// Deletions never wind the counter back.
	_ = repo.Insert(ctx, domain.NewClient("one", "Client 1", testCatalog))
	_ = repo.Delete(ctx, "one")
	third, _ := repo.NextSeq(ctx)
	if third != 3 {
		t.Errorf("expected 3 after delete, got %d", third)
	}
}
