package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

type stubClientRepo struct {
	mu      sync.Mutex
	clients map[string]*domain.Client
	nextID  int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) List(_ context.Context) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.clients {
		if existing.Identity == c.Identity {
			return nil, domain.ErrDuplicateClient
		}
	}
	r.nextID++
	clone := *c
	clone.ID = "c" + strconv.Itoa(r.nextID)
	r.clients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[c.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	r.clients[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func TestClientService_CreateAndUpdate(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ClientInput{
		Name: "Maria", Identity: "12.345.678-9", Age: 42, Tenure: 5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected server-assigned id")
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.ClientInput{
		Name: "Maria Silva", Identity: "12.345.678-9", Age: 43, Tenure: 6,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Maria Silva" || updated.Tenure != 6 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestClientService_DuplicateIdentity(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	in := ports.ClientInput{Name: "Maria", Identity: "12.345.678-9", Age: 42, Tenure: 5}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrDuplicateClient) {
		t.Fatalf("expected ErrDuplicateClient, got %v", err)
	}
}

func TestClientService_Delete_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
