package client

import (
	"context"
	"io"
	"net/http"
	"sync"
)

// collection caches one resource list. The cache only changes after the
// server confirms an operation: a failed request leaves it exactly as it
// was, so there is no rollback to get wrong.
type collection[T any] struct {
	client *Client
	path   string
	id     func(T) string

	mu    sync.RWMutex
	items []T
}

// Cached returns a copy of the current cache without touching the server.
func (col *collection[T]) Cached() []T {
	col.mu.RLock()
	defer col.mu.RUnlock()
	out := make([]T, len(col.items))
	copy(out, col.items)
	return out
}

// List fetches the full resource list and replaces the cache.
func (col *collection[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := col.client.do(ctx, http.MethodGet, col.path, nil, &items); err != nil {
		return nil, err
	}

	col.mu.Lock()
	col.items = items
	col.mu.Unlock()
	return col.Cached(), nil
}

func (col *collection[T]) create(ctx context.Context, body any) (*T, error) {
	var created T
	if err := col.client.do(ctx, http.MethodPost, col.path, body, &created); err != nil {
		return nil, err
	}

	col.mu.Lock()
	col.items = append(col.items, created)
	col.mu.Unlock()
	return &created, nil
}

func (col *collection[T]) update(ctx context.Context, id string, body any) (*T, error) {
	var updated T
	if err := col.client.do(ctx, http.MethodPut, col.path+"/"+id, body, &updated); err != nil {
		return nil, err
	}

	col.mu.Lock()
	for i := range col.items {
		if col.id(col.items[i]) == id {
			col.items[i] = updated
			break
		}
	}
	col.mu.Unlock()
	return &updated, nil
}

// Delete removes the entity server-side, then drops it from the cache.
func (col *collection[T]) Delete(ctx context.Context, id string) error {
	if err := col.client.do(ctx, http.MethodDelete, col.path+"/"+id, nil, nil); err != nil {
		return err
	}

	col.mu.Lock()
	for i := range col.items {
		if col.id(col.items[i]) == id {
			col.items = append(col.items[:i], col.items[i+1:]...)
			break
		}
	}
	col.mu.Unlock()
	return nil
}

// replace swaps one cached entity by id, used by avatar operations that
// return the updated user outside the usual update path.
func (col *collection[T]) replace(id string, item T) {
	col.mu.Lock()
	for i := range col.items {
		if col.id(col.items[i]) == id {
			col.items[i] = item
			break
		}
	}
	col.mu.Unlock()
}

// Products is the cached product collection.
type Products struct {
	collection[Product]
}

// Create validates the price invariants locally, then submits.
func (p *Products) Create(ctx context.Context, input ProductInput) (*Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	return p.create(ctx, input)
}

// Update validates the price invariants locally, then submits.
func (p *Products) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	return p.update(ctx, id, input)
}

// Users is the cached staff-user collection.
type Users struct {
	collection[User]
}

// Create validates the CPF locally and requires a password.
func (u *Users) Create(ctx context.Context, input UserInput) (*User, error) {
	if err := input.validate(true); err != nil {
		return nil, err
	}
	return u.create(ctx, input)
}

// Update validates the CPF locally; a nil Password keeps the current one.
func (u *Users) Update(ctx context.Context, id string, input UserInput) (*User, error) {
	if err := input.validate(false); err != nil {
		return nil, err
	}
	return u.update(ctx, id, input)
}

type avatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}

// UploadAvatar sends a profile picture and patches the cached user.
func (u *Users) UploadAvatar(ctx context.Context, id, filename string, file io.Reader) (string, error) {
	var resp avatarResponse
	if err := u.client.upload(ctx, u.path+"/"+id+"/avatar", "avatar", filename, file, &resp); err != nil {
		return "", err
	}

	u.mu.Lock()
	for i := range u.items {
		if u.items[i].ID == id {
			url := resp.AvatarURL
			u.items[i].AvatarURL = &url
			break
		}
	}
	u.mu.Unlock()
	return resp.AvatarURL, nil
}

// RemoveAvatar clears the profile picture and patches the cached user.
func (u *Users) RemoveAvatar(ctx context.Context, id string) (*User, error) {
	var updated User
	if err := u.client.do(ctx, http.MethodDelete, u.path+"/"+id+"/avatar", nil, &updated); err != nil {
		return nil, err
	}
	u.replace(id, updated)
	return &updated, nil
}

// Customers is the cached loyalty-client collection.
type Customers struct {
	collection[Customer]
}

func (c *Customers) Create(ctx context.Context, input CustomerInput) (*Customer, error) {
	return c.create(ctx, input)
}

func (c *Customers) Update(ctx context.Context, id string, input CustomerInput) (*Customer, error) {
	return c.update(ctx, id, input)
}
