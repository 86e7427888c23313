package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeBackoffice is a minimal in-memory stand-in for the API server.
type fakeBackoffice struct {
	mux      *http.ServeMux
	requests []string

	products map[string]Product
	nextID   int
	failNext bool
}

func newFakeBackoffice() *fakeBackoffice {
	f := &fakeBackoffice{
		mux:      http.NewServeMux(),
		products: make(map[string]Product),
		nextID:   1,
	}

	f.mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, "POST /login")
		var req signInRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(signInResponse{
			Token: "tok-abc",
			User:  User{ID: "u1", Name: "Admin", Email: req.Email, CPF: "111.444.777-35"},
		})
	})

	f.mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, "POST /logout auth="+r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})

	f.mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, "GET /products")
		list := make([]Product, 0, len(f.products))
		for _, p := range f.products {
			list = append(list, p)
		}
		_ = json.NewEncoder(w).Encode(list)
	})

	f.mux.HandleFunc("POST /products", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, "POST /products")
		var p Product
		_ = json.NewDecoder(r.Body).Decode(&p)
		p.ID = "p" + string(rune('0'+f.nextID))
		f.nextID++
		f.products[p.ID] = p
		_ = json.NewEncoder(w).Encode(p)
	})

	f.mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		f.requests = append(f.requests, "DELETE /products/"+id)
		if f.failNext {
			f.failNext = false
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			return
		}
		if _, ok := f.products[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
			return
		}
		delete(f.products, id)
		w.WriteHeader(http.StatusNoContent)
	})

	f.mux.HandleFunc("POST /users/{id}/avatar", func(w http.ResponseWriter, r *http.Request) {
		f.requests = append(f.requests, "POST /users/"+r.PathValue("id")+"/avatar")
		if _, _, err := r.FormFile("avatar"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "file not sent"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"avatarUrl": "/uploads/abc.png"})
	})

	return f
}

func newTestClient(t *testing.T, f *fakeBackoffice) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "session.json")
	return New(srv.URL, NewSession(path)), path
}

func TestSignInPersistsSession(t *testing.T) {
	c, path := newTestClient(t, newFakeBackoffice())

	user, err := c.SignIn(context.Background(), "admin@mercado.com", "123456")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if user.ID != "u1" {
		t.Errorf("user id = %q, want u1", user.ID)
	}
	if !c.Session().Authenticated() {
		t.Error("session should be authenticated")
	}
	if got := c.Session().Token(); got != "tok-abc" {
		t.Errorf("token = %q, want tok-abc", got)
	}

	// A fresh session restored from the same file picks up the state.
	restored := NewSession(path)
	if err := restored.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Token() != "tok-abc" {
		t.Errorf("restored token = %q, want tok-abc", restored.Token())
	}
	if u := restored.User(); u == nil || u.Email != "admin@mercado.com" {
		t.Errorf("restored user = %+v", u)
	}
}

func TestSignInFailureLeavesSessionAnonymous(t *testing.T) {
	c, path := newTestClient(t, newFakeBackoffice())

	_, err := c.SignIn(context.Background(), "admin@mercado.com", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 APIError", err)
	}
	if c.Session().Authenticated() {
		t.Error("session should stay anonymous after failed sign-in")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no session file should exist after failed sign-in")
	}
}

func TestSignOutClearsSessionAndFile(t *testing.T) {
	f := newFakeBackoffice()
	c, path := newTestClient(t, f)

	if _, err := c.SignIn(context.Background(), "admin@mercado.com", "123456"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := c.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	if c.Session().Authenticated() {
		t.Error("session should be anonymous after sign-out")
	}
	if c.Session().User() != nil {
		t.Error("user should be cleared after sign-out")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed after sign-out")
	}

	sawLogout := false
	for _, r := range f.requests {
		if strings.HasPrefix(r, "POST /logout") && strings.Contains(r, "Bearer tok-abc") {
			sawLogout = true
		}
	}
	if !sawLogout {
		t.Error("sign-out should revoke the token server-side")
	}
}

func TestProductCacheFollowsConfirmations(t *testing.T) {
	f := newFakeBackoffice()
	c, _ := newTestClient(t, f)
	ctx := context.Background()

	if _, err := c.SignIn(ctx, "admin@mercado.com", "123456"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	created, err := c.Products().Create(ctx, ProductInput{Name: "Arroz", Price: 22.9, Category: "alimento"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := c.Products().Cached(); len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("cache after create = %+v", got)
	}

	// A failed delete must leave the cache untouched.
	f.failNext = true
	if err := c.Products().Delete(ctx, created.ID); err == nil {
		t.Fatal("Delete should fail")
	}
	if got := c.Products().Cached(); len(got) != 1 {
		t.Fatalf("cache after failed delete = %+v", got)
	}

	if err := c.Products().Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := c.Products().Cached(); len(got) != 0 {
		t.Fatalf("cache after delete = %+v", got)
	}
}

func TestProductPromoPriceRejectedLocally(t *testing.T) {
	f := newFakeBackoffice()
	c, _ := newTestClient(t, f)

	promo := 25.0
	_, err := c.Products().Create(context.Background(), ProductInput{
		Name:       "Feijão",
		Price:      22.9,
		PromoPrice: &promo,
		Category:   "alimento",
	})
	if err != ErrInvalidPromoPrice {
		t.Fatalf("err = %v, want ErrInvalidPromoPrice", err)
	}
	for _, r := range f.requests {
		if r == "POST /products" {
			t.Fatal("invalid input should never reach the server")
		}
	}
}

func TestUserCreateValidatesCPFLocally(t *testing.T) {
	f := newFakeBackoffice()
	c, _ := newTestClient(t, f)

	pass := "123456"
	_, err := c.Users().Create(context.Background(), UserInput{
		Name:     "Maria",
		Email:    "maria@mercado.com",
		CPF:      "111.444.777-36",
		Password: &pass,
	})
	if err != ErrInvalidCPF {
		t.Fatalf("err = %v, want ErrInvalidCPF", err)
	}

	_, err = c.Users().Create(context.Background(), UserInput{
		Name:  "Maria",
		Email: "maria@mercado.com",
		CPF:   "111.444.777-35",
	})
	if err != ErrPasswordRequired {
		t.Fatalf("err = %v, want ErrPasswordRequired", err)
	}
}

func TestUploadAvatarPatchesCache(t *testing.T) {
	f := newFakeBackoffice()
	c, _ := newTestClient(t, f)
	ctx := context.Background()

	c.Users().items = []User{{ID: "u1", Name: "Admin"}}

	url, err := c.Users().UploadAvatar(ctx, "u1", "photo.png", strings.NewReader("fake-png"))
	if err != nil {
		t.Fatalf("UploadAvatar: %v", err)
	}
	if url != "/uploads/abc.png" {
		t.Errorf("url = %q", url)
	}

	cached := c.Users().Cached()
	if cached[0].AvatarURL == nil || *cached[0].AvatarURL != url {
		t.Errorf("cached avatar = %v, want %q", cached[0].AvatarURL, url)
	}
}

