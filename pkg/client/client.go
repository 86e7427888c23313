// Package client is a Go SDK for the back-office API. It mirrors the admin
// panel's behaviour: an authenticated session persisted to disk and cached
// resource collections that only change after the server confirms a
// mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/supermercado/backoffice-system/pkg/cpf"
)

var (
	ErrInvalidCPF        = errors.New("client: invalid cpf")
	ErrInvalidPrice      = errors.New("client: price must be greater than zero")
	ErrInvalidPromoPrice = errors.New("client: promotional price must be lower than current price")
	ErrPasswordRequired  = errors.New("client: password is required")
	ErrNotAuthenticated  = errors.New("client: not authenticated")
)

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to one back-office API server on behalf of one session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session

	products  *Products
	users     *Users
	customers *Customers
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a Client against baseURL using the given session state.
func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.products = &Products{collection: collection[Product]{
		client: c,
		path:   "/products",
		id:     func(p Product) string { return p.ID },
	}}
	c.users = &Users{collection: collection[User]{
		client: c,
		path:   "/users",
		id:     func(u User) string { return u.ID },
	}}
	c.customers = &Customers{collection: collection[Customer]{
		client: c,
		path:   "/clients",
		id:     func(cu Customer) string { return cu.ID },
	}}
	return c
}

// Session exposes the session state bound to this client.
func (c *Client) Session() *Session { return c.session }

// Products returns the cached product collection.
func (c *Client) Products() *Products { return c.products }

// Users returns the cached staff-user collection.
func (c *Client) Users() *Users { return c.users }

// Customers returns the cached loyalty-client collection.
func (c *Client) Customers() *Customers { return c.customers }

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type signInResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignIn authenticates and persists the resulting session. A failed attempt
// leaves the current session untouched.
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	var resp signInResponse
	err := c.do(ctx, http.MethodPost, "/login", signInRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	if err := c.session.set(resp.Token, &resp.User); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SignOut revokes the server-side session, then clears local state. Local
// state is cleared even when the revocation call fails: the user asked to
// leave.
func (c *Client) SignOut(ctx context.Context) error {
	if !c.session.Authenticated() {
		return nil
	}
	revokeErr := c.do(ctx, http.MethodPost, "/logout", nil, nil)
	if err := c.session.clear(); err != nil {
		return err
	}
	return revokeErr
}

type recoverPasswordRequest struct {
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	NewPassword string `json:"novaSenha"`
}

// RecoverPassword resets a password by proving ownership of the matching
// e-mail and CPF pair. The CPF is checked locally first.
func (c *Client) RecoverPassword(ctx context.Context, email, cpfNumber, newPassword string) error {
	if !cpf.Valid(cpfNumber) {
		return ErrInvalidCPF
	}
	req := recoverPasswordRequest{Email: email, CPF: cpfNumber, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/recover-password", req, nil)
}

// do performs one JSON round trip. body and out may be nil. Non-2xx
// responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// upload performs one multipart round trip with a single file field.
func (c *Client) upload(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		envelope.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}
