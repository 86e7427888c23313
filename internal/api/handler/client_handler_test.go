package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

type stubClientService struct {
	created   *ports.ClientInput
	deletedID string
	err       error
}

func (s *stubClientService) List(context.Context) ([]domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Client{{ID: "c1", Name: "João", Identity: "12.345.678-9"}}, nil
}

func (s *stubClientService) Create(_ context.Context, input ports.ClientInput) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &input
	return &domain.Client{
		ID:       "c1",
		Name:     input.Name,
		Identity: input.Identity,
		Age:      input.Age,
		Tenure:   input.Tenure,
	}, nil
}

func (s *stubClientService) Update(_ context.Context, id string, input ports.ClientInput) (*domain.Client, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Client{ID: id, Name: input.Name, Identity: input.Identity, Age: input.Age}, nil
}

func (s *stubClientService) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

func TestClientCreateReturnsEntity(t *testing.T) {
	svc := &stubClientService{}
	h := NewClientHandler(svc)

	body := `{"nome":"João","identidade":"12.345.678-9","idade":42,"tempoCliente":5}`
	c, rec := newEchoContext(t, http.MethodPost, "/clients", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp domain.Client
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "c1" || resp.Age != 42 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestClientCreateAcceptsAgeZero(t *testing.T) {
	svc := &stubClientService{}
	h := NewClientHandler(svc)

	body := `{"nome":"Bebê","identidade":"98.765.432-1","idade":0,"tempoCliente":0}`
	c, rec := newEchoContext(t, http.MethodPost, "/clients", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create with age 0: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.created == nil || svc.created.Age != 0 {
		t.Errorf("service input = %+v", svc.created)
	}
}

func TestClientCreateRejectsMissingFields(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	cases := map[string]string{
		"missing name":     `{"identidade":"12.345.678-9","idade":42}`,
		"missing identity": `{"nome":"João","idade":42}`,
		"negative age":     `{"nome":"João","identidade":"12.345.678-9","idade":-1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newEchoContext(t, http.MethodPost, "/clients", body)
			err := h.Create(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("err = %v, want 400 HTTPError", err)
			}
		})
	}
}

func TestClientDeletePropagatesNotFound(t *testing.T) {
	h := NewClientHandler(&stubClientService{err: domain.ErrClientNotFound})

	c, _ := newEchoContext(t, http.MethodDelete, "/clients/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Delete(c); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("err = %v, want ErrClientNotFound", err)
	}
}
