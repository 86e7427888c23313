package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/supermercado/backoffice-system/internal/api/metrics"
	"github.com/supermercado/backoffice-system/internal/core/domain"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

type stubUserService struct {
	created *ports.CreateUserInput
	err     error
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.User{{ID: "u1", Name: "Admin", Email: "admin@mercado.com"}}, nil
}

func (s *stubUserService) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &input
	return &domain.User{ID: "u1", Name: input.Name, Email: input.Email, CPF: input.CPF}, nil
}

func (s *stubUserService) Update(_ context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id, Name: input.Name, Email: input.Email, CPF: input.CPF}, nil
}

func (s *stubUserService) Delete(_ context.Context, _ string) error {
	return s.err
}

func (s *stubUserService) SetAvatar(_ context.Context, id, _ string, _ io.Reader) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	url := "/uploads/abc.png"
	return &domain.User{ID: id, AvatarURL: &url}, nil
}

func (s *stubUserService) RemoveAvatar(_ context.Context, id string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id}, nil
}

func TestUserCreateReturnsEntity(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	body := `{"nome":"Maria","email":"maria@mercado.com","cpf":"111.444.777-35","senha":"123456"}`
	c, rec := newEchoContext(t, http.MethodPost, "/users", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != "u1" || resp.CPF != "111.444.777-35" {
		t.Errorf("resp = %+v", resp)
	}
	if svc.created == nil || svc.created.Password != "123456" {
		t.Errorf("service input = %+v", svc.created)
	}
}

func TestUserCreateRejectsInvalidCPF(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	body := `{"nome":"Maria","email":"maria@mercado.com","cpf":"111.444.777-36","senha":"123456"}`
	c, _ := newEchoContext(t, http.MethodPost, "/users", body)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
	if svc.created != nil {
		t.Fatal("invalid input must not reach the service")
	}
}

func TestCPFRejectionMetricCountsOnlyCPFFailures(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	cpfCounter := metrics.ValidationRejectionsTotal.WithLabelValues("cpf")

	// A bad e-mail with a valid CPF must not move the cpf counter.
	before := testutil.ToFloat64(cpfCounter)
	body := `{"nome":"Maria","email":"not-an-email","cpf":"111.444.777-35","senha":"123456"}`
	c, _ := newEchoContext(t, http.MethodPost, "/users", body)
	if err := h.Create(c); err == nil {
		t.Fatal("Create should fail on invalid email")
	}
	if got := testutil.ToFloat64(cpfCounter); got != before {
		t.Fatalf("cpf counter = %v after unrelated failure, want %v", got, before)
	}

	body = `{"nome":"Maria","email":"maria@mercado.com","cpf":"111.444.777-36","senha":"123456"}`
	c, _ = newEchoContext(t, http.MethodPost, "/users", body)
	if err := h.Create(c); err == nil {
		t.Fatal("Create should fail on invalid cpf")
	}
	if got := testutil.ToFloat64(cpfCounter); got != before+1 {
		t.Fatalf("cpf counter = %v, want %v", got, before+1)
	}
}

func TestUserUpdateWithoutPassword(t *testing.T) {
	svc := &stubUserService{}
	h := NewUserHandler(svc)

	body := `{"nome":"Maria","email":"maria@mercado.com","cpf":"111.444.777-35"}`
	c, rec := newEchoContext(t, http.MethodPut, "/users/u1", body)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestUserCreatePropagatesDuplicate(t *testing.T) {
	h := NewUserHandler(&stubUserService{err: domain.ErrDuplicateUser})

	body := `{"nome":"Maria","email":"maria@mercado.com","cpf":"111.444.777-35","senha":"123456"}`
	c, _ := newEchoContext(t, http.MethodPost, "/users", body)
	if err := h.Create(c); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("err = %v, want ErrDuplicateUser", err)
	}
}
