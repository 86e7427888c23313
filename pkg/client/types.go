package client

import "github.com/supermercado/backoffice-system/pkg/cpf"

// User is a staff account as returned by the API.
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"nome"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	AvatarURL *string `json:"avatarUrl"`
}

// Product is a supermarket item. PromoPrice is nil when no promotion is
// active.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"nome"`
	Price       float64  `json:"precoAtual"`
	PromoPrice  *float64 `json:"precoPromocional"`
	Category    string   `json:"tipo"`
	Description string   `json:"descricao"`
	ExpiryDate  string   `json:"dataValidade"`
}

// Customer is a loyalty-program client (the /clients resource).
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Identity string `json:"identidade"`
	Age      int    `json:"idade"`
	Tenure   int    `json:"tempoCliente"`
}

// ProductInput carries the fields accepted when creating or updating a
// product. Leave PromoPrice nil to remove or omit the promotion.
type ProductInput struct {
	Name        string   `json:"nome"`
	Price       float64  `json:"precoAtual"`
	PromoPrice  *float64 `json:"precoPromocional,omitempty"`
	Category    string   `json:"tipo"`
	Description string   `json:"descricao"`
	ExpiryDate  string   `json:"dataValidade"`
}

// validate rejects the input locally before any request is sent.
func (in ProductInput) validate() error {
	if in.Price <= 0 {
		return ErrInvalidPrice
	}
	if in.PromoPrice != nil && (*in.PromoPrice <= 0 || *in.PromoPrice >= in.Price) {
		return ErrInvalidPromoPrice
	}
	return nil
}

// UserInput carries the fields accepted when creating or updating a staff
// user. Password is required on create and optional on update.
type UserInput struct {
	Name     string  `json:"nome"`
	Email    string  `json:"email"`
	CPF      string  `json:"cpf"`
	Password *string `json:"senha,omitempty"`
}

func (in UserInput) validate(requirePassword bool) error {
	if !cpf.Valid(in.CPF) {
		return ErrInvalidCPF
	}
	if requirePassword && (in.Password == nil || *in.Password == "") {
		return ErrPasswordRequired
	}
	return nil
}

// CustomerInput carries the fields accepted when creating or updating a
// loyalty client.
type CustomerInput struct {
	Name     string `json:"nome"`
	Identity string `json:"identidade"`
	Age      int    `json:"idade"`
	Tenure   int    `json:"tempoCliente"`
}
