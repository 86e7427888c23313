package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidPrice = errors.New("price must be greater than zero")
var ErrInvalidPromoPrice = errors.New("promotional price must be lower than current price")

// Product is a supermarket item. PromoPrice is nil when no promotion is
// active; removing a promotion is modelled by nulling it.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"nome"`
	Price       float64  `json:"precoAtual"`
	PromoPrice  *float64 `json:"precoPromocional"`
	Category    string   `json:"tipo"`
	Description string   `json:"descricao"`
	ExpiryDate  string   `json:"dataValidade"`
}

// Validate enforces the price invariants: the current price is positive and
// the promotional price, when present, is strictly lower than it.
func (p *Product) Validate() error {
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	if p.PromoPrice != nil && (*p.PromoPrice <= 0 || *p.PromoPrice >= p.Price) {
		return ErrInvalidPromoPrice
	}
	return nil
}
