package handler

// productRequest is shared by create and update; the original panel always
// sends the full entity. ltfield enforces promo < current before the
// service re-checks the same invariant.
type productRequest struct {
	Name        string   `json:"nome"             validate:"required"`
	Price       float64  `json:"precoAtual"       validate:"required,gt=0"`
	PromoPrice  *float64 `json:"precoPromocional" validate:"omitempty,gt=0,ltfield=Price"`
	Category    string   `json:"tipo"             validate:"required"`
	Description string   `json:"descricao"`
	ExpiryDate  string   `json:"dataValidade"     validate:"required"`
}
