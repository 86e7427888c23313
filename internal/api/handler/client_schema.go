package handler

type clientRequest struct {
	Name     string `json:"nome"         validate:"required"`
	Identity string `json:"identidade"   validate:"required"`
	Age      int    `json:"idade"        validate:"gte=0"`
	Tenure   int    `json:"tempoCliente" validate:"gte=0"`
}
