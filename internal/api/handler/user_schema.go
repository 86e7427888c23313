package handler

type createUserRequest struct {
	Name     string `json:"nome"  validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf"   validate:"required,cpf"`
	Password string `json:"senha" validate:"required,min=6"`
}

// updateUserRequest models a partial update: a nil Senha keeps the stored
// password, a present one replaces it.
type updateUserRequest struct {
	Name     string  `json:"nome"  validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	CPF      string  `json:"cpf"   validate:"required,cpf"`
	Password *string `json:"senha" validate:"omitempty,min=6"`
}

type avatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
