package handler

import "github.com/supermercado/backoffice-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type recoverPasswordRequest struct {
	Email       string `json:"email"     validate:"required,email"`
	CPF         string `json:"cpf"       validate:"required,cpf"`
	NewPassword string `json:"novaSenha" validate:"required,min=6"`
}

type messageResponse struct {
	Message string `json:"message"`
}
