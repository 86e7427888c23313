package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUser = errors.New("email or cpf already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidCPF = errors.New("invalid cpf")
var ErrRecoveryMismatch = errors.New("email and cpf do not match any user")

// User models a staff member of the back office. The password hash is never
// serialized into API responses.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"nome"`
	Email        string  `json:"email"`
	CPF          string  `json:"cpf"`
	PasswordHash string  `json:"-"`
	AvatarURL    *string `json:"avatarUrl"`
}
