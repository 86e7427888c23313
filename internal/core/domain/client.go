package domain

import "errors"

var ErrClientNotFound = errors.New("client not found")
var ErrDuplicateClient = errors.New("client identity already registered")

// Client is a loyalty-program customer of the supermarket, unrelated to the
// staff User that manages the panel.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Identity string `json:"identidade"`
	Age      int    `json:"idade"`
	// Tenure is how long the person has been a customer, in years.
	Tenure int `json:"tempoCliente"`
}
