package dto

type CreateClientRequest struct {
	Name         string  `json:"name"          validate:"required"`
	DocumentType string  `json:"document_type" validate:"required,oneof=NIT CC CE"`
	Document     string  `json:"document"      validate:"required,max=20"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Phone        *string `json:"phone"         validate:"omitempty,max=30"`
	City         *string `json:"city"          validate:"omitempty,max=80"`
	Address      *string `json:"address"       validate:"omitempty,max=200"`
}

type UpdateClientRequest struct {
	Name    string  `json:"name"    validate:"required"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"   validate:"omitempty,max=30"`
	City    *string `json:"city"    validate:"omitempty,max=80"`
	Address *string `json:"address" validate:"omitempty,max=200"`
	Active  *bool   `json:"active"`
}

type ClientResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DocumentType string  `json:"document_type"`
	Document     string  `json:"document"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	City         *string `json:"city,omitempty"`
	Address      *string `json:"address,omitempty"`
	Active       bool    `json:"active"`
	CreatedAt    string  `json:"created_at"`
}
