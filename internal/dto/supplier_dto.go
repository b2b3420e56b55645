package dto

type CreateSupplierRequest struct {
	CompanyName string  `json:"company_name" validate:"required"`
	NIT         string  `json:"nit"          validate:"required,max=20"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=100"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Phone       *string `json:"phone"        validate:"omitempty,max=30"`
	City        *string `json:"city"         validate:"omitempty,max=80"`
}

type UpdateSupplierRequest struct {
	CompanyName string  `json:"company_name" validate:"required"`
	ContactName *string `json:"contact_name" validate:"omitempty,max=100"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Phone       *string `json:"phone"        validate:"omitempty,max=30"`
	City        *string `json:"city"         validate:"omitempty,max=80"`
	Active      *bool   `json:"active"`
}

type SupplierResponse struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	NIT         string  `json:"nit"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	City        *string `json:"city,omitempty"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
}
