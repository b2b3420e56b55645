package dto

type CreateCostCenterRequest struct {
	Code        string  `json:"code"        validate:"required,max=20"`
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=300"`
}

type UpdateCostCenterRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	Active      *bool   `json:"active"`
}

type CostCenterResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
}
