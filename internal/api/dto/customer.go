package dto

import (
	"github.com/adminboard/adminboard/internal/domain/customer"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/adminboard/adminboard/internal/validator"
)

type CreateCustomerRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required,phone"`
	Address  string       `json:"address" validate:"required"`
	Location string       `json:"location" validate:"required"`
	Status   types.Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateCustomerRequest carries the full record shape; updates validate
// exactly like creates.
type UpdateCustomerRequest struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required,phone"`
	Address  string       `json:"address" validate:"required"`
	Location string       `json:"location" validate:"required"`
	Status   types.Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type CustomerResponse struct {
	*customer.Customer
}

// ListCustomersResponse represents the response for listing customers
type ListCustomersResponse = ListResponse[*CustomerResponse]

func (r *CreateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCustomerRequest) ToCustomer() *customer.Customer {
	c := &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
		Location:  r.Location,
		BaseModel: types.GetDefaultBaseModel(),
	}
	if r.Status != "" {
		c.Status = r.Status
	}
	return c
}

func (r *UpdateCustomerRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToPatch builds the field patch applied to the stored record. Status
// defaults to Active when omitted, matching create semantics.
func (r *UpdateCustomerRequest) ToPatch() map[string]any {
	status := r.Status
	if status == "" {
		status = types.StatusActive
	}
	return map[string]any{
		"name":     r.Name,
		"email":    r.Email,
		"phone":    r.Phone,
		"address":  r.Address,
		"location": r.Location,
		"status":   string(status),
	}
}
