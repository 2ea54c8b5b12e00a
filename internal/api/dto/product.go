package dto

import (
	"github.com/adminboard/adminboard/internal/domain/product"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/adminboard/adminboard/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Price and Inventory are pointers so that an absent field fails the
// required rule instead of masquerading as zero.
type CreateProductRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Price       *float64     `json:"price" validate:"required,gt=0"`
	Inventory   *int         `json:"inventory" validate:"required,gte=0"`
	Category    string       `json:"category" validate:"required"`
	Status      types.Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateProductRequest carries the full record shape; updates validate
// exactly like creates.
type UpdateProductRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Price       *float64     `json:"price" validate:"required,gt=0"`
	Inventory   *int         `json:"inventory" validate:"required,gte=0"`
	Category    string       `json:"category" validate:"required"`
	Status      types.Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type ProductResponse struct {
	*product.Product
}

// ListProductsResponse represents the response for listing products
type ListProductsResponse = ListResponse[*ProductResponse]

func (r *CreateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateProductRequest) ToProduct() *product.Product {
	p := &product.Product{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(lo.FromPtr(r.Price)),
		Inventory:   lo.FromPtr(r.Inventory),
		Category:    r.Category,
		BaseModel:   types.GetDefaultBaseModel(),
	}
	if r.Status != "" {
		p.Status = r.Status
	}
	return p
}

func (r *UpdateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ToPatch builds the field patch applied to the stored record. Status
// defaults to Active when omitted, matching create semantics.
func (r *UpdateProductRequest) ToPatch() map[string]any {
	status := r.Status
	if status == "" {
		status = types.StatusActive
	}
	return map[string]any{
		"name":        r.Name,
		"description": r.Description,
		"price":       decimal.NewFromFloat(lo.FromPtr(r.Price)),
		"inventory":   lo.FromPtr(r.Inventory),
		"category":    r.Category,
		"status":      string(status),
	}
}
