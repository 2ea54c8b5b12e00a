package product

import (
	"context"

	"github.com/adminboard/adminboard/internal/types"
)

// Repository provides access to product storage
type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Product, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
	// Update applies a partial field patch to the product with the given id;
	// fields absent from the patch keep their current values.
	Update(ctx context.Context, id string, patch map[string]any) (*Product, error)
	Delete(ctx context.Context, id string) error
}
