package customer

import (
	"context"

	"github.com/adminboard/adminboard/internal/types"
)

// Repository provides access to customer storage
type Repository interface {
	Create(ctx context.Context, c *Customer) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Customer, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
	// Update applies a partial field patch to the customer with the given
	// id; fields absent from the patch keep their current values.
	Update(ctx context.Context, id string, patch map[string]any) (*Customer, error)
	Delete(ctx context.Context, id string) error
}
