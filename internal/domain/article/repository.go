package article

import (
	"context"

	"github.com/adminboard/adminboard/internal/types"
)

// Repository provides access to help-article storage. Articles are created
// only by the seeder, so the write surface stays minimal.
type Repository interface {
	Create(ctx context.Context, a *Article) (*Article, error)
	Get(ctx context.Context, id string) (*Article, error)
	List(ctx context.Context, filter *types.QueryFilter) ([]*Article, error)
	Count(ctx context.Context, filter *types.QueryFilter) (int, error)
}
