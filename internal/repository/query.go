package repository

import (
	"strings"

	"github.com/adminboard/adminboard/internal/types"
	"github.com/samber/lo"
)

// listPlan is the shared list pipeline: status equality first, then a
// case-insensitive substring search ORed across the resource's search
// fields, then the offset/limit slice. Both resource repositories are thin
// schema bindings over this one executor, so the filter semantics cannot
// drift between them.
type listPlan[T any] struct {
	status       func(T) types.Status
	searchFields func(T) []string
}

// run filters items and returns the requested page plus the post-filter,
// pre-pagination total. Surviving records keep their insertion order; there
// is no secondary sort key.
func (p listPlan[T]) run(items []T, f *types.QueryFilter) ([]T, int) {
	filtered := p.filter(items, f)
	if f == nil {
		return filtered, len(filtered)
	}
	return types.Paginate(filtered, f.GetOffset(), f.GetLimit()), len(filtered)
}

func (p listPlan[T]) filter(items []T, f *types.QueryFilter) []T {
	if f == nil {
		return items
	}

	if status := f.GetStatus(); status != "" {
		items = lo.Filter(items, func(item T, _ int) bool {
			return p.status(item) == status
		})
	}

	if term := strings.ToLower(f.GetSearch()); term != "" {
		items = lo.Filter(items, func(item T, _ int) bool {
			return lo.SomeBy(p.searchFields(item), func(field string) bool {
				return strings.Contains(strings.ToLower(field), term)
			})
		})
	}

	return items
}
