package types

// PaginationResponse is the pagination metadata attached to every list
// response. Total always reflects the post-filter, pre-pagination result set.
type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationResponse computes the metadata for a page of results.
// TotalPages is ceil(total/limit) and zero when the result set is empty.
func NewPaginationResponse(page, limit, total int) PaginationResponse {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate slices items according to offset/limit. Out-of-range offsets
// yield an empty slice rather than an error.
func Paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) || offset < 0 {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
