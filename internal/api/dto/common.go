package dto

import (
	"github.com/adminboard/adminboard/internal/types"
)

// Response is the single-record success envelope
type Response[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func NewResponse[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// ListResponse is the paginated success envelope
type ListResponse[T any] struct {
	Success    bool                     `json:"success"`
	Data       []T                      `json:"data"`
	Pagination types.PaginationResponse `json:"pagination"`
}

func NewListResponse[T any](items []T, pagination types.PaginationResponse) ListResponse[T] {
	return ListResponse[T]{
		Success:    true,
		Data:       items,
		Pagination: pagination,
	}
}

// DeleteResponse acknowledges a successful delete
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewDeleteResponse(message string) DeleteResponse {
	return DeleteResponse{Success: true, Message: message}
}
