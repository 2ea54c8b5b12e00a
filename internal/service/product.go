package service

import (
	"context"

	"github.com/adminboard/adminboard/internal/api/dto"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/types"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	GetProducts(ctx context.Context, filter *types.QueryFilter) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{
		ServiceParams: params,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prod, err := s.ProductRepo.Create(ctx, req.ToProduct())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created product", "product_id", prod.ID)
	return &dto.ProductResponse{Product: prod}, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	prod, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{Product: prod}, nil
}

func (s *productService) GetProducts(ctx context.Context, filter *types.QueryFilter) (*dto.ListProductsResponse, error) {
	if filter == nil {
		filter = &types.QueryFilter{}
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	products, err := s.ProductRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ProductRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, &dto.ProductResponse{Product: p})
	}

	list := dto.NewListResponse(response,
		types.NewPaginationResponse(filter.GetPage(), filter.GetLimit(), total))
	return &list, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prod, err := s.ProductRepo.Update(ctx, id, req.ToPatch())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated product", "product_id", id)
	return &dto.ProductResponse{Product: prod}, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.ProductRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("deleted product", "product_id", id)
	return nil
}
