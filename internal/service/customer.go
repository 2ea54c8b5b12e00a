package service

import (
	"context"

	"github.com/adminboard/adminboard/internal/api/dto"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/types"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error)
	GetCustomers(ctx context.Context, filter *types.QueryFilter) (*dto.ListCustomersResponse, error)
	UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	ServiceParams
}

func NewCustomerService(params ServiceParams) CustomerService {
	return &customerService{
		ServiceParams: params,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Create(ctx, req.ToCustomer())
	if err != nil {
		// No need to wrap the error as the repository already returns
		// properly formatted errors
		return nil, err
	}

	s.Logger.Infow("created customer", "customer_id", cust.ID)
	return &dto.CustomerResponse{Customer: cust}, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	cust, err := s.CustomerRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CustomerResponse{Customer: cust}, nil
}

func (s *customerService) GetCustomers(ctx context.Context, filter *types.QueryFilter) (*dto.ListCustomersResponse, error) {
	if filter == nil {
		filter = &types.QueryFilter{}
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	customers, err := s.CustomerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.CustomerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		response = append(response, &dto.CustomerResponse{Customer: c})
	}

	list := dto.NewListResponse(response,
		types.NewPaginationResponse(filter.GetPage(), filter.GetLimit(), total))
	return &list, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Update(ctx, id, req.ToPatch())
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("updated customer", "customer_id", id)
	return &dto.CustomerResponse{Customer: cust}, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := s.CustomerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.Logger.Infow("deleted customer", "customer_id", id)
	return nil
}
