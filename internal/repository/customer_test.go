package repository

import (
	"context"
	"testing"

	"github.com/adminboard/adminboard/internal/config"
	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/domain/customer"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/stretchr/testify/suite"
)

type CustomerRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	repo customer.Repository
}

func TestCustomerRepository(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}

func (s *CustomerRepositorySuite) SetupTest() {
	log, err := logger.NewLogger(config.GetDefaultConfig())
	s.Require().NoError(err)
	s.ctx = context.Background()
	s.repo = NewCustomerRepository(docstore.New(), log)
}

func (s *CustomerRepositorySuite) newCustomer(name string) *customer.Customer {
	return &customer.Customer{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		Name:      name,
		Email:     "test@example.com",
		Phone:     "+1 555-0100",
		Address:   "1 Main St",
		Location:  "Springfield",
		BaseModel: types.GetDefaultBaseModel(),
	}
}

func (s *CustomerRepositorySuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, s.newCustomer("Alice"))
	s.NoError(err)
	s.NotEmpty(created.ID)
	s.False(created.CreatedAt.IsZero())
	s.Equal(types.StatusActive, created.Status)

	got, err := s.repo.Get(s.ctx, created.ID)
	s.NoError(err)
	s.Equal("Alice", got.Name)

	_, err = s.repo.Get(s.ctx, "cust_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerRepositorySuite) TestPartialPatchPreservesUntouchedFields() {
	created, err := s.repo.Create(s.ctx, s.newCustomer("Alice"))
	s.NoError(err)

	updated, err := s.repo.Update(s.ctx, created.ID, map[string]any{
		"location": "Shelbyville",
	})
	s.NoError(err)

	s.Equal("Shelbyville", updated.Location)
	s.Equal("Alice", updated.Name)
	s.Equal("test@example.com", updated.Email)
	s.Equal("+1 555-0100", updated.Phone)
	s.Equal("1 Main St", updated.Address)
	s.Equal(created.CreatedAt, updated.CreatedAt)
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func (s *CustomerRepositorySuite) TestUpdateCannotChangeIdentity() {
	created, err := s.repo.Create(s.ctx, s.newCustomer("Alice"))
	s.NoError(err)

	updated, err := s.repo.Update(s.ctx, created.ID, map[string]any{
		"_id":  "cust_hijacked",
		"name": "Bob",
	})
	s.NoError(err)
	s.Equal(created.ID, updated.ID)
	s.Equal("Bob", updated.Name)
}

func (s *CustomerRepositorySuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, "cust_missing", map[string]any{"name": "Nobody"})
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerRepositorySuite) TestDelete() {
	created, err := s.repo.Create(s.ctx, s.newCustomer("Alice"))
	s.NoError(err)

	s.NoError(s.repo.Delete(s.ctx, created.ID))

	_, err = s.repo.Get(s.ctx, created.ID)
	s.True(ierr.IsNotFound(err))

	err = s.repo.Delete(s.ctx, created.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerRepositorySuite) TestListAndCount() {
	names := []string{"Alice", "Bob", "Carol"}
	for _, name := range names {
		c := s.newCustomer(name)
		if name == "Carol" {
			c.Status = types.StatusInactive
		}
		_, err := s.repo.Create(s.ctx, c)
		s.NoError(err)
	}

	all, err := s.repo.List(s.ctx, nil)
	s.NoError(err)
	s.Len(all, 3)

	active := &types.QueryFilter{Status: types.StatusActive}
	listed, err := s.repo.List(s.ctx, active)
	s.NoError(err)
	s.Len(listed, 2)

	count, err := s.repo.Count(s.ctx, active)
	s.NoError(err)
	s.Equal(2, count)
}
