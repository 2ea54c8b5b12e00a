package service

import (
	"testing"

	"github.com/adminboard/adminboard/internal/api/dto"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/testutil"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceSuite struct {
	testutil.BaseServiceTestSuite
	customerService CustomerService
}

func TestCustomerService(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.customerService = NewCustomerService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		CustomerRepo: s.GetStores().CustomerRepo,
	})
}

func (s *CustomerServiceSuite) seedCustomers() {
	requests := []dto.CreateCustomerRequest{
		{Name: "John Doe", Email: "john@example.com", Phone: "+1-555-0123", Address: "123 Main St", Location: "New York"},
		{Name: "Jane Smith", Email: "jane@example.com", Phone: "+1-555-0124", Address: "456 Oak Ave", Location: "Los Angeles"},
		{Name: "Mike Johnson", Email: "mike@example.com", Phone: "+1-555-0125", Address: "789 Pine St", Location: "Chicago", Status: types.StatusInactive},
	}
	for _, req := range requests {
		_, err := s.customerService.CreateCustomer(s.GetContext(), req)
		s.NoError(err)
	}
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	testCases := []struct {
		name          string
		request       dto.CreateCustomerRequest
		expectedError bool
	}{
		{
			name: "successful_creation",
			request: dto.CreateCustomerRequest{
				Name:     "Test Customer",
				Email:    "test@example.com",
				Phone:    "+1-555-0100",
				Address:  "1 Test Way",
				Location: "Boston",
			},
			expectedError: false,
		},
		{
			name: "invalid_email",
			request: dto.CreateCustomerRequest{
				Name:     "Test Customer",
				Email:    "not-an-email",
				Phone:    "+1-555-0100",
				Address:  "1 Test Way",
				Location: "Boston",
			},
			expectedError: true,
		},
		{
			name: "invalid_phone",
			request: dto.CreateCustomerRequest{
				Name:     "Test Customer",
				Email:    "test@example.com",
				Phone:    "call me",
				Address:  "1 Test Way",
				Location: "Boston",
			},
			expectedError: true,
		},
		{
			name: "invalid_status",
			request: dto.CreateCustomerRequest{
				Name:     "Test Customer",
				Email:    "test@example.com",
				Phone:    "+1-555-0100",
				Address:  "1 Test Way",
				Location: "Boston",
				Status:   "Archived",
			},
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.customerService.CreateCustomer(s.GetContext(), tc.request)
			if tc.expectedError {
				s.Error(err)
				s.True(ierr.IsValidation(err))
				return
			}
			s.NoError(err)
			s.NotEmpty(resp.ID)
			s.Equal(tc.request.Name, resp.Name)
			s.Equal(types.StatusActive, resp.Status)
			s.False(resp.CreatedAt.IsZero())
			s.Equal(resp.CreatedAt, resp.UpdatedAt)
		})
	}
}

func (s *CustomerServiceSuite) TestCreateCustomerCollectsAllFieldErrors() {
	_, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:  "",
		Email: "x",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
	details := testutil.ValidationDetails(err)
	s.Contains(details, "name")
	s.Contains(details, "email")
	s.Contains(details, "phone")
	s.Contains(details, "address")
	s.Contains(details, "location")
	s.Equal("Invalid email format", details["email"])
}

func (s *CustomerServiceSuite) TestGetCustomer() {
	resp, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:     "Round Trip",
		Email:    "round@example.com",
		Phone:    "+1-555-0199",
		Address:  "9 Loop Rd",
		Location: "Seattle",
	})
	s.NoError(err)

	got, err := s.customerService.GetCustomer(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(resp.ID, got.ID)
	s.Equal("Round Trip", got.Name)
	s.Equal("round@example.com", got.Email)

	_, err = s.customerService.GetCustomer(s.GetContext(), "nonexistent-id")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestGetCustomers() {
	s.seedCustomers()

	testCases := []struct {
		name          string
		filter        *types.QueryFilter
		expectedCount int
		expectedTotal int
		expectedPages int
	}{
		{
			name:          "no_filter",
			filter:        nil,
			expectedCount: 3,
			expectedTotal: 3,
			expectedPages: 1,
		},
		{
			name:          "status_active",
			filter:        &types.QueryFilter{Status: types.StatusActive, Page: "1", Limit: "10"},
			expectedCount: 2,
			expectedTotal: 2,
			expectedPages: 1,
		},
		{
			name:          "status_inactive",
			filter:        &types.QueryFilter{Status: types.StatusInactive},
			expectedCount: 1,
			expectedTotal: 1,
			expectedPages: 1,
		},
		{
			name:          "search_is_case_insensitive",
			filter:        &types.QueryFilter{Search: "JANE"},
			expectedCount: 1,
			expectedTotal: 1,
			expectedPages: 1,
		},
		{
			name:          "search_matches_location",
			filter:        &types.QueryFilter{Search: "chicago"},
			expectedCount: 1,
			expectedTotal: 1,
			expectedPages: 1,
		},
		{
			name:          "second_page",
			filter:        &types.QueryFilter{Page: "2", Limit: "2"},
			expectedCount: 1,
			expectedTotal: 3,
			expectedPages: 2,
		},
		{
			name:          "page_beyond_results",
			filter:        &types.QueryFilter{Page: "5", Limit: "10"},
			expectedCount: 0,
			expectedTotal: 3,
			expectedPages: 1,
		},
		{
			name:          "unparsable_page_falls_back",
			filter:        &types.QueryFilter{Page: "abc", Limit: "xyz"},
			expectedCount: 3,
			expectedTotal: 3,
			expectedPages: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.customerService.GetCustomers(s.GetContext(), tc.filter)
			s.NoError(err)
			s.Len(resp.Data, tc.expectedCount)
			s.Equal(tc.expectedTotal, resp.Pagination.Total)
			s.Equal(tc.expectedPages, resp.Pagination.TotalPages)
			s.True(resp.Success)
		})
	}
}

func (s *CustomerServiceSuite) TestGetCustomersStatusPartition() {
	s.seedCustomers()

	active, err := s.customerService.GetCustomers(s.GetContext(), &types.QueryFilter{Status: types.StatusActive})
	s.NoError(err)
	inactive, err := s.customerService.GetCustomers(s.GetContext(), &types.QueryFilter{Status: types.StatusInactive})
	s.NoError(err)
	all, err := s.customerService.GetCustomers(s.GetContext(), nil)
	s.NoError(err)

	seen := make(map[string]bool)
	for _, c := range active.Data {
		seen[c.ID] = true
	}
	for _, c := range inactive.Data {
		s.False(seen[c.ID], "status partitions must not overlap")
		seen[c.ID] = true
	}
	s.Len(seen, len(all.Data))
}

func (s *CustomerServiceSuite) TestUpdateCustomer() {
	created, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:     "Before Update",
		Email:    "before@example.com",
		Phone:    "+1-555-0150",
		Address:  "1 Old St",
		Location: "Denver",
	})
	s.NoError(err)

	updated, err := s.customerService.UpdateCustomer(s.GetContext(), created.ID, dto.UpdateCustomerRequest{
		Name:     "After Update",
		Email:    "before@example.com",
		Phone:    "+1-555-0150",
		Address:  "1 Old St",
		Location: "Denver",
		Status:   types.StatusInactive,
	})
	s.NoError(err)
	s.Equal("After Update", updated.Name)
	s.Equal(types.StatusInactive, updated.Status)
	s.Equal(created.CreatedAt, updated.CreatedAt)

	_, err = s.customerService.UpdateCustomer(s.GetContext(), "nonexistent-id", dto.UpdateCustomerRequest{
		Name:     "Ghost",
		Email:    "ghost@example.com",
		Phone:    "+1-555-0000",
		Address:  "Nowhere",
		Location: "Nowhere",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CustomerServiceSuite) TestDeleteCustomer() {
	created, err := s.customerService.CreateCustomer(s.GetContext(), dto.CreateCustomerRequest{
		Name:     "To Delete",
		Email:    "delete@example.com",
		Phone:    "+1-555-0160",
		Address:  "2 Gone St",
		Location: "Austin",
	})
	s.NoError(err)

	s.NoError(s.customerService.DeleteCustomer(s.GetContext(), created.ID))

	_, err = s.customerService.GetCustomer(s.GetContext(), created.ID)
	s.True(ierr.IsNotFound(err))

	// Second delete reports not found.
	err = s.customerService.DeleteCustomer(s.GetContext(), created.ID)
	s.True(ierr.IsNotFound(err))
}
