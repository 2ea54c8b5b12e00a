package testutil

import (
	"context"

	"github.com/adminboard/adminboard/internal/config"
	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/domain/article"
	"github.com/adminboard/adminboard/internal/domain/customer"
	"github.com/adminboard/adminboard/internal/domain/product"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/repository"
	"github.com/adminboard/adminboard/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
	ArticleRepo  article.Repository
}

// BaseServiceTestSuite provides common functionality for all service test
// suites: a fresh document store and repositories per test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *docstore.Store
	stores Stores
	logger *logger.Logger
	config *config.Configuration
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	s.config = config.GetDefaultConfig()

	var err error
	s.logger, err = logger.NewLogger(s.config)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = docstore.New()
	s.stores = Stores{
		CustomerRepo: repository.NewCustomerRepository(s.store, s.logger),
		ProductRepo:  repository.NewProductRepository(s.store, s.logger),
		ArticleRepo:  repository.NewArticleRepository(s.store, s.logger),
	}
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.store.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStore() *docstore.Store {
	return s.store
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
