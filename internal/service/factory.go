package service

import (
	"github.com/adminboard/adminboard/internal/config"
	"github.com/adminboard/adminboard/internal/domain/article"
	"github.com/adminboard/adminboard/internal/domain/customer"
	"github.com/adminboard/adminboard/internal/domain/product"
	"github.com/adminboard/adminboard/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	CustomerRepo customer.Repository
	ProductRepo  product.Repository
	ArticleRepo  article.Repository
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	customerRepo customer.Repository,
	productRepo product.Repository,
	articleRepo article.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:       logger,
		Config:       config,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
		ArticleRepo:  articleRepo,
	}
}
