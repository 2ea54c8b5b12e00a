package api

import (
	v1 "github.com/adminboard/adminboard/internal/api/v1"
	"github.com/adminboard/adminboard/internal/config"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/rest/middleware"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Customer *v1.CustomerHandler
	Product  *v1.ProductHandler
	Article  *v1.ArticleHandler
	Health   *v1.HealthHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeAPI {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.RequestLogger(log),
		middleware.CORSMiddleware(cfg),
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	apiGroup := router.Group("/api")
	registerAPIRoutes(apiGroup, handlers)

	return router
}

func registerAPIRoutes(router *gin.RouterGroup, handlers Handlers) {
	// Customer routes
	customers := router.Group("/customers")
	{
		customers.GET("", handlers.Customer.GetCustomers)
		customers.POST("", handlers.Customer.CreateCustomer)
		customers.GET("/:id", handlers.Customer.GetCustomer)
		customers.PUT("/:id", handlers.Customer.UpdateCustomer)
		customers.DELETE("/:id", handlers.Customer.DeleteCustomer)
	}

	// Product routes
	products := router.Group("/products")
	{
		products.GET("", handlers.Product.GetProducts)
		products.POST("", handlers.Product.CreateProduct)
		products.GET("/:id", handlers.Product.GetProduct)
		products.PUT("/:id", handlers.Product.UpdateProduct)
		products.DELETE("/:id", handlers.Product.DeleteProduct)
	}

	// Help articles are read-only
	articles := router.Group("/help-articles")
	{
		articles.GET("", handlers.Article.GetArticles)
		articles.GET("/:id", handlers.Article.GetArticle)
	}
}
