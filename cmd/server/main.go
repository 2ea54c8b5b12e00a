package main

import (
	"context"
	"time"

	"github.com/adminboard/adminboard/internal/api"
	v1 "github.com/adminboard/adminboard/internal/api/v1"
	"github.com/adminboard/adminboard/internal/config"
	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/repository"
	"github.com/adminboard/adminboard/internal/seed"
	"github.com/adminboard/adminboard/internal/service"
	"github.com/adminboard/adminboard/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	_ = godotenv.Load()
	validator.NewValidator()

	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Document store
			docstore.New,

			// Repositories
			repository.NewCustomerRepository,
			repository.NewProductRepository,
			repository.NewArticleRepository,

			// Services
			service.NewServiceParams,
			service.NewCustomerService,
			service.NewProductService,
			service.NewArticleService,

			// HTTP
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			seed.Run,
			startServer,
		),
	)

	app.Run()
}

func provideHandlers(
	log *logger.Logger,
	customerService service.CustomerService,
	productService service.ProductService,
	articleService service.ArticleService,
) api.Handlers {
	return api.Handlers{
		Customer: v1.NewCustomerHandler(customerService, log),
		Product:  v1.NewProductHandler(productService, log),
		Article:  v1.NewArticleHandler(articleService, log),
		Health:   v1.NewHealthHandler(),
	}
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server at %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
