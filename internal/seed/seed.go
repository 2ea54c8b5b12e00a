// Package seed inserts the fixed sample records the dashboard starts with.
// Seeding only touches collections that are still empty, so restarting the
// process against a warm store is a no-op.
package seed

import (
	"context"

	"github.com/adminboard/adminboard/internal/config"
	"github.com/adminboard/adminboard/internal/domain/article"
	"github.com/adminboard/adminboard/internal/domain/customer"
	"github.com/adminboard/adminboard/internal/domain/product"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/shopspring/decimal"
)

func sampleCustomers() []*customer.Customer {
	samples := []struct {
		name, email, phone, address, location string
		status                                types.Status
	}{
		{"John Doe", "john@example.com", "+1-555-0123", "123 Main St", "New York", types.StatusActive},
		{"Jane Smith", "jane@example.com", "+1-555-0124", "456 Oak Ave", "Los Angeles", types.StatusActive},
		{"Mike Johnson", "mike@example.com", "+1-555-0125", "789 Pine St", "Chicago", types.StatusInactive},
	}

	customers := make([]*customer.Customer, 0, len(samples))
	for _, s := range samples {
		c := &customer.Customer{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
			Name:      s.name,
			Email:     s.email,
			Phone:     s.phone,
			Address:   s.address,
			Location:  s.location,
			BaseModel: types.GetDefaultBaseModel(),
		}
		c.Status = s.status
		customers = append(customers, c)
	}
	return customers
}

func sampleProducts() []*product.Product {
	samples := []struct {
		name, description string
		price             int64
	}{
		{"Premium Plan", "Full-featured premium subscription", 29},
		{"Basic Plan", "Essential features for small teams", 9},
		{"Enterprise Plan", "Advanced features for large organizations", 99},
	}

	products := make([]*product.Product, 0, len(samples))
	for _, s := range samples {
		products = append(products, &product.Product{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
			Name:        s.name,
			Description: s.description,
			Price:       decimal.NewFromInt(s.price),
			Inventory:   1000,
			Category:    "Subscription",
			BaseModel:   types.GetDefaultBaseModel(),
		})
	}
	return products
}

func sampleArticles() []*article.Article {
	samples := []struct {
		title, category, content string
		views                    int
	}{
		{"Getting Started Guide", "Setup", "How to set up your dashboard and invite your team.", 1250},
		{"Account Management", "Account", "Managing profiles, roles and account settings.", 980},
		{"Billing & Payments", "Billing", "Understanding invoices, payment methods and receipts.", 750},
		{"API Documentation", "Developer", "Reference for the dashboard REST endpoints.", 650},
		{"Troubleshooting", "Support", "Common problems and how to resolve them.", 1100},
	}

	articles := make([]*article.Article, 0, len(samples))
	for _, s := range samples {
		articles = append(articles, &article.Article{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ARTICLE),
			Title:     s.title,
			Category:  s.category,
			Content:   s.content,
			Views:     s.views,
			BaseModel: types.GetDefaultBaseModel(),
		})
	}
	return articles
}

// Run populates empty collections with the sample data. Gated by the
// seed.enabled config flag.
func Run(
	cfg *config.Configuration,
	log *logger.Logger,
	customerRepo customer.Repository,
	productRepo product.Repository,
	articleRepo article.Repository,
) error {
	if !cfg.Seed.Enabled {
		return nil
	}

	ctx := context.Background()

	count, err := customerRepo.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, c := range sampleCustomers() {
			if _, err := customerRepo.Create(ctx, c); err != nil {
				return err
			}
		}
		log.Infow("seeded customers", "count", 3)
	}

	count, err = productRepo.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, p := range sampleProducts() {
			if _, err := productRepo.Create(ctx, p); err != nil {
				return err
			}
		}
		log.Infow("seeded products", "count", 3)
	}

	count, err = articleRepo.Count(ctx, nil)
	if err != nil {
		return err
	}
	if count == 0 {
		for _, a := range sampleArticles() {
			if _, err := articleRepo.Create(ctx, a); err != nil {
				return err
			}
		}
		log.Infow("seeded help articles", "count", 5)
	}

	return nil
}
