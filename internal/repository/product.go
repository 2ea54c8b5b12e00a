package repository

import (
	"context"

	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/domain/product"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/types"
)

const productCollection = "products"

type productRepository struct {
	coll *docstore.Collection
	plan listPlan[*product.Product]
	log  *logger.Logger
}

func NewProductRepository(store *docstore.Store, log *logger.Logger) product.Repository {
	return &productRepository{
		coll: store.Collection(productCollection),
		plan: listPlan[*product.Product]{
			status: func(p *product.Product) types.Status {
				return p.Status
			},
			searchFields: func(p *product.Product) []string {
				return []string{p.Name, p.Description, p.Category}
			},
		},
		log: log,
	}
}

func (r *productRepository) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	r.log.Debugw("creating product", "product_id", p.ID)

	stored, err := r.coll.InsertOne(ctx, p.ToDocument())
	if err != nil {
		return nil, err
	}
	return product.FromDocument(stored), nil
}

func (r *productRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	doc, err := r.coll.FindOne(ctx, docstore.Filter{docstore.FieldID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return product.FromDocument(doc), nil
}

func (r *productRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*product.Product, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	page, _ := r.plan.run(product.FromDocumentList(docs), filter)
	return page, nil
}

func (r *productRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return 0, err
	}
	return len(r.plan.filter(product.FromDocumentList(docs), filter)), nil
}

func (r *productRepository) Update(ctx context.Context, id string, patch map[string]any) (*product.Product, error) {
	res, err := r.coll.UpdateOne(ctx, docstore.Filter{docstore.FieldID: id}, docstore.Document(patch))
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, docstore.Filter{docstore.FieldID: id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ierr.NewError("product not found").
			WithHintf("Product with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
