package repository

import (
	"context"

	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/domain/customer"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/types"
)

const customerCollection = "customers"

type customerRepository struct {
	coll *docstore.Collection
	plan listPlan[*customer.Customer]
	log  *logger.Logger
}

func NewCustomerRepository(store *docstore.Store, log *logger.Logger) customer.Repository {
	return &customerRepository{
		coll: store.Collection(customerCollection),
		plan: listPlan[*customer.Customer]{
			status: func(c *customer.Customer) types.Status {
				return c.Status
			},
			searchFields: func(c *customer.Customer) []string {
				return []string{c.Name, c.Email, c.Location}
			},
		},
		log: log,
	}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	r.log.Debugw("creating customer", "customer_id", c.ID)

	stored, err := r.coll.InsertOne(ctx, c.ToDocument())
	if err != nil {
		return nil, err
	}
	return customer.FromDocument(stored), nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	doc, err := r.coll.FindOne(ctx, docstore.Filter{docstore.FieldID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return customer.FromDocument(doc), nil
}

func (r *customerRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*customer.Customer, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	page, _ := r.plan.run(customer.FromDocumentList(docs), filter)
	return page, nil
}

func (r *customerRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return 0, err
	}
	return len(r.plan.filter(customer.FromDocumentList(docs), filter)), nil
}

func (r *customerRepository) Update(ctx context.Context, id string, patch map[string]any) (*customer.Customer, error) {
	res, err := r.coll.UpdateOne(ctx, docstore.Filter{docstore.FieldID: id}, docstore.Document(patch))
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return r.Get(ctx, id)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, docstore.Filter{docstore.FieldID: id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ierr.NewError("customer not found").
			WithHintf("Customer with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
