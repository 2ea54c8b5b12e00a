package repository

import (
	"context"

	"github.com/adminboard/adminboard/internal/docstore"
	"github.com/adminboard/adminboard/internal/domain/article"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/types"
)

const articleCollection = "help_articles"

type articleRepository struct {
	coll *docstore.Collection
	plan listPlan[*article.Article]
	log  *logger.Logger
}

func NewArticleRepository(store *docstore.Store, log *logger.Logger) article.Repository {
	return &articleRepository{
		coll: store.Collection(articleCollection),
		plan: listPlan[*article.Article]{
			status: func(a *article.Article) types.Status {
				return a.Status
			},
			searchFields: func(a *article.Article) []string {
				return []string{a.Title, a.Category}
			},
		},
		log: log,
	}
}

func (r *articleRepository) Create(ctx context.Context, a *article.Article) (*article.Article, error) {
	stored, err := r.coll.InsertOne(ctx, a.ToDocument())
	if err != nil {
		return nil, err
	}
	return article.FromDocument(stored), nil
}

func (r *articleRepository) Get(ctx context.Context, id string) (*article.Article, error) {
	doc, err := r.coll.FindOne(ctx, docstore.Filter{docstore.FieldID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ierr.NewError("article not found").
			WithHintf("Help article with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return article.FromDocument(doc), nil
}

func (r *articleRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*article.Article, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	page, _ := r.plan.run(article.FromDocumentList(docs), filter)
	return page, nil
}

func (r *articleRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	docs, err := r.coll.Find(ctx, nil)
	if err != nil {
		return 0, err
	}
	return len(r.plan.filter(article.FromDocumentList(docs), filter)), nil
}
