package service

import (
	"context"

	"github.com/adminboard/adminboard/internal/api/dto"
	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/types"
)

// ArticleService serves the read-only help-center articles.
type ArticleService interface {
	GetArticle(ctx context.Context, id string) (*dto.ArticleResponse, error)
	GetArticles(ctx context.Context, filter *types.QueryFilter) (*dto.ListArticlesResponse, error)
}

type articleService struct {
	ServiceParams
}

func NewArticleService(params ServiceParams) ArticleService {
	return &articleService{
		ServiceParams: params,
	}
}

func (s *articleService) GetArticle(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	art, err := s.ArticleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ArticleResponse{Article: art}, nil
}

func (s *articleService) GetArticles(ctx context.Context, filter *types.QueryFilter) (*dto.ListArticlesResponse, error) {
	if filter == nil {
		filter = &types.QueryFilter{}
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	articles, err := s.ArticleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ArticleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		response = append(response, &dto.ArticleResponse{Article: a})
	}

	list := dto.NewListResponse(response,
		types.NewPaginationResponse(filter.GetPage(), filter.GetLimit(), total))
	return &list, nil
}
