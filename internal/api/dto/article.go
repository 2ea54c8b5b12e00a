package dto

import (
	"github.com/adminboard/adminboard/internal/domain/article"
)

type ArticleResponse struct {
	*article.Article
}

// ListArticlesResponse represents the response for listing help articles
type ListArticlesResponse = ListResponse[*ArticleResponse]
