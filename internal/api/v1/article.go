package v1

import (
	"net/http"

	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/adminboard/adminboard/internal/api/dto"
	"github.com/adminboard/adminboard/internal/logger"
	"github.com/adminboard/adminboard/internal/service"
	"github.com/adminboard/adminboard/internal/types"
	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	service service.ArticleService
	log     *logger.Logger
}

func NewArticleHandler(service service.ArticleService, log *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		service: service,
		log:     log,
	}
}

// GetArticle handles GET /api/help-articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetArticle(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// GetArticles handles GET /api/help-articles?page&limit&search&status
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetArticles(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
