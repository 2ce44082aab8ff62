package handler

import (
	"net/http"

	"github.com/portfolio/backend/internal/model"
)

// ArticleLister returns articles, optionally narrowed to one category.
// *content.Table implements it.
type ArticleLister interface {
	List(category string) []model.Article
}

// ArticleHandler serves the static article list.
type ArticleHandler struct {
	articles ArticleLister
}

// NewArticleHandler creates an ArticleHandler over the given list.
func NewArticleHandler(articles ArticleLister) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List handles GET /api/articles?category=C.
// An unknown or empty category returns every article.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles := h.articles.List(r.URL.Query().Get("category"))
	if articles == nil {
		articles = []model.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}
