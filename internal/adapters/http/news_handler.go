package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

// NewsHandler handles news lookup requests
type NewsHandler struct {
	newsService ports.NewsServicePort
	logger      *logger.Logger
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService ports.NewsServicePort, appLogger *logger.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		logger:      appLogger,
	}
}

// GetArticles returns articles filtered by category or search term. With
// neither parameter, the fixed default category set is requested.
func (h *NewsHandler) GetArticles(c echo.Context) error {
	filter := ports.NewsFilter{
		Category:   entities.NewsCategory(c.QueryParam("category")),
		SearchTerm: c.QueryParam("q"),
	}

	articles, err := h.newsService.Articles(c.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidNewsFilter) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown news category")
		}
		if errors.Is(err, entities.ErrNewsUnavailable) {
			h.logger.Error("News fetch failed", "error", err)
			return echo.NewHTTPError(http.StatusBadGateway, "News provider unavailable")
		}
		h.logger.Error("News fetch failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve articles")
	}

	return c.JSON(http.StatusOK, ArticleListResponse{Articles: articles})
}

// ArticleListResponse wraps an article list.
type ArticleListResponse struct {
	Articles []*entities.Article `json:"articles"`
}
