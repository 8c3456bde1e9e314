package services

import (
	"context"
	"fmt"

	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

// NewsService handles news lookups through the configured provider.
type NewsService struct {
	provider ports.NewsProvider
	logger   *logger.Logger
}

// NewNewsService creates a new news service
func NewNewsService(provider ports.NewsProvider, appLogger *logger.Logger) *NewsService {
	return &NewsService{
		provider: provider,
		logger:   appLogger,
	}
}

// Articles fetches articles for the filter. A category takes precedence
// over a search term when both are supplied, matching the lookup order of
// the original feed. Failures are surfaced once; there is no retry.
func (s *NewsService) Articles(ctx context.Context, filter ports.NewsFilter) ([]*entities.Article, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, entities.ErrInvalidNewsFilter
	}
	if filter.Category != "" {
		filter.SearchTerm = ""
	}

	articles, err := s.provider.FetchArticles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}

	s.logger.Debugw("Articles fetched", "count", len(articles), "category", filter.Category, "search", filter.SearchTerm)

	return articles, nil
}
