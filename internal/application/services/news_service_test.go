package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/config"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

type newsProviderMock struct {
	mock.Mock
}

func (m *newsProviderMock) FetchArticles(ctx context.Context, filter ports.NewsFilter) ([]*entities.Article, error) {
	args := m.Called(ctx, filter)

	var articles []*entities.Article
	if value := args.Get(0); value != nil {
		articles = value.([]*entities.Article)
	}
	return articles, args.Error(1)
}

func newTestNewsService(t *testing.T, provider ports.NewsProvider) *NewsService {
	t.Helper()
	appLogger, err := logger.New(config.LoggerConfig{Level: "error", Format: "json"})
	require.NoError(t, err)
	return NewNewsService(provider, appLogger)
}

func TestArticles_InvalidCategory(t *testing.T) {
	provider := new(newsProviderMock)
	service := newTestNewsService(t, provider)

	_, err := service.Articles(context.Background(), ports.NewsFilter{
		Category: entities.NewsCategory("gossip"),
	})
	require.ErrorIs(t, err, entities.ErrInvalidNewsFilter)
	provider.AssertNotCalled(t, "FetchArticles")
}

func TestArticles_CategoryTakesPrecedenceOverSearch(t *testing.T) {
	provider := new(newsProviderMock)
	provider.On("FetchArticles", mock.Anything, ports.NewsFilter{
		Category: entities.NewsCategorySports,
	}).Return([]*entities.Article{{Title: "Final score"}}, nil).Once()

	service := newTestNewsService(t, provider)

	articles, err := service.Articles(context.Background(), ports.NewsFilter{
		Category:   entities.NewsCategorySports,
		SearchTerm: "ignored",
	})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Equal(t, "Final score", articles[0].Title)
	provider.AssertExpectations(t)
}

func TestArticles_ProviderFailure(t *testing.T) {
	provider := new(newsProviderMock)
	provider.On("FetchArticles", mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout")).Once()

	service := newTestNewsService(t, provider)

	_, err := service.Articles(context.Background(), ports.NewsFilter{SearchTerm: "go"})
	require.Error(t, err)
	provider.AssertExpectations(t)
}
