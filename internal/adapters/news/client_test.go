package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/config"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	appLogger, err := logger.New(config.LoggerConfig{Level: "error", Format: "json"})
	require.NoError(t, err)
	return appLogger
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.NewsConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, testLogger(t))
}

func TestFetchArticles_Category(t *testing.T) {
	var gotPath, gotCategory, gotKey string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCategory = r.URL.Query().Get("category")
		gotKey = r.URL.Query().Get("apiKey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"articles": [
				{
					"title": "Kernel 7.0 released",
					"description": "Big release",
					"url": "https://example.com/kernel",
					"urlToImage": "https://example.com/kernel.png",
					"publishedAt": "2024-03-05T08:30:00Z"
				}
			]
		}`))
	})

	articles, err := client.FetchArticles(context.Background(), ports.NewsFilter{
		Category: entities.NewsCategoryTechnology,
	})
	require.NoError(t, err)

	require.Equal(t, "/top-headlines", gotPath)
	require.Equal(t, "technology", gotCategory)
	require.Equal(t, "test-key", gotKey)

	require.Len(t, articles, 1)
	require.Equal(t, "Kernel 7.0 released", articles[0].Title)
	require.NotNil(t, articles[0].ImageURL)
	require.Equal(t, "https://example.com/kernel.png", *articles[0].ImageURL)
	require.NotNil(t, articles[0].PublishedAt)
	require.Equal(t, time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC), articles[0].PublishedAt.UTC())
}

func TestFetchArticles_SearchTerm(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"status": "ok", "articles": []}`))
	})

	articles, err := client.FetchArticles(context.Background(), ports.NewsFilter{
		SearchTerm: "go generics",
	})
	require.NoError(t, err)
	require.Empty(t, articles)
	require.Equal(t, "/everything", gotPath)
	require.Equal(t, "go generics", gotQuery)
}

func TestFetchArticles_DefaultCategories(t *testing.T) {
	var gotCategory string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("category")
		w.Write([]byte(`{"status": "ok", "articles": []}`))
	})

	_, err := client.FetchArticles(context.Background(), ports.NewsFilter{})
	require.NoError(t, err)
	require.Equal(t,
		"national,international,sports,politics,business,health,science,technology,education",
		gotCategory,
	)
}

func TestFetchArticles_InvalidCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid category")
	})

	_, err := client.FetchArticles(context.Background(), ports.NewsFilter{
		Category: entities.NewsCategory("celebrity"),
	})
	require.ErrorIs(t, err, entities.ErrInvalidNewsFilter)
}

func TestFetchArticles_ProviderErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "apiKeyInvalid"}`))
	})

	_, err := client.FetchArticles(context.Background(), ports.NewsFilter{
		SearchTerm: "anything",
	})
	require.ErrorIs(t, err, entities.ErrNewsUnavailable)
}

func TestFetchArticles_HTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FetchArticles(context.Background(), ports.NewsFilter{
		SearchTerm: "anything",
	})
	require.ErrorIs(t, err, entities.ErrNewsUnavailable)
}

func TestFetchArticles_MalformedPublishedAt(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "ok",
			"articles": [{"title": "No date", "url": "https://example.com", "publishedAt": "yesterday"}]
		}`))
	})

	articles, err := client.FetchArticles(context.Background(), ports.NewsFilter{SearchTerm: "x"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Nil(t, articles[0].PublishedAt)
	require.Nil(t, articles[0].ImageURL)
}
