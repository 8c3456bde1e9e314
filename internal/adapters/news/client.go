// Package news implements the outbound client for the hosted news API.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/daymark/core/internal/domain/entities"
	"github.com/daymark/core/internal/infrastructure/config"
	"github.com/daymark/core/internal/infrastructure/logger"
	"github.com/daymark/core/internal/ports"
)

// Client talks to the news API. One request per lookup: no caching and no
// retries, a failed fetch is surfaced once to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a news API client from configuration.
func NewClient(cfg config.NewsConfig, appLogger *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     appLogger.WithComponent("news_client"),
	}
}

type articlePayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage"`
	PublishedAt string  `json:"publishedAt"`
}

type responsePayload struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []articlePayload `json:"articles"`
}

// FetchArticles looks up articles for the given filter. A category maps to
// the top-headlines endpoint, a search term to the everything endpoint, and
// with neither set the full default category list is requested in a single
// top-headlines call.
func (c *Client) FetchArticles(ctx context.Context, filter ports.NewsFilter) ([]*entities.Article, error) {
	endpoint, err := c.buildURL(filter)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build news request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("News fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", entities.ErrNewsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("News fetch rejected", "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", entities.ErrNewsUnavailable, resp.StatusCode)
	}

	var payload responsePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", entities.ErrNewsUnavailable, err)
	}

	if payload.Status != "ok" {
		c.logger.Warnw("News fetch returned error status", "status", payload.Status, "message", payload.Message)
		return nil, fmt.Errorf("%w: provider status %q", entities.ErrNewsUnavailable, payload.Status)
	}

	articles := make([]*entities.Article, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		articles = append(articles, &entities.Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			ImageURL:    item.URLToImage,
			PublishedAt: parsePublishedAt(item.PublishedAt),
		})
	}

	return articles, nil
}

func (c *Client) buildURL(filter ports.NewsFilter) (string, error) {
	values := url.Values{}
	values.Set("apiKey", c.apiKey)

	switch {
	case filter.Category != "":
		if !filter.Category.IsValid() {
			return "", entities.ErrInvalidNewsFilter
		}
		values.Set("category", string(filter.Category))
		return c.baseURL + "/top-headlines?" + values.Encode(), nil

	case filter.SearchTerm != "":
		values.Set("q", filter.SearchTerm)
		return c.baseURL + "/everything?" + values.Encode(), nil

	default:
		names := make([]string, 0, len(entities.DefaultNewsCategories))
		for _, category := range entities.DefaultNewsCategories {
			names = append(names, string(category))
		}
		values.Set("category", strings.Join(names, ","))
		return c.baseURL + "/top-headlines?" + values.Encode(), nil
	}
}

// parsePublishedAt parses the provider timestamp, returning nil when the
// field is absent or malformed rather than failing the whole lookup.
func parsePublishedAt(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &parsed
}
