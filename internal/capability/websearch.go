package capability

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dmaher/maestro/internal/config"
)

// Default endpoints per search provider. The DuckDuckGo instant answer
// API is the only provider that needs no API key.
var searchEndpoints = map[string]string{
	"duckduckgo": "https://api.duckduckgo.com/",
	"searx":      "https://searx.be/search",
}

// WebSearch performs web searches against a public search API and
// normalizes the provider-specific response into a flat result list.
type WebSearch struct {
	provider string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewWebSearch creates a web search adapter for the configured provider.
func NewWebSearch(cfg config.SearchConfig, logger *slog.Logger) *WebSearch {
	provider := cfg.Provider
	if provider == "" {
		provider = "duckduckgo"
	}
	endpoint, ok := searchEndpoints[provider]
	if !ok {
		endpoint = searchEndpoints["duckduckgo"]
	}

	return &WebSearch{
		provider: provider,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger.With("capability", "web_search"),
	}
}

// Execute runs a search for the command string. Options:
// num_results (default 10) caps the returned result list.
func (w *WebSearch) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	numResults := intOption(options, "num_results", 10)

	w.logger.Info("searching", "query", command, "provider", w.provider)

	query := url.Values{}
	query.Set("q", command)
	query.Set("format", "json")
	query.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			w.logger.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	results := parseInstantAnswers(body, numResults)

	w.logger.Info("search completed", "query", command, "result_count", len(results))

	return map[string]any{
		"type":      "web_search",
		"query":     command,
		"provider":  w.provider,
		"results":   results,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// parseInstantAnswers extracts up to limit results from a DuckDuckGo
// instant answer response: the abstract (if any) first, then related
// topics.
func parseInstantAnswers(body []byte, limit int) []map[string]any {
	results := make([]map[string]any, 0, limit)

	root := gjson.ParseBytes(body)

	if abstract := root.Get("AbstractText"); abstract.String() != "" {
		results = append(results, map[string]any{
			"title":   root.Get("Heading").String(),
			"snippet": abstract.String(),
			"url":     root.Get("AbstractURL").String(),
			"source":  root.Get("AbstractSource").String(),
		})
	}

	root.Get("RelatedTopics").ForEach(func(_, topic gjson.Result) bool {
		if len(results) >= limit {
			return false
		}
		// Grouped topics nest their entries one level deeper.
		if nested := topic.Get("Topics"); nested.Exists() {
			nested.ForEach(func(_, inner gjson.Result) bool {
				if len(results) >= limit {
					return false
				}
				if r := topicResult(inner); r != nil {
					results = append(results, r)
				}
				return true
			})
			return true
		}
		if r := topicResult(topic); r != nil {
			results = append(results, r)
		}
		return true
	})

	return results
}

func topicResult(topic gjson.Result) map[string]any {
	text := topic.Get("Text").String()
	if text == "" {
		return nil
	}
	return map[string]any{
		"title":   text,
		"snippet": text,
		"url":     topic.Get("FirstURL").String(),
	}
}
