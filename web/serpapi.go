package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/trivium-ai/trivium/helper"
	"github.com/trivium-ai/trivium/model"
)

const defaultBaseURL = "https://serpapi.com/search"

// SerpClient queries the SerpApi Google search endpoint.
// It is the online knowledge source of the retrieval cascade and only ever
// reads the organic results of a search.
type SerpClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewSerpClient creates a web search client with the given API key.
func NewSerpClient(apiKey string, logger *slog.Logger) *SerpClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &SerpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger,
	}
}

// NewSerpClientWithBaseURL creates a client against a custom endpoint.
// Used in tests to point the client at a local server.
func NewSerpClientWithBaseURL(apiKey string, baseURL string, logger *slog.Logger) *SerpClient {
	client := NewSerpClient(apiKey, logger)
	client.baseURL = baseURL
	return client
}

// Search runs a web search for the given query and returns the raw result.
// Interpretation of the organic results (or their absence) is left to the
// caller.
func (c *SerpClient) Search(ctx context.Context, query string) (*model.WebResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)

	requestURL := fmt.Sprintf("%v?%v", c.baseURL, params.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, helper.NewError("create search request", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, helper.NewError("execute search request", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return nil, helper.NewError(
			"execute search request",
			fmt.Errorf("unexpected status %v: %v", response.StatusCode, string(body)),
		)
	}

	webResult := &model.WebResult{}
	err = json.NewDecoder(response.Body).Decode(webResult)
	if err != nil {
		return nil, helper.NewError("decode search response", err)
	}

	c.log.Debug("Web search completed", "query", query, "organicResults", len(webResult.OrganicResults))

	return webResult, nil
}
