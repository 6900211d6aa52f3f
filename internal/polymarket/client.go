// Package polymarket is a lightweight client for the Polymarket Gamma API.
//
// Every transport failure (timeout, bad status, malformed JSON) is normalized
// to ErrRequestFailed: callers only need to know the request did not produce a
// usable answer. Requests are never retried.
package polymarket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yourusername/nba-probs/internal/config"
	"github.com/yourusername/nba-probs/internal/models"
)

const defaultBaseURL = "https://gamma-api.polymarket.com"

const requestTimeout = 10 * time.Second

// ErrRequestFailed is the single opaque error kind for all Polymarket
// transport failures.
var ErrRequestFailed = errors.New("polymarket request failed")

// Client is a wrapper around Polymarket's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Gamma API client. Proxy settings from the configuration
// are applied to the client's transport; the API credentials are accepted but
// unused by any current request.
func NewClient(settings *config.Settings) *Client {
	return NewClientWithBaseURL(defaultBaseURL, settings)
}

// NewClientWithBaseURL creates a client against an explicit base URL, mainly
// for tests.
func NewClientWithBaseURL(baseURL string, settings *config.Settings) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if settings.HTTPProxy != "" || settings.HTTPSProxy != "" {
		transport.Proxy = proxyFunc(settings.HTTPProxy, settings.HTTPSProxy)
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
	}
}

// proxyFunc selects the configured proxy by request scheme.
func proxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	return func(req *http.Request) (*url.URL, error) {
		proxy := httpProxy
		if req.URL.Scheme == "https" && httpsProxy != "" {
			proxy = httpsProxy
		}
		if proxy == "" {
			return nil, nil
		}
		return url.Parse(proxy)
	}
}

// apiMarket mirrors the Gamma market payload shape.
type apiMarket struct {
	ID            string            `json:"id"`
	Question      string            `json:"question"`
	Status        string            `json:"status"`
	OutcomePrices map[string]string `json:"outcomePrices"`
}

type marketsResponse struct {
	Markets []apiMarket `json:"markets"`
}

// ListNBAMarkets returns the markets tagged NBA.
func (c *Client) ListNBAMarkets(ctx context.Context) ([]models.Market, error) {
	params := url.Values{}
	params.Set("tag", "NBA")

	body, err := c.doGet(ctx, "/markets?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var payload marketsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: response was not valid JSON", ErrRequestFailed)
	}

	markets := make([]models.Market, 0, len(payload.Markets))
	for _, raw := range payload.Markets {
		markets = append(markets, models.Market{
			ID:         raw.ID,
			Question:   raw.Question,
			Status:     raw.Status,
			OutcomeYes: stringValue(raw.OutcomePrices, "yes"),
			OutcomeNo:  stringValue(raw.OutcomePrices, "no"),
		})
	}
	return markets, nil
}

// FetchOrderbook returns the current yes/no prices for a binary market.
// Prices the API omits or mangles come back nil rather than failing the call.
func (c *Client) FetchOrderbook(ctx context.Context, marketID string) (*models.Orderbook, error) {
	body, err := c.doGet(ctx, "/markets/"+url.PathEscape(marketID))
	if err != nil {
		return nil, err
	}

	var payload apiMarket
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: response was not valid JSON", ErrRequestFailed)
	}

	return &models.Orderbook{
		MarketID: marketID,
		YesPrice: parsePrice(payload.OutcomePrices, "yes"),
		NoPrice:  parsePrice(payload.OutcomePrices, "no"),
	}, nil
}

// doGet executes a single GET request. No retries.
func (c *Client) doGet(ctx context.Context, path string) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		RequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		RequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		RequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	RequestsTotal.WithLabelValues("ok").Inc()
	RequestDuration.Observe(time.Since(start).Seconds())
	return body, nil
}

func stringValue(prices map[string]string, key string) *string {
	value, ok := prices[key]
	if !ok {
		return nil
	}
	return &value
}

func parsePrice(prices map[string]string, key string) *float64 {
	raw, ok := prices[key]
	if !ok {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
