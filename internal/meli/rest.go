package meli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/mercado-search/internal/metrics"
)

var tracer = otel.Tracer("github.com/donaldgifford/mercado-search/internal/meli")

const (
	defaultBaseURL   = "https://api.mercadolibre.com"
	defaultUserAgent = "mercado-search/1.0"
)

// Endpoint labels used for metrics and error messages.
const (
	endpointCategories  = "categories"
	endpointSearch      = "search"
	endpointItem        = "item"
	endpointDescription = "description"
)

// Client implements API against the MercadoLibre REST API.
type Client struct {
	tokens      TokenProvider
	baseURL     string
	userAgent   string
	client      *http.Client
	rateLimiter *RateLimiter
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default API root.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithClientHTTPClient overrides the default HTTP client.
func WithClientHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTokenProvider authenticates every request with a bearer token.
// Without one, requests are sent anonymously.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tp
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = r
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new MercadoLibre API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchAPIResponse struct {
	Results []Item `json:"results"`
	Paging  struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"paging"`
}

// Categories returns the top-level categories of a site.
func (c *Client) Categories(ctx context.Context, siteID string) ([]CategoryRef, error) {
	var out []CategoryRef
	path := "/sites/" + url.PathEscape(siteID) + "/categories"
	if err := c.get(ctx, endpointCategories, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search queries a site's catalog at the requested offset.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var apiResp searchAPIResponse
	path := "/sites/" + url.PathEscape(req.SiteID) + "/search"
	if err := c.get(ctx, endpointSearch, path, searchParams(req), &apiResp); err != nil {
		return nil, err
	}

	return &SearchResponse{
		Items:  apiResp.Results,
		Total:  apiResp.Paging.Total,
		Offset: apiResp.Paging.Offset,
		Limit:  apiResp.Paging.Limit,
	}, nil
}

// Item fetches the full details of a single item.
func (c *Client) Item(ctx context.Context, itemID string) (*Item, error) {
	var item Item
	if err := c.get(ctx, endpointItem, "/items/"+url.PathEscape(itemID), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemDescription fetches the plain-text description of an item.
func (c *Client) ItemDescription(ctx context.Context, itemID string) (*ItemDescription, error) {
	var desc ItemDescription
	path := "/items/" + url.PathEscape(itemID) + "/description"
	if err := c.get(ctx, endpointDescription, path, nil, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

func searchParams(req SearchRequest) url.Values {
	params := url.Values{}
	params.Set("q", req.Query)

	if req.CategoryID != "" {
		params.Set("category", req.CategoryID)
	}

	params.Set("offset", strconv.Itoa(max(req.Offset, 0)))

	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}

	return params
}

// get performs one GET inside a client span named after the endpoint.
func (c *Client) get(
	ctx context.Context,
	endpoint string,
	path string,
	params url.Values,
	dst any,
) (err error) {
	ctx, span := tracer.Start(ctx, "meli."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return c.do(ctx, endpoint, path, params, dst)
}

func (c *Client) do(
	ctx context.Context,
	endpoint string,
	path string,
	params url.Values,
	dst any,
) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.MeliDailyLimitHits.Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.MeliDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating %s request: %w", endpoint, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("getting auth token: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	metrics.MeliAPIDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MeliAPICallsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("executing %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	metrics.MeliAPICallsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response body: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"MercadoLibre API error (status %d): %s",
			resp.StatusCode,
			errorMessage(body),
		)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing %s response: %w", endpoint, err)
	}

	return nil
}

// errorMessage extracts the message from an API error body, falling back
// to the raw body.
func errorMessage(body []byte) string {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(body))
}
