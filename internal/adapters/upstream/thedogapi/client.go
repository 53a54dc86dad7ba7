package thedogapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dog-breeds/internal/platform/httpclient"
	"dog-breeds/internal/platform/metrics"
	"dog-breeds/internal/ports/upstream"
)

const (
	DefaultBaseURL      = "https://api.thedogapi.com/v1/"
	DefaultAPIKeyHeader = "x-api-key"
)

var (
	ErrNotConfigured = errors.New("thedogapi client not configured")
	ErrUpstream      = errors.New("thedogapi upstream error")
)

// Config del cliente The Dog API.
// BaseURL y APIKey vienen de la configuración del servicio.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "x-api-key".
	APIKeyHeader string

	Timeout time.Duration

	// Opcionales (tests / observabilidad).
	Transport http.RoundTripper
	Metrics   *metrics.Metrics
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
	metrics      *metrics.Metrics
}

var _ upstream.Catalog = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = DefaultAPIKeyHeader
	}

	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout, cfg.Transport)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		metrics:      cfg.Metrics,
	}, nil
}

func (c *Client) ListBreeds(ctx context.Context) (upstream.Response, error) {
	return c.get(ctx, "list_breeds", "breeds", nil)
}

func (c *Client) GetBreed(ctx context.Context, id int) (upstream.Response, error) {
	return c.get(ctx, "get_breed", "breeds/"+strconv.Itoa(id), nil)
}

func (c *Client) SearchBreeds(ctx context.Context, name string) (upstream.Response, error) {
	return c.get(ctx, "search_breeds", "breeds/search", url.Values{"q": {name}})
}

func (c *Client) BreedImages(ctx context.Context, breedID int) (upstream.Response, error) {
	return c.get(ctx, "breed_images", "images/search", url.Values{"breed_ids": {strconv.Itoa(breedID)}})
}

func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values) (upstream.Response, error) {
	if c == nil || c.http == nil {
		return upstream.Response{}, ErrNotConfigured
	}

	var headers map[string]string
	if c.apiKey != "" {
		headers = map[string]string{c.apiKeyHeader: c.apiKey}
	}

	start := time.Now()
	res, err := c.http.Do(ctx, http.MethodGet, path, q, headers)
	if err != nil {
		c.metrics.ObserveUpstream(endpoint, metrics.OutcomeTransportError, time.Since(start))
		return upstream.Response{}, fmt.Errorf("%w: %s: %v", ErrUpstream, endpoint, err)
	}

	outcome := metrics.OutcomeOK
	if !res.OK() {
		outcome = metrics.OutcomeStatusError
	}
	c.metrics.ObserveUpstream(endpoint, outcome, time.Since(start))

	return upstream.Response{
		StatusCode:  res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        res.Body,
	}, nil
}
