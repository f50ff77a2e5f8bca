package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/mobil-koeln/fahrinfo/internal/models"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "fahrinfo (+https://github.com/mobil-koeln/fahrinfo)"
)

// Client is the API client for the MVG station catalog and departure boards
type Client struct {
	httpClient  *http.Client
	baseURL     string
	stationsURL string // overrides baseURL+EndpointStations when set
	logger      *slog.Logger
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another API host (tests, proxies)
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithStationsURL sets the full URL of the station catalog
func WithStationsURL(u string) ClientOption {
	return func(c *Client) {
		c.stationsURL = u
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    BaseURL,
		logger:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// StationsURL returns the URL the catalog is fetched from
func (c *Client) StationsURL() string {
	if c.stationsURL != "" {
		return c.stationsURL
	}
	return c.baseURL + EndpointStations
}

// ListStations fetches the complete station catalog
func (c *Client) ListStations(ctx context.Context) ([]models.Station, error) {
	const op = "list stations"
	reqURL := c.StationsURL()

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, &FetchError{Op: op, URL: reqURL, Err: err}
	}

	var resp []models.StationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FetchError{Op: op, URL: reqURL, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}

	stations := make([]models.Station, 0, len(resp))
	for i := range resp {
		stations = append(stations, *resp[i].ToStation())
	}

	return stations, nil
}

// ListDepartures fetches the live departure board of a station
func (c *Client) ListDepartures(ctx context.Context, stationID string) ([]models.Departure, error) {
	const op = "list departures"
	if stationID == "" {
		return nil, &FetchError{Op: op, Err: ErrMissingField("globalId")}
	}

	params := url.Values{}
	params.Set("globalId", stationID)
	reqURL := c.baseURL + EndpointDepartures + "?" + params.Encode()

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, &FetchError{Op: op, URL: reqURL, Err: err}
	}

	var resp []models.DepartureResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FetchError{Op: op, URL: reqURL, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}

	departures := make([]models.Departure, 0, len(resp))
	for i := range resp {
		departures = append(departures, *resp[i].ToDeparture())
	}

	return departures, nil
}

// doRequest performs an HTTP GET request and returns the body of a 200 answer
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	correlationID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("x-correlation-id", correlationID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", reqURL, "correlation_id", correlationID, "error", err)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request",
		"url", reqURL,
		"status", resp.StatusCode,
		"correlation_id", correlationID,
		"duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
