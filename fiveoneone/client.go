package fiveoneone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production 511 SF Bay API root.
const DefaultBaseURL = "https://api.511.org/transit"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Client fetches data from the 511 SF Bay API. A Client is safe for
// concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries uint64
}

// NewClient creates a 511 client. An empty baseURL selects DefaultBaseURL.
// The timeout bounds each HTTP attempt; retried attempts share it.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: 2,
	}
}

// get performs a GET against path with the api_key attached, retrying
// transient failures with exponential backoff. The returned body has any
// UTF-8 BOM stripped.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("HTTP %d from %s", resp.StatusCode, path)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("HTTP %d from %s", resp.StatusCode, path))
		}
		body, err = io.ReadAll(resp.Body)
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return bytes.TrimPrefix(body, utf8BOM), nil
}

// Datafeed downloads the GTFS zip bundle for an operator and returns the raw
// archive bytes.
func (c *Client) Datafeed(ctx context.Context, operatorID string) ([]byte, error) {
	params := url.Values{}
	params.Set("operator_id", operatorID)
	return c.get(ctx, "/datafeeds", params)
}

// Stops queries the NeTEx /stops endpoint. The endpoint has returned both a
// mapping of arrays and a bare array over time; both shapes decode.
func (c *Client) Stops(ctx context.Context, operatorID string) ([]StopPoint, error) {
	params := url.Values{}
	params.Set("operator_id", operatorID)
	params.Set("format", "json")
	body, err := c.get(ctx, "/stops", params)
	if err != nil {
		return nil, err
	}
	return decodeStopPoints(body)
}

// StopMonitoring fetches the agency-wide SIRI StopMonitoring feed. The call
// is deliberately not scoped to a single stop: 511 returns more visits per
// stop when the whole feed is requested.
func (c *Client) StopMonitoring(ctx context.Context, agency string) ([]MonitoredStopVisit, error) {
	params := url.Values{}
	params.Set("agency", agency)
	params.Set("format", "json")
	body, err := c.get(ctx, "/StopMonitoring", params)
	if err != nil {
		return nil, err
	}
	var sm stopMonitoringResponse
	if err := json.Unmarshal(body, &sm); err != nil {
		log.Debug().Err(err).Msg("stop monitoring payload did not decode")
		return nil, fmt.Errorf("decode StopMonitoring: %w", err)
	}
	return sm.ServiceDelivery.StopMonitoringDelivery.MonitoredStopVisit, nil
}
