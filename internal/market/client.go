package market

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

	"cryptodash/internal/models"

	"github.com/sirupsen/logrus"
)

var (
	// ErrDataUnavailable is returned for any failure to obtain market data.
	// It is never used to signal an empty result.
	ErrDataUnavailable = errors.New("market data unavailable")
	ErrNotFound        = errors.New("coin not found")
)

const (
	vsCurrency     = "usd"
	maxPerPage     = 250
	searchMaxCoins = 10
)

type StatusError struct {
	StatusCode int
	Endpoint   string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("market api %s returned status %d", e.Endpoint, e.StatusCode)
}

func (e StatusError) Unwrap() error { return ErrDataUnavailable }

// Client talks to a CoinGecko v3 compatible API.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	MaxRetries int
	// Backoff is the first retry delay; it doubles on each attempt.
	Backoff time.Duration
	Log     *logrus.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, maxRetries int, log *logrus.Logger) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		MaxRetries: maxRetries,
		Backoff:    500 * time.Millisecond,
		Log:        log,
	}
}

func marketParams(ids []string) url.Values {
	p := url.Values{}
	p.Set("vs_currency", vsCurrency)
	p.Set("order", "market_cap_desc")
	p.Set("sparkline", "false")
	if len(ids) > 0 {
		p.Set("ids", strings.Join(ids, ","))
	}
	return p
}

// TopCoins lists the top coins by market cap. limit is clamped to [1, 250].
func (c *Client) TopCoins(ctx context.Context, limit int) ([]models.Coin, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxPerPage {
		limit = maxPerPage
	}
	p := marketParams(nil)
	p.Set("per_page", strconv.Itoa(limit))
	p.Set("page", "1")

	coins := []models.Coin{}
	if err := c.getJSON(ctx, "/coins/markets", p, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

type searchResult struct {
	Coins []struct {
		ID string `json:"id"`
	} `json:"coins"`
}

// Search resolves query to at most ten coin ids and returns their market
// records. A blank query matches nothing.
func (c *Client) Search(ctx context.Context, query string) ([]models.Coin, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Coin{}, nil
	}
	var res searchResult
	if err := c.getJSON(ctx, "/search", url.Values{"query": {query}}, &res); err != nil {
		return nil, err
	}
	if len(res.Coins) == 0 {
		return []models.Coin{}, nil
	}
	ids := make([]string, 0, searchMaxCoins)
	for _, coin := range res.Coins {
		if len(ids) == searchMaxCoins {
			break
		}
		ids = append(ids, coin.ID)
	}
	return c.CoinsByIDs(ctx, ids)
}

func (c *Client) CoinByID(ctx context.Context, id string) (models.Coin, error) {
	coins, err := c.CoinsByIDs(ctx, []string{id})
	if err != nil {
		return models.Coin{}, err
	}
	if len(coins) == 0 {
		return models.Coin{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return coins[0], nil
}

// CoinsByIDs returns market records for ids. Unknown ids are silently absent
// from the result.
func (c *Client) CoinsByIDs(ctx context.Context, ids []string) ([]models.Coin, error) {
	if len(ids) == 0 {
		return []models.Coin{}, nil
	}
	p := marketParams(ids)
	p.Set("per_page", strconv.Itoa(maxPerPage))
	coins := []models.Coin{}
	if err := c.getJSON(ctx, "/coins/markets", p, &coins); err != nil {
		return nil, err
	}
	return coins, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.BaseURL + path + "?" + params.Encode()
	delay := c.Backoff
	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			c.Log.Warnf("market request %s failed (attempt %d): %v; retrying in %s", path, attempt, lastErr, delay)
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", ErrDataUnavailable, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}

		wait, err := c.do(ctx, endpoint, path, out)
		if err == nil {
			return nil
		}
		lastErr = err
		var se StatusError
		if errors.As(err, &se) && !retryable(se.StatusCode) {
			return err
		}
		if wait > delay {
			delay = wait
		}
	}
	return lastErr
}

// do performs one request. The returned duration is the server's Retry-After
// hint, zero when absent.
func (c *Client) do(ctx context.Context, endpoint, path string, out interface{}) (time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.APIKey)
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return retryAfter(resp.Header.Get("Retry-After")), StatusError{StatusCode: resp.StatusCode, Endpoint: path}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, fmt.Errorf("%w: malformed response from %s: %v", ErrDataUnavailable, path, err)
	}
	return 0, nil
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func retryAfter(v string) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
