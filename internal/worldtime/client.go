package worldtime

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/timetrack/internal/error_values"
	"github.com/limbo/timetrack/pkg/entity"
)

const (
	DefaultURL     = "https://worldtimeapi.org/api/ip"
	DefaultTimeout = 5 * time.Second
)

// Client fetches the current time from a worldtimeapi-compatible endpoint.
// Failures are not retried and come back wrapping errorvalues.ErrUpstream.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Now(ctx context.Context) (*entity.WorldTime, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %s", errorvalues.ErrUpstream, err.Error())
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s returned %s", errorvalues.ErrUpstream, c.url, resp.Status)
	}
	var wt entity.WorldTime
	if err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&wt); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %s", errorvalues.ErrUpstream, err.Error())
	}
	return &wt, nil
}
