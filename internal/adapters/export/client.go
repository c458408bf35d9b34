// Package export provides a client for the local healthcare export API:
// export metadata resolution and streamed data downloads
package export

import (
	"context"
	"net/http"
	"time"

	perr "vitalsum/internal/platform/errors"
	"vitalsum/internal/platform/logger"
)

const (
	baseURLDefault = "http://localhost:8000/api"
	defaultUA      = "vitalsum-report"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string

	// Timeout of zero means no client timeout: a hung call blocks the run,
	// which is acceptable against the local low-latency API
	Timeout time.Duration
}

// Client is a minimal export API client. No retries, no auth, no pagination;
// every failure propagates to the caller
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("export"),
	}
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// get issues a GET and returns the open response; the caller owns the body.
// Transport failures map to the network error code
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNetwork, "build request for %s", url)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNetwork, "GET %s", url)
	}
	return resp, nil
}
