// Package whoisapi provides a typed client for the WHOIS API service,
// which owns the actual WHOIS protocol negotiation, server discovery,
// caching and registrar response parsing.
// This client only performs HTTP lookups and decodes the JSON responses.
package whoisapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/whoistools/pkg/metricskey"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/whoistools", "whoisapi")

// StatusError is returned when the service replies with a non-200 status.
type StatusError struct {
	Domain     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to get WHOIS data for %s (Status: %d)", e.Domain, e.StatusCode)
}

// Client is the WHOIS API HTTP client.
// The client is stateless and safe for concurrent use.
type Client struct {
	cfg        *Config
	httpClient *http.Client
}

// NewClient returns a client for the given config.
// A nil config uses the environment-based defaults.
func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = NewConfig()
	} else {
		// copy to keep defaults out of the caller's config
		c := *cfg
		cfg = c.withDefaults()
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// WithHTTPClient sets the HTTP client, for tests.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// NormalizeDomain applies the trivial normalization the service expects:
// trimmed, lowercased, without the root-zone trailing dot.
func NormalizeDomain(domain string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(domain)), ".")
}

// Lookup queries WHOIS data for the domain.
func (c *Client) Lookup(ctx context.Context, domain string) (*Response, error) {
	return c.LookupFresh(ctx, domain, false)
}

// LookupFresh queries WHOIS data for the domain,
// bypassing the service cache when fresh is true.
func (c *Client) LookupFresh(ctx context.Context, domain string, fresh bool) (*Response, error) {
	domain = NormalizeDomain(domain)
	var query url.Values
	if fresh {
		query = url.Values{"fresh": []string{"true"}}
	}

	res := new(Response)
	err := c.get(ctx, "whois", "/whois/"+url.PathEscape(domain), domain, query, res)
	if err != nil {
		return nil, err
	}
	if res.Cached {
		metricskey.StatsWhoisCacheHits.IncrCounter(1, "whois")
	}
	return res, nil
}

// Debug queries WHOIS data with the service's parsing analysis included.
func (c *Client) Debug(ctx context.Context, domain string) (*Response, error) {
	domain = NormalizeDomain(domain)
	res := new(Response)
	err := c.get(ctx, "debug", "/whois/debug/"+url.PathEscape(domain), domain, nil, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Health returns the service health status.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	res := new(Health)
	err := c.get(ctx, "health", "/health", "", nil, res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, endpoint, path, domain string, query url.Values, body any) error {
	started := time.Now()
	defer metricskey.PerfWhoisLookup.MeasureSince(started, endpoint)

	u := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		metricskey.StatsWhoisLookupsFailed.IncrCounter(1, endpoint)
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metricskey.StatsWhoisLookupsFailed.IncrCounter(1, endpoint)
		logger.ContextKV(ctx, xlog.ERROR,
			"endpoint", endpoint,
			"domain", domain,
			"err", err.Error())
		return errors.Wrap(err, "failed to call WHOIS API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metricskey.StatsWhoisLookupsFailed.IncrCounter(1, endpoint)
		logger.ContextKV(ctx, xlog.ERROR,
			"endpoint", endpoint,
			"domain", domain,
			"status", resp.StatusCode)
		return errors.WithStack(&StatusError{Domain: domain, StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		metricskey.StatsWhoisLookupsFailed.IncrCounter(1, endpoint)
		return errors.Wrap(err, "failed to decode response")
	}

	metricskey.StatsWhoisLookupsSucceeded.IncrCounter(1, endpoint)
	logger.ContextKV(ctx, xlog.DEBUG,
		"endpoint", endpoint,
		"domain", domain)

	return nil
}
