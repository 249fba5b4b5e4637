// Copyright (c) 2025, the cylindo-feed authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cylindo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/defaults"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

// DefaultBaseURL is the Cylindo content API root.
const DefaultBaseURL = "https://content.cylindo.com/api/v2"

// Client fetches product and configuration data from the Cylindo content API.
// Requests are paced by a rate limiter so bulk configuration fetches stay
// under the API limits.
type Client struct {
	baseURL    string
	cid        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL overrides the content API root (used in tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLimiter overrides the request pacing limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// New creates a Client for the given customer id with the provided options.
func New(cid string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		cid:     cid,
		httpClient: &http.Client{
			Timeout: defaults.HTTPClientTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
			},
		},
		limiter: rate.NewLimiter(rate.Every(defaults.FetchInterval), defaults.FetchBurst),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// productList is the wire shape of the listcustomerproducts endpoint.
type productList struct {
	Products []struct {
		Code string `json:"code"`
	} `json:"products"`
}

// configuration is the wire shape of the product configuration endpoint.
type configuration struct {
	Features []struct {
		Code    string `json:"code"`
		Name    string `json:"name"`
		Options []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"options"`
	} `json:"features"`
}

// ListProducts returns all product codes available for the customer id.
func (c *Client) ListProducts(ctx context.Context) ([]string, error) {
	var payload productList
	if err := c.get(ctx, fmt.Sprintf("%s/%s/listcustomerproducts", c.baseURL, url.PathEscape(c.cid)), &payload); err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(payload.Products))
	for _, p := range payload.Products {
		if p.Code != "" {
			codes = append(codes, p.Code)
		}
	}
	slog.Debug("listed customer products", "cid", c.cid, "count", len(codes))
	return codes, nil
}

// GetConfiguration fetches the feature set of one product. Feature and
// option order is preserved exactly as the API returns it.
func (c *Client) GetConfiguration(ctx context.Context, productCode string) (*catalog.ProductConfiguration, error) {
	var payload configuration
	endpoint := fmt.Sprintf("%s/%s/products/%s/configuration",
		c.baseURL, url.PathEscape(c.cid), url.PathEscape(productCode))
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	cfg := &catalog.ProductConfiguration{ProductCode: productCode}
	for _, f := range payload.Features {
		if len(f.Options) == 0 {
			continue
		}
		feature := catalog.Feature{Code: f.Code, Name: f.Name}
		for _, o := range f.Options {
			if o.Code == "" {
				continue
			}
			feature.Options = append(feature.Options, catalog.Option{Code: o.Code, Name: o.Name})
		}
		if len(feature.Options) > 0 {
			cfg.Features = append(cfg.Features, feature)
		}
	}
	slog.Debug("fetched product configuration",
		"cid", c.cid, "product", productCode, "features", len(cfg.Features))
	return cfg, nil
}

// get performs a rate-limited GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return cferrors.Wrap(cferrors.ErrCodeUnavailable, "request pacing interrupted", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return cferrors.Wrap(cferrors.ErrCodeInternal, "failed to build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return cferrors.Wrap(cferrors.ErrCodeUnavailable, "content API request failed", err)
	}
	defer resp.Body.Close()
	fetchDuration.Observe(time.Since(start).Seconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		fetchTotal.WithLabelValues("not_found").Inc()
		return cferrors.NewWithContext(cferrors.ErrCodeNotFound,
			"content API resource not found",
			map[string]any{"endpoint": endpoint})
	case resp.StatusCode != http.StatusOK:
		fetchTotal.WithLabelValues("error").Inc()
		return cferrors.NewWithContext(cferrors.ErrCodeUnavailable,
			"content API returned an unexpected status",
			map[string]any{"endpoint": endpoint, "status": resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fetchTotal.WithLabelValues("error").Inc()
		return cferrors.Wrap(cferrors.ErrCodeUnavailable, "failed to decode content API response", err)
	}
	fetchTotal.WithLabelValues("success").Inc()
	return nil
}
