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

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/combiner"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
	"github.com/pimtools/cylindo-feed/pkg/pipeline"
)

// stubSource serves a fixed product set.
type stubSource struct {
	products []string
	configs  map[string]*catalog.ProductConfiguration
}

func (s *stubSource) ListProducts(_ context.Context) ([]string, error) {
	return append([]string(nil), s.products...), nil
}

func (s *stubSource) GetConfiguration(_ context.Context, code string) (*catalog.ProductConfiguration, error) {
	cfg, ok := s.configs[code]
	if !ok {
		return nil, cferrors.New(cferrors.ErrCodeNotFound, "product not found")
	}
	return cfg, nil
}

func testDeps() Dependencies {
	return Dependencies{
		Source: &stubSource{
			products: []string{"HARMONY-SOFA", "ALPHA-CHAIR"},
			configs: map[string]*catalog.ProductConfiguration{
				"HARMONY-SOFA": {
					ProductCode: "HARMONY-SOFA",
					Features: []catalog.Feature{
						{
							Code: "TEXTILE",
							Name: "Textile",
							Options: []catalog.Option{
								{Code: "LN-2034", Name: "Rainforest Green"},
							},
						},
					},
				},
			},
		},
		Records: []catalog.Record{
			{ItemNo: "30-0001", ItemName: "Harmony Sofa", BaseColor: "Green Collection", ColorLookupCode: "LN 2034"},
		},
		Groups: []combiner.ExclusiveGroup{
			{Name: "upholstery", Features: []string{"TEXTILE", "LEATHER"}},
		},
		CID:     "4404",
		Version: "v0.1.0-test",
	}
}

func newTestServer(t *testing.T, cfg *Config) (*Server, *httptest.Server) {
	t.Helper()
	if cfg == nil {
		cfg = NewConfig()
	}
	s := New(cfg, testDeps())
	s.SetReady(true)
	ts := httptest.NewServer(s.setupRoutes())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestHandleFeed(t *testing.T) {
	_, ts := newTestServer(t, nil)

	body := `{"products":["HARMONY-SOFA"],"features":{"TEXTILE":["LN-2034"]},"angles":[1,9],"size":512}`
	resp, err := http.Post(ts.URL+"/v1/feed", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var feed pipeline.Feed
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	require.Len(t, feed.Rows, 2)
	assert.Equal(t, "30-0001", feed.Rows[0].ItemNo)
	assert.Equal(t, 1, feed.Rows[0].Angle)
	assert.Equal(t, 9, feed.Rows[1].Angle)
	assert.Contains(t, feed.Rows[0].URL, "/4404/products/HARMONY-SOFA/frames/1.PNG?size=512")
	assert.Equal(t, 2, feed.Summary.TotalRows)
}

func TestHandleFeedValidation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing features",
			body:       `{"products":["HARMONY-SOFA"]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidRequest,
		},
		{
			name:       "no products",
			body:       `{"features":{"TEXTILE":["LN-2034"]}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidRequest,
		},
		{
			name:       "malformed json",
			body:       `{"features":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidRequest,
		},
		{
			name:       "unknown field",
			body:       `{"features":{"TEXTILE":["LN-2034"]},"bogus":true}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidRequest,
		},
	}

	_, ts := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/feed", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var errResp ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, tt.wantCode, errResp.Code)
			assert.NotEmpty(t, errResp.RequestID)
		})
	}
}

func TestHandleFeedTooManyProducts(t *testing.T) {
	cfg := NewConfig()
	cfg.MaxProductsPerRequest = 1
	_, ts := newTestServer(t, cfg)

	body := `{"products":["A","B"],"features":{"TEXTILE":["LN-2034"]}}`
	resp, err := http.Post(ts.URL+"/v1/feed", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleFeedMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/v1/feed")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleProducts(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/v1/products?filter=sofa")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list ProductsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, "4404", list.CID)
	assert.Equal(t, []string{"HARMONY-SOFA"}, list.Products)
}

func TestHealthAndReady(t *testing.T) {
	s, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	s.SetReady(false)
	resp, err = http.Get(ts.URL + "/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestVersionEndpoint(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/version")
	require.NoError(t, err)
	defer resp.Body.Close()

	var v VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	assert.Equal(t, "cyfeed", v.Name)
	assert.Equal(t, "v0.1.0-test", v.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, nil)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	_, ts := newTestServer(t, cfg)

	first, err := http.Get(ts.URL + "/v1/products")
	require.NoError(t, err)
	first.Body.Close()
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second, err := http.Get(ts.URL + "/v1/products")
	require.NoError(t, err)
	defer second.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.Equal(t, "1", second.Header.Get("Retry-After"))

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&errResp))
	assert.Equal(t, ErrCodeRateLimitExceeded, errResp.Code)
	assert.True(t, errResp.Retryable)
}

func TestRequestIDPropagation(t *testing.T) {
	_, ts := newTestServer(t, nil)

	id := uuid.New().String()
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/products", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", id)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, id, resp.Header.Get("X-Request-Id"))
}

func TestRequestIDReplacedWhenInvalid(t *testing.T) {
	_, ts := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/products", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "not-a-uuid")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	got := resp.Header.Get("X-Request-Id")
	assert.NotEqual(t, "not-a-uuid", got)
	_, err = uuid.Parse(got)
	assert.NoError(t, err)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "7")

	cfg := NewConfig()
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "7s", cfg.ShutdownTimeout.String())
}
