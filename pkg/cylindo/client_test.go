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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("4928",
		WithBaseURL(srv.URL),
		WithLimiter(rate.NewLimiter(rate.Inf, 1)),
	)
}

func TestListProducts(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/4928/listcustomerproducts", r.URL.Path)
		w.Write([]byte(`{"products":[{"code":"ARC-SOFA-3"},{"code":"ARC-CHAIR"},{"code":""}]}`))
	})

	codes, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ARC-SOFA-3", "ARC-CHAIR"}, codes)
}

func TestGetConfigurationPreservesOrder(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/4928/products/ARC-SOFA-3/configuration", r.URL.Path)
		w.Write([]byte(`{
			"features": [
				{"code":"TEXTILE","name":"Textile","options":[{"code":"LN-2034","name":"Rainforest Green"}]},
				{"code":"EMPTY","name":"No options","options":[]},
				{"code":"LEGS","name":"Legs","options":[{"code":"OAK","name":"Oak"},{"code":"WALNUT","name":"Walnut"}]}
			]
		}`))
	})

	cfg, err := c.GetConfiguration(context.Background(), "ARC-SOFA-3")
	require.NoError(t, err)
	assert.Equal(t, "ARC-SOFA-3", cfg.ProductCode)
	// Feature without options is dropped, order of the rest is preserved.
	require.Len(t, cfg.Features, 2)
	assert.Equal(t, "TEXTILE", cfg.Features[0].Code)
	assert.Equal(t, "LEGS", cfg.Features[1].Code)
	assert.Equal(t, "Rainforest Green", cfg.Features[0].Options[0].Name)
}

func TestGetConfigurationNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.GetConfiguration(context.Background(), "MISSING")
	require.Error(t, err)
	assert.True(t, cferrors.IsCode(err, cferrors.ErrCodeNotFound))
}

func TestListProductsServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, cferrors.IsCode(err, cferrors.ErrCodeUnavailable))
}

func TestListProductsMalformedBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":`))
	})

	_, err := c.ListProducts(context.Background())
	require.Error(t, err)
	assert.True(t, cferrors.IsCode(err, cferrors.ErrCodeUnavailable))
}
