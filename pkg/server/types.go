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
	"time"
)

// ErrorResponse is the JSON error body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// FeedRequest is the body of POST /v1/feed.
type FeedRequest struct {
	// Products are the product codes to include. Ignored when AllProducts
	// is set.
	Products []string `json:"products,omitempty"`

	// AllProducts generates the feed for every product of the customer.
	AllProducts bool `json:"allProducts,omitempty"`

	// Features maps feature codes to selected option codes.
	Features map[string][]string `json:"features"`

	// Angles are the requested frame angles (default: [1]).
	Angles []int `json:"angles,omitempty"`

	// Size is the image size in pixels (default: 1024).
	Size int `json:"size,omitempty"`

	SkipSharpening          bool `json:"skipSharpening,omitempty"`
	RemoveEnvironmentShadow bool `json:"removeEnvironmentShadow,omitempty"`

	// Parallelism is the number of products processed concurrently.
	Parallelism int `json:"parallelism,omitempty"`
}

// ProductsResponse is the body of GET /v1/products.
type ProductsResponse struct {
	CID      string   `json:"cid"`
	Products []string `json:"products"`
}

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
