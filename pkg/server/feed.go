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
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pimtools/cylindo-feed/pkg/frameurl"
	"github.com/pimtools/cylindo-feed/pkg/pipeline"
	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

// maxFeedRequestBytes caps the feed request body size.
const maxFeedRequestBytes = 1 << 20

// handleFeed handles POST /v1/feed: one synchronous feed generation run.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed, use POST", false, nil)
		return
	}

	var req FeedRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFeedRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Invalid request body", false, map[string]any{"error": err.Error()})
		return
	}

	if len(req.Features) == 0 {
		s.writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"At least one feature selection is required", false, nil)
		return
	}

	products := req.Products
	if req.AllProducts {
		var err error
		products, err = s.deps.Source.ListProducts(r.Context())
		if err != nil {
			s.writeError(w, r, http.StatusBadGateway, ErrCodeServiceUnavailable,
				"Failed to list customer products", true, map[string]any{"error": err.Error()})
			return
		}
	}
	if len(products) == 0 {
		s.writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"No products selected; set products or allProducts", false, nil)
		return
	}
	if len(products) > s.config.MaxProductsPerRequest {
		s.writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Too many products in one request", false, map[string]any{
				"products": len(products),
				"max":      s.config.MaxProductsPerRequest,
			})
		return
	}

	angles := req.Angles
	if len(angles) == 0 {
		angles = []int{1}
	}
	size := req.Size
	if size == 0 {
		size = 1024
	}

	gen := &pipeline.FeedGenerator{
		Source:  s.deps.Source,
		Records: s.deps.Records,
		Version: s.deps.Version,
		Logger:  slog.Default(),
		Config: pipeline.Config{
			Params: frameurl.Params{
				CID:                     s.deps.CID,
				Size:                    size,
				SkipSharpening:          req.SkipSharpening,
				RemoveEnvironmentShadow: req.RemoveEnvironmentShadow,
			},
			Angles:      angles,
			Selected:    req.Features,
			Groups:      s.deps.Groups,
			Parallelism: req.Parallelism,
		},
	}

	feed, err := gen.Run(r.Context(), products)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest,
			"Feed generation failed", false, map[string]any{"error": err.Error()})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, feed)
}
