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
	"net/http"
	"strings"

	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

// handleProducts handles GET /v1/products with an optional case-insensitive
// substring filter.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed, use GET", false, nil)
		return
	}

	codes, err := s.deps.Source.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusBadGateway, ErrCodeServiceUnavailable,
			"Failed to list customer products", true, map[string]any{"error": err.Error()})
		return
	}

	if filter := r.URL.Query().Get("filter"); filter != "" {
		needle := strings.ToLower(filter)
		kept := codes[:0]
		for _, code := range codes {
			if strings.Contains(strings.ToLower(code), needle) {
				kept = append(kept, code)
			}
		}
		codes = kept
	}

	serializer.RespondJSON(w, http.StatusOK, ProductsResponse{
		CID:      s.deps.CID,
		Products: codes,
	})
}
