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

// Package server implements the feed HTTP API: the same generation pipeline
// the CLI drives, exposed as a long-running service.
//
// Endpoints:
//
//	POST /v1/feed      Generate a feed for a request body of products,
//	                   feature selections, and angles. Synchronous.
//	GET  /v1/products  List (optionally filtered) customer product codes.
//	GET  /health       Liveness probe.
//	GET  /ready        Readiness probe.
//	GET  /version      Build version.
//	GET  /metrics      Prometheus metrics.
//
// API endpoints are wrapped in middleware for request ids, panic recovery,
// rate limiting, request logging, and RED metrics. System endpoints bypass
// rate limiting so probes stay cheap.
//
// The server holds the catalog, exclusive-group table, and customer id fixed
// for its lifetime; each request chooses products, selections, and image
// parameters.
package server