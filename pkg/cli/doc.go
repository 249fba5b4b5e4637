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

// Package cli implements the command-line interface for the cyfeed tool.
//
// # Overview
//
// The cyfeed CLI turns Cylindo product configurations into delimited image
// feeds. It is designed for PIM operators preparing product image imports:
// pick products, pick feature options, and get one image URL per valid
// combination and frame angle, each resolved to an internal catalog item.
//
// # Commands
//
// generate - Generate the product image feed:
//
//	cyfeed generate --cid 4404 --product HARMONY-SOFA \
//	    --feature TEXTILE=LN-2034,LN-2040 --angle 1 --angle 9 \
//	    --catalog catalog.csv --output feed.csv
//
// Expands the selected options into all valid combinations (features in an
// exclusive group never co-occur), builds canonical image URLs, and resolves
// each combination against the internal catalog. Output defaults to stdout
// in semicolon-delimited CSV.
//
// products - List product codes available for the customer:
//
//	cyfeed products --cid 4404 --filter sofa
//
// match - Debug a single catalog resolution:
//
//	cyfeed match --product-code HARMONY-SOFA --color-name "Rainforest Green" \
//	    --color-code LN-2034 --catalog catalog.csv
//
// serve - Run the feed generation HTTP API:
//
//	cyfeed serve --cid 4404 --catalog catalog.csv --port 8080
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format       Output format: csv, json, yaml, table (default: csv)
//	--log-level    Logging verbosity (debug, info, warn, error)
//
// # Environment Variables
//
//	CYLINDO_CID      Customer id (same as --cid)
//	CYLINDO_API_URL  Content API base URL override
//	LOG_LEVEL        Logging verbosity
//
// A .env file in the working directory is loaded at startup.
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/cylindo - Content API client
//   - pkg/pipeline - Feed orchestration
//   - pkg/combiner - Combination expansion
//   - pkg/matcher - Catalog resolution
//   - pkg/serializer - Output formatting
//   - pkg/server - Feed HTTP API
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/pimtools/cylindo-feed/pkg/cli.version=1.0.0'"
package cli