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

package defaults

import "time"

// HTTP client timeouts for outbound Cylindo API requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 20 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Cylindo API request pacing.
const (
	// FetchInterval is the minimum spacing between per-product configuration
	// requests, to stay well under the content API rate limits.
	FetchInterval = 50 * time.Millisecond

	// FetchBurst is the number of configuration requests allowed to proceed
	// without waiting for the pacing interval.
	FetchBurst = 1
)

// CLI timeouts for command-line operations.
const (
	// CLIGenerateTimeout is the default timeout for a full feed generation run.
	CLIGenerateTimeout = 5 * time.Minute
)

// HTTP server timeouts for the feed API.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Feed generation fetches configurations upstream, so this is generous.
	ServerWriteTimeout = 5 * time.Minute

	// ServerIdleTimeout is the maximum time to wait for the next request on a
	// keep-alive connection.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the grace period for in-flight requests on
	// shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
