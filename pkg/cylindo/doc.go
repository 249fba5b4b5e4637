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

// Package cylindo implements a read-only client for the Cylindo content API.
//
// The client exposes the two endpoints the feed generator needs: the product
// list of a customer id, and the feature configuration of a single product.
// Configuration fetches happen once per product per run and are paced by a
// token-bucket rate limiter.
package cylindo