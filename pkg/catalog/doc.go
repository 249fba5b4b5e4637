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

// Package catalog defines the typed data model shared across the feed
// tooling: the remotely sourced product feature sets (features, options,
// combinations) and the internal catalog records the generated image URLs
// are resolved against.
//
// All types in this package are read-only for the duration of a run; the
// remote feature sets are fetched once (see pkg/cylindo) and the internal
// records are loaded once from a tabular export.
package catalog