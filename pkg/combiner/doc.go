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

// Package combiner expands selected product options into the set of all
// valid feature combinations.
//
// The expansion is the cartesian product over independently configurable
// features, constrained by a hand-maintained table of exclusive groups:
// features in the same group (for example TEXTILE and LEATHER upholstery)
// never appear together in one combination. When several group members carry
// selections the expansion branches, producing one alternative set of
// combinations per active member rather than failing.
//
// Output order is deterministic and mirrors the catalog feature order, which
// downstream consumers rely on for stable feed row ordering.
package combiner