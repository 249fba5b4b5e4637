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

// Package pipeline orchestrates feed generation: for every selected product
// it expands the selected options into valid combinations, renders one image
// URL per combination and frame angle, and resolves each combination to an
// internal catalog record.
//
// The pipeline always completes. Unmatched combinations still produce rows
// (with an empty item number), per-product fetch failures are skipped and
// counted, and stale configuration only downgrades expansion for the product
// it concerns. The returned summary carries the counts a caller needs to
// judge the run.
//
// Row order is a contract consumed downstream: products in selection order,
// combinations in generator order, angles ascending.
package pipeline