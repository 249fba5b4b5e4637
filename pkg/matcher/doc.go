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

// Package matcher resolves generated product combinations to internal
// catalog records.
//
// Resolution is a two-stage filter. The name stage keeps records whose item
// name is token-set similar to the product code (word order and duplicates
// do not affect the score). The color stage then requires both a significant
// color word overlap with the record's base color and equality of the
// alphanumeric-normalized option code with the record's lookup code.
//
// Absence of a match is a normal outcome. When several records survive both
// stages the matcher deterministically picks the lowest item number and
// flags the result as ambiguous so it can be audited downstream.
package matcher