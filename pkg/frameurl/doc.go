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

// Package frameurl builds and parses Cylindo content API frame URLs.
//
// URL construction is a pure function: the same customer id, product code,
// frame angle, combination, and image parameters always render the same
// byte-identical URL, with a fixed canonical query parameter order. Parse is
// the exact inverse and recovers the combination and angle from a built URL.
package frameurl