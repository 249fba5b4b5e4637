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

package catalog

import "strings"

// Option is one selectable value of a Feature.
type Option struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Feature is one configurable product axis (e.g. TEXTILE, LEATHER, FRAME).
// Options preserve the order returned by the remote catalog.
type Feature struct {
	Code    string   `json:"code" yaml:"code"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// Option returns the option with the given code and whether it exists.
func (f *Feature) Option(code string) (Option, bool) {
	for _, o := range f.Options {
		if o.Code == code {
			return o, true
		}
	}
	return Option{}, false
}

// ProductConfiguration is the remotely sourced feature set of one product.
// Feature order is the catalog order and is load-bearing: it determines the
// canonical feature ordering in generated image URLs.
type ProductConfiguration struct {
	ProductCode string    `json:"productCode" yaml:"productCode"`
	Features    []Feature `json:"features" yaml:"features"`
}

// Feature returns the feature with the given code and whether it exists.
func (pc *ProductConfiguration) Feature(code string) (Feature, bool) {
	for _, f := range pc.Features {
		if f.Code == code {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureCodes returns the feature codes in catalog order.
func (pc *ProductConfiguration) FeatureCodes() []string {
	codes := make([]string, 0, len(pc.Features))
	for _, f := range pc.Features {
		codes = append(codes, f.Code)
	}
	return codes
}

// Selection pins one feature to one of its option codes.
type Selection struct {
	FeatureCode string `json:"feature" yaml:"feature"`
	OptionCode  string `json:"option" yaml:"option"`
}

// Combination is one fully specified selection across features, ordered by
// the catalog feature order. A feature absent from the slice is absent from
// the combination.
type Combination []Selection

// Get returns the option code selected for the given feature, if present.
func (c Combination) Get(featureCode string) (string, bool) {
	for _, s := range c {
		if s.FeatureCode == featureCode {
			return s.OptionCode, true
		}
	}
	return "", false
}

// Has reports whether the combination selects an option for the feature.
func (c Combination) Has(featureCode string) bool {
	_, ok := c.Get(featureCode)
	return ok
}

// Key returns a canonical string form of the combination, used for
// de-duplication and diagnostics. Selections keep their slice order, so
// combinations built in catalog feature order yield stable keys.
func (c Combination) Key() string {
	if len(c) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, s := range c {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(s.FeatureCode)
		sb.WriteByte(':')
		sb.WriteString(s.OptionCode)
	}
	return sb.String()
}

// Clone returns an independent copy of the combination.
func (c Combination) Clone() Combination {
	out := make(Combination, len(c))
	copy(out, c)
	return out
}
