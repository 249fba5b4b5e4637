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

package combiner

import (
	"log/slog"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

// Result holds the generated combinations for one product, plus any
// non-fatal warnings raised while generating them (stale group references,
// unknown option selections).
type Result struct {
	Combinations []catalog.Combination
	Warnings     []error
}

// axis is one feature with its selected option codes, in selection order.
type axis struct {
	feature string
	options []string
}

// Generate expands the selected options of a product configuration into all
// valid combinations.
//
// Features with no selected options are excluded from every combination but
// do not block expansion of the rest. For every exclusive group whose members
// all exist in the configuration and where two or more members carry
// selections, the expansion branches: each branch activates exactly one group
// member and omits the others, so no combination ever pairs options from two
// features of the same group. A group referencing a feature code absent from
// the configuration is stale: it is skipped with a CONFIGURATION warning and
// expansion proceeds unrestricted for its members.
//
// Output order is deterministic: branches follow the group-table order (group
// members in catalog feature order), and within a branch the cartesian
// product iterates features in catalog order with the last feature varying
// fastest. Duplicate combinations across branches are removed, keeping the
// first occurrence.
func Generate(cfg *catalog.ProductConfiguration, selected map[string][]string, groups []ExclusiveGroup) Result {
	var res Result

	axes := activeAxes(cfg, selected, &res)
	if len(axes) == 0 {
		return res
	}

	applicable := applicableGroups(cfg, axes, groups, &res)

	seen := make(map[string]struct{})
	assign := make([]int, len(applicable))
	for {
		excluded := make(map[string]bool)
		for gi, members := range applicable {
			for mi, m := range members {
				if mi != assign[gi] {
					excluded[m] = true
				}
			}
		}
		expand(axes, excluded, seen, &res)

		// Advance the branch odometer, last group varying fastest.
		i := len(assign) - 1
		for ; i >= 0; i-- {
			assign[i]++
			if assign[i] < len(applicable[i]) {
				break
			}
			assign[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return res
}

// activeAxes filters the configuration down to features that carry at least
// one valid selected option, preserving catalog order.
func activeAxes(cfg *catalog.ProductConfiguration, selected map[string][]string, res *Result) []axis {
	axes := make([]axis, 0, len(cfg.Features))
	for _, f := range cfg.Features {
		sel := selected[f.Code]
		if len(sel) == 0 {
			continue
		}
		opts := make([]string, 0, len(sel))
		for _, code := range sel {
			if _, ok := f.Option(code); !ok {
				res.Warnings = append(res.Warnings, cferrors.NewWithContext(
					cferrors.ErrCodeValidation,
					"selected option is not part of the product configuration",
					map[string]any{"product": cfg.ProductCode, "feature": f.Code, "option": code},
				))
				continue
			}
			opts = append(opts, code)
		}
		if len(opts) == 0 {
			continue
		}
		axes = append(axes, axis{feature: f.Code, options: opts})
	}
	return axes
}

// applicableGroups validates the group table against the configuration and
// returns, per group, the active member feature codes in catalog order.
// Groups with fewer than two active members impose no constraint.
func applicableGroups(cfg *catalog.ProductConfiguration, axes []axis, groups []ExclusiveGroup, res *Result) [][]string {
	var applicable [][]string
	for _, g := range groups {
		stale := false
		for _, fc := range g.Features {
			if _, ok := cfg.Feature(fc); !ok {
				res.Warnings = append(res.Warnings, cferrors.NewWithContext(
					cferrors.ErrCodeConfiguration,
					"exclusive group references a feature absent from the product configuration",
					map[string]any{"product": cfg.ProductCode, "group": g.Name, "feature": fc},
				))
				slog.Warn("skipping stale exclusive group",
					"product", cfg.ProductCode, "group", g.Name, "feature", fc)
				stale = true
				break
			}
		}
		if stale {
			continue
		}
		var members []string
		for _, ax := range axes {
			if g.Contains(ax.feature) {
				members = append(members, ax.feature)
			}
		}
		if len(members) >= 2 {
			applicable = append(applicable, members)
		}
	}
	return applicable
}

// expand appends the cartesian product over the non-excluded axes,
// de-duplicating against previously emitted combinations.
func expand(axes []axis, excluded map[string]bool, seen map[string]struct{}, res *Result) {
	included := make([]axis, 0, len(axes))
	for _, ax := range axes {
		if !excluded[ax.feature] {
			included = append(included, ax)
		}
	}
	if len(included) == 0 {
		return
	}

	combo := make(catalog.Combination, 0, len(included))
	var rec func(i int)
	rec = func(i int) {
		if i == len(included) {
			c := combo.Clone()
			key := c.Key()
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			res.Combinations = append(res.Combinations, c)
			return
		}
		for _, opt := range included[i].options {
			combo = append(combo, catalog.Selection{FeatureCode: included[i].feature, OptionCode: opt})
			rec(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	rec(0)
}
