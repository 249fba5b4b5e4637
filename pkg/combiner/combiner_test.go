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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

func sofaConfiguration() *catalog.ProductConfiguration {
	return &catalog.ProductConfiguration{
		ProductCode: "ARC-SOFA-3",
		Features: []catalog.Feature{
			{Code: "TEXTILE", Options: []catalog.Option{
				{Code: "LN-2034"}, {Code: "LN-2040"},
			}},
			{Code: "LEATHER", Options: []catalog.Option{
				{Code: "AN-510"},
			}},
			{Code: "LEGS", Options: []catalog.Option{
				{Code: "OAK"}, {Code: "WALNUT"},
			}},
		},
	}
}

func upholsteryGroup() []ExclusiveGroup {
	return []ExclusiveGroup{{Name: "upholstery", Features: []string{"TEXTILE", "LEATHER"}}}
}

func keys(combos []catalog.Combination) []string {
	out := make([]string, 0, len(combos))
	for _, c := range combos {
		out = append(out, c.Key())
	}
	return out
}

func TestGeneratePlainCartesianProduct(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, map[string][]string{
		"TEXTILE": {"LN-2034", "LN-2040"},
		"LEGS":    {"OAK", "WALNUT"},
	}, nil)

	require.Empty(t, res.Warnings)
	assert.Equal(t, []string{
		"TEXTILE:LN-2034|LEGS:OAK",
		"TEXTILE:LN-2034|LEGS:WALNUT",
		"TEXTILE:LN-2040|LEGS:OAK",
		"TEXTILE:LN-2040|LEGS:WALNUT",
	}, keys(res.Combinations))
}

func TestGenerateExclusiveGroupBranches(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, map[string][]string{
		"TEXTILE": {"LN-2034"},
		"LEATHER": {"AN-510"},
	}, upholsteryGroup())

	require.Empty(t, res.Warnings)
	assert.Equal(t, []string{
		"TEXTILE:LN-2034",
		"LEATHER:AN-510",
	}, keys(res.Combinations))
}

func TestGenerateNeverPairsGroupMembers(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, map[string][]string{
		"TEXTILE": {"LN-2034", "LN-2040"},
		"LEATHER": {"AN-510"},
		"LEGS":    {"OAK", "WALNUT"},
	}, upholsteryGroup())

	require.Empty(t, res.Warnings)
	for _, c := range res.Combinations {
		if c.Has("TEXTILE") && c.Has("LEATHER") {
			t.Fatalf("combination %q pairs both upholstery features", c.Key())
		}
	}
	// 2 textiles x 2 legs + 1 leather x 2 legs
	assert.Len(t, res.Combinations, 6)
}

func TestGenerateZeroSelectionFeatureIsExcluded(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, map[string][]string{
		"LEGS": {"OAK"},
	}, upholsteryGroup())

	require.Empty(t, res.Warnings)
	assert.Equal(t, []string{"LEGS:OAK"}, keys(res.Combinations))
}

func TestGenerateNoSelectionsYieldsNothing(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, nil, upholsteryGroup())
	assert.Empty(t, res.Combinations)
	assert.Empty(t, res.Warnings)
}

func TestGenerateStaleGroupFallsBackToUnrestricted(t *testing.T) {
	cfg := sofaConfiguration()
	stale := []ExclusiveGroup{{Name: "stale", Features: []string{"TEXTILE", "SHELL"}}}

	res := Generate(cfg, map[string][]string{
		"TEXTILE": {"LN-2034"},
		"LEATHER": {"AN-510"},
	}, stale)

	require.Len(t, res.Warnings, 1)
	assert.True(t, cferrors.IsCode(res.Warnings[0], cferrors.ErrCodeConfiguration))
	// Group skipped: expansion is unrestricted, so the pair co-occurs.
	assert.Equal(t, []string{"TEXTILE:LN-2034|LEATHER:AN-510"}, keys(res.Combinations))
}

func TestGenerateUnknownOptionWarnsAndSkips(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, map[string][]string{
		"LEGS": {"OAK", "CHROME"},
	}, nil)

	require.Len(t, res.Warnings, 1)
	assert.True(t, cferrors.IsCode(res.Warnings[0], cferrors.ErrCodeValidation))
	assert.Equal(t, []string{"LEGS:OAK"}, keys(res.Combinations))
}

func TestGenerateGroupWithSingleActiveMemberIsUnconstrained(t *testing.T) {
	cfg := sofaConfiguration()
	res := Generate(cfg, map[string][]string{
		"TEXTILE": {"LN-2034", "LN-2040"},
		"LEGS":    {"OAK"},
	}, upholsteryGroup())

	require.Empty(t, res.Warnings)
	assert.Equal(t, []string{
		"TEXTILE:LN-2034|LEGS:OAK",
		"TEXTILE:LN-2040|LEGS:OAK",
	}, keys(res.Combinations))
}

func TestGenerateDeduplicatesAcrossBranches(t *testing.T) {
	// Two overlapping groups can route the same member through both branch
	// passes; the duplicate expansion must collapse.
	cfg := &catalog.ProductConfiguration{
		ProductCode: "P",
		Features: []catalog.Feature{
			{Code: "A", Options: []catalog.Option{{Code: "a1"}}},
			{Code: "B", Options: []catalog.Option{{Code: "b1"}}},
			{Code: "C", Options: []catalog.Option{{Code: "c1"}}},
		},
	}
	groups := []ExclusiveGroup{
		{Name: "ab", Features: []string{"A", "B"}},
		{Name: "bc", Features: []string{"B", "C"}},
	}
	res := Generate(cfg, map[string][]string{
		"A": {"a1"}, "B": {"b1"}, "C": {"c1"},
	}, groups)

	seen := map[string]int{}
	for _, c := range res.Combinations {
		seen[c.Key()]++
		if n := seen[c.Key()]; n > 1 {
			t.Fatalf("combination %q emitted %d times", c.Key(), n)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := sofaConfiguration()
	sel := map[string][]string{
		"TEXTILE": {"LN-2034", "LN-2040"},
		"LEATHER": {"AN-510"},
		"LEGS":    {"OAK", "WALNUT"},
	}
	first := keys(Generate(cfg, sel, upholsteryGroup()).Combinations)
	for i := 0; i < 20; i++ {
		again := keys(Generate(cfg, sel, upholsteryGroup()).Combinations)
		require.Equal(t, first, again)
	}
}
