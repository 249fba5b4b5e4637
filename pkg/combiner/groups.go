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
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

//go:embed data/groups.yaml
var defaultGroupsYAML []byte

// ExclusiveGroup names a set of feature codes that must never co-occur in a
// single combination (e.g. TEXTILE and LEATHER upholstery). The table is
// hand-maintained, not derived from the remote catalog.
type ExclusiveGroup struct {
	Name     string   `yaml:"name,omitempty" json:"name,omitempty"`
	Features []string `yaml:"features" json:"features"`
}

// Contains reports whether the group includes the given feature code.
func (g ExclusiveGroup) Contains(featureCode string) bool {
	for _, f := range g.Features {
		if f == featureCode {
			return true
		}
	}
	return false
}

// GroupTable is the on-disk shape of the exclusive-group configuration.
type GroupTable struct {
	ExclusiveGroups []ExclusiveGroup `yaml:"exclusiveGroups" json:"exclusiveGroups"`
}

// DefaultGroups returns the embedded exclusive-group table.
func DefaultGroups() []ExclusiveGroup {
	groups, err := parseGroups(defaultGroupsYAML)
	if err != nil {
		// The embedded table is validated by tests; a parse failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return groups
}

// LoadGroups reads an exclusive-group table from a YAML file. An empty path
// returns the embedded default table.
func LoadGroups(path string) ([]ExclusiveGroup, error) {
	if path == "" {
		return DefaultGroups(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeNotFound, "failed to read exclusive-group table", err)
	}
	return parseGroups(data)
}

func parseGroups(data []byte) ([]ExclusiveGroup, error) {
	var table GroupTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "failed to parse exclusive-group table", err)
	}
	for _, g := range table.ExclusiveGroups {
		if len(g.Features) < 2 {
			return nil, cferrors.NewWithContext(
				cferrors.ErrCodeValidation,
				"exclusive group must name at least two features",
				map[string]any{"group": g.Name},
			)
		}
	}
	return table.ExclusiveGroups, nil
}
