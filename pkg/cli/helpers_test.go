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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

func TestParseFeatureSelections(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      map[string][]string
		wantError bool
	}{
		{
			name: "single feature single option",
			args: []string{"TEXTILE=LN-2034"},
			want: map[string][]string{"TEXTILE": {"LN-2034"}},
		},
		{
			name: "single feature multiple options",
			args: []string{"TEXTILE=LN-2034,LN-2040"},
			want: map[string][]string{"TEXTILE": {"LN-2034", "LN-2040"}},
		},
		{
			name: "multiple features",
			args: []string{"TEXTILE=LN-2034", "LEGS=OAK,WALNUT"},
			want: map[string][]string{
				"TEXTILE": {"LN-2034"},
				"LEGS":    {"OAK", "WALNUT"},
			},
		},
		{
			name: "repeated feature appends",
			args: []string{"TEXTILE=LN-2034", "TEXTILE=LN-2040"},
			want: map[string][]string{"TEXTILE": {"LN-2034", "LN-2040"}},
		},
		{
			name: "whitespace trimmed",
			args: []string{" TEXTILE = LN-2034 , LN-2040 "},
			want: map[string][]string{"TEXTILE": {"LN-2034", "LN-2040"}},
		},
		{
			name: "empty input",
			args: nil,
			want: map[string][]string{},
		},
		{
			name:      "missing equals",
			args:      []string{"TEXTILE"},
			wantError: true,
		},
		{
			name:      "empty feature code",
			args:      []string{"=LN-2034"},
			wantError: true,
		},
		{
			name:      "no options",
			args:      []string{"TEXTILE=, ,"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFeatureSelections(tt.args)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputFormatParsing(t *testing.T) {
	tests := []struct {
		format  string
		unknown bool
	}{
		{"csv", false},
		{"json", false},
		{"yaml", false},
		{"table", false},
		{"xml", true},
		{"", true},
	}
	for _, tt := range tests {
		got := serializer.Format(tt.format).IsUnknown()
		assert.Equal(t, tt.unknown, got, "format %q", tt.format)
	}
}

func TestRootCmdHasCommands(t *testing.T) {
	root := rootCmd()
	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"generate", "products", "match", "serve"}, names)
}

// writeTestCatalog writes a small catalog CSV and returns its path.
func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	content := "Item No,Item Name,Base Color,Color (lookup InRiver)\n" +
		"30-0001,Harmony Sofa,Green Collection,LN 2034\n" +
		"30-0002,Harmony Sofa,Sand Collection,LN 2040\n" +
		"40-0001,Other Table,Black,XX-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
