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

package pipeline

import (
	"fmt"
	"strconv"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/combiner"
	"github.com/pimtools/cylindo-feed/pkg/frameurl"
	"github.com/pimtools/cylindo-feed/pkg/header"
)

// FeedAPIVersion is the schema version of serialized feeds.
const FeedAPIVersion = "feed.pimtools.io/v1"

// Config carries the per-run generation settings.
type Config struct {
	// Params are the shared image URL parameters (CID, size, flags).
	Params frameurl.Params

	// Angles are the requested frame angles. Out-of-range angles are
	// rejected per angle, not per run.
	Angles []int

	// Selected maps feature codes to the option codes chosen for them.
	Selected map[string][]string

	// Groups is the exclusive-group table applied during expansion.
	Groups []combiner.ExclusiveGroup

	// Parallelism is the number of products processed concurrently.
	// Values below 2 mean sequential processing. Output order is canonical
	// either way.
	Parallelism int
}

// Row is one generated feed row: a single (product, combination, angle)
// image URL, resolved to an internal item number when possible.
type Row struct {
	// ItemNo is empty when no catalog record matched.
	ItemNo      string              `json:"itemNo,omitempty" yaml:"itemNo,omitempty"`
	ProductCode string              `json:"productCode" yaml:"productCode"`
	Angle       int                 `json:"angle" yaml:"angle"`
	URL         string              `json:"url" yaml:"url"`
	Combination catalog.Combination `json:"combination" yaml:"combination"`

	// Ambiguous marks rows where several catalog records matched and the
	// deterministic tiebreak was applied; kept in the feed so a human can
	// audit the resolution.
	Ambiguous bool `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
	// Candidates is the number of records that survived both match stages.
	Candidates int `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// Diagnostic renders the per-row audit note for delimited output.
func (r Row) Diagnostic() string {
	switch {
	case r.ItemNo == "":
		return "unresolved"
	case r.Ambiguous:
		return fmt.Sprintf("ambiguous(%d)", r.Candidates)
	default:
		return ""
	}
}

// Summary aggregates the run outcome. The pipeline always completes with a
// full row set plus this summary; partial data is preferred over aborting.
type Summary struct {
	TotalRows        int `json:"totalRows" yaml:"totalRows"`
	Unresolved       int `json:"unresolved" yaml:"unresolved"`
	Ambiguous        int `json:"ambiguous" yaml:"ambiguous"`
	ConfigWarnings   int `json:"configWarnings" yaml:"configWarnings"`
	ValidationErrors int `json:"validationErrors" yaml:"validationErrors"`
	ProductsTotal    int `json:"productsTotal" yaml:"productsTotal"`
	ProductsFailed   int `json:"productsFailed" yaml:"productsFailed"`
}

// Feed is the complete output of one generation run.
type Feed struct {
	header.Header `json:",inline" yaml:",inline"`

	Rows    []Row   `json:"rows" yaml:"rows"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// CSVHeader implements serializer.RecordMarshaler.
func (f *Feed) CSVHeader() []string {
	return []string{"Item No", "Product", "Frame", "ImageURL", "Features", "Diagnostic"}
}

// CSVRecords implements serializer.RecordMarshaler.
func (f *Feed) CSVRecords() [][]string {
	out := make([][]string, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, []string{
			r.ItemNo,
			r.ProductCode,
			strconv.Itoa(r.Angle),
			r.URL,
			r.Combination.Key(),
			r.Diagnostic(),
		})
	}
	return out
}
