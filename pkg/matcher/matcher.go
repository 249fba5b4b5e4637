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

package matcher

import (
	"sort"
	"strings"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
)

// DefaultThreshold is the minimum name-stage similarity score a catalog
// record must reach to stay a candidate.
const DefaultThreshold = 85

// Input identifies one generated combination for catalog resolution.
type Input struct {
	// ProductCode is the remote product code, compared against item names.
	ProductCode string
	// ColorName is the display name of the color-defining option
	// (e.g. "Rainforest Green" for TEXTILE option LN-2034).
	ColorName string
	// ColorCode is the option code of the color-defining feature.
	ColorCode string
}

// Match is a successful catalog resolution.
type Match struct {
	Record *catalog.Record
	// Ambiguous is set when more than one record passed both stages and the
	// deterministic tiebreak picked the lexicographically lowest item number.
	Ambiguous bool
	// Candidates is the number of records that passed both stages.
	Candidates int
}

// Matcher resolves generated combinations to internal catalog records.
// The zero value uses the token-set scorer at the default threshold.
type Matcher struct {
	Scorer    Scorer
	Threshold int
}

// New creates a Matcher with the default token-set scorer and threshold.
func New() *Matcher {
	return &Matcher{Scorer: TokenSetScorer{}, Threshold: DefaultThreshold}
}

// Find resolves an input against the catalog records in two stages.
//
// Stage one keeps records whose item name scores at or above the threshold
// against the product code. Stage two keeps records where a significant word
// of the input color name occurs in the record's base color AND the
// alphanumeric-normalized color code equals the normalized lookup code.
//
// A nil result means no record matched; that is a normal outcome, never an
// error. Multiple survivors are resolved to the lowest item number
// lexicographically with Ambiguous set.
func (m *Matcher) Find(in Input, records []catalog.Record) *Match {
	scorer := m.Scorer
	if scorer == nil {
		scorer = TokenSetScorer{}
	}
	threshold := m.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	var byName []*catalog.Record
	for i := range records {
		if scorer.Score(in.ProductCode, records[i].ItemName) >= threshold {
			byName = append(byName, &records[i])
		}
	}
	if len(byName) == 0 {
		return nil
	}

	words := SignificantWords(in.ColorName)
	wantCode := NormalizeCode(in.ColorCode)

	var candidates []*catalog.Record
	for _, rec := range byName {
		if !colorWordMatches(words, rec.BaseColor) {
			continue
		}
		if wantCode == "" || NormalizeCode(rec.ColorLookupCode) != wantCode {
			continue
		}
		candidates = append(candidates, rec)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ItemNo < candidates[j].ItemNo
	})
	return &Match{
		Record:     candidates[0],
		Ambiguous:  len(candidates) > 1,
		Candidates: len(candidates),
	}
}

// colorWordMatches reports whether any significant word occurs in the
// record's base color, case-insensitively.
func colorWordMatches(words []string, baseColor string) bool {
	if len(words) == 0 {
		return false
	}
	folded := fold(baseColor)
	for _, w := range words {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}
