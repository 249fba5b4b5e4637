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
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a similarity score between two strings on a 0-100 scale.
// Implementations must be insensitive to token order and duplicate tokens.
type Scorer interface {
	Score(a, b string) int
}

// TokenSetScorer scores strings by token-set overlap: both inputs are
// tokenized into unique word sets and compared through their intersection
// and differences, making the score independent of word order and repeated
// words. The edit-distance ratio core uses Levenshtein distance.
type TokenSetScorer struct{}

// Score implements Scorer.
func (TokenSetScorer) Score(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var inter, diffA, diffB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	base := strings.Join(inter, " ")
	combinedA := joinNonEmpty(base, strings.Join(diffA, " "))
	combinedB := joinNonEmpty(base, strings.Join(diffB, " "))

	score := ratio(base, combinedA)
	if s := ratio(base, combinedB); s > score {
		score = s
	}
	if s := ratio(combinedA, combinedB); s > score {
		score = s
	}
	return score
}

// ratio is the normalized Levenshtein similarity of two strings on a 0-100
// scale: 100 means equal, 0 means nothing in common.
func ratio(a, b string) int {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	longest := max(la, lb)
	if longest == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * float64(longest-d) / float64(longest)))
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
