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
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// foldCaser performs Unicode case folding for case-insensitive comparison.
// cases.Fold caser values are not safe for concurrent use, so a fresh caser
// is taken per call site via fold.
func fold(s string) string {
	return cases.Fold().String(s)
}

// NormalizeCode strips every character that is not a letter or digit and
// lowercases the remainder. Idempotent: NormalizeCode(NormalizeCode(x)) ==
// NormalizeCode(x).
func NormalizeCode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	return fold(sb.String())
}

// minSignificantLen is the shortest token still considered a significant
// color word ("og", "of" and similar connectives fall below it).
const minSignificantLen = 3

// SignificantWords extracts the case-folded tokens of a color value that are
// long enough to be meaningful for containment matching.
func SignificantWords(s string) []string {
	var words []string
	for _, tok := range tokenize(s) {
		if len([]rune(tok)) >= minSignificantLen {
			words = append(words, tok)
		}
	}
	return words
}

// tokenize splits a string on every non-alphanumeric rune and case-folds the
// resulting tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// tokenSet returns the unique tokens of a string.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokenize(s) {
		set[tok] = struct{}{}
	}
	return set
}
