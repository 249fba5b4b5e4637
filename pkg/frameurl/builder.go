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

package frameurl

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

// BaseURL is the Cylindo content API root.
const BaseURL = "https://content.cylindo.com/api/v2"

// Accepted frame angle range of the content API.
const (
	MinAngle = 1
	MaxAngle = 36
)

// Params carries the per-run image parameters shared by all generated URLs.
type Params struct {
	// CID is the Cylindo customer/tenant identifier.
	CID string
	// Size is the output image size in pixels.
	Size int
	// SkipSharpening disables the API-side sharpening pass.
	SkipSharpening bool
	// RemoveEnvironmentShadow drops the rendered environment shadow.
	RemoveEnvironmentShadow bool
}

// Validate checks the params for values the content API would reject.
func (p Params) Validate() error {
	if strings.TrimSpace(p.CID) == "" {
		return cferrors.New(cferrors.ErrCodeValidation, "customer id must not be empty")
	}
	if p.Size <= 0 {
		return cferrors.NewWithContext(cferrors.ErrCodeValidation,
			"image size must be a positive integer",
			map[string]any{"size": p.Size})
	}
	return nil
}

// Build renders the canonical image URL for one product frame and combination.
//
// The query string has a fixed canonical order: size, one feature parameter
// per selection in combination order, encoding=png, then the optional
// skipSharpening and removeEnvironmentShadow flags. Identical inputs always
// produce a byte-identical URL.
func Build(p Params, productCode string, angle int, combo catalog.Combination) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := ValidateAngle(angle); err != nil {
		return "", err
	}
	if strings.TrimSpace(productCode) == "" {
		return "", cferrors.New(cferrors.ErrCodeValidation, "product code must not be empty")
	}

	var sb strings.Builder
	sb.WriteString(BaseURL)
	sb.WriteByte('/')
	sb.WriteString(url.PathEscape(p.CID))
	sb.WriteString("/products/")
	sb.WriteString(url.PathEscape(productCode))
	sb.WriteString("/frames/")
	sb.WriteString(strconv.Itoa(angle))
	sb.WriteString(".PNG?size=")
	sb.WriteString(strconv.Itoa(p.Size))
	for _, s := range combo {
		sb.WriteString("&feature=")
		sb.WriteString(url.QueryEscape(s.FeatureCode))
		sb.WriteByte(':')
		sb.WriteString(url.QueryEscape(s.OptionCode))
	}
	sb.WriteString("&encoding=png")
	if p.SkipSharpening {
		sb.WriteString("&skipSharpening=true")
	}
	if p.RemoveEnvironmentShadow {
		sb.WriteString("&removeEnvironmentShadow=true")
	}
	return sb.String(), nil
}

// ValidateAngle checks that the frame angle lies within the accepted range.
func ValidateAngle(angle int) error {
	if angle < MinAngle || angle > MaxAngle {
		return cferrors.NewWithContext(cferrors.ErrCodeValidation,
			fmt.Sprintf("frame angle must be between %d and %d", MinAngle, MaxAngle),
			map[string]any{"angle": angle})
	}
	return nil
}
