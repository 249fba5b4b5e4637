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
	"net/url"
	"strconv"
	"strings"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

// Parsed is the result of decoding a generated frame URL.
type Parsed struct {
	CID         string
	ProductCode string
	Angle       int
	Combination catalog.Combination
}

// Parse decodes a URL produced by Build back into its inputs. Feature order
// in the query string is preserved in the returned combination.
func Parse(raw string) (*Parsed, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "malformed frame url", err)
	}

	segments := strings.Split(strings.Trim(u.EscapedPath(), "/"), "/")
	// api/v2/{cid}/products/{code}/frames/{frame}.PNG
	if len(segments) != 7 || segments[0] != "api" || segments[1] != "v2" ||
		segments[3] != "products" || segments[5] != "frames" {
		return nil, cferrors.New(cferrors.ErrCodeValidation, "frame url path does not match the content API shape")
	}

	cid, err := url.PathUnescape(segments[2])
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "malformed customer id", err)
	}
	code, err := url.PathUnescape(segments[4])
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "malformed product code", err)
	}

	frame := strings.TrimSuffix(segments[6], ".PNG")
	angle, err := strconv.Atoi(frame)
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "malformed frame angle", err)
	}
	if err := ValidateAngle(angle); err != nil {
		return nil, err
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "malformed frame url query", err)
	}

	var combo catalog.Combination
	for _, fv := range query["feature"] {
		featureCode, optionCode, ok := strings.Cut(fv, ":")
		if !ok {
			return nil, cferrors.NewWithContext(cferrors.ErrCodeValidation,
				"feature parameter is not CODE:OPTION",
				map[string]any{"feature": fv})
		}
		combo = append(combo, catalog.Selection{FeatureCode: featureCode, OptionCode: optionCode})
	}

	return &Parsed{
		CID:         cid,
		ProductCode: code,
		Angle:       angle,
		Combination: combo,
	}, nil
}
