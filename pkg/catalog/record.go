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

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
)

// Required column headers of the internal catalog table.
const (
	ColumnItemNo          = "Item No"
	ColumnItemName        = "Item Name"
	ColumnBaseColor       = "Base Color"
	ColumnColorLookupCode = "Color (lookup InRiver)"
)

// Record is one row of the internal product catalog. Records are loaded once
// per run and treated as read-only.
type Record struct {
	ItemNo          string `json:"itemNo" yaml:"itemNo"`
	ItemName        string `json:"itemName" yaml:"itemName"`
	BaseColor       string `json:"baseColor" yaml:"baseColor"`
	ColorLookupCode string `json:"colorLookupCode" yaml:"colorLookupCode"`
}

// LoadOption configures catalog record loading.
type LoadOption func(*loadConfig)

type loadConfig struct {
	delimiter rune
}

// WithDelimiter sets the CSV field delimiter. Defaults to comma.
func WithDelimiter(d rune) LoadOption {
	return func(c *loadConfig) {
		c.delimiter = d
	}
}

// LoadRecords reads catalog records from a CSV stream. The first row must be
// a header containing the four required columns; extra columns are ignored.
// A missing required column is a validation error.
func LoadRecords(r io.Reader, opts ...LoadOption) ([]Record, error) {
	cfg := loadConfig{delimiter: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeValidation, "failed to read catalog header", err)
	}

	idx := make(map[string]int, len(head))
	for i, col := range head {
		idx[strings.TrimSpace(col)] = i
	}
	required := []string{ColumnItemNo, ColumnItemName, ColumnBaseColor, ColumnColorLookupCode}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, cferrors.NewWithContext(
				cferrors.ErrCodeValidation,
				"catalog table is missing a required column",
				map[string]any{"column": col},
			)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, cferrors.Wrap(cferrors.ErrCodeValidation,
				fmt.Sprintf("failed to read catalog row %d", line), err)
		}
		records = append(records, Record{
			ItemNo:          strings.TrimSpace(row[idx[ColumnItemNo]]),
			ItemName:        strings.TrimSpace(row[idx[ColumnItemName]]),
			BaseColor:       strings.TrimSpace(row[idx[ColumnBaseColor]]),
			ColorLookupCode: strings.TrimSpace(row[idx[ColumnColorLookupCode]]),
		})
	}
	return records, nil
}

// LoadRecordsFromFile reads catalog records from a CSV file on disk.
func LoadRecordsFromFile(path string, opts ...LoadOption) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeNotFound, "failed to open catalog file", err)
	}
	defer f.Close()
	return LoadRecords(f, opts...)
}
