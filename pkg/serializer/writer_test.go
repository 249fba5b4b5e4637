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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedStub struct {
	Rows []rowStub `json:"rows" yaml:"rows"`
}

type rowStub struct {
	ItemNo string `json:"itemNo" yaml:"itemNo"`
	URL    string `json:"url" yaml:"url"`
}

func (f feedStub) CSVHeader() []string {
	return []string{"Item No", "ImageURL"}
}

func (f feedStub) CSVRecords() [][]string {
	out := make([][]string, 0, len(f.Rows))
	for _, r := range f.Rows {
		out = append(out, []string{r.ItemNo, r.URL})
	}
	return out
}

func testFeed() feedStub {
	return feedStub{Rows: []rowStub{
		{ItemNo: "10-4411", URL: "https://example.com/1.PNG"},
		{ItemNo: "", URL: "https://example.com/2.PNG"},
	}}
}

func TestSerializeCSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)

	require.NoError(t, w.Serialize(context.Background(), testFeed()))
	assert.Equal(t,
		"Item No;ImageURL\n"+
			"10-4411;https://example.com/1.PNG\n"+
			";https://example.com/2.PNG\n",
		buf.String())
}

func TestSerializeCSVRequiresRecordMarshaler(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatCSV, &buf)

	err := w.Serialize(context.Background(), struct{ A int }{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no delimited representation")
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(context.Background(), testFeed()))

	var decoded feedStub
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Rows, 2)
	assert.Equal(t, "10-4411", decoded.Rows[0].ItemNo)
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(context.Background(), testFeed()))
	assert.Contains(t, buf.String(), "itemNo: 10-4411")
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(context.Background(), testFeed()))
	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Rows.[0].ItemNo")
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatCSV, false},
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}
	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("IsUnknown(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestNewWriterDefaultsUnknownFormatToCSV(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), testFeed()))
	assert.True(t, strings.HasPrefix(buf.String(), "Item No;ImageURL"))
}

func TestWriterCloseIsIdempotent(t *testing.T) {
	w := NewStdoutWriter(FormatJSON)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
