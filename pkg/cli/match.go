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
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/header"
	"github.com/pimtools/cylindo-feed/pkg/matcher"
	"github.com/pimtools/cylindo-feed/pkg/pipeline"
	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

// matchReport is the envelope for the match command output.
type matchReport struct {
	header.Header `json:",inline" yaml:",inline"`

	ProductCode string `json:"productCode" yaml:"productCode"`
	ColorName   string `json:"colorName,omitempty" yaml:"colorName,omitempty"`
	ColorCode   string `json:"colorCode,omitempty" yaml:"colorCode,omitempty"`
	Threshold   int    `json:"threshold" yaml:"threshold"`

	Matched    bool   `json:"matched" yaml:"matched"`
	ItemNo     string `json:"itemNo,omitempty" yaml:"itemNo,omitempty"`
	Ambiguous  bool   `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
	Candidates int    `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

func matchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "match",
		EnableShellCompletion: true,
		Usage:                 "Resolve a single product/color against the internal catalog",
		Description: `Run the two-stage catalog resolution for one product code and color,
without generating a feed. Useful to debug why a feed row came out
unresolved or ambiguous.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "product-code",
				Usage:    "Remote product code, compared against catalog item names",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "color-name",
				Usage: "Display name of the color option (e.g. \"Rainforest Green\")",
			},
			&cli.StringFlag{
				Name:  "color-code",
				Usage: "Option code of the color feature (e.g. LN-2034)",
			},
			&cli.IntFlag{
				Name:  "threshold",
				Value: matcher.DefaultThreshold,
				Usage: "Minimum name similarity score (0-100)",
			},
			&cli.StringFlag{
				Name:     "catalog",
				Usage:    "Path to the internal catalog CSV",
				Required: true,
			},
			outputFlag,
			&cli.StringFlag{
				Name:  "format",
				Value: string(serializer.FormatYAML),
				Usage: "Output format (json, yaml, table)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			records, err := catalog.LoadRecordsFromFile(cmd.String("catalog"))
			if err != nil {
				return fmt.Errorf("error loading catalog from %q: %w", cmd.String("catalog"), err)
			}

			m := matcher.New()
			m.Threshold = int(cmd.Int("threshold"))

			in := matcher.Input{
				ProductCode: cmd.String("product-code"),
				ColorName:   cmd.String("color-name"),
				ColorCode:   cmd.String("color-code"),
			}
			found := m.Find(in, records)

			report := &matchReport{
				ProductCode: in.ProductCode,
				ColorName:   in.ColorName,
				ColorCode:   in.ColorCode,
				Threshold:   m.Threshold,
			}
			report.Init(header.KindMatchReport, pipeline.FeedAPIVersion, version)
			if found != nil {
				report.Matched = true
				report.ItemNo = found.Record.ItemNo
				report.Ambiguous = found.Ambiguous
				report.Candidates = found.Candidates
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, report)
		},
	}
}
