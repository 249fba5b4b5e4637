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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/combiner"
	"github.com/pimtools/cylindo-feed/pkg/cylindo"
	"github.com/pimtools/cylindo-feed/pkg/defaults"
	"github.com/pimtools/cylindo-feed/pkg/frameurl"
	"github.com/pimtools/cylindo-feed/pkg/pipeline"
	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate the product image feed",
		Description: `Generate a product image feed for the selected products:
  - Expands the selected feature options into all valid combinations
    (exclusive groups such as textile/leather never co-occur)
  - Builds one canonical image URL per combination and frame angle
  - Resolves each combination to an internal catalog item number

The feed can be output in CSV (semicolon-delimited), JSON, YAML, or table
format.

# Examples

Two textiles on one product, front and side frames:
  cyfeed generate --cid 4404 --product HARMONY-SOFA \
    --feature TEXTILE=LN-2034,LN-2040 --angle 1 --angle 9 \
    --catalog catalog.csv --output feed.csv

Every product of the customer:
  cyfeed generate --cid 4404 --all-products \
    --feature TEXTILE=LN-2034 --catalog catalog.csv`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "product",
				Aliases: []string{"p"},
				Usage:   "Product code to include (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "all-products",
				Usage: "Generate for every product of the customer",
			},
			&cli.IntSliceFlag{
				Name:  "angle",
				Usage: fmt.Sprintf("Frame angle %d-%d (can be repeated)", frameurl.MinAngle, frameurl.MaxAngle),
				Value: []int64{1},
			},
			&cli.StringSliceFlag{
				Name:  "feature",
				Usage: "Feature selection (format: CODE=OPT[,OPT], can be repeated)",
			},
			&cli.StringFlag{
				Name:     "catalog",
				Usage:    "Path to the internal catalog CSV",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "exclusive-groups",
				Usage: "Path to an exclusive-group YAML table (default: embedded table)",
			},
			&cli.IntFlag{
				Name:  "size",
				Value: 1024,
				Usage: "Image size in pixels",
			},
			&cli.BoolFlag{
				Name:  "skip-sharpening",
				Usage: "Disable the API-side sharpening pass",
			},
			&cli.BoolFlag{
				Name:  "remove-shadow",
				Usage: "Remove the rendered environment shadow",
			},
			&cli.IntFlag{
				Name:  "parallelism",
				Value: 1,
				Usage: "Number of products fetched and expanded concurrently",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIGenerateTimeout,
				Usage: "Timeout for the whole generation run",
			},
			cidFlag,
			apiURLFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			selected, err := parseFeatureSelections(cmd.StringSlice("feature"))
			if err != nil {
				return fmt.Errorf("error parsing feature selections: %w", err)
			}
			if len(selected) == 0 {
				return fmt.Errorf("at least one --feature selection is required")
			}

			groups, err := combiner.LoadGroups(cmd.String("exclusive-groups"))
			if err != nil {
				return fmt.Errorf("error loading exclusive-group table: %w", err)
			}

			records, err := catalog.LoadRecordsFromFile(cmd.String("catalog"))
			if err != nil {
				return fmt.Errorf("error loading catalog from %q: %w", cmd.String("catalog"), err)
			}

			client := newClientFromCmd(cmd)

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			products := cmd.StringSlice("product")
			if cmd.Bool("all-products") {
				products, err = client.ListProducts(ctx)
				if err != nil {
					return fmt.Errorf("error listing customer products: %w", err)
				}
			}
			if len(products) == 0 {
				return fmt.Errorf("no products selected; use --product or --all-products")
			}

			angles := make([]int, 0, len(cmd.IntSlice("angle")))
			for _, a := range cmd.IntSlice("angle") {
				angles = append(angles, int(a))
			}

			gen := &pipeline.FeedGenerator{
				Source:  client,
				Records: records,
				Version: version,
				Logger:  slog.Default(),
				Config: pipeline.Config{
					Params: frameurl.Params{
						CID:                     cmd.String("cid"),
						Size:                    int(cmd.Int("size")),
						SkipSharpening:          cmd.Bool("skip-sharpening"),
						RemoveEnvironmentShadow: cmd.Bool("remove-shadow"),
					},
					Angles:      angles,
					Selected:    selected,
					Groups:      groups,
					Parallelism: int(cmd.Int("parallelism")),
				},
			}

			feed, err := gen.Run(ctx, products)
			if err != nil {
				return fmt.Errorf("error generating feed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, feed)
		},
	}
}

// newClientFromCmd builds the content API client, honoring --api-url.
func newClientFromCmd(cmd *cli.Command) *cylindo.Client {
	var opts []cylindo.Option
	if u := cmd.String("api-url"); u != "" {
		opts = append(opts, cylindo.WithBaseURL(u))
	}
	return cylindo.New(cmd.String("cid"), opts...)
}

// parseFeatureSelections parses repeated CODE=OPT[,OPT] flags into the
// feature-to-options selection map. Repeating a feature code appends to its
// option list.
func parseFeatureSelections(args []string) (map[string][]string, error) {
	selected := make(map[string][]string, len(args))
	for _, arg := range args {
		code, opts, ok := strings.Cut(arg, "=")
		code = strings.TrimSpace(code)
		if !ok || code == "" {
			return nil, fmt.Errorf("invalid feature selection %q, expected CODE=OPT[,OPT]", arg)
		}
		var parsed []string
		for _, opt := range strings.Split(opts, ",") {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			parsed = append(parsed, opt)
		}
		if len(parsed) == 0 {
			return nil, fmt.Errorf("feature selection %q names no options", arg)
		}
		selected[code] = append(selected[code], parsed...)
	}
	return selected, nil
}
