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

	"github.com/pimtools/cylindo-feed/pkg/header"
	"github.com/pimtools/cylindo-feed/pkg/pipeline"
	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

// productList is the envelope for the products command output.
type productList struct {
	header.Header `json:",inline" yaml:",inline"`

	CID      string   `json:"cid" yaml:"cid"`
	Products []string `json:"products" yaml:"products"`
}

func (p *productList) CSVHeader() []string {
	return []string{"Product Code"}
}

func (p *productList) CSVRecords() [][]string {
	out := make([][]string, 0, len(p.Products))
	for _, code := range p.Products {
		out = append(out, []string{code})
	}
	return out
}

func productsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "products",
		EnableShellCompletion: true,
		Usage:                 "List product codes available for the customer",
		Description: `List the product codes the content API exposes for the customer id,
optionally filtered by a case-insensitive substring. Use this to find the
codes to pass to generate --product.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "filter",
				Usage: "Keep only product codes containing this substring (case-insensitive)",
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

			client := newClientFromCmd(cmd)
			codes, err := client.ListProducts(ctx)
			if err != nil {
				return fmt.Errorf("error listing customer products: %w", err)
			}

			if filter := cmd.String("filter"); filter != "" {
				needle := strings.ToLower(filter)
				kept := codes[:0]
				for _, code := range codes {
					if strings.Contains(strings.ToLower(code), needle) {
						kept = append(kept, code)
					}
				}
				codes = kept
			}

			list := &productList{CID: cmd.String("cid"), Products: codes}
			list.Init(header.KindProductList, pipeline.FeedAPIVersion, version)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, list)
		},
	}
}
