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

	"github.com/urfave/cli/v3"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/combiner"
	"github.com/pimtools/cylindo-feed/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the feed generation HTTP API",
		Description: `Run a long-lived HTTP API exposing the feed pipeline:

  POST /v1/feed      generate a feed for a JSON request
  GET  /v1/products  list customer product codes
  GET  /health, /ready, /version, /metrics

The catalog and exclusive-group table are loaded once at startup; each
request chooses products, feature selections, and image parameters.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Usage:   "Listen address (default: all interfaces)",
				Sources: cli.EnvVars("ADDRESS"),
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "Listen port",
				Sources: cli.EnvVars("PORT"),
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
			cidFlag,
			apiURLFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			records, err := catalog.LoadRecordsFromFile(cmd.String("catalog"))
			if err != nil {
				return fmt.Errorf("error loading catalog from %q: %w", cmd.String("catalog"), err)
			}

			groups, err := combiner.LoadGroups(cmd.String("exclusive-groups"))
			if err != nil {
				return fmt.Errorf("error loading exclusive-group table: %w", err)
			}

			cfg := server.NewConfig()
			if addr := cmd.String("address"); addr != "" {
				cfg.Address = addr
			}
			cfg.Port = int(cmd.Int("port"))

			srv := server.New(cfg, server.Dependencies{
				Source:  newClientFromCmd(cmd),
				Records: records,
				Groups:  groups,
				CID:     cmd.String("cid"),
				Version: version,
			})

			return srv.Start(ctx)
		},
	}
}
