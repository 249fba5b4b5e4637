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
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pimtools/cylindo-feed/pkg/serializer"
)

// Flags shared across subcommands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatCSV),
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
	}

	cidFlag = &cli.StringFlag{
		Name:     "cid",
		Usage:    "Cylindo customer id",
		Sources:  cli.EnvVars("CYLINDO_CID"),
		Required: true,
	}

	apiURLFlag = &cli.StringFlag{
		Name:    "api-url",
		Usage:   "Override the content API base URL",
		Sources: cli.EnvVars("CYLINDO_API_URL"),
	}
)
