// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/cookwire/cookwire/pkg/bridge"
)

func aisleCmd() *cli.Command {
	return &cli.Command{
		Name:                  "aisle",
		EnableShellCompletion: true,
		Usage:                 "Parse a Cooklang aisle configuration",
		Description: `Parse an aisle configuration that groups ingredient names into
shopping categories:

  [produce]
  potatoes|spuds
  onions

Examples:
  cookwire aisle -f aisle.conf
  cookwire aisle -f aisle.conf --format table`,
		Flags: []cli.Flag{
			inputFlag(),
			insecureFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			text, err := readInput(ctx, cmd)
			if err != nil {
				return err
			}

			cfg, err := bridge.LoadAisle(text)
			if err != nil {
				return &boundaryError{err: err}
			}
			slog.Debug("aisle parsed", "categories", len(cfg.Categories))

			return writeOutput(ctx, cmd, format, cfg)
		},
	}
}
