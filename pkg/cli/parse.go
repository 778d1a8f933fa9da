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
	"fmt"
	"log/slog"
	"math"

	"github.com/urfave/cli/v3"

	"github.com/cookwire/cookwire/pkg/bridge"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a Cooklang recipe",
		Description: `Parse a Cooklang recipe into its ingredients, cookware, timers and steps.

With --servings the quantities are rescaled from the recipe's servings
metadata to the requested number. Parse errors are printed one per line.

Examples:
  cookwire parse -f pancakes.cook
  cookwire parse -f pancakes.cook --servings 8 --format yaml
  curl -s https://example.com/pancakes.cook | cookwire parse -o pancakes.json`,
		Flags: []cli.Flag{
			inputFlag(),
			insecureFlag(),
			&cli.IntFlag{
				Name:  "servings",
				Usage: "Scale the recipe to this many servings (0 keeps the original)",
			},
			&cli.BoolFlag{
				Name:  "extensions",
				Value: true,
				Usage: "Enable all Cooklang extensions",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			servings := cmd.Int("servings")
			if servings < 0 || int64(servings) > math.MaxUint32 {
				return fmt.Errorf("invalid servings %d: must be between 0 and %d", servings, uint32(math.MaxUint32))
			}

			text, err := readInput(ctx, cmd)
			if err != nil {
				return err
			}

			rec, err := bridge.Load(text, bridge.Options{
				AllExtensions: cmd.Bool("extensions"),
				Servings:      uint32(servings),
			})
			if err != nil {
				return &boundaryError{err: err}
			}

			for _, w := range rec.Warnings {
				slog.Warn("recipe warning", "message", w)
			}
			slog.Debug("recipe parsed",
				"ingredients", len(rec.Ingredients),
				"cookware", len(rec.Cookware),
				"timers", len(rec.Timers),
				"sections", len(rec.Sections))

			return writeOutput(ctx, cmd, format, rec)
		},
	}
}
