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

	"github.com/urfave/cli/v3"

	"github.com/cookwire/cookwire/pkg/defaults"
	"github.com/cookwire/cookwire/pkg/errors"
	"github.com/cookwire/cookwire/pkg/serializer"
)

// Flag names shared by the subcommands.
const (
	flagInput    = "input"
	flagOutput   = "output"
	flagFormat   = "format"
	flagInsecure = "insecure-skip-verify"
)

// Flags are built per command; urfave flags keep parsed state.

func inputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagInput,
		Aliases: []string{"f"},
		Value:   serializer.StdinPath,
		Usage:   `Path or http(s) URL of the input file, or "-" for stdin`,
	}
}

func insecureFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  flagInsecure,
		Usage: "Skip TLS certificate verification for https inputs",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagOutput,
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// parseOutputFormat reads and validates the --format flag. Without an
// explicit --format, the extension of --output picks the format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	if !cmd.IsSet(flagFormat) {
		if out := cmd.String(flagOutput); out != "" && out != serializer.StdinPath {
			return serializer.FormatFromPath(out), nil
		}
	}
	return serializer.ParseFormat(cmd.String(flagFormat))
}

// readInput loads the --input source.
func readInput(ctx context.Context, cmd *cli.Command) (string, error) {
	path := cmd.String(flagInput)
	data, err := serializer.ReadSource(ctx, path,
		serializer.WithTotalTimeout(defaults.CLIFetchTimeout),
		serializer.WithInsecureSkipVerify(cmd.Bool(flagInsecure)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to read input %q: %w", path, err)
	}
	slog.Debug("input loaded", "source", path, "bytes", len(data))
	return string(data), nil
}

// writeOutput serializes v to --output in format.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	w := serializer.NewFileWriterOrStdout(format, cmd.String(flagOutput))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	if err := w.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// boundaryError prints only the caller-facing message of a conversion
// failure, e.g. the newline-joined parser errors.
type boundaryError struct {
	err error
}

func (e *boundaryError) Error() string {
	return errors.Message(e.err)
}

func (e *boundaryError) Unwrap() error {
	return e.err
}
