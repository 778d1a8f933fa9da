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
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/cookwire/cookwire/pkg/serializer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return string(data)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{"yaml", "yaml", serializer.FormatYAML, false},
		{"json", "json", serializer.FormatJSON, false},
		{"table", "table", serializer.FormatTable, false},
		{"xml is invalid", "xml", "", true},
		{"empty is invalid", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagFormat, Value: tt.format},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestParseCmd(t *testing.T) {
	dir := t.TempDir()
	salt := writeFile(t, dir, "salt.cook", ">> servings: 4\n@salt{1%tsp}\nAdd @salt{1%tsp} to taste.")
	eggs := writeFile(t, dir, "eggs.cook", "Boil @eggs{1-2}.")

	tests := []struct {
		name     string
		args     []string
		wantErr  string
		contains []string
	}{
		{
			name:     "json default",
			args:     []string{"parse", "-f", salt},
			contains: []string{`"name": "salt"`, `"servings": "4"`},
		},
		{
			name:     "scaled",
			args:     []string{"parse", "-f", salt, "--servings", "8"},
			contains: []string{`"value": 2`, `"unit": "tsp"`},
		},
		{
			name:     "yaml",
			args:     []string{"parse", "--input", salt, "--format", "yaml"},
			contains: []string{"name: salt", "unit: tsp"},
		},
		{
			name:     "table",
			args:     []string{"parse", "-f", salt, "-t", "table"},
			contains: []string{"FIELD", "ingredients.0.name", "salt"},
		},
		{
			name:     "extensions disabled",
			args:     []string{"parse", "-f", eggs, "--extensions=false"},
			contains: []string{`"value": "1-2"`},
		},
		{
			name:     "ranges with extensions",
			args:     []string{"parse", "-f", eggs},
			contains: []string{`"start": 1`, `"end": 2`},
		},
		{
			name:    "unknown format",
			args:    []string{"parse", "-f", salt, "--format", "xml"},
			wantErr: "unknown format",
		},
		{
			name:    "negative servings",
			args:    []string{"parse", "-f", salt, "--servings=-1"},
			wantErr: "invalid servings",
		},
		{
			name:    "missing file",
			args:    []string{"parse", "-f", filepath.Join(dir, "missing.cook")},
			wantErr: "failed to read input",
		},
		{
			name:    "scale without servings metadata",
			args:    []string{"parse", "-f", eggs, "--servings", "2"},
			wantErr: "Scaling error: recipe has no servings metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out")
			err := runCLI(t, append(tt.args, "-o", out)...)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := readOutput(t, out)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
		})
	}
}

func TestParseCmd_FormatFromOutputPath(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "onion.cook", "Chop @onion{2}.")

	tests := []struct {
		name string
		out  string
		want string
	}{
		{"yaml extension", "onion.yaml", "name: onion"},
		{"yml extension", "onion.yml", "name: onion"},
		{"json extension", "onion.json", `"name": "onion"`},
		{"txt is table", "onion.txt", "ingredients.0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.out)
			if err := runCLI(t, "parse", "-f", in, "-o", out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := readOutput(t, out); !strings.Contains(got, tt.want) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.want, got)
			}
		})
	}
}

func TestParseCmd_ParseErrorsAreTheMessage(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.cook", "@{1}\n\n#{2}")

	err := runCLI(t, "parse", "-f", path)
	if err == nil {
		t.Fatal("expected parse failure")
	}

	want := "ingredient name cannot be empty\ncookware name cannot be empty"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestParseCmd_URLInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Chop @onion{2}."))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "out.json")
	if err := runCLI(t, "parse", "-f", srv.URL+"/onion.cook", "-o", out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := readOutput(t, out); !strings.Contains(got, `"name": "onion"`) {
		t.Errorf("expected onion in output, got:\n%s", got)
	}
}

func TestAisleCmd(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "aisle.conf", "[produce]\npotatoes|spuds\n\n[dairy]\nmilk\n")
	bad := writeFile(t, dir, "bad.conf", "[produce]\nmilk\n[dairy]\nMilk\n")

	t.Run("json", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "aisle.json")
		if err := runCLI(t, "aisle", "-f", good, "-o", out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := readOutput(t, out)
		for _, want := range []string{`"name": "produce"`, `"spuds"`, `"name": "dairy"`} {
			if !strings.Contains(got, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("duplicate ingredient", func(t *testing.T) {
		err := runCLI(t, "aisle", "-f", bad)
		if err == nil || !strings.Contains(err.Error(), "duplicate ingredient") {
			t.Fatalf("expected duplicate ingredient error, got %v", err)
		}
		if strings.Contains(err.Error(), "INVALID_REQUEST") {
			t.Errorf("expected message without error code, got %q", err.Error())
		}
	})
}
