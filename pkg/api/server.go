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

package api

import (
	"context"
	"log/slog"

	"github.com/cookwire/cookwire/pkg/bridge"
	"github.com/cookwire/cookwire/pkg/logging"
	"github.com/cookwire/cookwire/pkg/server"
)

const (
	name           = "cookwired"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/cookwire/cookwire/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
func Serve() error {
	return ServeContext(context.Background())
}

// ServeContext is Serve with a caller-supplied parent context.
func ServeContext(ctx context.Context) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := NewServer(server.NewConfig())

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer builds a server for cfg with the cookwire routes installed.
func NewServer(cfg *server.Config) *server.Server {
	pool := bridge.NewPool(cfg.Workers, nil)
	h := NewHandler(pool,
		WithMaxBodyBytes(cfg.MaxBodyBytes),
		WithMaxBulkRequests(cfg.MaxBulkRequests),
	)

	return server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)
}
