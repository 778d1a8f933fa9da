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
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cookwire/cookwire/pkg/bridge"
	"github.com/cookwire/cookwire/pkg/defaults"
	"github.com/cookwire/cookwire/pkg/errors"
	"github.com/cookwire/cookwire/pkg/serializer"
	"github.com/cookwire/cookwire/pkg/server"
)

// Routes served by Handler.
const (
	RouteParse      = "/v1/parse"
	RouteParseBatch = "/v1/parse/batch"
	RouteAisle      = "/v1/aisle"
)

// Handler serves the conversion endpoints on top of a bridge.Pool.
type Handler struct {
	pool            *bridge.Pool
	maxBodyBytes    int64
	maxBulkRequests int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxBodyBytes caps request body size. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithMaxBulkRequests caps the number of recipes in a batch. Non-positive
// values are ignored.
func WithMaxBulkRequests(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBulkRequests = n
		}
	}
}

// NewHandler returns a Handler backed by pool. A nil pool gets a default one.
func NewHandler(pool *bridge.Pool, opts ...HandlerOption) *Handler {
	if pool == nil {
		pool = bridge.NewPool(0, nil)
	}
	h := &Handler{
		pool:            pool,
		maxBodyBytes:    defaults.MaxBodyBytes,
		maxBulkRequests: defaults.MaxBulkRequests,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the handler map for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteParse:      h.HandleParse,
		RouteParseBatch: h.HandleParseBatch,
		RouteAisle:      h.HandleAisle,
	}
}

// HandleParse converts one recipe, scaling it when servings is set.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.ParseHandlerTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	req, err := decodeParseRequest(r)
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	slog.Debug("parse request",
		"requestID", server.RequestIDFromContext(ctx),
		"bytes", len(req.Recipe),
		"servings", req.Servings,
	)

	start := time.Now()
	out, err := h.pool.Load(ctx, req.Recipe, req.options())
	observeConversion("parse", start, err)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to convert recipe", nil)
		return
	}

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		if verr := out.Validate(); verr != nil {
			slog.Warn("converted recipe has invalid item indices",
				"requestID", server.RequestIDFromContext(ctx),
				"error", verr)
		}
	}

	serializer.RespondJSON(w, http.StatusOK, out)
}

// HandleParseBatch converts up to maxBulkRequests recipes concurrently.
// One failing recipe does not fail the batch.
func (h *Handler) HandleParseBatch(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.BatchHandlerTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	var req BatchRequest
	if err := decodeDocument(r, r.Header.Get("Content-Type"), &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	if len(req.Recipes) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Batch must contain at least one recipe", false, nil)
		return
	}
	if len(req.Recipes) > h.maxBulkRequests {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Too many recipes in batch", false, map[string]any{
				"count": len(req.Recipes),
				"limit": h.maxBulkRequests,
			})
		return
	}
	batchSize.Observe(float64(len(req.Recipes)))

	results := make([]BatchResult, len(req.Recipes))
	var g errgroup.Group
	g.SetLimit(h.pool.Size())
	for i, item := range req.Recipes {
		g.Go(func() error {
			start := time.Now()
			out, err := h.pool.Load(ctx, item.Recipe, item.options())
			observeConversion("batch", start, err)
			if err != nil {
				results[i] = BatchResult{Error: &BatchError{
					Code:    string(errors.CodeOf(err)),
					Message: errors.Message(err),
				}}
				return nil
			}
			results[i] = BatchResult{Recipe: out}
			return nil
		})
	}
	_ = g.Wait() // per-item failures are recorded in results

	serializer.RespondJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// HandleAisle converts an aisle configuration body.
func (h *Handler) HandleAisle(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	rc := http.NewResponseController(w)
	if err := rc.SetReadDeadline(time.Now().Add(defaults.AisleHandlerTimeout)); err != nil {
		slog.Debug("read deadline not supported", "error", err)
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	start := time.Now()
	cfg, err := bridge.LoadAisle(string(data))
	observeConversion("aisle", start, err)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse aisle configuration", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, cfg)
}

func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if isBodyTooLarge(err) {
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidRequest,
			"Request body too large", false, map[string]any{"limit": h.maxBodyBytes})
		return
	}
	if errors.CodeOf(err) == errors.ErrCodeInternal {
		err = errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request body", err)
	}
	server.WriteErrorFromErr(w, r, err, "Invalid request", nil)
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodPost},
		})
	return false
}
