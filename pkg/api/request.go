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
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/cookwire/cookwire/pkg/bridge"
	"github.com/cookwire/cookwire/pkg/errors"
	"github.com/cookwire/cookwire/pkg/serializer"
)

// Query parameters accepted with a text/plain parse body.
const (
	QueryExtensions = "extensions"
	QueryServings   = "servings"
)

// ParseRequest is one recipe to convert.
type ParseRequest struct {
	// Recipe is the Cooklang source text.
	Recipe string `json:"recipe" yaml:"recipe"`
	// Extensions enables every Cooklang extension. Defaults to true.
	Extensions *bool `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// Servings rescales to this many servings when greater than zero.
	Servings uint32 `json:"servings,omitempty" yaml:"servings,omitempty"`
}

func (p ParseRequest) options() bridge.Options {
	all := true
	if p.Extensions != nil {
		all = *p.Extensions
	}
	return bridge.Options{AllExtensions: all, Servings: p.Servings}
}

// BatchRequest is the body of a batch parse.
type BatchRequest struct {
	Recipes []ParseRequest `json:"recipes" yaml:"recipes"`
}

// BatchResult holds either a converted recipe or the error for one request.
type BatchResult struct {
	Recipe any         `json:"recipe,omitempty"`
	Error  *BatchError `json:"error,omitempty"`
}

// BatchError is the per-item failure in a batch response.
type BatchError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchResponse keeps results in request order.
type BatchResponse struct {
	Results []BatchResult `json:"results"`
}

// isBodyTooLarge reports whether err came from http.MaxBytesReader.
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return stderrors.As(err, &maxErr)
}

// decodeParseRequest reads a ParseRequest from either a text/plain body with
// query parameters or a JSON/YAML document.
func decodeParseRequest(r *http.Request) (*ParseRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/plain" {
		return decodeTextRequest(r)
	}

	var req ParseRequest
	if err := decodeDocument(r, contentType, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func decodeTextRequest(r *http.Request) (*ParseRequest, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	req := &ParseRequest{Recipe: string(data)}
	q := r.URL.Query()

	if v := q.Get(QueryExtensions); v != "" {
		ext, perr := strconv.ParseBool(v)
		if perr != nil {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"invalid extensions parameter", map[string]any{QueryExtensions: v})
		}
		req.Extensions = &ext
	}

	if v := q.Get(QueryServings); v != "" {
		n, perr := strconv.ParseUint(v, 10, 32)
		if perr != nil {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"invalid servings parameter", map[string]any{QueryServings: v})
		}
		req.Servings = uint32(n)
	}

	return req, nil
}

// decodeDocument decodes a JSON or YAML body into v. An empty content type
// is treated as JSON.
func decodeDocument(r *http.Request, contentType string, v any) error {
	format := serializer.FormatJSON
	if contentType != "" {
		f, ok := serializer.FormatFromContentType(contentType)
		if !ok {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unsupported content type", map[string]any{"contentType": contentType})
		}
		format = f
	}

	reader, err := serializer.NewReader(format, r.Body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to create reader", err)
	}
	defer reader.Close()

	if err := reader.Deserialize(v); err != nil {
		if isBodyTooLarge(err) {
			return err
		}
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request body", err)
	}
	return nil
}
