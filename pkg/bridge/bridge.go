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

package bridge

import (
	"fmt"
	"strings"

	"github.com/cookwire/cookwire/pkg/aisle"
	"github.com/cookwire/cookwire/pkg/cooklang"
	"github.com/cookwire/cookwire/pkg/errors"
	"github.com/cookwire/cookwire/pkg/recipe"
	"github.com/cookwire/cookwire/pkg/serializer"
)

// Options controls a single Load.
type Options struct {
	// AllExtensions enables every Cooklang extension; otherwise none are.
	AllExtensions bool
	// Servings rescales quantities to this many servings when non-zero.
	Servings uint32
}

func (o Options) extensions() cooklang.Extensions {
	if o.AllExtensions {
		return cooklang.AllExtensions()
	}
	return cooklang.NoExtensions()
}

// Load parses text, optionally scales it and returns the output model
// without encoding it.
func Load(text string, opts Options) (*recipe.Recipe, error) {
	parsed, report, err := parse(text, opts.extensions())
	if err != nil {
		return nil, err
	}
	if opts.Servings > 0 {
		if parsed, err = scale(parsed, opts.Servings); err != nil {
			return nil, err
		}
	}
	return recipe.Convert(parsed, report), nil
}

// loadScaled always scales, so a zero target is reported by the scaler
// after any parse errors.
func loadScaled(text string, target uint32, ext cooklang.Extensions) (*recipe.Recipe, error) {
	parsed, report, err := parse(text, ext)
	if err != nil {
		return nil, err
	}
	if parsed, err = scale(parsed, target); err != nil {
		return nil, err
	}
	return recipe.Convert(parsed, report), nil
}

func parse(text string, ext cooklang.Extensions) (*cooklang.Recipe, *cooklang.Report, error) {
	parsed, report := cooklang.Parse(text, ext)
	if parsed == nil {
		return nil, nil, errors.NewWithContext(errors.ErrCodeParse, recipe.JoinErrors(report),
			map[string]any{"errors": len(report.Errors())})
	}
	return parsed, report, nil
}

func scale(parsed *cooklang.Recipe, target uint32) (*cooklang.Recipe, error) {
	scaled, err := parsed.ScaleToServings(target)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeScale, "Scaling error: "+err.Error(), err)
	}
	return scaled, nil
}

// LoadAisle parses an aisle configuration.
func LoadAisle(text string) (*aisle.Config, error) {
	cfg, err := aisle.Parse(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, err.Error(), err)
	}
	return cfg, nil
}

// Bridge encodes entry point results in one format.
type Bridge struct {
	format serializer.Format
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithFormat selects the output encoding. Table output is allowed but is
// meant for people, not programs.
func WithFormat(format serializer.Format) Option {
	return func(b *Bridge) {
		b.format = format
	}
}

// New returns a Bridge that encodes compact JSON unless configured
// otherwise.
func New(opts ...Option) *Bridge {
	b := &Bridge{format: serializer.FormatJSON}
	for _, opt := range opts {
		opt(b)
	}
	if b.format.IsUnknown() {
		b.format = serializer.FormatJSON
	}
	return b
}

// Format returns the output encoding of b.
func (b *Bridge) Format() serializer.Format {
	return b.format
}

// Parse parses text and encodes the output model.
func (b *Bridge) Parse(text string, allExtensions bool) (string, error) {
	return b.load(text, Options{AllExtensions: allExtensions})
}

// ParseAndScale parses text, rescales it to target servings and encodes
// the output model. The recipe must declare its servings.
func (b *Bridge) ParseAndScale(text string, target uint32, allExtensions bool) (string, error) {
	out, err := loadScaled(text, target, Options{AllExtensions: allExtensions}.extensions())
	if err != nil {
		return "", err
	}
	return b.encode(out)
}

// ParseAisleConfig parses an aisle configuration and encodes it.
func (b *Bridge) ParseAisleConfig(text string) (string, error) {
	cfg, err := LoadAisle(text)
	if err != nil {
		return "", err
	}
	return b.encode(cfg)
}

func (b *Bridge) load(text string, opts Options) (string, error) {
	out, err := Load(text, opts)
	if err != nil {
		return "", err
	}
	return b.encode(out)
}

func (b *Bridge) encode(v any) (string, error) {
	data, err := serializer.Marshal(b.format, v)
	if err != nil {
		msg := fmt.Sprintf("%s serialization error: %v", strings.ToUpper(string(b.format)), err)
		return "", errors.Wrap(errors.ErrCodeSerialization, msg, err)
	}
	return string(data), nil
}

var defaultBridge = New()

// Parse parses text and returns the output model as compact JSON.
func Parse(text string, allExtensions bool) (string, error) {
	return defaultBridge.Parse(text, allExtensions)
}

// ParseAndScale parses text, rescales it to target servings and returns
// the output model as compact JSON.
func ParseAndScale(text string, target uint32, allExtensions bool) (string, error) {
	return defaultBridge.ParseAndScale(text, target, allExtensions)
}

// ParseAisleConfig parses an aisle configuration and returns it as compact
// JSON.
func ParseAisleConfig(text string) (string, error) {
	return defaultBridge.ParseAisleConfig(text)
}
