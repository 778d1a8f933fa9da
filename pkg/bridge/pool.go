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
	"context"
	stderrors "errors"
	"runtime"

	"golang.org/x/sync/semaphore"

	"github.com/cookwire/cookwire/pkg/errors"
	"github.com/cookwire/cookwire/pkg/recipe"
)

// Pool runs CPU-bound entry points with bounded concurrency.
type Pool struct {
	bridge *Bridge
	sem    *semaphore.Weighted
	size   int
}

// NewPool returns a pool with size slots, or GOMAXPROCS slots when size is
// not positive. A nil bridge means New().
func NewPool(size int, b *Bridge) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	if b == nil {
		b = New()
	}
	return &Pool{
		bridge: b,
		sem:    semaphore.NewWeighted(int64(size)),
		size:   size,
	}
}

// Size returns the number of slots.
func (p *Pool) Size() int {
	return p.size
}

// Bridge returns the bridge used for encoding.
func (p *Pool) Bridge() *Bridge {
	return p.bridge
}

// Do runs fn in a slot. ctx only bounds the wait for a slot; fn itself is
// never interrupted.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return errors.Wrap(errors.ErrCodeTimeout, "timed out waiting for a worker", err)
		}
		return errors.Wrap(errors.ErrCodeUnavailable, "no worker available", err)
	}
	defer p.sem.Release(1)
	fn()
	return nil
}

// Load runs Load in a slot.
func (p *Pool) Load(ctx context.Context, text string, opts Options) (*recipe.Recipe, error) {
	var (
		out *recipe.Recipe
		err error
	)
	if perr := p.Do(ctx, func() { out, err = Load(text, opts) }); perr != nil {
		return nil, perr
	}
	return out, err
}

// Parse runs Bridge.Parse in a slot.
func (p *Pool) Parse(ctx context.Context, text string, allExtensions bool) (string, error) {
	var (
		out string
		err error
	)
	if perr := p.Do(ctx, func() { out, err = p.bridge.Parse(text, allExtensions) }); perr != nil {
		return "", perr
	}
	return out, err
}

// ParseAndScale runs Bridge.ParseAndScale in a slot.
func (p *Pool) ParseAndScale(ctx context.Context, text string, target uint32, allExtensions bool) (string, error) {
	var (
		out string
		err error
	)
	if perr := p.Do(ctx, func() { out, err = p.bridge.ParseAndScale(text, target, allExtensions) }); perr != nil {
		return "", perr
	}
	return out, err
}

// ParseAisleConfig runs inline without taking a slot.
func (p *Pool) ParseAisleConfig(text string) (string, error) {
	return p.bridge.ParseAisleConfig(text)
}
