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

package cooklang

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ServingsKey is the metadata key holding the base number of servings.
const ServingsKey = "servings"

var (
	// ErrMissingServings is returned when the recipe declares no servings.
	ErrMissingServings = errors.New("recipe has no servings metadata")
	// ErrInvalidServings is returned when the declared servings are not a positive integer.
	ErrInvalidServings = errors.New("recipe servings metadata is not a positive integer")
	// ErrInvalidTarget is returned for a zero target.
	ErrInvalidTarget = errors.New("target servings must be a positive integer")
	// ErrScaleOverflow is returned when a scaled quantity leaves the float64 range.
	ErrScaleOverflow = errors.New("scaled quantity is out of range")
)

// Servings returns the base servings declared in the metadata.
func (r *Recipe) Servings() (uint32, error) {
	raw, ok := r.Metadata.Get(ServingsKey)
	if !ok || raw == nil {
		return 0, ErrMissingServings
	}

	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidServings, v)
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidServings, v)
		}
		n = int64(v)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidServings, v)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidServings, v)
	}

	if n <= 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidServings, n)
	}
	return uint32(n), nil
}

// ScaleToServings returns a copy of r with every non-fixed numeric quantity
// multiplied by target/servings. r itself is never modified, and on error
// no scaled copy is returned.
func (r *Recipe) ScaleToServings(target uint32) (*Recipe, error) {
	if target == 0 {
		return nil, ErrInvalidTarget
	}
	base, err := r.Servings()
	if err != nil {
		return nil, err
	}

	s := scaler{
		num: decimal.NewFromInt(int64(target)),
		den: decimal.NewFromInt(int64(base)),
	}
	out := r.Clone()
	for i := range out.Ingredients {
		if err := s.apply(out.Ingredients[i].Quantity); err != nil {
			return nil, err
		}
	}
	for i := range out.Cookware {
		if err := s.apply(out.Cookware[i].Quantity); err != nil {
			return nil, err
		}
	}
	for i := range out.Timers {
		if err := s.apply(out.Timers[i].Quantity); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type scaler struct {
	num decimal.Decimal
	den decimal.Decimal
}

func (s scaler) apply(q *Quantity) error {
	if q == nil || q.Fixed || q.Value == nil {
		return nil
	}
	var err error
	switch q.Value.Kind {
	case ValueNumber:
		q.Value.Number, err = s.scale(q.Value.Number)
	case ValueRange:
		if q.Value.Start, err = s.scale(q.Value.Start); err != nil {
			return err
		}
		q.Value.End, err = s.scale(q.Value.End)
	case ValueText:
	}
	return err
}

func (s scaler) scale(v float64) (float64, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v, nil
	}
	f, _ := decimal.NewFromFloat(v).Mul(s.num).Div(s.den).Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %v * %s / %s", ErrScaleOverflow, v, s.num, s.den)
	}
	return f, nil
}
