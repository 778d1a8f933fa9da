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
	"regexp"
	"strconv"
	"strings"
)

var (
	errDivisionByZero = errors.New("division by zero")

	decimalPattern  = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)$`)
	fractionPattern = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)
	mixedPattern    = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)$`)
)

// parseQuantity reads the body of a "{...}" group. An empty body means the
// component has no quantity and yields nil.
func parseQuantity(body string, ext Extensions) (*Quantity, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	valuePart, unitPart, hasUnit := strings.Cut(body, "%")
	valuePart = strings.TrimSpace(valuePart)

	q := &Quantity{}
	if ext.Has(ExtFixedQuantities) && strings.HasPrefix(valuePart, "=") {
		q.Fixed = true
		valuePart = strings.TrimSpace(valuePart[1:])
	}
	if hasUnit {
		if unit := strings.TrimSpace(unitPart); unit != "" {
			q.Unit = &unit
		}
	}
	if valuePart != "" {
		v, err := parseValue(valuePart, ext)
		if err != nil {
			return nil, err
		}
		q.Value = &v
	}
	return q, nil
}

// parseValue reads a number, a range (when enabled) or falls back to text.
func parseValue(s string, ext Extensions) (Value, error) {
	if ext.Has(ExtRangeValues) {
		if start, end, ok := strings.Cut(s, "-"); ok && strings.TrimSpace(start) != "" {
			a, okA, err := parseNumber(strings.TrimSpace(start))
			if err != nil {
				return Value{}, err
			}
			b, okB, err := parseNumber(strings.TrimSpace(end))
			if err != nil {
				return Value{}, err
			}
			if okA && okB {
				return RangeValue(a, b), nil
			}
			return TextValue(s), nil
		}
	}

	n, ok, err := parseNumber(s)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return NumberValue(n), nil
	}
	return TextValue(s), nil
}

// parseNumber accepts decimals, fractions and mixed numbers. ok is false when
// s is not numeric at all.
func parseNumber(s string) (n float64, ok bool, err error) {
	if decimalPattern.MatchString(s) {
		f, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return 0, false, nil
		}
		return f, true, nil
	}
	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		return fraction(m[1], m[2])
	}
	if m := mixedPattern.FindStringSubmatch(s); m != nil {
		whole, werr := strconv.ParseFloat(m[1], 64)
		if werr != nil {
			return 0, false, nil
		}
		f, fok, ferr := fraction(m[2], m[3])
		return whole + f, fok, ferr
	}
	return 0, false, nil
}

func fraction(num, den string) (float64, bool, error) {
	a, errA := strconv.ParseFloat(num, 64)
	b, errB := strconv.ParseFloat(den, 64)
	if errA != nil || errB != nil {
		return 0, false, nil
	}
	if b == 0 {
		return 0, false, errDivisionByZero
	}
	return a / b, true, nil
}
