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
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"2", 2, true},
		{"0.25", 0.25, true},
		{".5", 0.5, true},
		{"3/4", 0.75, true},
		{"1 / 4", 0.25, true},
		{"2 1/2", 2.5, true},
		{"1e3", 0, false},
		{"NaN", 0, false},
		{"a few", 0, false},
		{"1,5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := parseNumber(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseQuantity_Empty(t *testing.T) {
	q, err := parseQuantity("   ", AllExtensions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != nil {
		t.Errorf("expected nil quantity, got %+v", q)
	}
}

func TestParseQuantity_EmptyUnitIsDropped(t *testing.T) {
	q, err := parseQuantity("2%", AllExtensions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Unit != nil {
		t.Errorf("expected no unit, got %q", *q.Unit)
	}
	if q.Value == nil || q.Value.Number != 2 {
		t.Errorf("expected value 2, got %+v", q.Value)
	}
}

func TestParseQuantity_DivisionByZero(t *testing.T) {
	_, err := parseQuantity("1 1/0", AllExtensions())
	if !errors.Is(err, errDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func TestExtensions(t *testing.T) {
	all := AllExtensions()
	for _, ext := range []Extensions{ExtComponentNote, ExtRangeValues, ExtInlineQuantities, ExtTextBlocks, ExtFixedQuantities} {
		if !all.Has(ext) {
			t.Errorf("AllExtensions() missing %b", ext)
		}
		if NoExtensions().Has(ext) {
			t.Errorf("NoExtensions() has %b", ext)
		}
	}
}
