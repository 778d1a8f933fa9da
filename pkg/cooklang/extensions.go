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

// Extensions is a set of optional grammar features.
type Extensions uint32

const (
	// ExtComponentNote reads "(note)" right after an ingredient or cookware.
	ExtComponentNote Extensions = 1 << iota
	// ExtRangeValues reads "1-2" as a range instead of text.
	ExtRangeValues
	// ExtInlineQuantities turns temperatures in step text into inline quantities.
	ExtInlineQuantities
	// ExtTextBlocks turns paragraphs starting with ">" into text content.
	ExtTextBlocks
	// ExtFixedQuantities reads a leading "=" in a quantity as "do not scale".
	ExtFixedQuantities

	extLast
)

// AllExtensions returns every supported extension.
func AllExtensions() Extensions {
	return extLast - 1
}

// NoExtensions returns the empty set.
func NoExtensions() Extensions {
	return 0
}

// Has reports whether every extension in ext is enabled.
func (e Extensions) Has(ext Extensions) bool {
	return e&ext == ext
}
