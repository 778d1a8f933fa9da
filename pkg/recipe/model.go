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

package recipe

import (
	"encoding/json"
	"fmt"
)

// Recipe is the boundary-safe output model of a converted recipe. It is
// built once per conversion and not modified afterwards.
type Recipe struct {
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
	Ingredients []Ingredient      `json:"ingredients" yaml:"ingredients"`
	Cookware    []Cookware        `json:"cookware" yaml:"cookware"`
	Timers      []Timer           `json:"timers" yaml:"timers"`
	Sections    []Section         `json:"sections" yaml:"sections"`
	Warnings    []string          `json:"warnings" yaml:"warnings"`
}

// Ingredient is a named ingredient with an optional quantity and note.
type Ingredient struct {
	Name     string    `json:"name" yaml:"name"`
	Quantity *Quantity `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Note     *string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// Cookware is a named piece of equipment with an optional quantity and note.
type Cookware struct {
	Name     string    `json:"name" yaml:"name"`
	Quantity *Quantity `json:"quantity,omitempty" yaml:"quantity,omitempty"`
	Note     *string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// Timer may be anonymous, in which case Name is nil.
type Timer struct {
	Name     *string   `json:"name,omitempty" yaml:"name,omitempty"`
	Quantity *Quantity `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}

// Quantity pairs an optional value with an optional unit. A quantity with
// neither serializes as an empty object.
type Quantity struct {
	Value *Value  `json:"value,omitempty" yaml:"value,omitempty"`
	Unit  *string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Section is an optionally named list of steps.
type Section struct {
	Name    *string `json:"name,omitempty" yaml:"name,omitempty"`
	Content []Step  `json:"content" yaml:"content"`
}

// Step is an ordered list of items.
type Step struct {
	Items []Item `json:"items" yaml:"items"`
}

// ValueKind discriminates Value.
type ValueKind string

const (
	ValueNumber ValueKind = "number"
	ValueRange  ValueKind = "range"
	ValueText   ValueKind = "text"
)

// Value is a number, an inclusive range or free text. It serializes
// untagged: a JSON number, a {"start","end"} object or a string.
type Value struct {
	Kind   ValueKind
	Number float64
	Start  float64
	End    float64
	Text   string
}

// NumberValue returns a number value.
func NumberValue(n float64) Value { return Value{Kind: ValueNumber, Number: n} }

// RangeValue returns a range value.
func RangeValue(start, end float64) Value { return Value{Kind: ValueRange, Start: start, End: end} }

// TextValue returns a text value.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

type rangeWire struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

func (v Value) wire() (any, error) {
	switch v.Kind {
	case ValueNumber:
		return v.Number, nil
	case ValueRange:
		return rangeWire{Start: v.Start, End: v.End}, nil
	case ValueText:
		return v.Text, nil
	default:
		return nil, fmt.Errorf("unknown value kind %q", v.Kind)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	w, err := v.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.wire()
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = NumberValue(t)
	case string:
		*v = TextValue(t)
	case map[string]any:
		var r rangeWire
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*v = RangeValue(r.Start, r.End)
	default:
		return fmt.Errorf("unsupported value %s", string(data))
	}
	return nil
}

// ItemType is the discriminator of an Item on the wire.
type ItemType string

const (
	ItemText       ItemType = "text"
	ItemIngredient ItemType = "ingredient"
	ItemCookware   ItemType = "cookware"
	ItemTimer      ItemType = "timer"
)

// Item is a piece of step text or a reference by index into the
// ingredient, cookware or timer list of the same Recipe.
type Item struct {
	Type  ItemType
	Value string
	Index int
}

// TextItem returns a text item.
func TextItem(s string) Item { return Item{Type: ItemText, Value: s} }

// RefItem returns a reference item of the given type.
func RefItem(t ItemType, index int) Item { return Item{Type: t, Index: index} }

type textItemWire struct {
	Type  ItemType `json:"type" yaml:"type"`
	Value string   `json:"value" yaml:"value"`
}

type refItemWire struct {
	Type  ItemType `json:"type" yaml:"type"`
	Index int      `json:"index" yaml:"index"`
}

func (i Item) wire() (any, error) {
	switch i.Type {
	case ItemText:
		return textItemWire{Type: i.Type, Value: i.Value}, nil
	case ItemIngredient, ItemCookware, ItemTimer:
		return refItemWire{Type: i.Type, Index: i.Index}, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", i.Type)
	}
}

// MarshalJSON implements json.Marshaler.
func (i Item) MarshalJSON() ([]byte, error) {
	w, err := i.wire()
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// MarshalYAML implements yaml.Marshaler.
func (i Item) MarshalYAML() (any, error) {
	return i.wire()
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  ItemType `json:"type"`
		Value string   `json:"value"`
		Index int      `json:"index"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case ItemText:
		*i = TextItem(raw.Value)
	case ItemIngredient, ItemCookware, ItemTimer:
		*i = RefItem(raw.Type, raw.Index)
	default:
		return fmt.Errorf("unknown item type %q", raw.Type)
	}
	return nil
}

// Validate checks that every reference item points inside its list.
func (r *Recipe) Validate() error {
	if r == nil {
		return fmt.Errorf("recipe cannot be nil")
	}
	for si, s := range r.Sections {
		for pi, step := range s.Content {
			for ii, it := range step.Items {
				var n int
				switch it.Type {
				case ItemText:
					continue
				case ItemIngredient:
					n = len(r.Ingredients)
				case ItemCookware:
					n = len(r.Cookware)
				case ItemTimer:
					n = len(r.Timers)
				default:
					return fmt.Errorf("section %d step %d item %d has unknown type %q", si, pi, ii, it.Type)
				}
				if it.Index < 0 || it.Index >= n {
					return fmt.Errorf("section %d step %d item %d: %s index %d out of range (%d)",
						si, pi, ii, it.Type, it.Index, n)
				}
			}
		}
	}
	return nil
}
