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

// ValueKind identifies the alternative held by a Value.
type ValueKind int

const (
	// ValueNumber holds a single number.
	ValueNumber ValueKind = iota
	// ValueRange holds an inclusive start/end pair.
	ValueRange
	// ValueText holds free text that could not be read as a number.
	ValueText
)

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueNumber:
		return "number"
	case ValueRange:
		return "range"
	case ValueText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is a quantity payload. Only the fields matching Kind are meaningful.
// Range bounds are not ordered or validated.
type Value struct {
	Kind   ValueKind
	Number float64
	Start  float64
	End    float64
	Text   string
}

// NumberValue returns a Value holding n.
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Number: n}
}

// RangeValue returns a Value holding the range start..end.
func RangeValue(start, end float64) Value {
	return Value{Kind: ValueRange, Start: start, End: end}
}

// TextValue returns a Value holding s.
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// Quantity pairs an optional value with an optional unit.
type Quantity struct {
	Value *Value
	Unit  *string

	// Fixed quantities are left untouched by scaling.
	Fixed bool
}

// Ingredient is a named ingredient definition.
type Ingredient struct {
	Name     string
	Quantity *Quantity
	Note     *string
}

// Cookware is a named piece of equipment.
type Cookware struct {
	Name     string
	Quantity *Quantity
	Note     *string
}

// Timer is a timer reference; Name is nil for anonymous timers.
type Timer struct {
	Name     *string
	Quantity *Quantity
}

// InlineQuantity is a measurement detected in plain step text.
type InlineQuantity struct {
	Quantity Quantity
}

// ItemKind identifies the alternative held by an Item.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemIngredient
	ItemCookware
	ItemTimer
	ItemInlineQuantity
)

// Item is one piece of a step. Text items carry Value; every other kind
// carries Index into the matching list of the owning Recipe.
type Item struct {
	Kind  ItemKind
	Value string
	Index int
}

// Step is an ordered list of items.
type Step struct {
	Items []Item
}

// ContentKind identifies the alternative held by a Content.
type ContentKind int

const (
	ContentStep ContentKind = iota
	ContentText
)

// Content is either a step or a block of plain text such as a note.
type Content struct {
	Kind ContentKind
	Step Step
	Text string
}

// Section groups content under an optional name.
type Section struct {
	Name    *string
	Content []Content
}

// MetadataEntry is one key/value pair. Keys and values keep the type they
// were decoded with: string, int, float64, bool, []any, map[string]any or nil.
type MetadataEntry struct {
	Key   any
	Value any
}

// Metadata holds recipe metadata in declaration order.
type Metadata struct {
	Entries []MetadataEntry
}

// Get returns the value stored under the string key.
func (m Metadata) Get(key string) (any, bool) {
	for _, e := range m.Entries {
		if k, ok := e.Key.(string); ok && k == key {
			return e.Value, true
		}
	}
	return nil, false
}

// set replaces the value of an existing string key or appends a new entry.
// It reports whether the key was already present.
func (m *Metadata) set(key string, value any) bool {
	for i, e := range m.Entries {
		if k, ok := e.Key.(string); ok && k == key {
			m.Entries[i].Value = value
			return true
		}
	}
	m.Entries = append(m.Entries, MetadataEntry{Key: key, Value: value})
	return false
}

// Recipe is the parsed representation of a recipe.
type Recipe struct {
	Metadata         Metadata
	Ingredients      []Ingredient
	Cookware         []Cookware
	Timers           []Timer
	InlineQuantities []InlineQuantity
	Sections         []Section
}

// Clone returns a deep copy of r.
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	out := &Recipe{
		Metadata:         Metadata{Entries: make([]MetadataEntry, len(r.Metadata.Entries))},
		Ingredients:      make([]Ingredient, len(r.Ingredients)),
		Cookware:         make([]Cookware, len(r.Cookware)),
		Timers:           make([]Timer, len(r.Timers)),
		InlineQuantities: make([]InlineQuantity, len(r.InlineQuantities)),
		Sections:         make([]Section, len(r.Sections)),
	}
	for i, e := range r.Metadata.Entries {
		out.Metadata.Entries[i] = MetadataEntry{Key: cloneAny(e.Key), Value: cloneAny(e.Value)}
	}
	for i, ing := range r.Ingredients {
		out.Ingredients[i] = Ingredient{Name: ing.Name, Quantity: ing.Quantity.clone(), Note: cloneString(ing.Note)}
	}
	for i, cw := range r.Cookware {
		out.Cookware[i] = Cookware{Name: cw.Name, Quantity: cw.Quantity.clone(), Note: cloneString(cw.Note)}
	}
	for i, t := range r.Timers {
		out.Timers[i] = Timer{Name: cloneString(t.Name), Quantity: t.Quantity.clone()}
	}
	for i, iq := range r.InlineQuantities {
		out.InlineQuantities[i] = InlineQuantity{Quantity: *iq.Quantity.clone()}
	}
	for i, s := range r.Sections {
		content := make([]Content, len(s.Content))
		for j, c := range s.Content {
			content[j] = Content{Kind: c.Kind, Text: c.Text, Step: Step{Items: append([]Item(nil), c.Step.Items...)}}
		}
		out.Sections[i] = Section{Name: cloneString(s.Name), Content: content}
	}
	return out
}

func (q *Quantity) clone() *Quantity {
	if q == nil {
		return nil
	}
	out := &Quantity{Unit: cloneString(q.Unit), Fixed: q.Fixed}
	if q.Value != nil {
		v := *q.Value
		out.Value = &v
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneAny(e)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = cloneAny(e)
		}
		return out
	default:
		return v
	}
}
