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
	"k8s.io/utils/ptr"

	"github.com/cookwire/cookwire/pkg/cooklang"
)

// Convert maps a parsed recipe and its report onto the output model. It
// never fails and never modifies its inputs. Only warnings of the report
// are carried over; errors belong to the failure path.
func Convert(r *cooklang.Recipe, report *cooklang.Report) *Recipe {
	out := &Recipe{
		Metadata:    make(map[string]string, len(r.Metadata.Entries)),
		Ingredients: make([]Ingredient, 0, len(r.Ingredients)),
		Cookware:    make([]Cookware, 0, len(r.Cookware)),
		Timers:      make([]Timer, 0, len(r.Timers)),
		Sections:    make([]Section, 0, len(r.Sections)),
		Warnings:    Messages(report.Warnings()),
	}

	for _, e := range r.Metadata.Entries {
		out.Metadata[scalarString(e.Key)] = scalarString(e.Value)
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, Ingredient{
			Name:     ing.Name,
			Quantity: ConvertQuantity(ing.Quantity),
			Note:     cloneString(ing.Note),
		})
	}
	for _, cw := range r.Cookware {
		out.Cookware = append(out.Cookware, Cookware{
			Name:     cw.Name,
			Quantity: ConvertQuantity(cw.Quantity),
			Note:     cloneString(cw.Note),
		})
	}
	for _, t := range r.Timers {
		out.Timers = append(out.Timers, Timer{
			Name:     cloneString(t.Name),
			Quantity: ConvertQuantity(t.Quantity),
		})
	}
	for _, s := range r.Sections {
		out.Sections = append(out.Sections, convertSection(s))
	}
	return out
}

// ConvertQuantity maps a parsed quantity. Payloads are copied unchanged and
// the unit is copied as its display text.
func ConvertQuantity(q *cooklang.Quantity) *Quantity {
	if q == nil {
		return nil
	}
	out := &Quantity{Unit: cloneString(q.Unit)}
	if q.Value != nil {
		v := convertValue(*q.Value)
		out.Value = &v
	}
	return out
}

func convertValue(v cooklang.Value) Value {
	switch v.Kind {
	case cooklang.ValueRange:
		return RangeValue(v.Start, v.End)
	case cooklang.ValueText:
		return TextValue(v.Text)
	default:
		return NumberValue(v.Number)
	}
}

// convertSection keeps step content only; text blocks are dropped.
func convertSection(s cooklang.Section) Section {
	out := Section{
		Name:    cloneString(s.Name),
		Content: make([]Step, 0, len(s.Content)),
	}
	for _, c := range s.Content {
		if c.Kind != cooklang.ContentStep {
			continue
		}
		out.Content = append(out.Content, convertStep(c.Step))
	}
	return out
}

func convertStep(s cooklang.Step) Step {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, convertItem(it))
	}
	return Step{Items: items}
}

// convertItem maps one item. Inline quantities have no output form and
// become empty text.
func convertItem(it cooklang.Item) Item {
	switch it.Kind {
	case cooklang.ItemText:
		return TextItem(it.Value)
	case cooklang.ItemIngredient:
		return RefItem(ItemIngredient, it.Index)
	case cooklang.ItemCookware:
		return RefItem(ItemCookware, it.Index)
	case cooklang.ItemTimer:
		return RefItem(ItemTimer, it.Index)
	default:
		return TextItem("")
	}
}

// scalarString keeps string metadata. Numbers, booleans, sequences,
// mappings and nil all become the empty string.
func scalarString(v any) string {
	if t, ok := v.(string); ok {
		return t
	}
	return ""
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr.To(*s)
}
