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
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"
)

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"number", NumberValue(1.5), `1.5`},
		{"integer", NumberValue(2), `2`},
		{"range", RangeValue(2, 3), `{"start":2,"end":3}`},
		{"text", TextValue("a pinch"), `"a pinch"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back Value
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if back != tt.value {
				t.Errorf("Unmarshal() = %+v, want %+v", back, tt.value)
			}
		})
	}
}

func TestValue_UnknownKind(t *testing.T) {
	if _, err := json.Marshal(Value{Kind: "bogus"}); err == nil {
		t.Error("expected error for unknown value kind")
	}
	var v Value
	if err := json.Unmarshal([]byte(`true`), &v); err == nil {
		t.Error("expected error for boolean value")
	}
}

func TestItem_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"text", TextItem("Add "), `{"type":"text","value":"Add "}`},
		{"empty text", TextItem(""), `{"type":"text","value":""}`},
		{"ingredient", RefItem(ItemIngredient, 0), `{"type":"ingredient","index":0}`},
		{"cookware", RefItem(ItemCookware, 2), `{"type":"cookware","index":2}`},
		{"timer", RefItem(ItemTimer, 1), `{"type":"timer","index":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var back Item
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if back != tt.item {
				t.Errorf("Unmarshal() = %+v, want %+v", back, tt.item)
			}
		})
	}
}

func TestItem_UnknownType(t *testing.T) {
	if _, err := json.Marshal(Item{Type: "note"}); err == nil {
		t.Error("expected error for unknown item type")
	}
	var it Item
	if err := json.Unmarshal([]byte(`{"type":"note"}`), &it); err == nil {
		t.Error("expected error for unknown item type")
	}
}

func TestOptionalFieldsOmitted(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"empty quantity", Quantity{}, `{}`},
		{"quantity without unit", Quantity{Value: ptr.To(NumberValue(3))}, `{"value":3}`},
		{"ingredient without quantity", Ingredient{Name: "salt"}, `{"name":"salt"}`},
		{"cookware with note", Cookware{Name: "pan", Note: ptr.To("large")}, `{"name":"pan","note":"large"}`},
		{"anonymous timer", Timer{Quantity: &Quantity{Value: ptr.To(NumberValue(5)), Unit: ptr.To("min")}}, `{"quantity":{"value":5,"unit":"min"}}`},
		{"unnamed section", Section{Content: []Step{}}, `{"content":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestRecipe_MarshalYAML(t *testing.T) {
	r := &Recipe{
		Metadata: map[string]string{"servings": "2"},
		Ingredients: []Ingredient{
			{Name: "eggs", Quantity: &Quantity{Value: ptr.To(RangeValue(2, 3))}},
		},
		Cookware: []Cookware{},
		Timers:   []Timer{},
		Sections: []Section{{Content: []Step{{Items: []Item{TextItem("Beat "), RefItem(ItemIngredient, 0)}}}}},
		Warnings: []string{},
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"servings: \"2\"",
		"start: 2",
		"end: 3",
		"type: text",
		"value: 'Beat '",
		"type: ingredient",
		"index: 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unit:") || strings.Contains(out, "note:") {
		t.Errorf("YAML output contains absent optional fields:\n%s", out)
	}
}

func TestRecipe_Validate(t *testing.T) {
	valid := &Recipe{
		Ingredients: []Ingredient{{Name: "a"}},
		Cookware:    []Cookware{{Name: "b"}},
		Timers:      []Timer{{}},
		Sections: []Section{{Content: []Step{{Items: []Item{
			RefItem(ItemIngredient, 0), RefItem(ItemCookware, 0), RefItem(ItemTimer, 0), TextItem("x"),
		}}}}},
	}

	tests := []struct {
		name    string
		recipe  *Recipe
		wantErr bool
	}{
		{"nil", nil, true},
		{"empty", &Recipe{}, false},
		{"valid", valid, false},
		{"ingredient out of range", &Recipe{Sections: []Section{{Content: []Step{{Items: []Item{RefItem(ItemIngredient, 0)}}}}}}, true},
		{"negative index", &Recipe{Timers: []Timer{{}}, Sections: []Section{{Content: []Step{{Items: []Item{RefItem(ItemTimer, -1)}}}}}}, true},
		{"unknown type", &Recipe{Sections: []Section{{Content: []Step{{Items: []Item{{Type: "note"}}}}}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
