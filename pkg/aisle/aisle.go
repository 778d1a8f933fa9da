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

package aisle

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Config is a parsed aisle configuration. Categories keep file order.
type Config struct {
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category is a named group of ingredients.
type Category struct {
	Name        string       `json:"name" yaml:"name"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Ingredient lists the names one ingredient is known by. The first name
// is the canonical one.
type Ingredient struct {
	Names []string `json:"names" yaml:"names"`
}

// ParseError reports the line a configuration problem was found on.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse parses an aisle configuration.
func Parse(text string) (*Config, error) {
	fold := cases.Fold()
	cfg := &Config{Categories: []Category{}}
	categories := make(map[string]bool)
	names := make(map[string]string)

	for i, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, &ParseError{Line: lineNo, Message: "unclosed category header"}
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, &ParseError{Line: lineNo, Message: "empty category name"}
			}
			key := fold.String(name)
			if categories[key] {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("duplicate category '%s'", name)}
			}
			categories[key] = true
			cfg.Categories = append(cfg.Categories, Category{Name: name, Ingredients: []Ingredient{}})
			continue
		}

		if len(cfg.Categories) == 0 {
			return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("ingredient '%s' outside of a category", line)}
		}
		current := &cfg.Categories[len(cfg.Categories)-1]

		ing := Ingredient{}
		for _, part := range strings.Split(line, "|") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			key := fold.String(name)
			if prev, ok := names[key]; ok {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("duplicate ingredient '%s', already in category '%s'", name, prev)}
			}
			names[key] = current.Name
			ing.Names = append(ing.Names, name)
		}
		if len(ing.Names) == 0 {
			return nil, &ParseError{Line: lineNo, Message: "empty ingredient name"}
		}
		current.Ingredients = append(current.Ingredients, ing)
	}
	return cfg, nil
}

// CategoryFor returns the category that lists name under any of its
// aliases.
func (c *Config) CategoryFor(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	fold := cases.Fold()
	key := fold.String(strings.TrimSpace(name))
	for _, cat := range c.Categories {
		for _, ing := range cat.Ingredients {
			for _, n := range ing.Names {
				if fold.String(n) == key {
					return cat.Name, true
				}
			}
		}
	}
	return "", false
}
