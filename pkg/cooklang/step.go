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
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	sigilIngredient = '@'
	sigilCookware   = '#'
	sigilTimer      = '~'

	// characters that end a multi-word component name search
	nameStopChars = ".,;:!?()"
)

var inlineTemperature = regexp.MustCompile(`(\d+(?:\.\d+)?)\s?°\s?([CF])`)

func kindName(sigil byte) string {
	switch sigil {
	case sigilIngredient:
		return "ingredient"
	case sigilCookware:
		return "cookware"
	default:
		return "timer"
	}
}

// scanLine splits one line of step text into items. col is the 1-based
// column of line[0] in the source.
func (st *parseState) scanLine(line string, lineNo, col int) []Item {
	var (
		items []Item
		text  strings.Builder
	)
	flushText := func() {
		if text.Len() > 0 {
			items = append(items, st.textItems(text.String())...)
			text.Reset()
		}
	}

	for i := 0; i < len(line); {
		c := line[i]
		if c == sigilIngredient || c == sigilCookware || c == sigilTimer {
			if item, next, ok := st.component(line, i, lineNo, col+i); ok {
				flushText()
				items = append(items, item)
				i = next
				continue
			}
		}
		text.WriteByte(c)
		i++
	}
	flushText()
	return items
}

// component reads the component starting at line[start]. ok is false when
// the sigil does not start a component and should be kept as text.
func (st *parseState) component(line string, start, lineNo, col int) (item Item, next int, ok bool) {
	sigil := line[start]
	kind := kindName(sigil)
	j := start + 1

	var (
		name      string
		quantity  *Quantity
		hasBraces bool
	)

	if open := braceStart(line, j); open >= 0 {
		hasBraces = true
		name = strings.TrimSpace(line[j:open])
		closeIdx := strings.IndexAny(line[open+1:], "{}")
		if closeIdx < 0 || line[open+1+closeIdx] != '}' {
			st.report.errorf(lineNo, col, "unclosed '{' in %s '%s'", kind, name)
			return Item{}, 0, false
		}
		body := line[open+1 : open+1+closeIdx]
		next = open + closeIdx + 2

		q, err := parseQuantity(body, st.ext)
		if err != nil {
			st.report.errorf(lineNo, col, "%v in %s '%s'", err, kind, name)
		}
		quantity = q
	} else {
		end := j
		for end < len(line) {
			if line[end] >= utf8.RuneSelf {
				r, size := utf8.DecodeRuneInString(line[end:])
				if r == utf8.RuneError && size == 1 || !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					break
				}
				end += size
				continue
			}
			if !isWordByte(line[end]) {
				break
			}
			end++
		}
		name = line[j:end]
		if name == "" {
			return Item{}, 0, false
		}
		next = end
	}

	if sigil != sigilTimer && name == "" {
		st.report.errorf(lineNo, col, "%s name cannot be empty", kind)
		return Item{Kind: ItemText}, next, true
	}

	var note *string
	if sigil != sigilTimer && hasBraces && st.ext.Has(ExtComponentNote) && next < len(line) && line[next] == '(' {
		if closeIdx := strings.IndexByte(line[next:], ')'); closeIdx > 0 {
			note = optionalString(strings.TrimSpace(line[next+1 : next+closeIdx]))
			next += closeIdx + 1
		}
	}

	switch sigil {
	case sigilIngredient:
		return Item{Kind: ItemIngredient, Index: st.ingredient(name, quantity, note, lineNo, col)}, next, true
	case sigilCookware:
		return Item{Kind: ItemCookware, Index: st.cookwareRef(name, quantity, note, lineNo, col)}, next, true
	default:
		return Item{Kind: ItemTimer, Index: st.timer(name, quantity, lineNo, col)}, next, true
	}
}

// braceStart returns the index of the "{" closing a (possibly multi-word)
// component name that starts at line[from], or -1.
func braceStart(line string, from int) int {
	if from < len(line) && (line[from] == ' ' || line[from] == '\t') {
		return -1
	}
	for i := from; i < len(line); i++ {
		switch c := line[i]; {
		case c == '{':
			return i
		case c == sigilIngredient || c == sigilCookware || c == sigilTimer || c == '}':
			return -1
		case strings.IndexByte(nameStopChars, c) >= 0:
			return -1
		case c >= utf8.RuneSelf:
			if r, size := utf8.DecodeRuneInString(line[i:]); r == utf8.RuneError && size == 1 {
				return -1
			}
		}
	}
	return -1
}

func isWordByte(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (st *parseState) key(name string) string {
	return st.fold.String(norm.NFC.String(name))
}

func (st *parseState) ingredient(name string, q *Quantity, note *string, lineNo, col int) int {
	k := st.key(name)
	if idx, ok := st.ingredients[k]; ok {
		existing := &st.recipe.Ingredients[idx]
		existing.Quantity, existing.Note = st.merge("ingredient", name, existing.Quantity, q, existing.Note, note, lineNo, col)
		return idx
	}
	st.recipe.Ingredients = append(st.recipe.Ingredients, Ingredient{Name: name, Quantity: q, Note: note})
	idx := len(st.recipe.Ingredients) - 1
	st.ingredients[k] = idx
	return idx
}

func (st *parseState) cookwareRef(name string, q *Quantity, note *string, lineNo, col int) int {
	k := st.key(name)
	if idx, ok := st.cookware[k]; ok {
		existing := &st.recipe.Cookware[idx]
		existing.Quantity, existing.Note = st.merge("cookware", name, existing.Quantity, q, existing.Note, note, lineNo, col)
		return idx
	}
	st.recipe.Cookware = append(st.recipe.Cookware, Cookware{Name: name, Quantity: q, Note: note})
	idx := len(st.recipe.Cookware) - 1
	st.cookware[k] = idx
	return idx
}

// merge folds a repeated mention into the first definition. The first
// quantity and note win; a differing quantity is reported.
func (st *parseState) merge(what, name string, oldQ, newQ *Quantity, oldNote, newNote *string, lineNo, col int) (*Quantity, *string) {
	q := oldQ
	switch {
	case oldQ == nil:
		q = newQ
	case newQ != nil && !oldQ.equal(newQ):
		st.report.warnf(lineNo, col, "%s '%s' is mentioned again with a different quantity, keeping the first one", what, name)
	}
	note := oldNote
	if note == nil {
		note = newNote
	}
	return q, note
}

func (st *parseState) timer(name string, q *Quantity, lineNo, col int) int {
	if name == "" && q == nil {
		st.report.errorf(lineNo, col, "timer must have a name or a quantity")
	}
	if q != nil && q.Unit == nil {
		if name == "" {
			st.report.warnf(lineNo, col, "timer is missing a unit")
		} else {
			st.report.warnf(lineNo, col, "timer '%s' is missing a unit", name)
		}
	}
	st.recipe.Timers = append(st.recipe.Timers, Timer{Name: optionalString(name), Quantity: q})
	return len(st.recipe.Timers) - 1
}

// textItems splits plain text around inline temperatures when enabled.
func (st *parseState) textItems(s string) []Item {
	if !st.ext.Has(ExtInlineQuantities) {
		return []Item{{Kind: ItemText, Value: s}}
	}
	matches := inlineTemperature.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return []Item{{Kind: ItemText, Value: s}}
	}
	var items []Item
	last := 0
	for _, m := range matches {
		items = append(items, Item{Kind: ItemText, Value: s[last:m[0]]})
		n, err := strconv.ParseFloat(s[m[2]:m[3]], 64)
		if err != nil {
			items = append(items, Item{Kind: ItemText, Value: s[m[0]:m[1]]})
			last = m[1]
			continue
		}
		v := NumberValue(n)
		unit := "°" + s[m[4]:m[5]]
		st.recipe.InlineQuantities = append(st.recipe.InlineQuantities, InlineQuantity{Quantity: Quantity{Value: &v, Unit: &unit}})
		items = append(items, Item{Kind: ItemInlineQuantity, Index: len(st.recipe.InlineQuantities) - 1})
		last = m[1]
	}
	items = append(items, Item{Kind: ItemText, Value: s[last:]})
	return items
}

func (q *Quantity) equal(o *Quantity) bool {
	if q == nil || o == nil {
		return q == o
	}
	if q.Fixed != o.Fixed || !equalString(q.Unit, o.Unit) {
		return false
	}
	if q.Value == nil || o.Value == nil {
		return q.Value == o.Value
	}
	return *q.Value == *o.Value
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
