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
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

const frontMatterFence = "---"

// Parser turns recipe text into a Recipe and a Report. A Parser holds only
// its configuration and is safe for concurrent use.
type Parser struct {
	ext Extensions
}

// NewParser returns a parser with the given extensions enabled.
func NewParser(ext Extensions) *Parser {
	return &Parser{ext: ext}
}

// Extensions returns the extensions enabled for p.
func (p *Parser) Extensions() Extensions {
	return p.ext
}

// Parse is a shorthand for NewParser(ext).Parse(input).
func Parse(input string, ext Extensions) (*Recipe, *Report) {
	return NewParser(ext).Parse(input)
}

// Parse parses input. The returned recipe is nil whenever the report holds
// at least one error; the report is never nil.
func (p *Parser) Parse(input string) (*Recipe, *Report) {
	st := &parseState{
		ext:         p.ext,
		report:      &Report{},
		recipe:      &Recipe{Sections: []Section{{}}},
		ingredients: make(map[string]int),
		cookware:    make(map[string]int),
		fold:        cases.Fold(),
	}

	text := strings.ReplaceAll(input, "\r\n", "\n")
	text = st.stripBlockComments(text)
	lines := strings.Split(text, "\n")

	first := st.frontMatter(lines)
	for i := first; i < len(lines); i++ {
		st.line(lines[i], i+1)
	}
	st.flush()
	st.dropEmptySections()

	if st.report.HasErrors() {
		return nil, st.report
	}
	return st.recipe, st.report
}

type paragraphLine struct {
	text   string
	lineNo int
	col    int
}

type parseState struct {
	ext    Extensions
	report *Report
	recipe *Recipe

	// normalised name -> entity index
	ingredients map[string]int
	cookware    map[string]int
	fold        cases.Caser

	paragraph []paragraphLine
}

// stripBlockComments blanks out "[- ... -]" spans while keeping newlines so
// positions reported later still match the input.
func (st *parseState) stripBlockComments(text string) string {
	if !strings.Contains(text, "[-") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	line, col := 1, 1
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "[-") {
			end := strings.Index(text[i+2:], "-]")
			if end < 0 {
				st.report.errorf(line, col, "unclosed block comment")
				end = len(text) - i - 2
			} else {
				end += 2
			}
			for _, c := range text[i : i+2+end] {
				if c == '\n' {
					b.WriteByte('\n')
					line++
					col = 1
				}
			}
			i += 2 + end
			continue
		}
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String()
}

// frontMatter decodes a leading YAML block and returns the index of the
// first line after it.
func (st *parseState) frontMatter(lines []string) int {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterFence {
		return 0
	}
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterFence {
			end = i
			break
		}
	}
	if end < 0 {
		return 0
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &doc); err != nil {
		st.report.errorf(1, 1, "invalid front matter: %v", err)
		return end + 1
	}
	if len(doc.Content) == 0 {
		return end + 1
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		st.report.errorf(2, 1, "front matter must be a mapping")
		return end + 1
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		var key, value any
		if err := keyNode.Decode(&key); err != nil {
			key = nil
		}
		if err := valueNode.Decode(&value); err != nil {
			value = nil
		}
		if k, ok := key.(string); ok {
			if st.recipe.Metadata.set(k, value) {
				st.report.warnf(keyNode.Line+1, keyNode.Column, "duplicate metadata key '%s'", k)
			}
			continue
		}
		st.recipe.Metadata.Entries = append(st.recipe.Metadata.Entries, MetadataEntry{Key: key, Value: value})
	}
	return end + 1
}

func (st *parseState) line(raw string, lineNo int) {
	if idx := strings.Index(raw, "--"); idx >= 0 {
		raw = raw[:idx]
	}
	trimmed := strings.TrimSpace(raw)
	indent := len(raw) - len(strings.TrimLeft(raw, " \t"))

	switch {
	case trimmed == "":
		st.flush()
	case strings.HasPrefix(trimmed, ">>"):
		st.flush()
		st.metadataLine(trimmed[2:], lineNo, indent+1)
	case strings.HasPrefix(trimmed, "="):
		st.flush()
		st.section(trimmed)
	default:
		st.paragraph = append(st.paragraph, paragraphLine{text: trimmed, lineNo: lineNo, col: indent + 1})
	}
}

func (st *parseState) metadataLine(body string, lineNo, col int) {
	st.report.warnf(lineNo, col, "the '>>' metadata syntax is deprecated, use YAML front matter")
	key, value, ok := strings.Cut(body, ":")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		st.report.errorf(lineNo, col, "invalid metadata line, expected '>> key: value'")
		return
	}
	if st.recipe.Metadata.set(key, strings.TrimSpace(value)) {
		st.report.warnf(lineNo, col, "duplicate metadata key '%s'", key)
	}
}

func (st *parseState) section(header string) {
	name := strings.TrimSpace(strings.Trim(header, "= \t"))
	current := &st.recipe.Sections[len(st.recipe.Sections)-1]
	if current.Name == nil && len(current.Content) == 0 {
		current.Name = optionalString(name)
		return
	}
	st.recipe.Sections = append(st.recipe.Sections, Section{Name: optionalString(name)})
}

// flush turns the pending paragraph into step or text content.
func (st *parseState) flush() {
	if len(st.paragraph) == 0 {
		return
	}
	lines := st.paragraph
	st.paragraph = nil
	current := &st.recipe.Sections[len(st.recipe.Sections)-1]

	if st.ext.Has(ExtTextBlocks) && strings.HasPrefix(lines[0].text, ">") {
		parts := make([]string, 0, len(lines))
		for _, l := range lines {
			if t := strings.TrimSpace(strings.TrimPrefix(l.text, ">")); t != "" {
				parts = append(parts, t)
			}
		}
		current.Content = append(current.Content, Content{Kind: ContentText, Text: strings.Join(parts, " ")})
		return
	}

	var items []Item
	for i, l := range lines {
		if i > 0 {
			items = append(items, Item{Kind: ItemText, Value: " "})
		}
		items = append(items, st.scanLine(l.text, l.lineNo, l.col)...)
	}
	items = mergeText(items)
	if len(items) == 0 {
		return
	}
	current.Content = append(current.Content, Content{Kind: ContentStep, Step: Step{Items: items}})
}

func (st *parseState) dropEmptySections() {
	kept := st.recipe.Sections[:0]
	for _, s := range st.recipe.Sections {
		if s.Name == nil && len(s.Content) == 0 {
			continue
		}
		kept = append(kept, s)
	}
	st.recipe.Sections = kept
}

// mergeText joins adjacent text items and drops empty ones.
func mergeText(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Kind == ItemText {
			if it.Value == "" {
				continue
			}
			if n := len(out); n > 0 && out[n-1].Kind == ItemText {
				out[n-1].Value += it.Value
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
