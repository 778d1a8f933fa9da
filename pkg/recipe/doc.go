// Package recipe defines the output model handed across the boundary and
// converts parsed Cooklang recipes into it.
//
// # Output Model
//
// The model mirrors the parse tree in a flattened shape that encodes the
// same way every time:
//
//	{
//	  "metadata":    {"servings": "4"},
//	  "ingredients": [{"name": "salt", "quantity": {"value": 1, "unit": "tsp"}}],
//	  "cookware":    [],
//	  "timers":      [],
//	  "sections":    [{"content": [{"items": [{"type": "ingredient", "index": 0}]}]}],
//	  "warnings":    []
//	}
//
// Optional fields are omitted when absent rather than written as null. A
// Value is written untagged (a number, a string, or {"start","end"}) and
// an Item is tagged by "type": text, ingredient, cookware or timer.
//
// Reference items carry an index into the ingredient, cookware or timer
// list of the same Recipe; Validate checks those indices.
//
// # Conversion
//
//	out := recipe.Convert(parsed, report)
//
// Convert is total and pure:
//   - string metadata keys and values are kept, anything else
//     (numbers, booleans, lists, maps, null) becomes ""
//   - entity lists keep their order
//   - sections keep steps only; text blocks are dropped
//   - inline quantities become empty text items
//   - only warnings are copied from the report
//
// Messages and JoinErrors flatten report diagnostics into plain strings.
package recipe
