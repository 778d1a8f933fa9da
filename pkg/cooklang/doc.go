// Package cooklang parses Cooklang recipe text into a recipe syntax tree
// together with a report of warnings and errors, and scales parsed recipes
// to a different number of servings.
//
// # Parsing
//
//	recipe, report := cooklang.Parse(text, cooklang.AllExtensions())
//	if report.HasErrors() {
//	    for _, d := range report.Errors() {
//	        fmt.Println(d)
//	    }
//	}
//
// A recipe is nil whenever the report holds errors. Warnings never prevent
// a recipe from being returned.
//
// Supported syntax:
//
//   - YAML front matter between "---" fences, and the older ">> key: value" lines
//   - "= Section" headers
//   - paragraphs of text form steps; lines of one paragraph are joined by a space
//   - ingredients "@salt", "@sea salt{1%tsp}", cookware "#pot", "#large pan{}"
//   - timers "~{10%minutes}", "~rest{5%min}"
//   - "-- line" and "[- block -]" comments
//
// Items of a step reference ingredients, cookware and timers by index into
// the recipe lists. Repeated mentions of the same ingredient or cookware
// (compared after Unicode normalisation and case folding) share one entry.
//
// # Extensions
//
// Optional grammar features are enabled with an Extensions set: component
// notes, range values, inline temperatures, text blocks and fixed
// quantities. Callers at the boundary toggle them all-or-none with
// AllExtensions and NoExtensions.
//
// # Scaling
//
//	scaled, err := recipe.ScaleToServings(8)
//
// ScaleToServings reads the base servings from the "servings" metadata and
// multiplies numbers and range bounds by target/base using decimal
// arithmetic. Text values and fixed quantities are left as they are.
package cooklang
