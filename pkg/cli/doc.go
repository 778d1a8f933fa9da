// Package cli implements the cookwire command-line interface.
//
// # Commands
//
// parse - Convert a Cooklang recipe:
//
//	cookwire parse --input pancakes.cook [--servings 8] [--extensions=false] [--format json|yaml|table] [--output FILE]
//
// The input may be a local path, an http(s) URL, or "-" for stdin (the
// default). When the recipe fails to parse, the parser errors are printed to
// stderr one per line and the command exits 1.
//
// aisle - Convert an aisle configuration:
//
//	cookwire aisle --input aisle.conf [--format json|yaml|table] [--output FILE]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default) is indented. YAML uses two-space indentation. Table prints
// one FIELD/VALUE row per leaf of the JSON form, e.g.
// "ingredients.0.quantity.value".
package cli
