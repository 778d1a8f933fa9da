// Package aisle parses Cooklang aisle configuration files.
//
// An aisle configuration groups ingredients by shop category:
//
//	[produce]
//	potatoes
//	spring onions|scallions
//
//	[dairy]
//	milk
//
// A line in brackets opens a category. Every other non-blank line is one
// ingredient, with "|" separating alternative names. Names are compared
// case-insensitively.
//
// Parse returns the first problem found, prefixed with its line number.
package aisle
