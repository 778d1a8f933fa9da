// Package defaults provides centralized configuration constants for cookwire.
//
// Timeouts and request limits live here so the server, the API handlers and
// the CLI agree on them.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ParseHandlerTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Handler timeouts stay below ServerWriteTimeout
//   - Batch requests get more time than single parses since they queue for
//     worker slots
//   - Outbound HTTP (CLI URL input) uses the HTTP client timeouts
package defaults
