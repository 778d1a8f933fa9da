// Package bridge exposes the recipe entry points used by the CLI and the
// API server.
//
// Each entry point takes text and returns either the encoded result or a
// *errors.StructuredError whose Message is the single string reported to
// the caller:
//
//	out, err := bridge.ParseAndScale(text, 8, true)
//	if err != nil {
//		fmt.Fprintln(os.Stderr, errors.Message(err))
//	}
//
// Failure messages:
//   - parse: every parser error, joined with "\n" in source order
//   - scale: "Scaling error: <reason>"
//   - encode: "JSON serialization error: <reason>"
//   - aisle: the aisle parser's message
//
// Calls are independent and hold no shared state. Nothing here logs or
// retries.
//
// Pool bounds how many parse and scale calls run at once. It waits for a
// free slot under the caller's context; once a call starts it runs to
// completion. Aisle parsing is cheap and runs inline.
package bridge
