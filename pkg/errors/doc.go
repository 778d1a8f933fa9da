// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Boundary entry points return *StructuredError values whose Message is the
// single human-readable failure string handed back to callers:
//
//	out, err := bridge.Parse(text, true)
//	if err != nil {
//	    fmt.Fprintln(os.Stderr, errors.Message(err))
//	}
//
// Wrapping keeps the original cause available to errors.Is and errors.As:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeScale,
//	    "Scaling error: recipe has no servings metadata",
//	    cooklang.ErrMissingServings,
//	    map[string]any{
//	        "target": target,
//	    },
//	)
package errors
