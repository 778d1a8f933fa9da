// Package server provides the HTTP plumbing shared by the cookwire service:
// configuration, routing, middleware, error responses and probes.
//
// Handlers are registered by route pattern and wrapped by a fixed chain:
//
//	metrics -> version -> request ID -> panic recovery -> rate limit -> logging -> handler
//
// The /health, /ready and /metrics routes are served outside the chain.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookwired"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/parse": parseHandler,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads PORT, SHUTDOWN_TIMEOUT_SECONDS, WORKERS and MAX_BODY_BYTES
// from the environment.
//
// # Request IDs
//
// Requests may carry an X-Request-Id header in UUID format. Missing or
// invalid IDs are replaced. The ID is echoed in the response header and in
// every error body.
//
// # Rate Limiting
//
// A token bucket (golang.org/x/time/rate) guards handler routes. Responses
// carry X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset; a
// rejected request gets 429 with Retry-After.
//
// # Errors
//
// Every error reply has the same JSON shape:
//
//	{
//	  "code": "PARSE_ERROR",
//	  "message": "ingredient name cannot be empty",
//	  "details": {"errors": 1},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// HTTPStatusFromCode maps error codes to statuses: INVALID_REQUEST is 400,
// PARSE_ERROR and SCALE_ERROR are 422, RATE_LIMIT_EXCEEDED is 429,
// SERVICE_UNAVAILABLE is 503, TIMEOUT is 504 and anything else is 500.
package server
