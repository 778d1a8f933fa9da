// Package api wires the cookwire conversion endpoints into pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /v1/parse       - convert one Cooklang recipe, optionally scaled
//   - POST /v1/parse/batch - convert up to MAX_BULK recipes concurrently
//   - POST /v1/aisle       - convert an aisle configuration
//
// System endpoints:
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Parse requests
//
// A parse body is either a JSON or YAML document:
//
//	{"recipe": ">> servings: 2\nAdd @salt{1%tsp}.", "servings": 4}
//
// or the raw recipe text sent as text/plain, with the options as query
// parameters:
//
//	curl -X POST "http://localhost:8080/v1/parse?servings=4" \
//	  -H "Content-Type: text/plain" \
//	  --data-binary @pancakes.cook
//
// Extensions default to enabled. A recipe that fails to parse or scale
// returns 422 with the newline-joined parser errors as the message.
//
// # Batch requests
//
//	{"recipes": [{"recipe": "..."}, {"recipe": "...", "servings": 2}]}
//
// The response holds one result per recipe, in request order, each with
// either a "recipe" or an "error" object.
//
// # Configuration
//
// See server.NewConfig for the environment variables. LOG_LEVEL sets the
// log level. Version information is set at build time:
//
//	go build -ldflags="-X 'github.com/cookwire/cookwire/pkg/api.version=1.0.0'"
package api
