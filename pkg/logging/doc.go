// Package logging sets up structured slog logging for the cookwire
// binaries.
//
// Logs are JSON on stderr and carry "module" and "version" attributes.
// Debug level adds the source location.
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cookwired", version)
//	    slog.Info("server starting", "port", 8080)
//	}
//
// The level comes from LOG_LEVEL (debug, info, warn/warning, error; case
// insensitive, default info) or, in the CLI, from --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookwire", version, "debug")
//
// NewLogLogger adapts the default handler for code that wants a
// *log.Logger, such as http.Server.ErrorLog.
//
// Only the CLI, server and api packages log. Parsing, conversion and
// scaling never do.
package logging
