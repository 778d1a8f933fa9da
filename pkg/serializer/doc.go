// Package serializer encodes values to JSON, YAML or tables and decodes
// JSON or YAML input.
//
// # Formats
//
//   - JSON: Marshal produces compact output with sorted map keys, so equal
//     values always give equal bytes; Writer produces indented output
//   - YAML: gopkg.in/yaml.v3 with 2-space indentation
//   - Table: a FIELD/VALUE listing of the value's flattened JSON form
//     (write-only)
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, out); err != nil {
//		return err
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON encodes into a buffer before writing headers so an encoding
// failure becomes a 500 rather than a partial body.
//
// # Reading
//
// Reader decodes JSON or YAML request bodies and rejects unknown fields.
// FormatFromContentType picks the decoder for a request.
//
// ReadSource returns raw bytes from a file, an http(s) URL (through
// HttpReader, bounded by timeouts and HttpReaderDefaultMaxBytes) or
// standard input.
package serializer
