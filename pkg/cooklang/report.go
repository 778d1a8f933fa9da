// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cooklang

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a single parser message with its 1-based source position.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// String renders the diagnostic with its position.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s at %d:%d: %s", d.Severity, d.Line, d.Column, d.Message)
}

// Report collects the diagnostics of one parse in emission order.
type Report struct {
	diags []Diagnostic
}

// All returns every diagnostic in emission order.
func (r *Report) All() []Diagnostic {
	if r == nil {
		return nil
	}
	return append([]Diagnostic(nil), r.diags...)
}

// Warnings returns the warnings in emission order.
func (r *Report) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

// Errors returns the errors in emission order.
func (r *Report) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

// HasErrors reports whether at least one error was recorded.
func (r *Report) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, d := range r.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) filter(sev Severity) []Diagnostic {
	if r == nil {
		return nil
	}
	var out []Diagnostic
	for _, d := range r.diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

func (r *Report) warnf(line, col int, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{SeverityWarning, fmt.Sprintf(format, args...), line, col})
}

func (r *Report) errorf(line, col int, format string, args ...any) {
	r.diags = append(r.diags, Diagnostic{SeverityError, fmt.Sprintf(format, args...), line, col})
}
