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

package recipe

import (
	"strings"

	"github.com/cookwire/cookwire/pkg/cooklang"
)

// Messages returns the message of every diagnostic in report order. The
// result is never nil so it serializes as an empty list.
func Messages(diags []cooklang.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Message)
	}
	return out
}

// JoinErrors joins the error messages of report with a newline, keeping
// report order.
func JoinErrors(report *cooklang.Report) string {
	return strings.Join(Messages(report.Errors()), "\n")
}
