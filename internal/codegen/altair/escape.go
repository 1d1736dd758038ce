// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package altair

import "strings"

// Altair parses '.', '[', ']' and ':' in field names as shorthand syntax
// (nested access and type annotations), so literal occurrences must be
// backslash-escaped. Each character is escaped in its own pass; the
// characters don't overlap, so the result is independent of pass order and
// nothing is double-escaped.
var fieldEscaper = strings.NewReplacer(
	".", `\.`,
	"[", `\[`,
	"]", `\]`,
	":", `\:`,
)

// escapeField escapes Altair shorthand characters in a field name.
func escapeField(name string) string {
	return fieldEscaper.Replace(name)
}
