/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package ident converts engine-side identifiers into the lowercase,
// underscore-separated form used by kinds and tags.
package ident

import (
	"strings"
	"unicode"
)

// Snake converts a CamelCase identifier to snake_case.
//
// Acronyms stay together: "UnrecognizedEOF" becomes "unrecognized_eof" and
// "FFIErrorNotFound" becomes "ffi_error_not_found". Input that is already
// lowercase is returned unchanged; '-' is treated as '_'.
func Snake(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range rs {
		if r == '-' {
			r = '_'
		}
		if unicode.IsUpper(r) {
			if i > 0 && boundary(rs, i) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// boundary reports whether an upper-case rune at i starts a new word.
func boundary(rs []rune, i int) bool {
	prev := rs[i-1]
	if prev == '_' || prev == '-' || prev == '.' {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// "EOFToken": the 'T' opens a word because a lower-case rune follows.
	return unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1])
}
