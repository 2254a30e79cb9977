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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"dirpx.dev/polarerr/internal/ident"
)

// Kind is the canonical, validated identity of an error variant in the
// policy binding's taxonomy.
//
// It is a separate type (not just string) so that callers match on declared
// kinds rather than on raw user input. Kind also implements error, which lets
// a kind act as an errors.Is target:
//
//	if errors.Is(err, kind.ParseError) {
//	    // any parse failure
//	}
type Kind string

// MinLength and MaxLength define the allowed length range for a kind.
const (
	// MinLength keeps ultra-short identifiers out; the root kind "error" is
	// the shortest catalog entry.
	MinLength = 3

	// MaxLength is generous enough for "duplicate_instance_registration_error".
	MaxLength = 64
)

const (
	// kindFmt is the canonical pattern for kinds.
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - total length 3..64;
	//	$ - end of string.
	//
	// IMPORTANT: {2,63} is tied to MinLength / MaxLength above.
	kindFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var kindRe = regexp.MustCompile(kindFmt)

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a kind.
	ErrKindInvalid = errors.New("polarerr: invalid kind")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
	_ error                    = Kind("")
)

// Empty is the zero-value kind. It never names a variant.
var Empty Kind = ""

// Parse normalizes and validates s.
//
// Parse accepts both the canonical snake_case form and the CamelCase class
// names used by other bindings, so "PolarFileNotFoundError" and
// "polar_file_not_found_error" yield the same Kind. A syntactically valid
// kind that is not in the catalog still parses; use Known to tell them apart.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings s closer to the canonical form:
//
//   - trims surrounding spaces;
//   - splits CamelCase words with '_' and lowercases them;
//   - replaces '-' with '_'.
//
// It does NOT guarantee that the result is valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	return ident.Snake(s)
}

// Validate checks whether k is syntactically valid. Empty is invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// Error implements error so that a Kind can be used with errors.Is.
func (k Kind) Error() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
