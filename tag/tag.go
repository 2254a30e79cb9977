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

package tag

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"

	"dirpx.dev/polarerr/internal/ident"
)

// Tag is the canonical, validated representation of a boundary tag.
type Tag string

// MinLength and MaxLength define the allowed length range for a non-empty tag.
const (
	// MinLength keeps trivial values like "x" out. The empty string is still
	// allowed and means "no tag".
	MinLength = 3

	// MaxLength leaves room for four descriptive segments.
	MaxLength = 128
)

const (
	// tagFmt accepts 1 to 4 dot-separated segments, each starting with a
	// lowercase ASCII letter and continuing with [a-z0-9_].
	//
	// Examples that match:
	//
	//	"runtime"
	//	"runtime.type_error"
	//	"parse.unrecognized_eof"
	//
	// Examples that DO NOT match:
	//
	//	"Runtime.TypeError" (uppercase; Normalize first)
	//	"runtime..type"     (empty segment)
	//	"1parse"            (digit first)
	tagFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var tagRe = regexp.MustCompile(tagFmt)

var (
	// ErrTagInvalidFormat is returned when a tag does not match tagFmt.
	ErrTagInvalidFormat = errors.New("polarerr: invalid tag format")
	// ErrTagInvalidLength is returned when a tag is too short or too long.
	ErrTagInvalidLength = errors.New("polarerr: invalid tag length")
)

var (
	_ encoding.TextMarshaler   = (*Tag)(nil)
	_ encoding.TextUnmarshaler = (*Tag)(nil)
)

// Empty is the zero-value tag: the error was not reported by the engine.
var Empty Tag = ""

// Normalize brings s closer to the canonical tag form:
//
//   - trims spaces;
//   - converts "::" and "/" separators to ".";
//   - splits CamelCase words with '_' and lowercases them;
//   - replaces "-" with "_".
//
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "::", ".")
	s = strings.ReplaceAll(s, "/", ".")
	return ident.Snake(s)
}

// Parse normalizes and validates s. The empty string yields Empty.
func Parse(s string) (Tag, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Tag(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if t == Empty {
		panic("polarerr: empty tag in MustParse")
	}
	return t
}

// Join normalizes each segment and joins them with ".". Empty segments are
// skipped.
func Join(segments ...string) (Tag, error) {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = Normalize(s); s != "" {
			parts = append(parts, s)
		}
	}
	return Parse(strings.Join(parts, "."))
}

// Validate checks whether t is in canonical form. Empty is valid.
func Validate(t Tag) error {
	if t == Empty {
		return nil
	}
	return validate(string(t))
}

// Family returns the first segment ("runtime" for "runtime.type_error").
func (t Tag) Family() string {
	s := string(t)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// Variant returns the last segment when the tag has more than one,
// and "" otherwise.
func (t Tag) Variant() string {
	s := string(t)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

// Segments splits the tag on ".". Empty yields nil.
func (t Tag) Segments() []string {
	if t == Empty {
		return nil
	}
	return strings.Split(string(t), ".")
}

// String returns the canonical string representation of the tag.
func (t Tag) String() string {
	return string(t)
}

// MarshalText implements encoding.TextMarshaler. Empty marshals to an empty
// slice.
func (t Tag) MarshalText() ([]byte, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}
	if t == Empty {
		return []byte{}, nil
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrTagInvalidLength
	}
	if !tagRe.MatchString(s) {
		return ErrTagInvalidFormat
	}
	return nil
}
