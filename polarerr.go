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

package polarerr

import (
	"errors"
	"fmt"

	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

var (
	_ apis.KindedError   = (*Error)(nil)
	_ apis.TaggedError   = (*Error)(nil)
	_ apis.MessagedError = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.CausedError   = (*Error)(nil)
)

// Error is the single error type the policy binding surfaces.
//
// It carries:
//   - Kind: the variant in the taxonomy (required);
//   - Tag: the engine-side tag when the failure crossed the boundary;
//   - Message: human-oriented description;
//   - Details: structured diagnostic payload (offending token, location,
//     stack trace, ...);
//   - Cause: wrapped underlying error for unwrapping.
//
// Error values are treated as immutable once constructed. All WithX helpers
// return a shallow copy with freshly allocated Details, so a value can be
// shared across goroutines without synchronization.
type Error struct {
	// Kind is the primary classification, e.g. kind.UnrecognizedEOF.
	Kind kind.Kind

	// Tag is the boundary tag the engine reported, e.g. "parse.unrecognized_eof".
	// Empty for failures detected by the binding itself.
	Tag tag.Tag

	// Message is a human-readable explanation, sufficient to diagnose the
	// failure without inspecting internals.
	Message string

	// Details is machine-oriented diagnostic data. Treat it as read-only;
	// use ErrorDetails for a copy that is safe to modify.
	Details map[string]any

	// Cause holds the wrapped underlying error, if any.
	Cause error
}

// Error implements the built-in error interface.
//
// The format is
//
//	<kind>: <message>
//
// or, when the failure carries a boundary tag,
//
//	<kind>[<tag>]: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	head := string(e.Kind)
	if e.Tag != tag.Empty {
		head = fmt.Sprintf("%s[%s]", e.Kind, e.Tag)
	}
	if e.Message == "" {
		return head
	}
	return head + ": " + e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As chains.
//
// The cause comes back behind a thin wrapper: sentinel and type matching see
// through it, kind.Kind targets do not. An *Error that wraps another *Error
// is therefore classified by its own kind only. Use the Cause field for the
// raw value.
func (e *Error) Unwrap() error {
	if e == nil || e.Cause == nil {
		return nil
	}
	return cause{err: e.Cause}
}

// Is reports whether e matches target for errors.Is.
//
// A kind.Kind target matches when e's kind is that kind or lies beneath it,
// which is how callers catch a whole category:
//
//	errors.Is(err, kind.ParseError) // any parse failure
//	errors.Is(err, kind.Root)       // anything the library raised
//
// Only the outermost *Error in a chain decides a kind match; kinds of
// wrapped *Error causes are never consulted.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if k, ok := target.(kind.Kind); ok {
		return kind.IsA(e.Kind, k)
	}
	return false
}

// cause carries an *Error's cause through errors.Is / errors.As while hiding
// it from kind.Kind targets.
type cause struct{ err error }

func (c cause) Error() string { return c.err.Error() }

func (c cause) Is(target error) bool {
	if _, ok := target.(kind.Kind); ok {
		return false
	}
	return errors.Is(c.err, target)
}

func (c cause) As(target any) bool { return errors.As(c.err, target) }

// ErrorKind returns the variant of the error.
func (e *Error) ErrorKind() kind.Kind { return e.Kind }

// ErrorTag returns the boundary tag, or tag.Empty for local failures.
func (e *Error) ErrorTag() tag.Tag { return e.Tag }

// ErrorMessage returns the human-readable message, possibly empty.
func (e *Error) ErrorMessage() string { return e.Message }

// ErrorDetails returns a copy of the details payload, or nil when there is
// none. Nested string-keyed maps are copied as well.
func (e *Error) ErrorDetails() map[string]any { return cloneDetails(e.Details) }

// Origin returns where this kind of failure is detected.
func (e *Error) Origin() kind.Origin { return kind.OriginOf(e.Kind) }

// WithTag returns a shallow copy of e with the given boundary tag.
func (e *Error) WithTag(t tag.Tag) *Error {
	cp := *e
	cp.Tag = t
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced message.
//
// Kinds whose message is fixed or derived (PolarFileExtension,
// PolarFileNotFound) keep their message; e is returned unchanged.
func (e *Error) WithMessage(msg string) *Error {
	if derivedMessage(e.Kind) {
		return e
	}
	cp := *e
	cp.Message = msg
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The map is always copied.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with kv merged into Details; kv
// wins on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range cloneDetails(kv) {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e wrapping err. A nil err returns e.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// cloneDetails copies in, descending into nested map[string]any values.
func cloneDetails(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneDetails(mv)
			continue
		}
		out[k] = v
	}
	return out
}
