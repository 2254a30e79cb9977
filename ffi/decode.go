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

package ffi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/tag"
)

// ValueDetail is the Details key holding a variant payload that is not an
// object.
const ValueDetail = "value"

var (
	// ErrEmptyEnvelope is returned when the envelope carries no kind.
	ErrEmptyEnvelope = errors.New("ffi: empty failure envelope")
	// ErrAmbiguousEnvelope is returned when the kind object names more than
	// one family.
	ErrAmbiguousEnvelope = errors.New("ffi: failure envelope names several families")
)

// envelope is the engine's serialized failure:
//
//	{"kind": {"Parse": {"UnrecognizedToken": {"token": "x", "loc": 3}}}, "formatted": "..."}
//	{"kind": {"Operational": "Unknown"}, "formatted": "..."}
//	{"kind": {"Parameter": "expected a string"}, "formatted": "..."}
type envelope struct {
	Kind      map[string]json.RawMessage `json:"kind"`
	Formatted string                     `json:"formatted"`
}

// DecodeFailure reads the engine's JSON failure envelope into a Failure.
// The family key and the variant key become the tag; the variant payload
// becomes the details.
func (r *Resolver) DecodeFailure(data []byte) (Failure, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Failure{}, fmt.Errorf("ffi: decode failure envelope: %w", err)
	}
	if len(env.Kind) == 0 {
		return Failure{}, ErrEmptyEnvelope
	}
	if len(env.Kind) > 1 {
		return Failure{}, ErrAmbiguousEnvelope
	}

	var family string
	var body json.RawMessage
	for k, v := range env.Kind {
		family, body = k, v
	}

	fam, err := tag.Parse(family)
	if err != nil {
		return Failure{}, fmt.Errorf("ffi: invalid family %q: %w", family, err)
	}
	if fam == tag.Empty || fam.Variant() != "" {
		return Failure{}, fmt.Errorf("ffi: invalid family %q: %w", family, tag.ErrTagInvalidFormat)
	}

	f := Failure{Tag: string(fam), Message: env.Formatted}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return f, nil
	}

	switch body[0] {
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return Failure{}, fmt.Errorf("ffi: decode %s body: %w", family, err)
		}
		if len(fields) == 1 {
			for variant, payload := range fields {
				if t, ok := r.variant(fam, variant, true); ok {
					f.Tag = string(t)
					details, err := payloadDetails(payload)
					if err != nil {
						return Failure{}, fmt.Errorf("ffi: decode %s.%s payload: %w", family, variant, err)
					}
					f.Details = details
					return f, nil
				}
			}
		}
		details, err := payloadDetails(body)
		if err != nil {
			return Failure{}, fmt.Errorf("ffi: decode %s body: %w", family, err)
		}
		f.Details = details
		return f, nil
	case '"':
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return Failure{}, fmt.Errorf("ffi: decode %s body: %w", family, err)
		}
		if t, ok := r.variant(fam, s, false); ok {
			f.Tag = string(t)
			return f, nil
		}
		f.Details = map[string]any{ValueDetail: s}
		return f, nil
	default:
		details, err := payloadDetails(body)
		if err != nil {
			return Failure{}, fmt.Errorf("ffi: decode %s body: %w", family, err)
		}
		f.Details = details
		return f, nil
	}
}

// Decode converts the engine's JSON failure envelope into an *Error. It
// never returns nil: an envelope that cannot be read yields
// kind.FFIErrorNotFound with the decode error as its cause.
func (r *Resolver) Decode(data []byte) *polarerr.Error {
	f, err := r.DecodeFailure(data)
	if err != nil {
		return notFound(Failure{}, "cannot decode boundary failure", err)
	}
	return r.Error(f)
}

// Decode converts an engine failure envelope using the default rules.
func Decode(data []byte) *polarerr.Error {
	return defaultResolver.Decode(data)
}

// variant reports whether name is a variant of family rather than a field
// or a free-form payload. A name with a rule is always a variant; with
// byName, so is any CamelCase identifier, since the engine spells its
// variants that way and its payload fields in snake_case.
func (r *Resolver) variant(family tag.Tag, name string, byName bool) (tag.Tag, bool) {
	t, err := tag.Join(string(family), name)
	if err != nil || t == family {
		return tag.Empty, false
	}
	if _, ok := r.rules.Lookup(string(t)); ok {
		return t, true
	}
	if byName && name != "" && name[0] >= 'A' && name[0] <= 'Z' {
		return t, true
	}
	return tag.Empty, false
}

func payloadDetails(raw json.RawMessage) (map[string]any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		if len(m) == 0 {
			return nil, nil
		}
		return m, nil
	}
	return map[string]any{ValueDetail: v}, nil
}
