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

package ffi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/ffi"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

func TestFromTag_RuntimeVariants(t *testing.T) {
	want := map[string]kind.Kind{
		"Serialization": kind.Serialization,
		"Unsupported":   kind.Unsupported,
		"TypeError":     kind.PolarType,
		"StackOverflow": kind.StackOverflow,
	}
	require.Len(t, ffi.RuntimeVariants(), len(want))

	for _, name := range ffi.RuntimeVariants() {
		t.Run(name, func(t *testing.T) {
			err := ffi.FromTag(name, "boom", map[string]any{"term": "x"})
			require.NotNil(t, err)
			require.Equal(t, want[name], err.Kind)
			require.True(t, kind.IsA(err.Kind, kind.Runtime))
			require.ErrorIs(t, err, kind.Runtime)
			require.ErrorIs(t, err, kind.Root)
			require.Equal(t, "boom", err.Message)
			require.Equal(t, map[string]any{"term": "x"}, err.ErrorDetails())
			require.Equal(t, ffi.FamilyRuntime, err.Tag.Family())
		})
	}
}

func TestFromTag_Unknown(t *testing.T) {
	err := ffi.FromTag("Bogus", "", nil)
	require.Equal(t, kind.FFIErrorNotFound, err.Kind)
	require.Equal(t, "runtime.bogus", err.Details[ffi.TagDetail])
	require.Contains(t, err.Message, "runtime.bogus")
	require.False(t, kind.IsA(err.Kind, kind.Runtime))
	require.ErrorIs(t, err, kind.Root)

	err = ffi.FromTag("not a tag!", "engine said no", nil)
	require.Equal(t, kind.FFIErrorNotFound, err.Kind)
	require.Equal(t, "engine said no", err.Message)
	require.ErrorIs(t, err, tag.ErrTagInvalidFormat)
}

func TestFromTag_QualifiedTag(t *testing.T) {
	err := ffi.FromTag("Parse::UnrecognizedEOF", "eof", nil)
	require.Equal(t, kind.UnrecognizedEOF, err.Kind)
	require.Equal(t, tag.Tag("parse.unrecognized_eof"), err.Tag)
}

func TestResolver_ExactByDefault(t *testing.T) {
	r := ffi.Default()

	k, ok := r.Resolve(tag.MustParse("parse.unrecognized_token"))
	require.True(t, ok)
	require.Equal(t, kind.UnrecognizedToken, k)

	k, ok = r.Resolve(tag.MustParse("parse"))
	require.True(t, ok)
	require.Equal(t, kind.ParseError, k)

	_, ok = r.Resolve(tag.MustParse("parse.brand_new"))
	require.False(t, ok)

	_, ok = r.Resolve(tag.Empty)
	require.False(t, ok)
}

func TestResolver_FamilyFallback(t *testing.T) {
	r, err := ffi.NewResolver(ffi.WithFamilyFallback(true))
	require.NoError(t, err)

	k, ok := r.Resolve(tag.MustParse("parse.brand_new"))
	require.True(t, ok)
	require.Equal(t, kind.ParseError, k)

	e := r.Error(ffi.Failure{Tag: "Runtime::QueryTimeout", Message: "timeout"})
	require.Equal(t, kind.Runtime, e.Kind)
	require.Equal(t, tag.Tag("runtime.query_timeout"), e.Tag)

	e = r.Error(ffi.Failure{Tag: "validation.missing"})
	require.Equal(t, kind.FFIErrorNotFound, e.Kind)
}

func TestResolver_CustomRules(t *testing.T) {
	r, err := ffi.NewResolver(
		ffi.WithoutDefaults(),
		ffi.WithRule("validation", kind.API),
		ffi.WithRule("validation.missing_field", kind.Parameter),
	)
	require.NoError(t, err)

	e := r.Error(ffi.Failure{Tag: "validation.missing_field", Message: "missing"})
	require.Equal(t, kind.Parameter, e.Kind)

	e = r.Error(ffi.Failure{Tag: "runtime.type_error"})
	require.Equal(t, kind.FFIErrorNotFound, e.Kind)

	// later rules replace earlier ones for the same tag
	r, err = ffi.NewResolver(ffi.WithRule("runtime.type_error", kind.UnexpectedPolarType))
	require.NoError(t, err)
	e = r.Error(ffi.Failure{Tag: "runtime.type_error"})
	require.Equal(t, kind.UnexpectedPolarType, e.Kind)
}

func TestNewResolver_Invalid(t *testing.T) {
	_, err := ffi.NewResolver(ffi.WithRule("Not Valid", kind.ParseError))
	require.ErrorIs(t, err, tag.ErrTagInvalidFormat)

	_, err = ffi.NewResolver(ffi.WithRule("", kind.ParseError))
	require.Error(t, err)

	_, err = ffi.NewResolver(ffi.WithRule("custom", kind.Kind("X")))
	require.ErrorIs(t, err, kind.ErrKindInvalid)

	require.Panics(t, func() { ffi.MustNewResolver(ffi.WithRule("", kind.ParseError)) })
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		kind    kind.Kind
		tag     tag.Tag
		msg     string
		details map[string]any
	}{
		{
			name:    "struct variant",
			in:      `{"kind":{"Parse":{"UnrecognizedToken":{"token":"foo","loc":12}}},"formatted":"did not expect to find the token 'foo' at line 1, column 13"}`,
			kind:    kind.UnrecognizedToken,
			tag:     "parse.unrecognized_token",
			msg:     "did not expect to find the token 'foo' at line 1, column 13",
			details: map[string]any{"token": "foo", "loc": float64(12)},
		},
		{
			name:    "runtime type error",
			in:      `{"kind":{"Runtime":{"TypeError":{"msg":"expected list","stack_trace":null}}},"formatted":"Type error: expected list"}`,
			kind:    kind.PolarType,
			tag:     "runtime.type_error",
			msg:     "Type error: expected list",
			details: map[string]any{"msg": "expected list", "stack_trace": nil},
		},
		{
			name: "unit variant",
			in:   `{"kind":{"Operational":"Unknown"},"formatted":"unknown operational error"}`,
			kind: kind.Unknown,
			tag:  "operational.unknown",
			msg:  "unknown operational error",
		},
		{
			name:    "string body",
			in:      `{"kind":{"Parameter":"expected a string"},"formatted":"Invalid parameter used in query"}`,
			kind:    kind.Parameter,
			tag:     "parameter",
			msg:     "Invalid parameter used in query",
			details: map[string]any{ffi.ValueDetail: "expected a string"},
		},
		{
			name:    "family fields without variant",
			in:      `{"kind":{"Runtime":{"msg":"bad state","term":"x"}},"formatted":"bad state"}`,
			kind:    kind.Runtime,
			tag:     "runtime",
			msg:     "bad state",
			details: map[string]any{"msg": "bad state", "term": "x"},
		},
		{
			name:    "tuple payload",
			in:      `{"kind":{"Parse":{"IntegerOverflow":["99999999999999999999"]}},"formatted":"overflow"}`,
			kind:    kind.IntegerOverflow,
			tag:     "parse.integer_overflow",
			msg:     "overflow",
			details: map[string]any{ffi.ValueDetail: []any{"99999999999999999999"}},
		},
		{
			name: "null body",
			in:   `{"kind":{"Api":null},"formatted":"api misuse"}`,
			kind: kind.API,
			tag:  "api",
			msg:  "api misuse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ffi.Decode([]byte(tt.in))
			require.NotNil(t, e)
			require.Equal(t, tt.kind, e.Kind)
			require.Equal(t, tt.tag, e.Tag)
			require.Equal(t, tt.msg, e.Message)
			require.Equal(t, tt.details, e.ErrorDetails())
		})
	}
}

func TestDecode_UnknownVariant(t *testing.T) {
	in := []byte(`{"kind":{"Runtime":{"QueryTimeout":{"elapsed":30}}},"formatted":"timed out"}`)

	e := ffi.Decode(in)
	require.Equal(t, kind.FFIErrorNotFound, e.Kind)
	require.Equal(t, "runtime.query_timeout", e.Details[ffi.TagDetail])
	require.Equal(t, "timed out", e.Message)

	r := ffi.MustNewResolver(ffi.WithFamilyFallback(true))
	e = r.Decode(in)
	require.Equal(t, kind.Runtime, e.Kind)
	require.Equal(t, float64(30), e.Details["elapsed"])
}

func TestDecode_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"not json":       `{"kind":`,
		"empty":          ``,
		"empty kind":     `{"kind":{},"formatted":"x"}`,
		"missing kind":   `{"formatted":"x"}`,
		"several":        `{"kind":{"Parse":"ExtraToken","Runtime":"Unsupported"}}`,
		"invalid family": `{"kind":{"not a family":null}}`,
	} {
		t.Run(name, func(t *testing.T) {
			e := ffi.Decode([]byte(in))
			require.NotNil(t, e)
			require.Equal(t, kind.FFIErrorNotFound, e.Kind)
			require.NotNil(t, errors.Unwrap(e))
		})
	}

	e := ffi.Decode([]byte(`{}`))
	require.ErrorIs(t, e, ffi.ErrEmptyEnvelope)
	e = ffi.Decode([]byte(`{"kind":{"Parse":"ExtraToken","Runtime":"Unsupported"}}`))
	require.ErrorIs(t, e, ffi.ErrAmbiguousEnvelope)
}

func TestDecode_MatchesAncestors(t *testing.T) {
	e := ffi.Decode([]byte(`{"kind":{"Parse":{"ExtraToken":{"token":")","loc":4}}},"formatted":"extra token"}`))

	var pe *polarerr.Error
	require.ErrorAs(t, error(e), &pe)
	require.ErrorIs(t, e, kind.ExtraToken)
	require.ErrorIs(t, e, kind.ParseError)
	require.ErrorIs(t, e, kind.Root)
	require.NotErrorIs(t, e, kind.Runtime)
	require.Equal(t, kind.OriginParse, e.Origin())
}
