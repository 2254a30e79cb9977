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

package adapter_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/polarerr"
	"dirpx.dev/polarerr/adapter"
	"dirpx.dev/polarerr/apis"
	"dirpx.dev/polarerr/kind"
	"dirpx.dev/polarerr/tag"
)

func TestToDescriptor(t *testing.T) {
	require.Equal(t, apis.ErrorDescriptor{}, adapter.ToDescriptor(nil, apis.Status{}))

	e := polarerr.E(kind.PolarType, "expected list",
		polarerr.WithTagOption(tag.MustParse("runtime.type_error")))
	d := adapter.ToDescriptor(e, apis.Status{HTTP: http.StatusUnprocessableEntity, GRPC: codes.InvalidArgument})

	require.Equal(t, apis.ErrorDescriptor{
		Kind:       "polar_type_error",
		Parent:     "polar_runtime_error",
		Origin:     "boundary",
		Tag:        "runtime.type_error",
		HTTPStatus: 422,
		GRPCCode:   3,
		Message:    "expected list",
	}, d)
}

func TestToDescriptor_FixedMessage(t *testing.T) {
	e := &polarerr.Error{Kind: kind.PolarFileExtension}
	d := adapter.ToDescriptor(e, apis.Status{})
	require.Equal(t, kind.PolarFileExtensionMessage, d.Message)
}

func TestToView(t *testing.T) {
	e := polarerr.PolarFileNotFound("rules.pol")
	v := adapter.ToView(e)
	require.Equal(t, apis.ErrorView{
		Kind:    "polar_file_not_found_error",
		Origin:  "local",
		Message: "Could not find file: rules.pol",
		Details: map[string]any{"file": "rules.pol"},
	}, v)

	// the view owns its details
	v.Details["file"] = "changed"
	require.Equal(t, "rules.pol", e.Details["file"])
}

type kindedErr struct{}

func (kindedErr) Error() string { return "boom" }
func (kindedErr) ErrorKind() kind.Kind { return kind.InvalidCall }
func (kindedErr) ErrorTag() tag.Tag { return tag.Empty }
func (kindedErr) ErrorMessage() string { return "cannot call" }
func (kindedErr) ErrorDetails() map[string]any { return map[string]any{"attr": "name"} }

func TestViewOf(t *testing.T) {
	require.Equal(t, apis.ErrorView{}, adapter.ViewOf(nil))

	wrapped := fmt.Errorf("load: %w", polarerr.E(kind.ExtraToken, "extra"))
	require.Equal(t, "extra_token", adapter.ViewOf(wrapped).Kind)

	v := adapter.ViewOf(kindedErr{})
	require.Equal(t, apis.ErrorView{
		Kind:    "invalid_call_error",
		Origin:  "local",
		Message: "cannot call",
		Details: map[string]any{"attr": "name"},
	}, v)

	v = adapter.ViewOf(errors.New("plain"))
	require.Equal(t, "unknown_error", v.Kind)
	require.Equal(t, "plain", v.Message)
}

func TestFromView(t *testing.T) {
	e := adapter.FromView(apis.ErrorView{
		Kind:    "unrecognized_token",
		Tag:     "parse.unrecognized_token",
		Message: "did not expect 'x'",
		Details: map[string]any{"token": "x"},
	})
	require.Equal(t, kind.UnrecognizedToken, e.Kind)
	require.Equal(t, tag.Tag("parse.unrecognized_token"), e.Tag)
	require.ErrorIs(t, e, kind.ParseError)
	require.Equal(t, map[string]any{"token": "x"}, e.ErrorDetails())

	e = adapter.FromView(apis.ErrorView{Kind: "?!", Tag: "not a tag"})
	require.Equal(t, kind.Unknown, e.Kind)
	require.Equal(t, tag.Empty, e.Tag)
	require.Equal(t, map[string]any{"kind": "?!", "tag": "not a tag"}, e.ErrorDetails())
}

func TestDetailsStruct(t *testing.T) {
	s, err := adapter.DetailsStruct(nil)
	require.NoError(t, err)
	require.Nil(t, s)

	s, err = adapter.DetailsStruct(map[string]any{
		"token":   "foo",
		"loc":     12,
		"nested":  map[string]any{"ok": true},
		"list":    []any{"a", 1},
		"strings": []string{"x", "y"},
		"cause":   errors.New("inner"),
		"timeout": 2 * time.Second,
		"struct":  struct{ A int }{A: 1},
	})
	require.NoError(t, err)

	m := s.AsMap()
	require.Equal(t, "foo", m["token"])
	require.Equal(t, float64(12), m["loc"])
	require.Equal(t, map[string]any{"ok": true}, m["nested"])
	require.Equal(t, []any{"a", float64(1)}, m["list"])
	require.Equal(t, []any{"x", "y"}, m["strings"])
	require.Equal(t, "inner", m["cause"])
	require.Equal(t, "2s", m["timeout"])
	require.Equal(t, map[string]any{"A": float64(1)}, m["struct"])
}

func TestViewStruct(t *testing.T) {
	s, err := adapter.ViewStruct(apis.ErrorView{
		Kind:    "parse_error",
		Origin:  "parse",
		Message: "bad",
		Details: map[string]any{"loc": 3},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"kind":    "parse_error",
		"origin":  "parse",
		"message": "bad",
		"details": map[string]any{"loc": float64(3)},
	}, s.AsMap())
}
