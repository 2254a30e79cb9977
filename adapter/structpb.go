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

package adapter

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/polarerr/apis"
)

// DetailsStruct converts an error's details into a protobuf Struct.
//
// Values structpb cannot represent are converted first: errors and
// fmt.Stringers become their text, typed maps and slices are re-encoded
// through JSON, and anything else is formatted with %v. nil or empty
// details yield nil.
func DetailsStruct(details map[string]any) (*structpb.Struct, error) {
	if len(details) == 0 {
		return nil, nil
	}
	s, err := structpb.NewStruct(sanitizeMap(details))
	if err != nil {
		return nil, fmt.Errorf("adapter: details to struct: %w", err)
	}
	return s, nil
}

// ViewStruct converts a view into a protobuf Struct with the same field
// names as its JSON form.
func ViewStruct(v apis.ErrorView) (*structpb.Struct, error) {
	m := map[string]any{"kind": v.Kind}
	if v.Tag != "" {
		m["tag"] = v.Tag
	}
	if v.Origin != "" {
		m["origin"] = v.Origin
	}
	if v.Message != "" {
		m["message"] = v.Message
	}
	if len(v.Details) > 0 {
		m["details"] = sanitizeMap(v.Details)
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("adapter: view to struct: %w", err)
	}
	return s, nil
}

func sanitizeMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = sanitize(v)
	}
	return out
}

func sanitize(v any) any {
	switch x := v.(type) {
	case nil, bool, string, []byte, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return x
	case map[string]any:
		return sanitizeMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = sanitize(e)
		}
		return out
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	// Typed containers ([]string, map[string]int, structs) go through JSON.
	if b, err := json.Marshal(v); err == nil {
		var generic any
		if err := json.Unmarshal(b, &generic); err == nil {
			return sanitize(generic)
		}
	}
	return fmt.Sprintf("%v", v)
}
