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

package mapper

import (
	"fmt"

	"google.golang.org/grpc/codes"

	"dirpx.dev/polarerr/internal/ident"
	"dirpx.dev/polarerr/internal/segmenttrie"
	"dirpx.dev/polarerr/kind"
)

// freeze makes an immutable copy of src so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper. An empty map yields nil.
func freeze[V any](src map[kind.Kind]V) map[kind.Kind]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC copies src converting builder-style int values into typed gRPC codes.
func freezeGRPC(src map[kind.Kind]int) map[kind.Kind]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codesOf(v)
	}
	return dst
}

// buildTries compiles per-kind prefix rules into segment tries. conv turns
// the builder's int value into the stored value.
func buildTries[V any](rules map[kind.Kind][]prefixRule, transport string, conv func(int) V) (map[kind.Kind]*segmenttrie.Trie[V], error) {
	out := make(map[kind.Kind]*segmenttrie.Trie[V], len(rules))
	for k, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s tag-prefix %q for kind %q: %w", transport, r.prefix, k, err)
			}
			if err := t.Insert(p, conv(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for kind %q: %w", transport, p, k, err)
			}
		}
		out[k] = t
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func codesOf(v int) codes.Code { return codes.Code(uint32(v)) }

func identity(v int) int { return v }

// snakeCode renders c in the canonical upper-snake spelling without the
// case, e.g. "invalid_argument".
func snakeCode(c codes.Code) string { return ident.Snake(c.String()) }
